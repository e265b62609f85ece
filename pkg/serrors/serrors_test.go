package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telvana/tsr-tracker/pkg/serrors"
)

func TestIs_MatchesByCode(t *testing.T) {
	base := serrors.NewError("TSR_NOT_FOUND", "tsr not found", "Errors.NotFound")
	detailed := base.WithDetail("id %s", "abc")

	assert.ErrorIs(t, detailed, base)
	assert.NotErrorIs(t, detailed, serrors.ErrInternal)
	assert.Contains(t, detailed.Error(), "id abc")
}

func TestIs_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", serrors.ErrUnauthorized)
	assert.True(t, errors.Is(wrapped, serrors.ErrUnauthorized))
}
