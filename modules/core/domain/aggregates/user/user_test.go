package user_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telvana/tsr-tracker/modules/core/domain/aggregates/user"
)

func TestNew_NormalizesEmail(t *testing.T) {
	u := user.New("  Engineer@Example.COM ", "Test Engineer", "hash")
	assert.Equal(t, "engineer@example.com", u.Email())
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := user.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	u := user.New("engineer@example.com", "Test Engineer", hash)
	assert.True(t, u.CheckPassword("s3cret"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestIsZero(t *testing.T) {
	assert.True(t, user.User{}.IsZero())

	u := user.Hydrate(uuid.New(), "engineer@example.com", "Test Engineer", "hash", time.Now(), time.Now())
	assert.False(t, u.IsZero())
}
