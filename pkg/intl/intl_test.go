package intl_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/telvana/tsr-tracker/pkg/intl"
)

func localizedContext(t *testing.T, messages string) context.Context {
	t.Helper()
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.MustParseMessageFileBytes([]byte(messages), "en.json")
	return intl.WithLocalizer(context.Background(), i18n.NewLocalizer(bundle, "en"))
}

func TestMustT(t *testing.T) {
	ctx := localizedContext(t, `{"TSRs": {"NoChanges": "No changes detected."}}`)

	assert.Equal(t, "No changes detected.", intl.MustT(ctx, "TSRs.NoChanges"))
}

func TestMustT_MissingMessageFallsBackToID(t *testing.T) {
	ctx := localizedContext(t, `{"TSRs": {"NoChanges": "No changes detected."}}`)

	assert.Equal(t, "TSRs.Missing", intl.MustT(ctx, "TSRs.Missing"))
}

func TestMustT_PanicsWithoutLocalizer(t *testing.T) {
	assert.PanicsWithValue(t, intl.ErrNoLocalizer, func() {
		intl.MustT(context.Background(), "TSRs.NoChanges")
	})
}

func TestUseLocalizer(t *testing.T) {
	_, ok := intl.UseLocalizer(context.Background())
	require.False(t, ok)

	ctx := localizedContext(t, `{"TSRs": {"NoChanges": "No changes detected."}}`)
	l, ok := intl.UseLocalizer(ctx)
	require.True(t, ok)
	assert.NotNil(t, l)
}
