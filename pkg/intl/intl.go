package intl

import (
	"context"
	"errors"

	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/telvana/tsr-tracker/pkg/constants"
)

var ErrNoLocalizer = errors.New("localizer not found in context")

type SupportedLanguage struct {
	Code        string
	VerboseName string
}

// SupportedLanguages is the list of languages the tracker ships locale files
// for.
var SupportedLanguages = []SupportedLanguage{
	{Code: "en", VerboseName: "English"},
}

// WithLocalizer returns a new context carrying the request's localizer.
func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, constants.LocalizerKey, l)
}

// UseLocalizer returns the localizer from the context.
// If the localizer is not found, the second return value will be false.
func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(constants.LocalizerKey).(*i18n.Localizer)
	return l, ok
}

// MustT localizes a message ID, falling back to the ID itself when the
// message is missing from the bundle.
func MustT(ctx context.Context, msgID string) string {
	l, ok := UseLocalizer(ctx)
	if !ok {
		panic(ErrNoLocalizer)
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil {
		return msgID
	}
	return msg
}
