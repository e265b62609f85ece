package composables

import (
	"context"
	"errors"

	"github.com/telvana/tsr-tracker/pkg/application"
	"github.com/telvana/tsr-tracker/pkg/constants"
)

var ErrNoApp = errors.New("no application found in context")

// UseApp returns the application from the context.
func UseApp(ctx context.Context) (application.Application, error) {
	app, ok := ctx.Value(constants.AppKey).(application.Application)
	if !ok {
		return nil, ErrNoApp
	}
	return app, nil
}
