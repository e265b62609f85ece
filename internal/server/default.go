package server

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/telvana/tsr-tracker/pkg/application"
	"github.com/telvana/tsr-tracker/pkg/configuration"
	"github.com/telvana/tsr-tracker/pkg/constants"
	"github.com/telvana/tsr-tracker/pkg/httpapi"
	"github.com/telvana/tsr-tracker/pkg/middleware"
	"github.com/telvana/tsr-tracker/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

// Default assembles the HTTP server with the shared middleware stack. The
// stack injects the logger, application, pool and request parameters, then
// resolves the session cookie to a user. Route guarding stays with the
// controllers.
func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	app.RegisterMiddleware(
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(options.Configuration.Origin),
		middleware.RequestParams(),
		middleware.Authorize(),
		middleware.ProvideUser(),
	)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found", httpapi.Meta(w, r))
	})
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", httpapi.Meta(w, r))
	})

	return server.NewHTTPServer(app, notFound, methodNotAllowed), nil
}
