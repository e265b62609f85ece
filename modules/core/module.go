package core

import (
	"embed"

	"github.com/telvana/tsr-tracker/modules/core/infrastructure/persistence"
	"github.com/telvana/tsr-tracker/modules/core/presentation/controllers"
	"github.com/telvana/tsr-tracker/modules/core/services"
	"github.com/telvana/tsr-tracker/pkg/application"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

//go:embed infrastructure/persistence/schema/core-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&localeFiles)
	app.Migrations().RegisterSchema(&migrationFiles)

	userService := services.NewUserService(persistence.NewUserRepository(), app.EventPublisher())
	sessionService := services.NewSessionService(persistence.NewSessionRepository())

	app.RegisterServices(
		userService,
		sessionService,
		services.NewAuthService(userService, sessionService),
	)

	app.RegisterControllers(
		controllers.NewLoginController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "core"
}
