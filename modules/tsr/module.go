package tsr

import (
	"embed"

	"github.com/telvana/tsr-tracker/modules/tsr/infrastructure/persistence"
	"github.com/telvana/tsr-tracker/modules/tsr/presentation/controllers"
	"github.com/telvana/tsr-tracker/modules/tsr/services"
	"github.com/telvana/tsr-tracker/pkg/application"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

//go:embed infrastructure/persistence/schema/tsr-schema.sql
var migrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&localeFiles)
	app.Migrations().RegisterSchema(&migrationFiles)

	app.RegisterServices(
		services.NewTSRService(
			persistence.NewTSRRepository(),
			persistence.NewTimelineRepository(),
			app.EventPublisher(),
		),
	)

	app.RegisterControllers(
		controllers.NewTSRAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "tsr"
}
