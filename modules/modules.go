package modules

import (
	"github.com/telvana/tsr-tracker/modules/core"
	"github.com/telvana/tsr-tracker/modules/tsr"
	"github.com/telvana/tsr-tracker/pkg/application"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	tsr.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range append(BuiltInModules, externalModules...) {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
