// Package modules composes the web feature module registry.
package modules

import (
	module "github.com/Thijsn04/QuestLog/internal/web/module"
	"github.com/Thijsn04/QuestLog/internal/web/modules/dashboard"
	"github.com/Thijsn04/QuestLog/internal/web/modules/quests"
	"github.com/Thijsn04/QuestLog/internal/web/modules/settings"
)

// Dependencies aliases the shared module dependencies type.
type Dependencies = module.Dependencies

// Module aliases the module interface contract.
type Module = module.Module

// DefaultModules returns every stable web module.
func DefaultModules() []Module {
	return []Module{
		dashboard.New(),
		quests.New(),
		settings.New(),
	}
}
