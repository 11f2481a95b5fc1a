// Package settings serves the profile page, backup export, and full reset.
package settings

import (
	"net/http"

	"github.com/Thijsn04/QuestLog/internal/web/module"
)

// Module provides the settings routes.
type Module struct{}

// New returns a settings module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "settings" }

// Register wires settings route handlers onto the root mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) error {
	svc := newService(deps)
	h := newHandlers(svc)
	registerRoutes(mux, h)
	return nil
}
