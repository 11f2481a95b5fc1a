// Package dashboard serves the landing page: onboarding on first run, the
// Main Quest dashboard afterward, and the goal suggestion endpoint.
package dashboard

import (
	"net/http"

	"github.com/Thijsn04/QuestLog/internal/web/module"
)

// Module provides the landing page and onboarding routes.
type Module struct{}

// New returns a dashboard module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Register wires dashboard route handlers onto the root mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) error {
	svc := newService(deps)
	h := newHandlers(svc)
	registerRoutes(mux, h)
	return nil
}
