// Package quests serves the sub-quest fragment API: create, toggle, edit,
// reorder, delete, and the AI architect breakdown.
package quests

import (
	"net/http"

	"github.com/Thijsn04/QuestLog/internal/web/module"
)

// Module provides the quest mutation routes.
type Module struct{}

// New returns a quests module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "quests" }

// Register wires quest route handlers onto the root mux.
func (Module) Register(mux *http.ServeMux, deps module.Dependencies) error {
	svc := newService(deps)
	h := newHandlers(svc)
	registerRoutes(mux, h)
	return nil
}
