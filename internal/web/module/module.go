// Package module defines the shared contract web feature modules build on.
package module

import (
	"net/http"
	"time"

	"github.com/Thijsn04/QuestLog/internal/ai"
	"github.com/Thijsn04/QuestLog/internal/storage"
)

// Dependencies carries the shared services injected into every module.
type Dependencies struct {
	// Store is the persistence surface for quests and settings.
	Store storage.Store
	// AI is the external collaborator for suggestions, breakdowns, quotes,
	// and vision images.
	AI ai.Collaborator
	// Now supplies the current time. Nil falls back to time.Now; tests pin
	// it for deterministic deadlines and quote dates.
	Now func() time.Time
}

// Clock returns the configured time source, defaulting to time.Now.
func (d Dependencies) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Module is a web feature that registers routes on the shared root mux.
// Route patterns carry methods and full paths, so modules own disjoint
// routes rather than prefix mounts.
type Module interface {
	// ID returns a stable module identifier for composition errors.
	ID() string
	// Register wires the module's routes onto the root mux.
	Register(mux *http.ServeMux, deps Dependencies) error
}
