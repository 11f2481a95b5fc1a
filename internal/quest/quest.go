// Package quest defines the quest hierarchy domain model.
package quest

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Thijsn04/QuestLog/internal/platform/id"
)

// CategoryMain marks the single root quest. Every other category is a free
// label chosen by the user or the AI collaborator.
const CategoryMain = "Main"

// CategoryGeneral is the default label for manually added sub-quests.
const CategoryGeneral = "General"

// ErrEmptyTitle indicates a missing quest title.
var ErrEmptyTitle = errors.New("quest title is required")

// Quest is one node in the goal hierarchy. A Quest with an empty ParentID
// and category "Main" is the root Main Quest; all others are sub-quests
// referencing their parent by id. A zero Deadline means no deadline is set.
type Quest struct {
	ID          string
	Title       string
	Description string
	Category    string
	ParentID    string
	Completed   bool
	Deadline    time.Time
	CreatedAt   time.Time
	ImageURL    string
	Position    int
}

// IsMain reports whether this quest is the root Main Quest.
func (q Quest) IsMain() bool {
	return q.Category == CategoryMain && q.ParentID == ""
}

// Overdue reports whether the quest has a deadline strictly in the past and
// is not completed. Completed quests are never overdue.
func (q Quest) Overdue(now time.Time) bool {
	if q.Completed || q.Deadline.IsZero() {
		return false
	}
	return q.Deadline.Before(now)
}

// CreateInput describes the fields needed to create a quest.
type CreateInput struct {
	Title       string
	Description string
	Category    string
	ParentID    string
	Deadline    time.Time
	ImageURL    string
}

// New creates a quest with a generated ID and creation timestamp. Position
// assignment is left to the store so siblings append in insertion order.
func New(input CreateInput, now func() time.Time, idGenerator func() (string, error)) (Quest, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Quest{}, ErrEmptyTitle
	}
	input.Category = strings.TrimSpace(input.Category)
	if input.Category == "" {
		input.Category = CategoryGeneral
	}

	questID, err := idGenerator()
	if err != nil {
		return Quest{}, fmt.Errorf("generate quest id: %w", err)
	}

	return Quest{
		ID:          questID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		ParentID:    strings.TrimSpace(input.ParentID),
		Deadline:    input.Deadline,
		CreatedAt:   now().UTC(),
		ImageURL:    input.ImageURL,
	}, nil
}
