// Package storage defines the persistence contract for quests and settings.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Thijsn04/QuestLog/internal/hero"
	"github.com/Thijsn04/QuestLog/internal/quest"
)

// ErrNotFound indicates a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ExportSnapshot is the downloadable backup of all persisted state.
type ExportSnapshot struct {
	Settings   *hero.Settings `json:"settings"`
	Quests     []quest.Quest  `json:"quests"`
	ExportedAt time.Time      `json:"exported_at"`
}

// QuestStore owns the persisted quest hierarchy.
type QuestStore interface {
	// CreateQuest persists a quest, assigning its position as the current
	// sibling count so children append at the end of the order.
	CreateQuest(ctx context.Context, q quest.Quest) (quest.Quest, error)
	// GetQuest fetches a quest by id. A miss reports found=false, not an error.
	GetQuest(ctx context.Context, id string) (quest.Quest, bool, error)
	// MainQuest fetches the single root quest when one exists.
	MainQuest(ctx context.Context) (quest.Quest, bool, error)
	// ChildQuests lists a parent's children ordered by position, insertion
	// order breaking ties.
	ChildQuests(ctx context.Context, parentID string) ([]quest.Quest, error)
	// ChildProgress counts a parent's children and how many are completed.
	ChildProgress(ctx context.Context, parentID string) (total, completed int, err error)
	// UpdateQuest overwrites a quest's mutable fields.
	UpdateQuest(ctx context.Context, q quest.Quest) error
	// UpdateQuestPosition moves a quest to a new sibling position. Sibling
	// positions are not compacted; ordering only needs relative comparison.
	UpdateQuestPosition(ctx context.Context, id string, position int) error
	// DeleteQuest removes a quest and, cascading, its children.
	DeleteQuest(ctx context.Context, id string) error
	// ListQuests returns every quest for export.
	ListQuests(ctx context.Context) ([]quest.Quest, error)
	// DeleteAllQuests wipes the quest table during a full reset.
	DeleteAllQuests(ctx context.Context) error
}

// SettingsStore owns the singleton hero settings record.
type SettingsStore interface {
	// GetSettings fetches the singleton. A missing row reports found=false.
	GetSettings(ctx context.Context) (hero.Settings, bool, error)
	// PutSettings upserts the singleton at its fixed key, so a double create
	// converges instead of duplicating rows.
	PutSettings(ctx context.Context, s hero.Settings) error
	// DeleteSettings removes the singleton during a full reset.
	DeleteSettings(ctx context.Context) error
}

// Store is the full persistence surface used by the web service.
type Store interface {
	QuestStore
	SettingsStore
}
