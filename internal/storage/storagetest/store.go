// Package storagetest provides an in-memory storage.Store for tests.
package storagetest

import (
	"context"
	"sort"
	"sync"

	"github.com/Thijsn04/QuestLog/internal/hero"
	"github.com/Thijsn04/QuestLog/internal/quest"
	"github.com/Thijsn04/QuestLog/internal/storage"
)

// Store keeps quests and settings in memory with the same observable
// behavior as the SQLite store: append-to-end positions, cascade delete,
// found-bool misses, fixed-key settings upsert.
type Store struct {
	mu          sync.Mutex
	quests      map[string]quest.Quest
	order       []string // insertion order for stable tie-breaks
	settings    hero.Settings
	hasSettings bool
}

var _ storage.Store = (*Store)(nil)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{quests: make(map[string]quest.Quest)}
}

// CreateQuest persists a quest with position = current sibling count.
func (s *Store) CreateQuest(_ context.Context, q quest.Quest) (quest.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	siblings := 0
	for _, existing := range s.quests {
		if existing.ParentID == q.ParentID {
			siblings++
		}
	}
	q.Position = siblings
	s.quests[q.ID] = q
	s.order = append(s.order, q.ID)
	return q, nil
}

// GetQuest fetches a quest by id.
func (s *Store) GetQuest(_ context.Context, id string) (quest.Quest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quests[id]
	return q, ok, nil
}

// MainQuest fetches the root quest when one exists.
func (s *Store) MainQuest(_ context.Context) (quest.Quest, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		q, ok := s.quests[id]
		if ok && q.IsMain() {
			return q, true, nil
		}
	}
	return quest.Quest{}, false, nil
}

// ChildQuests lists children ordered by position with insertion order
// breaking ties.
func (s *Store) ChildQuests(_ context.Context, parentID string) ([]quest.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	insertionIndex := make(map[string]int, len(s.order))
	for i, id := range s.order {
		insertionIndex[id] = i
	}

	var children []quest.Quest
	for _, id := range s.order {
		q, ok := s.quests[id]
		if ok && q.ParentID == parentID {
			children = append(children, q)
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].Position != children[j].Position {
			return children[i].Position < children[j].Position
		}
		return insertionIndex[children[i].ID] < insertionIndex[children[j].ID]
	})
	return children, nil
}

// ChildProgress counts children and completions for a parent.
func (s *Store) ChildProgress(_ context.Context, parentID string) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total, completed := 0, 0
	for _, q := range s.quests {
		if q.ParentID != parentID {
			continue
		}
		total++
		if q.Completed {
			completed++
		}
	}
	return total, completed, nil
}

// UpdateQuest overwrites an existing quest. Unknown ids are ignored.
func (s *Store) UpdateQuest(_ context.Context, q quest.Quest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quests[q.ID]; ok {
		s.quests[q.ID] = q
	}
	return nil
}

// UpdateQuestPosition moves a quest to a new sibling position.
func (s *Store) UpdateQuestPosition(_ context.Context, id string, position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q, ok := s.quests[id]; ok {
		q.Position = position
		s.quests[id] = q
	}
	return nil
}

// DeleteQuest removes a quest and its children.
func (s *Store) DeleteQuest(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for childID, q := range s.quests {
		if q.ParentID == id {
			delete(s.quests, childID)
		}
	}
	delete(s.quests, id)
	return nil
}

// ListQuests returns every stored quest in insertion order.
func (s *Store) ListQuests(_ context.Context) ([]quest.Quest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var quests []quest.Quest
	for _, id := range s.order {
		if q, ok := s.quests[id]; ok {
			quests = append(quests, q)
		}
	}
	return quests, nil
}

// DeleteAllQuests wipes the quest map.
func (s *Store) DeleteAllQuests(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quests = make(map[string]quest.Quest)
	s.order = nil
	return nil
}

// GetSettings fetches the singleton settings record.
func (s *Store) GetSettings(context.Context) (hero.Settings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings, s.hasSettings, nil
}

// PutSettings upserts the singleton settings record.
func (s *Store) PutSettings(_ context.Context, settings hero.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	s.hasSettings = true
	return nil
}

// DeleteSettings removes the singleton settings record.
func (s *Store) DeleteSettings(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = hero.Settings{}
	s.hasSettings = false
	return nil
}
