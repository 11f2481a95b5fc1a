package quests

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Thijsn04/QuestLog/internal/ai"
	"github.com/Thijsn04/QuestLog/internal/gamification"
	"github.com/Thijsn04/QuestLog/internal/hero"
	"github.com/Thijsn04/QuestLog/internal/platform/id"
	"github.com/Thijsn04/QuestLog/internal/platform/timeouts"
	"github.com/Thijsn04/QuestLog/internal/quest"
	"github.com/Thijsn04/QuestLog/internal/storage"
	"github.com/Thijsn04/QuestLog/internal/web/module"
	"github.com/Thijsn04/QuestLog/internal/web/platform/weberrors"
)

// manualDescription marks sub-quests typed in by hand, as opposed to ones
// proposed by the architect which carry their duration text instead.
const manualDescription = "Manual Entry"

type service struct {
	store storage.Store
	ai    ai.Collaborator
	now   func() time.Time
}

func newService(deps module.Dependencies) service {
	return service{store: deps.Store, ai: deps.AI, now: deps.Clock()}
}

// toggleResult carries everything the toggle response fragments render.
type toggleResult struct {
	Quest    quest.Quest
	Progress int
	Settings hero.Settings
	XPDelta  int
}

func (s service) addQuest(ctx context.Context, title, category string) (quest.Quest, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return quest.Quest{}, weberrors.E(weberrors.KindInvalidInput, "a title is required")
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = quest.CategoryGeneral
	}
	main, found, err := s.store.MainQuest(ctx)
	if err != nil {
		return quest.Quest{}, fmt.Errorf("load main quest: %w", err)
	}
	if !found {
		return quest.Quest{}, weberrors.E(weberrors.KindNotFound, "no main quest found")
	}
	q, err := quest.New(quest.CreateInput{
		Title:       title,
		Description: manualDescription,
		Category:    category,
		ParentID:    main.ID,
	}, s.now, id.NewID)
	if err != nil {
		return quest.Quest{}, fmt.Errorf("build sub-quest: %w", err)
	}
	created, err := s.store.CreateQuest(ctx, q)
	if err != nil {
		return quest.Quest{}, fmt.Errorf("create sub-quest: %w", err)
	}
	return created, nil
}

// toggleQuest flips completion, applies the XP delta to the profile, and
// recomputes the parent's progress. The same toggle undone always returns
// the XP it granted.
func (s service) toggleQuest(ctx context.Context, questID string) (toggleResult, error) {
	q, found, err := s.store.GetQuest(ctx, questID)
	if err != nil {
		return toggleResult{}, fmt.Errorf("load quest: %w", err)
	}
	if !found {
		return toggleResult{}, weberrors.E(weberrors.KindNotFound, "quest not found")
	}

	completed, delta := gamification.ToggleCompletion(q.Completed)
	q.Completed = completed
	if err := s.store.UpdateQuest(ctx, q); err != nil {
		return toggleResult{}, fmt.Errorf("update quest: %w", err)
	}

	settings, found, err := s.store.GetSettings(ctx)
	if err != nil {
		return toggleResult{}, fmt.Errorf("load settings: %w", err)
	}
	if !found {
		settings = hero.NewSettings()
	}
	settings.ApplyXP(delta)
	if err := s.store.PutSettings(ctx, settings); err != nil {
		return toggleResult{}, fmt.Errorf("save settings: %w", err)
	}

	result := toggleResult{Quest: q, Settings: settings, XPDelta: delta}
	if q.ParentID != "" {
		total, done, err := s.store.ChildProgress(ctx, q.ParentID)
		if err != nil {
			return toggleResult{}, fmt.Errorf("load quest progress: %w", err)
		}
		result.Progress = gamification.Progress(done, total)
	}
	return result, nil
}

func (s service) getQuest(ctx context.Context, questID string) (quest.Quest, error) {
	q, found, err := s.store.GetQuest(ctx, questID)
	if err != nil {
		return quest.Quest{}, fmt.Errorf("load quest: %w", err)
	}
	if !found {
		return quest.Quest{}, weberrors.E(weberrors.KindNotFound, "quest not found")
	}
	return q, nil
}

// updateQuest rewrites the title and deadline. An unparseable or empty
// deadline clears it rather than failing the edit.
func (s service) updateQuest(ctx context.Context, questID, title, deadline string) (quest.Quest, error) {
	q, err := s.getQuest(ctx, questID)
	if err != nil {
		return quest.Quest{}, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return quest.Quest{}, weberrors.E(weberrors.KindInvalidInput, "a title is required")
	}
	q.Title = title
	q.Deadline, _ = quest.ParseDeadline(deadline)
	if err := s.store.UpdateQuest(ctx, q); err != nil {
		return quest.Quest{}, fmt.Errorf("update quest: %w", err)
	}
	return q, nil
}

// deleteQuest removes a quest and its children, then reports the parent's
// recomputed progress. Deleting grants no XP back.
func (s service) deleteQuest(ctx context.Context, questID string) (int, bool, error) {
	q, found, err := s.store.GetQuest(ctx, questID)
	if err != nil {
		return 0, false, fmt.Errorf("load quest: %w", err)
	}
	if !found {
		return 0, false, weberrors.E(weberrors.KindNotFound, "quest not found")
	}
	if err := s.store.DeleteQuest(ctx, questID); err != nil {
		return 0, false, fmt.Errorf("delete quest: %w", err)
	}
	if q.ParentID == "" {
		return 0, false, nil
	}
	total, done, err := s.store.ChildProgress(ctx, q.ParentID)
	if err != nil {
		return 0, false, fmt.Errorf("load quest progress: %w", err)
	}
	return gamification.Progress(done, total), true, nil
}

// reorder rewrites sibling positions to match the submitted order. Stores
// ignore ids that vanished mid-drag, so a stale reorder still applies.
func (s service) reorder(ctx context.Context, questIDs []string) error {
	for position, questID := range questIDs {
		questID = strings.TrimSpace(questID)
		if questID == "" {
			continue
		}
		if err := s.store.UpdateQuestPosition(ctx, questID, position); err != nil {
			return fmt.Errorf("move quest %s: %w", questID, err)
		}
	}
	return nil
}

// architect asks the collaborator to break the Main Quest into sub-quests
// and persists each suggestion with a deadline derived from its duration
// text.
func (s service) architect(ctx context.Context) ([]quest.Quest, error) {
	main, found, err := s.store.MainQuest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load main quest: %w", err)
	}
	if !found {
		return nil, weberrors.E(weberrors.KindNotFound, "no main quest found")
	}

	aiCtx, cancel := context.WithTimeout(ctx, timeouts.AIRequest)
	suggestions, err := s.ai.BreakdownQuest(aiCtx, main.Title)
	cancel()
	if err != nil || len(suggestions) == 0 {
		return nil, weberrors.E(weberrors.KindUnavailable, "the architect is unavailable")
	}

	now := s.now()
	created := make([]quest.Quest, 0, len(suggestions))
	for _, suggestion := range suggestions {
		title := strings.TrimSpace(suggestion.Title)
		if title == "" {
			continue
		}
		input := quest.CreateInput{
			Title:    title,
			Category: strings.TrimSpace(suggestion.Category),
			ParentID: main.ID,
		}
		if input.Category == "" {
			input.Category = quest.CategoryGeneral
		}
		if duration := strings.TrimSpace(suggestion.Duration); duration != "" {
			input.Description = "Duration: " + duration
			if deadline, ok := quest.DurationDeadline(now, duration); ok {
				input.Deadline = deadline
			}
		}
		q, err := quest.New(input, s.now, id.NewID)
		if err != nil {
			return nil, fmt.Errorf("build sub-quest: %w", err)
		}
		stored, err := s.store.CreateQuest(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("create sub-quest: %w", err)
		}
		created = append(created, stored)
	}
	return created, nil
}
