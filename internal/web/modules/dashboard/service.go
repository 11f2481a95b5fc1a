package dashboard

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Thijsn04/QuestLog/internal/ai"
	"github.com/Thijsn04/QuestLog/internal/gamification"
	"github.com/Thijsn04/QuestLog/internal/hero"
	"github.com/Thijsn04/QuestLog/internal/motivation"
	"github.com/Thijsn04/QuestLog/internal/platform/id"
	"github.com/Thijsn04/QuestLog/internal/platform/timeouts"
	"github.com/Thijsn04/QuestLog/internal/quest"
	"github.com/Thijsn04/QuestLog/internal/storage"
	"github.com/Thijsn04/QuestLog/internal/web/module"
	"github.com/Thijsn04/QuestLog/internal/web/platform/weberrors"
	"github.com/Thijsn04/QuestLog/internal/web/templates"
)

type service struct {
	store     storage.Store
	ai        ai.Collaborator
	now       func() time.Time
	refresher motivation.Refresher
}

func newService(deps module.Dependencies) service {
	return service{
		store:     deps.Store,
		ai:        deps.AI,
		now:       deps.Clock(),
		refresher: motivation.Refresher{Source: deps.AI},
	}
}

// dashboard assembles the landing page view. onboarded is false until both
// the settings record and the Main Quest exist.
func (s service) dashboard(ctx context.Context) (templates.DashboardView, bool, error) {
	settings, haveSettings, err := s.store.GetSettings(ctx)
	if err != nil {
		return templates.DashboardView{}, false, fmt.Errorf("load settings: %w", err)
	}
	main, haveMain, err := s.store.MainQuest(ctx)
	if err != nil {
		return templates.DashboardView{}, false, fmt.Errorf("load main quest: %w", err)
	}
	if !haveSettings || !haveMain {
		return templates.DashboardView{}, false, nil
	}

	now := s.now()
	quoteCtx, cancel := context.WithTimeout(ctx, timeouts.AIRequest)
	settings, changed := s.refresher.DailyQuote(quoteCtx, settings, main.Title, now)
	cancel()
	if changed {
		if err := s.store.PutSettings(ctx, settings); err != nil {
			return templates.DashboardView{}, false, fmt.Errorf("cache daily quote: %w", err)
		}
	}

	// older records may predate vision images; backfill is best-effort
	if main.ImageURL == "" {
		main.ImageURL = s.ai.VisionImageURL(main.Title)
		if err := s.store.UpdateQuest(ctx, main); err != nil {
			log.Printf("backfill vision image for quest %s: %v", main.ID, err)
		}
	}

	children, err := s.store.ChildQuests(ctx, main.ID)
	if err != nil {
		return templates.DashboardView{}, false, fmt.Errorf("load sub-quests: %w", err)
	}
	total, completed, err := s.store.ChildProgress(ctx, main.ID)
	if err != nil {
		return templates.DashboardView{}, false, fmt.Errorf("load quest progress: %w", err)
	}

	view := templates.DashboardView{
		HeroName:   settings.HeroName,
		Theme:      settings.Theme(),
		DailyQuote: settings.DailyQuote,
		MainTitle:  main.Title,
		MainImage:  main.ImageURL,
		MainDate:   "No deadline",
		Progress:   gamification.Progress(completed, total),
		Stats:      templates.NewHeroStatsView(settings),
		Children:   make([]templates.QuestCardView, 0, len(children)),
	}
	if !main.Deadline.IsZero() {
		view.MainDate = main.Deadline.Format("Jan 02, 2006")
	}
	for _, child := range children {
		view.Children = append(view.Children, templates.NewQuestCardView(child, now))
	}
	return view, true, nil
}

// completeOnboarding creates the default profile and the Main Quest. A
// resubmission after the Main Quest exists is a no-op so a double submit
// converges instead of spawning a second root.
func (s service) completeOnboarding(ctx context.Context, goal, deadline string) error {
	title := strings.TrimSpace(goal)
	if title == "" {
		return weberrors.E(weberrors.KindInvalidInput, "a goal is required")
	}

	if _, haveMain, err := s.store.MainQuest(ctx); err != nil {
		return fmt.Errorf("check main quest: %w", err)
	} else if haveMain {
		return nil
	}

	if _, haveSettings, err := s.store.GetSettings(ctx); err != nil {
		return fmt.Errorf("check settings: %w", err)
	} else if !haveSettings {
		if err := s.store.PutSettings(ctx, hero.NewSettings()); err != nil {
			return fmt.Errorf("create settings: %w", err)
		}
	}

	due, _ := quest.ParseDeadline(deadline)
	main, err := quest.New(quest.CreateInput{
		Title:    title,
		Category: quest.CategoryMain,
		Deadline: due,
		ImageURL: s.ai.VisionImageURL(title),
	}, s.now, id.NewID)
	if err != nil {
		return fmt.Errorf("build main quest: %w", err)
	}
	if _, err := s.store.CreateQuest(ctx, main); err != nil {
		return fmt.Errorf("create main quest: %w", err)
	}
	return nil
}

// suggestGoal asks the collaborator for a vision title, degrading to the
// canned fallback when the provider is unreachable.
func (s service) suggestGoal(ctx context.Context, hint string) string {
	ctx, cancel := context.WithTimeout(ctx, timeouts.AIRequest)
	defer cancel()
	title, err := s.ai.SuggestGoal(ctx, strings.TrimSpace(hint))
	if err != nil || strings.TrimSpace(title) == "" {
		return ai.FallbackGoalTitle
	}
	return strings.TrimSpace(title)
}
