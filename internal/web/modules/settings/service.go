package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/Thijsn04/QuestLog/internal/storage"
	"github.com/Thijsn04/QuestLog/internal/web/module"
	"github.com/Thijsn04/QuestLog/internal/web/platform/weberrors"
	"github.com/Thijsn04/QuestLog/internal/web/templates"
)

type service struct {
	store storage.Store
	now   func() time.Time
}

func newService(deps module.Dependencies) service {
	return service{store: deps.Store, now: deps.Clock()}
}

func (s service) settingsView(ctx context.Context) (templates.SettingsView, error) {
	settings, found, err := s.store.GetSettings(ctx)
	if err != nil {
		return templates.SettingsView{}, fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return templates.SettingsView{}, weberrors.E(weberrors.KindNotFound, "no profile yet")
	}
	return templates.SettingsView{
		HeroName:  settings.HeroName,
		ThemeName: settings.ThemeName,
		Theme:     settings.Theme(),
		Level:     settings.Level,
		XP:        settings.XP,
	}, nil
}

// updateProfile applies the submitted name and theme. Blank fields keep
// their current values.
func (s service) updateProfile(ctx context.Context, heroName, themeName string) error {
	settings, found, err := s.store.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return weberrors.E(weberrors.KindNotFound, "no profile yet")
	}
	settings.Rename(heroName, themeName)
	if err := s.store.PutSettings(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// export assembles the full backup snapshot.
func (s service) export(ctx context.Context) (storage.ExportSnapshot, error) {
	snapshot := storage.ExportSnapshot{ExportedAt: s.now().UTC()}

	settings, found, err := s.store.GetSettings(ctx)
	if err != nil {
		return storage.ExportSnapshot{}, fmt.Errorf("load settings: %w", err)
	}
	if found {
		snapshot.Settings = &settings
	}

	quests, err := s.store.ListQuests(ctx)
	if err != nil {
		return storage.ExportSnapshot{}, fmt.Errorf("list quests: %w", err)
	}
	snapshot.Quests = quests
	return snapshot, nil
}

// reset wipes every quest and the profile, returning the app to its
// first-run state.
func (s service) reset(ctx context.Context) error {
	if err := s.store.DeleteAllQuests(ctx); err != nil {
		return fmt.Errorf("delete quests: %w", err)
	}
	if err := s.store.DeleteSettings(ctx); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}
