package hero

import (
	"testing"
	"time"
)

func TestNewSettingsDefaults(t *testing.T) {
	t.Parallel()

	s := NewSettings()
	if s.HeroName != DefaultHeroName {
		t.Fatalf("hero name = %q, want %q", s.HeroName, DefaultHeroName)
	}
	if s.ThemeName != DefaultThemeName {
		t.Fatalf("theme name = %q, want %q", s.ThemeName, DefaultThemeName)
	}
	if s.XP != 0 || s.Level != 1 {
		t.Fatalf("xp/level = %d/%d, want 0/1", s.XP, s.Level)
	}
	if s.DailyQuote != "" || !s.LastQuoteDate.IsZero() {
		t.Fatal("new settings should have no cached quote")
	}
}

func TestApplyXPKeepsLevelInLockstep(t *testing.T) {
	t.Parallel()

	s := NewSettings()
	for i := 0; i < 5; i++ {
		s.ApplyXP(100)
	}
	if s.XP != 500 {
		t.Fatalf("xp = %d, want 500", s.XP)
	}
	if s.Level != 2 {
		t.Fatalf("level = %d, want 2", s.Level)
	}

	s.ApplyXP(-100)
	if s.XP != 400 || s.Level != 1 {
		t.Fatalf("xp/level = %d/%d, want 400/1", s.XP, s.Level)
	}
}

func TestApplyXPClampsAtZero(t *testing.T) {
	t.Parallel()

	s := NewSettings()
	s.ApplyXP(-100)
	if s.XP != 0 || s.Level != 1 {
		t.Fatalf("xp/level = %d/%d, want 0/1", s.XP, s.Level)
	}
}

func TestRenameIgnoresBlankValues(t *testing.T) {
	t.Parallel()

	s := NewSettings()
	s.Rename("  Aria  ", "")
	if s.HeroName != "Aria" {
		t.Fatalf("hero name = %q, want Aria", s.HeroName)
	}
	if s.ThemeName != DefaultThemeName {
		t.Fatalf("theme name = %q, want unchanged", s.ThemeName)
	}

	s.Rename("", "Fantasy")
	if s.HeroName != "Aria" || s.ThemeName != "Fantasy" {
		t.Fatalf("settings = %q/%q, want Aria/Fantasy", s.HeroName, s.ThemeName)
	}
}

func TestCacheQuoteStampsUTC(t *testing.T) {
	t.Parallel()

	s := NewSettings()
	loc := time.FixedZone("UTC+9", 9*3600)
	at := time.Date(2025, time.March, 10, 1, 0, 0, 0, loc)
	s.CacheQuote("Forward.", at)
	if s.DailyQuote != "Forward." {
		t.Fatalf("quote = %q", s.DailyQuote)
	}
	if s.LastQuoteDate.Location() != time.UTC {
		t.Fatalf("quote date location = %v, want UTC", s.LastQuoteDate.Location())
	}
}

func TestThemeLowercases(t *testing.T) {
	t.Parallel()

	s := Settings{ThemeName: " Cyberpunk "}
	if got := s.Theme(); got != "cyberpunk" {
		t.Fatalf("theme = %q, want cyberpunk", got)
	}
}
