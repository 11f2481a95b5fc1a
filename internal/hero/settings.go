// Package hero holds the single-user profile and progression state.
package hero

import (
	"strings"
	"time"

	"github.com/Thijsn04/QuestLog/internal/gamification"
)

// Defaults applied when the profile is first created during onboarding.
const (
	DefaultHeroName  = "Hero"
	DefaultThemeName = "Cyberpunk"
)

// Settings is the singleton hero record. Level is derived from XP and is
// kept in lockstep by the mutators here; the two fields are never allowed
// to desynchronize. A zero LastQuoteDate means no quote was ever cached.
type Settings struct {
	HeroName      string
	ThemeName     string
	XP            int
	Level         int
	DailyQuote    string
	LastQuoteDate time.Time
}

// NewSettings returns the default profile created during onboarding.
func NewSettings() Settings {
	return Settings{
		HeroName:  DefaultHeroName,
		ThemeName: DefaultThemeName,
		XP:        0,
		Level:     1,
	}
}

// ApplyXP applies an XP delta, clamping at zero and recomputing the level.
func (s *Settings) ApplyXP(delta int) {
	s.XP = gamification.ApplyXP(s.XP, delta)
	s.Level = gamification.Level(s.XP)
}

// Rename updates the hero name and theme, keeping current values when the
// replacement is blank.
func (s *Settings) Rename(heroName, themeName string) {
	if name := strings.TrimSpace(heroName); name != "" {
		s.HeroName = name
	}
	if theme := strings.TrimSpace(themeName); theme != "" {
		s.ThemeName = theme
	}
}

// CacheQuote stores a refreshed daily quote with its date stamp.
func (s *Settings) CacheQuote(quote string, at time.Time) {
	s.DailyQuote = quote
	s.LastQuoteDate = at.UTC()
}

// Theme returns the theme name lowercased for use as a CSS class.
func (s Settings) Theme() string {
	return strings.ToLower(strings.TrimSpace(s.ThemeName))
}
