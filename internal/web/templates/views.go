// Package templates renders the HTML pages and fragments for the web UI.
//
// Fragments are the unit of update: every mutating handler responds with
// exactly the components whose underlying state changed, plus out-of-band
// swaps for secondary regions like the progress ring and hero stats bar.
package templates

import (
	"time"

	"github.com/Thijsn04/QuestLog/internal/gamification"
	"github.com/Thijsn04/QuestLog/internal/hero"
	"github.com/Thijsn04/QuestLog/internal/quest"
)

// displayDateLayout renders deadlines in the card meta line.
const displayDateLayout = "Jan 02, 2006"

// QuestCardView holds formatted quest data for card and edit fragments.
type QuestCardView struct {
	// ID is the quest identifier used in element ids and routes.
	ID string
	// Title is the quest display title.
	Title string
	// Category is the quest label shown in the card header.
	Category string
	// Completed toggles the checked state and completed styling.
	Completed bool
	// Overdue marks an incomplete quest whose deadline has passed.
	Overdue bool
	// DateDisplay is the formatted deadline, or the description when no
	// deadline is set, or "No deadline".
	DateDisplay string
	// DeadlineValue is the deadline formatted for a date input.
	DeadlineValue string
}

// NewQuestCardView formats a quest for rendering. The overdue flag is
// derived at render time, never stored.
func NewQuestCardView(q quest.Quest, now time.Time) QuestCardView {
	view := QuestCardView{
		ID:            q.ID,
		Title:         q.Title,
		Category:      q.Category,
		Completed:     q.Completed,
		Overdue:       q.Overdue(now),
		DeadlineValue: quest.FormatDeadline(q.Deadline),
	}
	switch {
	case !q.Deadline.IsZero():
		view.DateDisplay = q.Deadline.Format(displayDateLayout)
	case q.Description != "":
		view.DateDisplay = q.Description
	default:
		view.DateDisplay = "No deadline"
	}
	return view
}

// HeroStatsView holds the level and XP bar state.
type HeroStatsView struct {
	Level     int
	XP        int
	XPPercent float64
}

// NewHeroStatsView derives the XP bar state from settings.
func NewHeroStatsView(s hero.Settings) HeroStatsView {
	return HeroStatsView{
		Level:     s.Level,
		XP:        s.XP,
		XPPercent: gamification.XPPercent(s.XP),
	}
}

// DashboardView holds everything the dashboard page renders.
type DashboardView struct {
	HeroName   string
	Theme      string
	DailyQuote string
	MainTitle  string
	MainImage  string
	MainDate   string
	Progress   int
	Stats      HeroStatsView
	Children   []QuestCardView
}

// SettingsView holds the settings page state.
type SettingsView struct {
	HeroName  string
	ThemeName string
	Theme     string
	Level     int
	XP        int
}
