package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// layout wraps page content in the document shell. The theme selects a
// body class that the stylesheet keys its palette off.
func layout(title, theme string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>`+
			`<html lang="en"><head>`+
			`<meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>%s</title>`+
			`<link rel="stylesheet" href="/static/styles.css">`+
			`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`+
			`<script src="https://cdn.jsdelivr.net/npm/sortablejs@1.15.2/Sortable.min.js"></script>`+
			`<script src="/static/app.js" defer></script>`+
			`</head><body class="theme-%s">`,
			templ.EscapeString(title), templ.EscapeString(strings.ToLower(theme))); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<div id="toast-container"></div></body></html>`)
		return err
	})
}

// OnboardingPage renders the first-run form that captures the Main Quest.
func OnboardingPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="onboarding">`+
			`<h1>Begin Your Quest</h1>`+
			`<p>Every saga starts with a single goal. Name yours.</p>`+
			`<form hx-post="/api/onboarding/submit" hx-swap="none">`+
			`<label for="goal">Main Quest</label>`+
			`<div class="goal-row">`); err != nil {
			return err
		}
		if err := GoalSuggestionInput("").Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button type="button" class="suggest-btn" hx-post="/api/ai/suggest-goal" hx-include="#goal" hx-target="#goal" hx-swap="outerHTML">Suggest</button>`+
			`</div>`+
			`<label for="deadline">Deadline (optional)</label>`+
			`<input type="date" id="deadline" name="deadline">`+
			`<button type="submit" class="primary-btn">Embark</button>`+
			`</form>`+
			`</main>`)
		return err
	})
	return layout("QuestLog - Onboarding", "cyberpunk", body)
}

// DashboardPage renders the Main Quest, its sub-quests, and the hero bar.
func DashboardPage(view DashboardView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<header class="hero-header">`+
			`<div class="hero-identity"><h2>%s</h2><a href="/settings" class="settings-link" aria-label="Settings">&#9881;</a></div>`,
			templ.EscapeString(view.HeroName)); err != nil {
			return err
		}
		if err := HeroStats(view.Stats, false).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `</header>`+
			`<main class="dashboard">`+
			`<section class="card main-quest-card">`+
			`<img class="vision-image" src="%s" alt="Vision of %s">`+
			`<div class="main-quest-info">`+
			`<span class="quest-category">Main Quest</span>`+
			`<h1>%s</h1>`+
			`<p class="main-quest-date">%s</p>`,
			templ.EscapeString(view.MainImage),
			templ.EscapeString(view.MainTitle),
			templ.EscapeString(view.MainTitle),
			templ.EscapeString(view.MainDate)); err != nil {
			return err
		}
		if err := ProgressRing(view.Progress, false).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `</div></section>`+
			`<blockquote class="daily-quote">%s</blockquote>`+
			`<section class="sub-quests">`+
			`<div class="sub-quests-header"><h3>Sub-Quests</h3>`+
			`<button class="architect-btn" hx-post="/api/ai/architect" hx-target="#quest-list" hx-swap="beforeend">Consult the Architect</button>`+
			`</div>`+
			`<div id="quest-list" class="quest-list">`,
			templ.EscapeString(view.DailyQuote)); err != nil {
			return err
		}
		for _, child := range view.Children {
			if err := QuestCard(child).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`+
			`<form class="add-quest-form" hx-post="/api/quest/add" hx-target="#quest-list" hx-swap="beforeend" hx-on::after-request="this.reset()">`+
			`<input type="text" name="title" placeholder="New sub-quest" required>`+
			`<button type="submit">Add</button>`+
			`</form>`+
			`</section>`+
			`</main>`)
		return err
	})
	return layout("QuestLog", view.Theme, body)
}

// SettingsPlaceholderPage renders the pre-onboarding settings stand-in.
func SettingsPlaceholderPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="settings"><h1>Settings</h1>`); err != nil {
			return err
		}
		if err := Notice("Begin your quest first. Settings unlock after onboarding.").Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<a href="/" class="back-link">Go to onboarding</a></main>`)
		return err
	})
	return layout("QuestLog - Settings", "cyberpunk", body)
}

// SettingsPage renders the profile form, data export, and reset controls.
func SettingsPage(view SettingsView) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		selected := func(theme string) string {
			if theme == view.ThemeName {
				return " selected"
			}
			return ""
		}
		_, err := fmt.Fprintf(w, `<main class="settings">`+
			`<a href="/" class="back-link">&larr; Back</a>`+
			`<h1>Settings</h1>`+
			`<p class="settings-stats">LVL %d &middot; %d XP</p>`+
			`<form hx-post="/api/settings/update" hx-swap="none">`+
			`<label for="hero_name">Hero Name</label>`+
			`<input type="text" id="hero_name" name="hero_name" value="%s">`+
			`<label for="theme_name">Theme</label>`+
			`<select id="theme_name" name="theme_name">`+
			`<option value="Cyberpunk"%s>Cyberpunk</option>`+
			`<option value="Fantasy"%s>Fantasy</option>`+
			`<option value="Minimal"%s>Minimal</option>`+
			`</select>`+
			`<button type="submit" class="primary-btn">Save</button>`+
			`</form>`+
			`<section class="danger-zone">`+
			`<a href="/api/settings/export" class="export-link">Export backup</a>`+
			`<button class="reset-btn" hx-post="/api/settings/reset" hx-confirm="Erase all progress and start over?">Reset everything</button>`+
			`</section>`+
			`</main>`,
			view.Level, view.XP,
			templ.EscapeString(view.HeroName),
			selected("Cyberpunk"), selected("Fantasy"), selected("Minimal"))
		return err
	})
	return layout("QuestLog - Settings", view.Theme, body)
}
