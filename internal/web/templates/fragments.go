package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Join renders components in sequence as a single component. Handlers use
// it to bundle a primary fragment with its out-of-band companions.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// QuestCard renders a sub-quest card. The card replaces itself on toggle,
// edit, and delete via its stable element id.
func QuestCard(view QuestCardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes := "card sub-quest-card"
		if view.Completed {
			classes += " completed"
		}
		if view.Overdue {
			classes += " overdue"
		}
		checked := ""
		if view.Completed {
			checked = " checked"
		}
		marker := ""
		if view.Overdue {
			marker = "&#128293; "
		}
		id := templ.EscapeString(view.ID)
		_, err := fmt.Fprintf(w, `<div class="%s" id="quest-%s">`+
			`<div class="quest-header">`+
			`<span class="quest-category">%s</span>`+
			`<button class="delete-btn" hx-delete="/api/quest/%s" hx-target="#quest-%s" hx-swap="outerHTML" aria-label="Delete quest">&times;</button>`+
			`</div>`+
			`<div class="quest-body">`+
			`<input type="checkbox" class="quest-checkbox"%s hx-post="/api/quest/%s/toggle" hx-target="#quest-%s" hx-swap="outerHTML">`+
			`<h4 hx-get="/api/quest/%s/edit" hx-trigger="click" hx-target="#quest-%s" hx-swap="outerHTML" title="Click to edit">%s</h4>`+
			`</div>`+
			`<div class="quest-meta"><span>%s&#128197; %s</span></div>`+
			`</div>`,
			classes, id,
			templ.EscapeString(view.Category),
			id, id,
			checked, id, id,
			id, id, templ.EscapeString(view.Title),
			marker,
			templ.EscapeString(view.DateDisplay),
		)
		return err
	})
}

// QuestEditForm renders the inline edit form that replaces a quest card.
func QuestEditForm(view QuestCardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(view.ID)
		_, err := fmt.Fprintf(w, `<div class="card sub-quest-card editing" id="quest-%s">`+
			`<form hx-put="/api/quest/%s" hx-target="#quest-%s" hx-swap="outerHTML">`+
			`<input type="text" name="title" value="%s" required>`+
			`<input type="date" name="deadline" value="%s">`+
			`<div class="edit-actions">`+
			`<button type="submit">Save</button>`+
			`<button type="button" hx-get="/api/quest/%s/cancel" hx-target="#quest-%s" hx-swap="outerHTML">Cancel</button>`+
			`</div>`+
			`</form>`+
			`</div>`,
			id, id, id,
			templ.EscapeString(view.Title),
			templ.EscapeString(view.DeadlineValue),
			id, id,
		)
		return err
	})
}

// ProgressRing renders the Main Quest completion percentage. With oob set
// the fragment swaps out-of-band into the existing ring.
func ProgressRing(percent int, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		attr := ""
		if oob {
			attr = ` hx-swap-oob="true"`
		}
		_, err := fmt.Fprintf(w, `<div id="progress-ring" class="progress-ring"%s style="--progress: %d;"><span class="progress-value">%d%%</span></div>`,
			attr, percent, percent)
		return err
	})
}

// HeroStats renders the level badge and XP bar. With oob set the fragment
// swaps out-of-band into the header.
func HeroStats(view HeroStatsView, oob bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		attr := ""
		if oob {
			attr = ` hx-swap-oob="true"`
		}
		_, err := fmt.Fprintf(w, `<div id="hero-stats" class="hero-stats"%s>`+
			`<div class="hero-stats-row"><span class="hero-level">LVL %d</span><span class="hero-xp">%d XP</span></div>`+
			`<div class="xp-bar-bg"><div class="xp-bar-fill" style="width: %s%%;"></div></div>`+
			`</div>`,
			attr, view.Level, view.XP,
			strconv.FormatFloat(view.XPPercent, 'f', -1, 64))
		return err
	})
}

// XPToast renders a script fragment that pops the XP gain toast.
func XPToast(amount int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<script>showToast('Gained %d XP!');</script>`, amount)
		return err
	})
}

// GoalSuggestionInput renders the onboarding goal input prefilled with a
// suggestion. It replaces the existing input in place.
func GoalSuggestionInput(value string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<input type="text" id="goal" name="goal" value="%s" placeholder="e.g. Run a marathon" required>`,
			templ.EscapeString(value))
		return err
	})
}

// Notice renders a short inline status message.
func Notice(text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="notice">%s</p>`, templ.EscapeString(text))
		return err
	})
}
