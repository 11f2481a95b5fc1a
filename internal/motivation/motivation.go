// Package motivation decides when the cached daily quote is refreshed.
package motivation

import (
	"context"
	"time"

	"github.com/Thijsn04/QuestLog/internal/ai"
	"github.com/Thijsn04/QuestLog/internal/hero"
)

// QuoteSource supplies motivational quotes. The AI collaborator satisfies it.
type QuoteSource interface {
	MotivationalQuote(ctx context.Context, title string) (string, error)
}

// Refresher applies the once-per-calendar-day quote refresh policy. The
// date comparison is the sole quota control for the quote capability: a
// cache hit never reaches the source.
type Refresher struct {
	Source QuoteSource
}

// DailyQuote returns the quote for today and whether settings changed.
//
// When the cached quote's UTC calendar date matches now, the cached quote is
// returned untouched and no source call is made. Otherwise a fresh quote is
// requested, cached with a new date stamp, and changed=true tells the caller
// to persist the updated settings. A source failure caches a fallback quote
// so the source is not retried until the next day.
func (r Refresher) DailyQuote(ctx context.Context, settings hero.Settings, mainQuestTitle string, now time.Time) (hero.Settings, bool) {
	if !settings.LastQuoteDate.IsZero() && sameCalendarDay(settings.LastQuoteDate, now) {
		return settings, false
	}

	quote, err := r.Source.MotivationalQuote(ctx, mainQuestTitle)
	if err != nil {
		quote = ai.FallbackQuoteOnError
	}
	settings.CacheQuote(quote, now)
	return settings, true
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
