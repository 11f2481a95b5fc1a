package ai

import "context"

// Deterministic values returned when no provider is configured or a call
// fails. Tests rely on these without network access.
const (
	// FallbackGoalTitle is the suggested title when suggestion is unavailable.
	FallbackGoalTitle = "Project Hercules: Become Fit (AI Unavailable)"
	// FallbackQuote is the motivational quote when no provider is configured.
	FallbackQuote = "Keep moving forward. Your vision awaits."
	// FallbackQuoteOnError is the quote cached when a provider call fails.
	FallbackQuoteOnError = "The journey of a thousand miles begins with a single step."
)

// Fallback is the offline collaborator. It satisfies every capability with
// a fixed value and is used whenever no provider API key is configured.
type Fallback struct{}

var _ Collaborator = Fallback{}

// SuggestGoal returns the fixed unavailable-goal title.
func (Fallback) SuggestGoal(context.Context, string) (string, error) {
	return FallbackGoalTitle, nil
}

// BreakdownQuest returns no suggestions; the architect flow renders its
// unavailable notice for an empty breakdown.
func (Fallback) BreakdownQuest(context.Context, string) ([]Suggestion, error) {
	return nil, nil
}

// MotivationalQuote returns the fixed fallback quote.
func (Fallback) MotivationalQuote(context.Context, string) (string, error) {
	return FallbackQuote, nil
}

// VisionImageURL synthesizes the image URL; this works without a provider.
func (Fallback) VisionImageURL(title string) string {
	return VisionImageURL(title)
}
