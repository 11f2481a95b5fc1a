// Package ai defines the external AI collaborator boundary.
//
// The collaborator supplies goal titles, sub-quest breakdowns, motivational
// quotes, and vision image URLs. Every capability has a deterministic
// fallback so the application degrades gracefully when the provider is
// unreachable; no AI failure is ever surfaced as a fatal error.
package ai

import "context"

// Suggestion is one AI-proposed sub-quest. Duration is free text such as
// "2 weeks" that callers parse heuristically into a deadline.
type Suggestion struct {
	Title    string
	Duration string
	Category string
}

// Collaborator is the capability contract for the external AI provider.
type Collaborator interface {
	// SuggestGoal returns a punchy vision title for a goal. The hint may be
	// empty, in which case the collaborator picks a concrete goal itself.
	SuggestGoal(ctx context.Context, hint string) (string, error)
	// BreakdownQuest returns an ordered list of sub-quest suggestions for a
	// main quest title.
	BreakdownQuest(ctx context.Context, title string) ([]Suggestion, error)
	// MotivationalQuote returns a short quote tailored to the goal.
	MotivationalQuote(ctx context.Context, title string) (string, error)
	// VisionImageURL synthesizes an image URL for the goal. No network call
	// is involved, so it cannot fail.
	VisionImageURL(title string) string
}
