// Package gamification holds the pure reward arithmetic for quest
// completion. Functions here have no side effects; persistence of the
// resulting state is the caller's responsibility.
package gamification

// CompletionXP is the fixed reward for completing a quest.
const CompletionXP = 100

// LevelStep is the XP span of a single level.
const LevelStep = 500

// ToggleCompletion flips a completion flag and reports the XP delta the
// transition is worth. Completing awards CompletionXP, un-completing revokes
// it. Two consecutive toggles always restore the original XP exactly.
func ToggleCompletion(completed bool) (bool, int) {
	if completed {
		return false, -CompletionXP
	}
	return true, CompletionXP
}

// ApplyXP adds delta to xp, clamped so XP never goes below zero.
func ApplyXP(xp, delta int) int {
	next := xp + delta
	if next < 0 {
		return 0
	}
	return next
}

// Level derives the level for an XP total. Progression is open-ended.
func Level(xp int) int {
	return 1 + xp/LevelStep
}

// XPPercent reports how far the XP total has advanced into the current
// level, as a percentage of LevelStep.
func XPPercent(xp int) float64 {
	return float64(xp%LevelStep) / LevelStep * 100
}

// Progress reports parent completion as a whole percentage, rounded down.
// A parent with no children has zero progress.
func Progress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return 100 * completed / total
}
