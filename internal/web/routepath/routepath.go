// Package routepath centralizes web route patterns and link targets.
package routepath

// Page routes.
const (
	Root     = "/"
	Settings = "/settings"
	Health   = "/up"
)

// Fragment API routes. Quest item routes take a {questID} path value.
const (
	OnboardingSubmit = "/api/onboarding/submit"
	SuggestGoal      = "/api/ai/suggest-goal"
	Architect        = "/api/ai/architect"

	QuestAdd     = "/api/quest/add"
	QuestReorder = "/api/quest/reorder"
	QuestItem    = "/api/quest/{questID}"
	QuestToggle  = "/api/quest/{questID}/toggle"
	QuestEdit    = "/api/quest/{questID}/edit"
	QuestCancel  = "/api/quest/{questID}/cancel"

	SettingsUpdate = "/api/settings/update"
	SettingsReset  = "/api/settings/reset"
	SettingsExport = "/api/settings/export"
)
