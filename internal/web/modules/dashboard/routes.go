package dashboard

import (
	"net/http"

	"github.com/Thijsn04/QuestLog/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /{$}", h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.OnboardingSubmit, h.handleOnboardingSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.SuggestGoal, h.handleSuggestGoal)
}
