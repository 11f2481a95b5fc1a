package dashboard

import (
	"net/http"

	"github.com/Thijsn04/QuestLog/internal/web/platform/httpx"
	"github.com/Thijsn04/QuestLog/internal/web/platform/weberrors"
	"github.com/Thijsn04/QuestLog/internal/web/routepath"
	"github.com/Thijsn04/QuestLog/internal/web/templates"
)

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, onboarded, err := h.service.dashboard(httpx.RequestContext(r))
	if err != nil {
		writeError(w, err)
		return
	}
	if !onboarded {
		if err := httpx.WriteComponent(w, r, http.StatusOK, templates.OnboardingPage()); err != nil {
			writeError(w, err)
		}
		return
	}
	if err := httpx.WriteComponent(w, r, http.StatusOK, templates.DashboardPage(view)); err != nil {
		writeError(w, err)
	}
}

func (h handlers) handleOnboardingSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, weberrors.E(weberrors.KindInvalidInput, "invalid form submission"))
		return
	}
	if err := h.service.completeOnboarding(httpx.RequestContext(r), r.PostFormValue("goal"), r.PostFormValue("deadline")); err != nil {
		writeError(w, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) handleSuggestGoal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, weberrors.E(weberrors.KindInvalidInput, "invalid form submission"))
		return
	}
	title := h.service.suggestGoal(httpx.RequestContext(r), r.PostFormValue("goal"))
	if err := httpx.WriteComponent(w, r, http.StatusOK, templates.GoalSuggestionInput(title)); err != nil {
		writeError(w, err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), weberrors.HTTPStatus(err))
}
