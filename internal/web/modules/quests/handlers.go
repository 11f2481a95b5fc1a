package quests

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Thijsn04/QuestLog/internal/web/platform/httpx"
	"github.com/Thijsn04/QuestLog/internal/web/platform/weberrors"
	"github.com/Thijsn04/QuestLog/internal/web/templates"
	"github.com/a-h/templ"
)

// questTokenPrefix is how SortableJS serializes card element ids in the
// reorder form payload.
const questTokenPrefix = "quest-"

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, weberrors.E(weberrors.KindInvalidInput, "invalid form submission"))
		return
	}
	q, err := h.service.addQuest(httpx.RequestContext(r), r.PostFormValue("title"), r.PostFormValue("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeFragment(w, r, templates.QuestCard(templates.NewQuestCardView(q, h.service.now())))
}

func (h handlers) handleToggle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.toggleQuest(httpx.RequestContext(r), r.PathValue("questID"))
	if err != nil {
		h.writeMutationError(w, err)
		return
	}

	fragments := []templ.Component{
		templates.QuestCard(templates.NewQuestCardView(result.Quest, h.service.now())),
		templates.HeroStats(templates.NewHeroStatsView(result.Settings), true),
	}
	if result.Quest.ParentID != "" {
		fragments = append(fragments, templates.ProgressRing(result.Progress, true))
	}
	if result.XPDelta > 0 {
		fragments = append(fragments, templates.XPToast(result.XPDelta))
	}
	h.writeFragment(w, r, templates.Join(fragments...))
}

func (h handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.getQuest(httpx.RequestContext(r), r.PathValue("questID"))
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeFragment(w, r, templates.QuestEditForm(templates.NewQuestCardView(q, h.service.now())))
}

func (h handlers) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.getQuest(httpx.RequestContext(r), r.PathValue("questID"))
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeFragment(w, r, templates.QuestCard(templates.NewQuestCardView(q, h.service.now())))
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, weberrors.E(weberrors.KindInvalidInput, "invalid form submission"))
		return
	}
	q, err := h.service.updateQuest(httpx.RequestContext(r), r.PathValue("questID"), r.PostFormValue("title"), r.PostFormValue("deadline"))
	if err != nil {
		h.writeMutationError(w, err)
		return
	}
	h.writeFragment(w, r, templates.QuestCard(templates.NewQuestCardView(q, h.service.now())))
}

// handleDelete responds with an empty swap target so the card disappears,
// plus the parent's refreshed progress ring out-of-band.
func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	progress, hadParent, err := h.service.deleteQuest(httpx.RequestContext(r), r.PathValue("questID"))
	if err != nil {
		h.writeMutationError(w, err)
		return
	}
	if !hadParent {
		if err := httpx.WriteHTML(w, http.StatusOK, ""); err != nil {
			writeError(w, err)
		}
		return
	}
	h.writeFragment(w, r, templates.ProgressRing(progress, true))
}

func (h handlers) handleReorder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, weberrors.E(weberrors.KindInvalidInput, "invalid form submission"))
		return
	}
	questIDs := make([]string, 0, len(r.PostForm["quest"]))
	for _, token := range r.PostForm["quest"] {
		questIDs = append(questIDs, strings.TrimPrefix(token, questTokenPrefix))
	}
	if err := h.service.reorder(httpx.RequestContext(r), questIDs); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleArchitect appends the generated sub-quest cards to the list, or an
// inline notice when the breakdown cannot run.
func (h handlers) handleArchitect(w http.ResponseWriter, r *http.Request) {
	created, err := h.service.architect(httpx.RequestContext(r))
	if err != nil {
		var appErr weberrors.Error
		if errors.As(err, &appErr) {
			switch appErr.Kind {
			case weberrors.KindNotFound:
				h.writeFragment(w, r, templates.Notice("Error: No Main Quest found."))
				return
			case weberrors.KindUnavailable:
				h.writeFragment(w, r, templates.Notice("The Architect is unavailable right now. Try again later."))
				return
			}
		}
		writeError(w, err)
		return
	}

	now := h.service.now()
	fragments := make([]templ.Component, 0, len(created))
	for _, q := range created {
		fragments = append(fragments, templates.QuestCard(templates.NewQuestCardView(q, now)))
	}
	h.writeFragment(w, r, templates.Join(fragments...))
}

func (h handlers) writeFragment(w http.ResponseWriter, r *http.Request, component templ.Component) {
	if err := httpx.WriteComponent(w, r, http.StatusOK, component); err != nil {
		writeError(w, err)
	}
}

// writeMutationError treats a mutation on a quest that no longer exists as
// a no-op: the card already vanished client-side, so an empty 200 keeps the
// swap clean instead of surfacing an error the user cannot act on.
func (h handlers) writeMutationError(w http.ResponseWriter, err error) {
	var appErr weberrors.Error
	if errors.As(err, &appErr) && appErr.Kind == weberrors.KindNotFound {
		_ = httpx.WriteHTML(w, http.StatusOK, "")
		return
	}
	writeError(w, err)
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), weberrors.HTTPStatus(err))
}
