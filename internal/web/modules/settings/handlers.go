package settings

import (
	"net/http"

	"github.com/Thijsn04/QuestLog/internal/web/platform/httpx"
	"github.com/Thijsn04/QuestLog/internal/web/platform/weberrors"
	"github.com/Thijsn04/QuestLog/internal/web/routepath"
	"github.com/Thijsn04/QuestLog/internal/web/templates"
)

// exportFilename is the attachment name for backup downloads.
const exportFilename = "questlog_backup.json"

type handlers struct {
	service service
}

func newHandlers(s service) handlers {
	return handlers{service: s}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.settingsView(httpx.RequestContext(r))
	if err != nil {
		if weberrors.HTTPStatus(err) == http.StatusNotFound {
			// no profile yet, point the visitor at onboarding
			if err := httpx.WriteComponent(w, r, http.StatusOK, templates.SettingsPlaceholderPage()); err != nil {
				writeError(w, err)
			}
			return
		}
		writeError(w, err)
		return
	}
	if err := httpx.WriteComponent(w, r, http.StatusOK, templates.SettingsPage(view)); err != nil {
		writeError(w, err)
	}
}

func (h handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, weberrors.E(weberrors.KindInvalidInput, "invalid form submission"))
		return
	}
	if err := h.service.updateProfile(httpx.RequestContext(r), r.PostFormValue("hero_name"), r.PostFormValue("theme_name")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) handleExport(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.export(httpx.RequestContext(r))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	if err := httpx.WriteJSON(w, http.StatusOK, snapshot); err != nil {
		writeError(w, err)
	}
}

func (h handlers) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.reset(httpx.RequestContext(r)); err != nil {
		writeError(w, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), weberrors.HTTPStatus(err))
}
