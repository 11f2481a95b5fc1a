package settings

import (
	"net/http"

	"github.com/Thijsn04/QuestLog/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Settings, h.handleIndex)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsUpdate, h.handleUpdate)
	mux.HandleFunc(http.MethodPost+" "+routepath.SettingsReset, h.handleReset)
	mux.HandleFunc(http.MethodGet+" "+routepath.SettingsExport, h.handleExport)
}
