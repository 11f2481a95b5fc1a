package quests

import (
	"net/http"

	"github.com/Thijsn04/QuestLog/internal/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodPost+" "+routepath.Architect, h.handleArchitect)
	mux.HandleFunc(http.MethodPost+" "+routepath.QuestAdd, h.handleAdd)
	mux.HandleFunc(http.MethodPost+" "+routepath.QuestReorder, h.handleReorder)
	mux.HandleFunc(http.MethodPost+" "+routepath.QuestToggle, h.handleToggle)
	mux.HandleFunc(http.MethodGet+" "+routepath.QuestEdit, h.handleEdit)
	mux.HandleFunc(http.MethodGet+" "+routepath.QuestCancel, h.handleCancelEdit)
	mux.HandleFunc(http.MethodPut+" "+routepath.QuestItem, h.handleUpdate)
	mux.HandleFunc(http.MethodDelete+" "+routepath.QuestItem, h.handleDelete)
}
