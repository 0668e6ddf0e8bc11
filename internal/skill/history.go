package skill

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/lojasmm/kakaoskill/internal/store"
)

// HistoryStore is the part of the store the history endpoints need.
type HistoryStore interface {
	GetHistory(userID string) ([]store.Turn, error)
	ClearHistory(userID string) error
}

type HistoryHandler struct {
	store HistoryStore
	log   *log.Logger
}

func NewHistoryHandler(s HistoryStore, logger *log.Logger) *HistoryHandler {
	return &HistoryHandler{store: s, log: logger.WithPrefix("history")}
}

// HandleGet returns the stored turns of {userID}, oldest first.
func (h *HistoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	turns, err := h.store.GetHistory(userID)
	if err != nil {
		h.log.Error("failed to read history", "user", userID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if turns == nil {
		turns = []store.Turn{}
	}

	body, err := json.Marshal(turns)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *HistoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if err := h.store.ClearHistory(userID); err != nil {
		h.log.Error("failed to clear history", "user", userID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
