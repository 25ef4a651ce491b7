package handlers

import (
	"log"
	"net/http"

	"github.com/MRH-66/SmartRoute-VRP/internal/api/dto"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

type ResultHandler struct {
	Repo ports.ConfigRepository
}

// Get returns the last stored optimization result for the session.
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("get result failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if cfg.Result == nil {
		writeError(w, r, http.StatusNotFound, "no optimization result for this session")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromResult(cfg.Result))
}
