package handlers

import (
	"log"
	"net/http"

	"github.com/MRH-66/SmartRoute-VRP/internal/api/dto"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

type ConfigHandler struct {
	Repo ports.ConfigRepository
}

// Get returns the full configuration snapshot for a session. Unknown
// sessions yield an empty configuration at step 1.
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("get config failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromConfig(cfg))
}

// Clear removes the whole session: factory, fleet, spots, and result.
func (h *ConfigHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	if err := h.Repo.Delete(r.Context(), sid); err != nil {
		log.Printf("clear config failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "cleared"})
}
