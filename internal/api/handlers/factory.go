package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/MRH-66/SmartRoute-VRP/internal/api/dto"
	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

type FactoryHandler struct {
	Repo ports.ConfigRepository
}

// Set stores or replaces the session's factory. Replacing the factory
// invalidates any previously stored result.
func (h *FactoryHandler) Set(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	var req dto.FactoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	factory := domain.Factory{
		Name:     strings.TrimSpace(req.Name),
		Location: domain.Coordinates{Lat: req.Latitude, Lon: req.Longitude},
	}
	if err := factory.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("set factory failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	cfg.Factory = &factory
	cfg.Result = nil

	if err := h.Repo.Put(r.Context(), sid, cfg); err != nil {
		log.Printf("set factory failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FactoryResponse{
		Name:      factory.Name,
		Latitude:  factory.Location.Lat,
		Longitude: factory.Location.Lon,
	})
}

func (h *FactoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("get factory failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if cfg.Factory == nil {
		writeError(w, r, http.StatusNotFound, "factory not configured")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FactoryResponse{
		Name:      cfg.Factory.Name,
		Latitude:  cfg.Factory.Location.Lat,
		Longitude: cfg.Factory.Location.Lon,
	})
}

func (h *FactoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("delete factory failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	cfg.Factory = nil
	cfg.Result = nil

	if err := h.Repo.Put(r.Context(), sid, cfg); err != nil {
		log.Printf("delete factory failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
