package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/MRH-66/SmartRoute-VRP/internal/api/dto"
	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

type SpotHandler struct {
	Repo ports.ConfigRepository
}

// Create adds a pickup spot to the session. Names must be unique within the
// session; the server assigns the ID.
func (h *SpotHandler) Create(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	var req dto.PickupSpotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	spot := domain.PickupSpot{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Location:    domain.Coordinates{Lat: req.Latitude, Lon: req.Longitude},
		WorkerCount: req.WorkerCount,
	}
	if err := spot.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("create pickup spot failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	for _, s := range cfg.Spots {
		if strings.EqualFold(s.Name, spot.Name) {
			writeError(w, r, http.StatusConflict, "pickup spot name already exists")
			return
		}
	}

	cfg.Spots = append(cfg.Spots, spot)
	cfg.Result = nil

	if err := h.Repo.Put(r.Context(), sid, cfg); err != nil {
		log.Printf("create pickup spot failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.PickupSpotResponse{
		ID:          spot.ID,
		Name:        spot.Name,
		Latitude:    spot.Location.Lat,
		Longitude:   spot.Location.Lon,
		WorkerCount: spot.WorkerCount,
	})
}

func (h *SpotHandler) List(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("list pickup spots failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.PickupSpotResponse, 0, len(cfg.Spots))
	for _, s := range cfg.Spots {
		res = append(res, dto.PickupSpotResponse{
			ID:          s.ID,
			Name:        s.Name,
			Latitude:    s.Location.Lat,
			Longitude:   s.Location.Lon,
			WorkerCount: s.WorkerCount,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *SpotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}
	spotID := r.PathValue("id")

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("delete pickup spot failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	idx := -1
	for i, s := range cfg.Spots {
		if s.ID == spotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "pickup spot not found")
		return
	}

	cfg.Spots = append(cfg.Spots[:idx], cfg.Spots[idx+1:]...)
	cfg.Result = nil

	if err := h.Repo.Put(r.Context(), sid, cfg); err != nil {
		log.Printf("delete pickup spot failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
