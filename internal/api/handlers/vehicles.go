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

type VehicleHandler struct {
	Repo ports.ConfigRepository
}

// Create adds a vehicle to the session's fleet. Names must be unique within
// the session; the server assigns the ID.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	var req dto.VehicleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	vehicle := domain.Vehicle{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Category:  domain.VehicleCategory(req.Category),
		Capacity:  req.Capacity,
		CostPerKm: req.CostPerKm,
	}
	if err := vehicle.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("create vehicle failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	for _, v := range cfg.Vehicles {
		if strings.EqualFold(v.Name, vehicle.Name) {
			writeError(w, r, http.StatusConflict, "vehicle name already exists")
			return
		}
	}

	cfg.Vehicles = append(cfg.Vehicles, vehicle)
	cfg.Result = nil

	if err := h.Repo.Put(r.Context(), sid, cfg); err != nil {
		log.Printf("create vehicle failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.VehicleResponse{
		ID:        vehicle.ID,
		Name:      vehicle.Name,
		Category:  string(vehicle.Category),
		Capacity:  vehicle.Capacity,
		CostPerKm: vehicle.CostPerKm,
	})
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("list vehicles failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.VehicleResponse, 0, len(cfg.Vehicles))
	for _, v := range cfg.Vehicles {
		res = append(res, dto.VehicleResponse{
			ID:        v.ID,
			Name:      v.Name,
			Category:  string(v.Category),
			Capacity:  v.Capacity,
			CostPerKm: v.CostPerKm,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}
	vehicleID := r.PathValue("id")

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("delete vehicle failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	idx := -1
	for i, v := range cfg.Vehicles {
		if v.ID == vehicleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		writeError(w, r, http.StatusNotFound, "vehicle not found")
		return
	}

	cfg.Vehicles = append(cfg.Vehicles[:idx], cfg.Vehicles[idx+1:]...)
	cfg.Result = nil

	if err := h.Repo.Put(r.Context(), sid, cfg); err != nil {
		log.Printf("delete vehicle failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
