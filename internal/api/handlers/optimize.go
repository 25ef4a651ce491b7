package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/MRH-66/SmartRoute-VRP/internal/api/dto"
	"github.com/MRH-66/SmartRoute-VRP/internal/config"
	"github.com/MRH-66/SmartRoute-VRP/internal/platform/obs"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
	"github.com/MRH-66/SmartRoute-VRP/internal/solver"
)

// OptimizeHandler runs the optimization core over a session's configuration
// and stores the result back on the session.
type OptimizeHandler struct {
	Repo ports.ConfigRepository
	// Straight provides great-circle distances for use_real_roads=false.
	Straight ports.DistanceProvider
	// Road provides road-network distances, typically cache-wrapped.
	Road ports.DistanceProvider
	// Geometry renders final road geometry; may be nil.
	Geometry  ports.RouteGeometryProvider
	SolverCfg config.SolverConfig
	Metrics   *obs.Metrics
}

func (h *OptimizeHandler) Run(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(r)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "session id is required")
		return
	}

	var req dto.OptimizeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	cfg, err := h.Repo.Get(r.Context(), sid)
	if err != nil {
		log.Printf("optimize failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if !cfg.IsComplete() {
		h.countRun("incomplete")
		writeError(w, r, http.StatusConflict, "configuration incomplete: factory, vehicles, and pickup spots are all required")
		return
	}

	provider := h.Straight
	var geometry ports.RouteGeometryProvider
	if req.UseRealRoads {
		provider = h.Road
		geometry = h.Geometry
	}

	iterations := h.SolverCfg.Iterations
	if req.Iterations > 0 {
		iterations = req.Iterations
	}

	opts := solver.Options{
		UseRealRoads:     req.UseRealRoads,
		Iterations:       iterations,
		VehiclePenalty:   h.SolverCfg.VehiclePenalty,
		FallbackSpeedKmh: h.SolverCfg.FallbackSpeedKmh,
		Seed:             h.SolverCfg.Seed,
	}

	start := time.Now()

	s, err := solver.New(r.Context(), *cfg.Factory, cfg.Vehicles, cfg.Spots, provider, geometry, opts)
	if err != nil {
		h.countRun("error")
		log.Printf("optimize failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "optimization failed: "+err.Error())
		return
	}

	result, err := s.Solve(r.Context())
	if err != nil {
		h.countRun("error")
		log.Printf("optimize failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "optimization failed: "+err.Error())
		return
	}

	if h.Metrics != nil {
		h.Metrics.OptimizeDuration.Observe(time.Since(start).Seconds())
	}
	h.countRun("ok")

	cfg.Result = result
	if err := h.Repo.Put(r.Context(), sid, cfg); err != nil {
		log.Printf("store result failed: session=%s err=%v", sid, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromResult(result))
}

func (h *OptimizeHandler) countRun(outcome string) {
	if h.Metrics != nil {
		h.Metrics.OptimizeRuns.WithLabelValues(outcome).Inc()
	}
}
