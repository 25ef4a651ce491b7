package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MRH-66/SmartRoute-VRP/internal/api/handlers"
	"github.com/MRH-66/SmartRoute-VRP/internal/config"
	"github.com/MRH-66/SmartRoute-VRP/internal/platform/obs"
	"github.com/MRH-66/SmartRoute-VRP/internal/ports"
)

// Dependencies carries everything the HTTP layer needs, wired by the
// composition root. Handlers stay unaware of concrete adapters.
type Dependencies struct {
	Repo ports.ConfigRepository
	// Straight provides great-circle distances (use_real_roads=false).
	Straight ports.DistanceProvider
	// Road provides road-network distances, typically cache-wrapped.
	Road ports.DistanceProvider
	// Geometry renders final road geometry; may be nil.
	Geometry  ports.RouteGeometryProvider
	SolverCfg config.SolverConfig
	Metrics   *obs.Metrics
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
func NewRouter(deps Dependencies) http.Handler {
	mux := http.NewServeMux()

	configHandler := &handlers.ConfigHandler{Repo: deps.Repo}
	factoryHandler := &handlers.FactoryHandler{Repo: deps.Repo}
	vehicleHandler := &handlers.VehicleHandler{Repo: deps.Repo}
	spotHandler := &handlers.SpotHandler{Repo: deps.Repo}
	resultHandler := &handlers.ResultHandler{Repo: deps.Repo}
	exportHandler := &handlers.ExportHandler{Repo: deps.Repo}
	optimizeHandler := &handlers.OptimizeHandler{
		Repo:      deps.Repo,
		Straight:  deps.Straight,
		Road:      deps.Road,
		Geometry:  deps.Geometry,
		SolverCfg: deps.SolverCfg,
		Metrics:   deps.Metrics,
	}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("GET /api/config/{session}", configHandler.Get)
	mux.HandleFunc("DELETE /api/config/{session}", configHandler.Clear)

	mux.HandleFunc("POST /api/factory/{session}", factoryHandler.Set)
	mux.HandleFunc("GET /api/factory/{session}", factoryHandler.Get)
	mux.HandleFunc("DELETE /api/factory/{session}", factoryHandler.Delete)

	mux.HandleFunc("POST /api/vehicles/{session}", vehicleHandler.Create)
	mux.HandleFunc("GET /api/vehicles/{session}", vehicleHandler.List)
	mux.HandleFunc("DELETE /api/vehicles/{session}/{id}", vehicleHandler.Delete)

	mux.HandleFunc("POST /api/pickup-spots/{session}", spotHandler.Create)
	mux.HandleFunc("GET /api/pickup-spots/{session}", spotHandler.List)
	mux.HandleFunc("DELETE /api/pickup-spots/{session}/{id}", spotHandler.Delete)

	mux.HandleFunc("POST /api/optimize/{session}", optimizeHandler.Run)
	mux.HandleFunc("GET /api/results/{session}", resultHandler.Get)
	mux.HandleFunc("GET /api/export/{session}/csv", exportHandler.CSV)

	if deps.Metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{}))
	}

	return loggingMiddleware(deps.Metrics, mux)
}
