package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MRH-66/SmartRoute-VRP/internal/adapters/distance"
	"github.com/MRH-66/SmartRoute-VRP/internal/adapters/repositories"
	"github.com/MRH-66/SmartRoute-VRP/internal/api/dto"
	"github.com/MRH-66/SmartRoute-VRP/internal/config"
)

func newTestRouter() http.Handler {
	return NewRouter(Dependencies{
		Repo:      repositories.NewMemoryConfigRepository(),
		Straight:  distance.HaversineProvider{},
		Road:      distance.HaversineProvider{},
		SolverCfg: config.SolverConfig{Seed: 1},
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestRouter(), http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestOptimizeFullFlow(t *testing.T) {
	h := newTestRouter()
	const base = "/api"

	rec := doJSON(t, h, http.MethodPost, base+"/factory/sess", dto.FactoryRequest{
		Name: "Plant", Latitude: 24.87, Longitude: 67.03,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("set factory: status = %d body=%s", rec.Code, rec.Body)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/vehicles/sess", dto.VehicleRequest{
		Name: "Bus A", Category: "Self-owned", Capacity: 40, CostPerKm: 5,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create vehicle: status = %d body=%s", rec.Code, rec.Body)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/pickup-spots/sess", dto.PickupSpotRequest{
		Name: "North Gate", Latitude: 24.90, Longitude: 67.02, WorkerCount: 25,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create spot: status = %d body=%s", rec.Code, rec.Body)
	}

	rec = doJSON(t, h, http.MethodGet, base+"/config/sess", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get config: status = %d", rec.Code)
	}
	var cfg dto.ConfigResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if !cfg.IsComplete || cfg.ProgressStep != 4 {
		t.Fatalf("config = %+v, want complete at step 4", cfg)
	}

	rec = doJSON(t, h, http.MethodPost, base+"/optimize/sess", dto.OptimizeRequest{})
	if rec.Code != http.StatusOK {
		t.Fatalf("optimize: status = %d body=%s", rec.Code, rec.Body)
	}
	var res dto.ResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.VehiclesUsed != 1 || len(res.Routes) != 1 {
		t.Fatalf("result = %+v, want one route on one vehicle", res)
	}
	if res.Routes[0].Stops[0].WorkerCount != 25 {
		t.Errorf("stop workers = %d, want 25", res.Routes[0].Stops[0].WorkerCount)
	}

	rec = doJSON(t, h, http.MethodGet, base+"/results/sess", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get results: status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, base+"/export/sess/csv", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export csv: status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("export content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "# ROUTE SUMMARY") {
		t.Errorf("csv body missing route summary section")
	}

	rec = doJSON(t, h, http.MethodDelete, base+"/config/sess", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("clear config: status = %d", rec.Code)
	}
	rec = doJSON(t, h, http.MethodGet, base+"/results/sess", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("results after clear: status = %d, want 404", rec.Code)
	}
}

func TestOptimizeIncompleteConfigConflicts(t *testing.T) {
	h := newTestRouter()

	rec := doJSON(t, h, http.MethodPost, "/api/optimize/sess", dto.OptimizeRequest{})
	if rec.Code != http.StatusConflict {
		t.Fatalf("optimize without config: status = %d, want 409", rec.Code)
	}
}

func TestVehicleValidationAndConflicts(t *testing.T) {
	h := newTestRouter()

	rec := doJSON(t, h, http.MethodPost, "/api/vehicles/sess", dto.VehicleRequest{
		Name: "Bus A", Category: "Hovercraft", Capacity: 10, CostPerKm: 5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad category: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/vehicles/sess", dto.VehicleRequest{
		Name: "Bus A", Category: "Self-owned", Capacity: 0, CostPerKm: 5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("zero capacity: status = %d, want 400", rec.Code)
	}

	ok := dto.VehicleRequest{Name: "Bus A", Category: "Self-owned", Capacity: 10, CostPerKm: 5}
	if rec = doJSON(t, h, http.MethodPost, "/api/vehicles/sess", ok); rec.Code != http.StatusCreated {
		t.Fatalf("create vehicle: status = %d", rec.Code)
	}
	if rec = doJSON(t, h, http.MethodPost, "/api/vehicles/sess", ok); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate name: status = %d, want 409", rec.Code)
	}
}

func TestVehicleDeleteByID(t *testing.T) {
	h := newTestRouter()

	rec := doJSON(t, h, http.MethodPost, "/api/vehicles/sess", dto.VehicleRequest{
		Name: "Bus A", Category: "Self-owned", Capacity: 10, CostPerKm: 5,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create vehicle: status = %d", rec.Code)
	}
	var created dto.VehicleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode vehicle: %v", err)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/vehicles/sess/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete vehicle: status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/vehicles/sess/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete missing vehicle: status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/vehicles/sess", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list vehicles: status = %d", rec.Code)
	}
	var list []dto.VehicleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("vehicles after delete = %d, want 0", len(list))
	}
}

func TestSpotValidation(t *testing.T) {
	h := newTestRouter()

	rec := doJSON(t, h, http.MethodPost, "/api/pickup-spots/sess", dto.PickupSpotRequest{
		Name: "Gate", Latitude: 95, Longitude: 67, WorkerCount: 5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("latitude out of range: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/api/pickup-spots/sess", dto.PickupSpotRequest{
		Name: "Gate", Latitude: 24.9, Longitude: 67, WorkerCount: 0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("zero workers: status = %d, want 400", rec.Code)
	}
}

func TestInvalidJSONBodyRejected(t *testing.T) {
	h := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/factory/sess", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid body: status = %d, want 400", rec.Code)
	}
}

func TestMutationInvalidatesStoredResult(t *testing.T) {
	h := newTestRouter()
	const base = "/api"

	doJSON(t, h, http.MethodPost, base+"/factory/sess", dto.FactoryRequest{Name: "Plant", Latitude: 24.87, Longitude: 67.03})
	doJSON(t, h, http.MethodPost, base+"/vehicles/sess", dto.VehicleRequest{Name: "Bus A", Category: "Self-owned", Capacity: 40, CostPerKm: 5})
	doJSON(t, h, http.MethodPost, base+"/pickup-spots/sess", dto.PickupSpotRequest{Name: "Gate", Latitude: 24.90, Longitude: 67.02, WorkerCount: 25})

	if rec := doJSON(t, h, http.MethodPost, base+"/optimize/sess", dto.OptimizeRequest{}); rec.Code != http.StatusOK {
		t.Fatalf("optimize: status = %d", rec.Code)
	}

	// Adding a spot drops the stale result.
	if rec := doJSON(t, h, http.MethodPost, base+"/pickup-spots/sess", dto.PickupSpotRequest{Name: "Gate 2", Latitude: 24.91, Longitude: 67.04, WorkerCount: 5}); rec.Code != http.StatusCreated {
		t.Fatalf("create spot: status = %d", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodGet, base+"/results/sess", nil); rec.Code != http.StatusNotFound {
		t.Errorf("results after mutation: status = %d, want 404", rec.Code)
	}
}
