package dto

// Request and response shapes for session configuration endpoints. The wire
// format is snake_case JSON; mapping to domain types happens here so handlers
// stay thin.

type FactoryRequest struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type FactoryResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type VehicleRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Capacity  int     `json:"capacity"`
	CostPerKm float64 `json:"cost_per_km"`
}

type VehicleResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Capacity  int     `json:"capacity"`
	CostPerKm float64 `json:"cost_per_km"`
}

type PickupSpotRequest struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	WorkerCount int     `json:"worker_count"`
}

type PickupSpotResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	WorkerCount int     `json:"worker_count"`
}

// ConfigResponse is the full session configuration snapshot.
type ConfigResponse struct {
	Factory      *FactoryResponse     `json:"factory"`
	Vehicles     []VehicleResponse    `json:"vehicles"`
	PickupSpots  []PickupSpotResponse `json:"pickup_spots"`
	IsComplete   bool                 `json:"is_complete"`
	ProgressStep int                  `json:"progress_step"`
	HasResult    bool                 `json:"has_result"`
}

type OptimizeRequest struct {
	UseRealRoads bool `json:"use_real_roads"`
	// Iterations overrides the configured ALNS budget when > 0.
	Iterations int `json:"iterations"`
}
