package dto

import "github.com/MRH-66/SmartRoute-VRP/internal/domain"

type RouteStopResponse struct {
	SpotID         string  `json:"spot_id"`
	SpotName       string  `json:"spot_name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	WorkerCount    int     `json:"worker_count"`
	ArrivalOrder   int     `json:"arrival_order"`
	CumulativeLoad int     `json:"cumulative_load"`
	PickupDetails  string  `json:"pickup_details"`
}

type RouteStepResponse struct {
	Instruction string  `json:"instruction"`
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_minutes"`
	Type        string  `json:"type"`
	Modifier    string  `json:"modifier,omitempty"`
	StreetName  string  `json:"street_name,omitempty"`
}

type RouteSegmentResponse struct {
	FromLatitude    float64             `json:"from_latitude"`
	FromLongitude   float64             `json:"from_longitude"`
	ToLatitude      float64             `json:"to_latitude"`
	ToLongitude     float64             `json:"to_longitude"`
	DistanceKm      float64             `json:"distance_km"`
	DurationMinutes float64             `json:"duration_minutes"`
	Waypoints       [][]float64         `json:"waypoints"`
	Steps           []RouteStepResponse `json:"steps,omitempty"`
}

type RouteResponse struct {
	VehicleID            string                 `json:"vehicle_id"`
	VehicleName          string                 `json:"vehicle_name"`
	VehicleCategory      string                 `json:"vehicle_category"`
	Stops                []RouteStopResponse    `json:"stops"`
	TotalDistanceKm      float64                `json:"total_distance_km"`
	TotalCost            float64                `json:"total_cost"`
	UtilizationPercent   float64                `json:"utilization_percent"`
	RouteColor           string                 `json:"route_color"`
	TotalDurationMinutes float64                `json:"total_duration_minutes"`
	MaxPassengers        int                    `json:"max_passengers"`
	Segments             []RouteSegmentResponse `json:"segments"`
}

type ResultResponse struct {
	Routes          []RouteResponse `json:"routes"`
	TotalDistance   float64         `json:"total_distance"`
	TotalCost       float64         `json:"total_cost"`
	VehiclesUsed    int             `json:"vehicles_used"`
	UnassignedSpots []string        `json:"unassigned_spots"`
}

// FromResult maps a domain optimization result onto the wire shape.
func FromResult(res *domain.OptimizationResult) ResultResponse {
	out := ResultResponse{
		Routes:          make([]RouteResponse, 0, len(res.Routes)),
		TotalDistance:   res.TotalDistance,
		TotalCost:       res.TotalCost,
		VehiclesUsed:    res.VehiclesUsed,
		UnassignedSpots: res.UnassignedSpots,
	}
	if out.UnassignedSpots == nil {
		out.UnassignedSpots = []string{}
	}

	for _, rt := range res.Routes {
		stops := make([]RouteStopResponse, 0, len(rt.Stops))
		for _, st := range rt.Stops {
			stops = append(stops, RouteStopResponse{
				SpotID:         st.SpotID,
				SpotName:       st.SpotName,
				Latitude:       st.Location.Lat,
				Longitude:      st.Location.Lon,
				WorkerCount:    st.WorkerCount,
				ArrivalOrder:   st.ArrivalOrder,
				CumulativeLoad: st.CumulativeLoad,
				PickupDetails:  st.PickupDetails,
			})
		}

		segments := make([]RouteSegmentResponse, 0, len(rt.Segments))
		for _, seg := range rt.Segments {
			steps := make([]RouteStepResponse, 0, len(seg.Steps))
			for _, stp := range seg.Steps {
				steps = append(steps, RouteStepResponse{
					Instruction: stp.Instruction,
					DistanceKm:  stp.DistanceKm,
					DurationMin: stp.DurationMin,
					Type:        stp.Type,
					Modifier:    stp.Modifier,
					StreetName:  stp.StreetName,
				})
			}
			segments = append(segments, RouteSegmentResponse{
				FromLatitude:    seg.From.Lat,
				FromLongitude:   seg.From.Lon,
				ToLatitude:      seg.To.Lat,
				ToLongitude:     seg.To.Lon,
				DistanceKm:      seg.DistanceKm,
				DurationMinutes: seg.DurationMinutes,
				Waypoints:       seg.Waypoints,
				Steps:           steps,
			})
		}

		out.Routes = append(out.Routes, RouteResponse{
			VehicleID:            rt.VehicleID,
			VehicleName:          rt.VehicleName,
			VehicleCategory:      string(rt.VehicleCategory),
			Stops:                stops,
			TotalDistanceKm:      rt.TotalDistanceKm,
			TotalCost:            rt.TotalCost,
			UtilizationPercent:   rt.UtilizationPercent,
			RouteColor:           rt.RouteColor,
			TotalDurationMinutes: rt.TotalDurationMinutes,
			MaxPassengers:        rt.MaxPassengers,
			Segments:             segments,
		})
	}

	return out
}

// FromConfig maps a session configuration onto the wire shape.
func FromConfig(cfg *domain.SessionConfig) ConfigResponse {
	out := ConfigResponse{
		Vehicles:     make([]VehicleResponse, 0, len(cfg.Vehicles)),
		PickupSpots:  make([]PickupSpotResponse, 0, len(cfg.Spots)),
		IsComplete:   cfg.IsComplete(),
		ProgressStep: cfg.ProgressStep(),
		HasResult:    cfg.Result != nil,
	}

	if cfg.Factory != nil {
		out.Factory = &FactoryResponse{
			Name:      cfg.Factory.Name,
			Latitude:  cfg.Factory.Location.Lat,
			Longitude: cfg.Factory.Location.Lon,
		}
	}
	for _, v := range cfg.Vehicles {
		out.Vehicles = append(out.Vehicles, VehicleResponse{
			ID:        v.ID,
			Name:      v.Name,
			Category:  string(v.Category),
			Capacity:  v.Capacity,
			CostPerKm: v.CostPerKm,
		})
	}
	for _, s := range cfg.Spots {
		out.PickupSpots = append(out.PickupSpots, PickupSpotResponse{
			ID:          s.ID,
			Name:        s.Name,
			Latitude:    s.Location.Lat,
			Longitude:   s.Location.Lon,
			WorkerCount: s.WorkerCount,
		})
	}

	return out
}
