package domain

// RouteStop is a single pickup in an optimized route: the vehicle arrives at
// a spot in a given order and boards one or more workers.
type RouteStop struct {
	SpotID         string
	SpotName       string
	Location       Coordinates
	WorkerCount    int // workers boarded at this stop
	ArrivalOrder   int // 1-based position in the visiting sequence
	CumulativeLoad int // total workers aboard after this stop
	PickupDetails  string
}

// RouteStep is a single turn-by-turn navigation instruction.
type RouteStep struct {
	Instruction string
	DistanceKm  float64
	DurationMin float64
	Type        string // turn, depart, arrive, ...
	Modifier    string // left, right, straight, ...
	StreetName  string
}

// RouteSegment is a drivable stretch of a route with optional road geometry
// for map rendering. Waypoints are [lon, lat] pairs.
type RouteSegment struct {
	From            Coordinates
	To              Coordinates
	DistanceKm      float64
	DurationMinutes float64
	Waypoints       [][]float64
	Steps           []RouteStep
}

// OptimizedRoute is the per-vehicle output of the optimizer: the ordered stop
// sequence plus aggregate metrics. It is immutable planning data.
type OptimizedRoute struct {
	VehicleID            string
	VehicleName          string
	VehicleCategory      VehicleCategory
	Stops                []RouteStop
	TotalDistanceKm      float64
	TotalCost            float64
	UtilizationPercent   float64
	RouteColor           string // map display color
	TotalDurationMinutes float64
	MaxPassengers        int
	Segments             []RouteSegment
}

// OptimizationResult is the complete output of one optimization run.
// UnassignedSpots lists pickup spots whose demand could not be fully placed
// (possible when total fleet capacity is below total demand).
type OptimizationResult struct {
	Routes          []OptimizedRoute
	TotalDistance   float64
	TotalCost       float64
	VehiclesUsed    int
	UnassignedSpots []string
}
