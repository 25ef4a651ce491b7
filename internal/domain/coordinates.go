package domain

import "math"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for external routing API compatibility.
func (c Coordinates) LonLat() []float64 { return []float64{c.Lon, c.Lat} }

const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle (haversine) distance to another point
// in kilometers. This is the offline fallback for road-network distances.
func (c Coordinates) DistanceKm(o Coordinates) float64 {
	dLat := (o.Lat - c.Lat) * math.Pi / 180
	dLon := (o.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(c.Lat*math.Pi/180)*math.Cos(o.Lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
