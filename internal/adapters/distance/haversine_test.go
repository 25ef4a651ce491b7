package distance

import (
	"context"
	"math"
	"testing"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude along a meridian is about 111.19 km.
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 1, Lon: 0}

	km, err := HaversineProvider{}.Distance(context.Background(), a, b)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if math.Abs(km-111.19) > 0.5 {
		t.Errorf("distance = %v km, want ~111.19", km)
	}
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	p := domain.Coordinates{Lat: 24.8607, Lon: 67.0011}
	km, err := HaversineProvider{}.Distance(context.Background(), p, p)
	if err != nil {
		t.Fatalf("Distance: %v", err)
	}
	if km != 0 {
		t.Errorf("distance = %v, want 0", km)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := domain.Coordinates{Lat: 24.8607, Lon: 67.0011}
	b := domain.Coordinates{Lat: 24.9056, Lon: 67.0822}

	ab, _ := HaversineProvider{}.Distance(context.Background(), a, b)
	ba, _ := HaversineProvider{}.Distance(context.Background(), b, a)
	if ab != ba {
		t.Errorf("asymmetric: %v vs %v", ab, ba)
	}
}
