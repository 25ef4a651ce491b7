package distance

import (
	"context"
	"fmt"

	"github.com/MRH-66/SmartRoute-VRP/internal/domain"
)

type MockPair struct {
	From, To domain.Coordinates
	Km       float64
}

// MockDistanceProvider serves fixed distances for tests. Pairs are stored in
// both directions.
type MockDistanceProvider struct {
	m     map[string]float64
	Calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]float64, 2*len(pairs))
	for _, p := range pairs {
		m[PointKey(p.From)+"|"+PointKey(p.To)] = p.Km
		m[PointKey(p.To)+"|"+PointKey(p.From)] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) Distance(_ context.Context, a, b domain.Coordinates) (float64, error) {
	p.Calls++
	km, ok := p.m[PointKey(a)+"|"+PointKey(b)]
	if !ok {
		return 0, fmt.Errorf("missing pair %q -> %q", PointKey(a), PointKey(b))
	}
	return km, nil
}
