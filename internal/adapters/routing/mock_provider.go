package routing

import (
	"context"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/ports"
	"fmt"
	"sync"
)

// MockProvider is an in-memory Geocoder and RouteProvider for tests and
// local runs without an ORS key.
type MockProvider struct {
	mu       sync.Mutex
	coords   map[string]domain.Coordinates
	route    ports.RouteResult
	routeErr error
	calls    int
}

func NewMockProvider(coords map[string]domain.Coordinates, route ports.RouteResult) *MockProvider {
	return &MockProvider{coords: coords, route: route}
}

// FailRoutes makes every GetRoute call return err.
func (p *MockProvider) FailRoutes(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.routeErr = err
}

func (p *MockProvider) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	c, ok := p.coords[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("mock geocode %q: %w", address, ports.ErrNoGeocodeResult)
	}
	return c, nil
}

func (p *MockProvider) GetRoute(ctx context.Context, stops []domain.Coordinates) (ports.RouteResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	if p.routeErr != nil {
		return ports.RouteResult{}, p.routeErr
	}
	if len(p.route.Legs) != len(stops)-1 {
		return ports.RouteResult{}, fmt.Errorf("mock route: %d stops for %d legs: %w", len(stops), len(p.route.Legs), ports.ErrNoRoute)
	}
	return p.route, nil
}

// Calls reports how many lookups were made.
func (p *MockProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
