package ports

import (
	"context"
	"eld-trip-service/internal/domain"
	"errors"
)

var (
	// The routing/geocoding provider could not be reached or kept failing.
	ErrProviderUnavailable = errors.New("routing provider unavailable")
	// The provider answered but found no route between the stops.
	ErrNoRoute = errors.New("no route found")
	// The provider answered but could not resolve the address.
	ErrNoGeocodeResult = errors.New("no geocode result")
)

// One leg of a multi-stop route.
type RouteLeg struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Route resolved for an ordered list of stops.
// Geometry runs from the first stop to the last.
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
	Legs            []RouteLeg
	Geometry        []domain.Coordinates
}

// Contract for retrieving a driving route through ordered stops.
type RouteProvider interface {
	// Return the route visiting stops in order. Errors wrap ErrNoRoute or ErrProviderUnavailable.
	GetRoute(ctx context.Context, stops []domain.Coordinates) (RouteResult, error)
}

// Contract for resolving a free-form address to coordinates.
type Geocoder interface {
	// Errors wrap ErrNoGeocodeResult or ErrProviderUnavailable.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
