package ports

import (
	"context"
	"eld-trip-service/internal/domain"
)

// Persistent address -> coordinate cache. Keys are normalized by the caller.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}

// Cache of resolved routes keyed by their stop list.
type RouteCache interface {
	// Return the cached route and whether it was present.
	Get(ctx context.Context, stops []domain.Coordinates) (RouteResult, bool, error)
	Put(ctx context.Context, stops []domain.Coordinates, route RouteResult) error
}
