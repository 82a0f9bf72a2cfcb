package cache

import (
	"context"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const routeKeyPrefix = "eld:route:"

// RedisRouteCache stores resolved routes in Redis with a fixed TTL.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

type cachedLeg struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type cachedRoute struct {
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
	Legs            []cachedLeg `json:"legs"`
	Geometry        [][]float64 `json:"geometry"`
}

// routeKey identifies a stop list. Coordinates are fixed to 5 decimals (~1 m)
// so re-geocoded addresses hit the same entry.
func routeKey(stops []domain.Coordinates) string {
	parts := make([]string, 0, len(stops))
	for _, s := range stops {
		parts = append(parts,
			strconv.FormatFloat(s.Lon, 'f', 5, 64)+","+strconv.FormatFloat(s.Lat, 'f', 5, 64))
	}
	return routeKeyPrefix + strings.Join(parts, ";")
}

func (c *RedisRouteCache) Get(ctx context.Context, stops []domain.Coordinates) (_ ports.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	raw, err := c.client.Get(ctx, routeKey(stops)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var cr cachedRoute
	if err := json.Unmarshal(raw, &cr); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: decode: %w", err)
	}

	route := ports.RouteResult{
		DistanceMeters:  cr.DistanceMeters,
		DurationSeconds: cr.DurationSeconds,
		Legs:            make([]ports.RouteLeg, 0, len(cr.Legs)),
		Geometry:        make([]domain.Coordinates, 0, len(cr.Geometry)),
	}
	for _, l := range cr.Legs {
		route.Legs = append(route.Legs, ports.RouteLeg(l))
	}
	for _, pair := range cr.Geometry {
		coords, ok := domain.CoordinatesFromList(pair)
		if !ok {
			return ports.RouteResult{}, false, errors.New("get route cache: invalid geometry point")
		}
		route.Geometry = append(route.Geometry, coords)
	}

	return route, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, stops []domain.Coordinates, route ports.RouteResult) (err error) {
	defer obs.Time(ctx, "route.cache.Put")(&err)

	cr := cachedRoute{
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		Legs:            make([]cachedLeg, 0, len(route.Legs)),
		Geometry:        make([][]float64, 0, len(route.Geometry)),
	}
	for _, l := range route.Legs {
		cr.Legs = append(cr.Legs, cachedLeg(l))
	}
	for _, g := range route.Geometry {
		cr.Geometry = append(cr.Geometry, g.CoordsToList())
	}

	raw, err := json.Marshal(cr)
	if err != nil {
		return fmt.Errorf("put route cache: encode: %w", err)
	}

	if err := c.client.Set(ctx, routeKey(stops), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put route cache: %w", err)
	}
	return nil
}
