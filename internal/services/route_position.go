package services

import (
	"eld-trip-service/internal/domain"
	"time"
)

// RoutePosition approximates where the driver is after driving `driven` of a
// `total` drive by picking the waypoint at the same fraction of the route.
// It does not interpolate between waypoints.
func RoutePosition(waypoints []domain.Coordinates, total, driven time.Duration) domain.Coordinates {
	n := len(waypoints)
	if n == 0 {
		return domain.Coordinates{}
	}
	if total <= 0 {
		return waypoints[n-1]
	}

	idx := int(float64(n) * (float64(driven) / float64(total)))
	if idx < 0 {
		idx = 0
	}
	// Never index past the end of the route.
	return waypoints[min(idx, n-1)]
}
