package routing

import (
	"bytes"
	"context"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
			Segments []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// GetRoute returns the heavy-vehicle route through stops in order, using the
// route cache when one is configured.
func (o *ORSClient) GetRoute(ctx context.Context, stops []domain.Coordinates) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "ors.GetRoute")(&err)

	if len(stops) < 2 {
		return ports.RouteResult{}, errors.New("get route: at least two stops are required")
	}

	if o.routeCache != nil {
		cached, ok, err := o.routeCache.Get(ctx, stops)
		if err != nil {
			obs.Logger.WithError(err).Warn("route cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	route, err := o.fetchDirections(ctx, stops)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("get route: %w", err)
	}

	if o.routeCache != nil {
		if err := o.routeCache.Put(ctx, stops, route); err != nil {
			obs.Logger.WithFields(logrus.Fields{"stops": len(stops)}).WithError(err).Warn("route cache write failed")
		}
	}

	return route, nil
}

// fetchDirections calls the OpenRouteService directions endpoint in GeoJSON form.
func (o *ORSClient) fetchDirections(ctx context.Context, stops []domain.Coordinates) (ports.RouteResult, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, o.profile)

	coords := make([][]float64, 0, len(stops))
	for _, s := range stops {
		coords = append(coords, s.CoordsToList())
	}

	payload, err := json.Marshal(directionsRequest{Coordinates: coords})
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return ports.RouteResult{}, classify(err, ports.ErrNoRoute)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.RouteResult{}, fmt.Errorf("%w: decode directions response: %w", ports.ErrProviderUnavailable, err)
	}

	if len(dr.Features) == 0 {
		return ports.RouteResult{}, ports.ErrNoRoute
	}
	feature := dr.Features[0]

	geometry := make([]domain.Coordinates, 0, len(feature.Geometry.Coordinates))
	for i, pair := range feature.Geometry.Coordinates {
		c, ok := domain.CoordinatesFromList(pair)
		if !ok {
			return ports.RouteResult{}, fmt.Errorf("%w: invalid geometry point at index %d", ports.ErrNoRoute, i)
		}
		geometry = append(geometry, c)
	}
	if len(geometry) == 0 {
		return ports.RouteResult{}, fmt.Errorf("%w: empty geometry", ports.ErrNoRoute)
	}

	legs := make([]ports.RouteLeg, 0, len(feature.Properties.Segments))
	for _, s := range feature.Properties.Segments {
		legs = append(legs, ports.RouteLeg{DistanceMeters: s.Distance, DurationSeconds: s.Duration})
	}
	if len(legs) != len(stops)-1 {
		return ports.RouteResult{}, fmt.Errorf(
			"%w: expected %d segments, got %d",
			ports.ErrNoRoute, len(stops)-1, len(legs),
		)
	}

	return ports.RouteResult{
		DistanceMeters:  feature.Properties.Summary.Distance,
		DurationSeconds: feature.Properties.Summary.Duration,
		Legs:            legs,
		Geometry:        geometry,
	}, nil
}
