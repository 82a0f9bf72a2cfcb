package routing

import (
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

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// Geocode resolves an address via the geocode cache, falling back to
// OpenRouteService (/geocode/search). Fresh results are written back to the cache.
func (o *ORSClient) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := o.normalize(address)
	if norm == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	// Check persistent geocode cache before issuing external API calls.
	if o.geocodeCache != nil {
		hits, err := o.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode: get geocode cache: %w", err)
		}
		if c, ok := hits[norm]; ok {
			return c, nil
		}
	}

	coords, err := o.geocodeOne(ctx, norm)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{norm: coords}); err != nil {
			obs.Logger.WithFields(logrus.Fields{"address": norm}).WithError(err).Warn("geocode cache write failed")
		}
	}

	return coords, nil
}

func (o *ORSClient) geocodeOne(ctx context.Context, text string) (domain.Coordinates, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", text)
		if o.country != "" {
			q.Set("boundary.country", o.country)
		}
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, classify(err, ports.ErrNoGeocodeResult)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: decode geocode response: %w", ports.ErrProviderUnavailable, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, ports.ErrNoGeocodeResult
	}

	coords, ok := domain.CoordinatesFromList(decoded.Features[0].Geometry.Coordinates)
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("%w: invalid coordinate format", ports.ErrNoGeocodeResult)
	}

	return coords, nil
}
