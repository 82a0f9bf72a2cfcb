package routing

import (
	"eld-trip-service/internal/ports"
	"errors"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.openrouteservice.org"
	DefaultProfile = "driving-hgv"
)

// ORSClient implements Geocoder and RouteProvider using OpenRouteService.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - Route caching
//   - External API calls with retry/backoff
//
// The client is safe for concurrent use.
type ORSClient struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	profile      string
	country      string
	backoff      time.Duration
	geocodeCache ports.GeocodeCache
	routeCache   ports.RouteCache
}

// Optional ORSClient settings. Zero values select the defaults.
type ORSOptions struct {
	BaseURL      string
	Profile      string
	Country      string // ISO code limiting geocoding; empty searches worldwide
	GeocodeCache ports.GeocodeCache
	RouteCache   ports.RouteCache
}

func NewORSClient(apiKey string, opts ORSOptions) (*ORSClient, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	profile := opts.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	client := &ORSClient{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      baseURL,
		profile:      profile,
		country:      strings.ToUpper(strings.TrimSpace(opts.Country)),
		backoff:      200 * time.Millisecond,
		geocodeCache: opts.GeocodeCache,
		routeCache:   opts.RouteCache,
	}

	return client, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *ORSClient) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
