package services

import (
	"context"
	"eld-trip-service/internal/adapters/routing"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/ports"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type memoryTripRepository struct {
	mu    sync.Mutex
	trips []*domain.Trip
	logs  map[uuid.UUID][]domain.ELDLog
}

func newMemoryTripRepository() *memoryTripRepository {
	return &memoryTripRepository{logs: map[uuid.UUID][]domain.ELDLog{}}
}

func (m *memoryTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip, entries []domain.LogEntry) ([]domain.ELDLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	logs := make([]domain.ELDLog, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, domain.ELDLog{ID: uuid.New(), TripID: trip.ID, LogEntry: e})
	}
	m.trips = append(m.trips, trip)
	m.logs[trip.ID] = logs
	return logs, nil
}

func (m *memoryTripRepository) GetTrip(ctx context.Context, id uuid.UUID) (*domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("trip %s: %w", id, ports.ErrTripNotFound)
}

func (m *memoryTripRepository) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Trip(nil), m.trips...), nil
}

func (m *memoryTripRepository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.trips {
		if t.ID == id {
			m.trips = append(m.trips[:i], m.trips[i+1:]...)
			delete(m.logs, id)
			return nil
		}
	}
	return fmt.Errorf("trip %s: %w", id, ports.ErrTripNotFound)
}

func (m *memoryTripRepository) GetLog(ctx context.Context, id uuid.UUID) (domain.ELDLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, logs := range m.logs {
		for _, l := range logs {
			if l.ID == id {
				return l, nil
			}
		}
	}
	return domain.ELDLog{}, fmt.Errorf("log %s: %w", id, ports.ErrLogNotFound)
}

func (m *memoryTripRepository) ListLogs(ctx context.Context, tripID uuid.UUID) ([]domain.ELDLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logs[tripID], nil
}

func newMockProvider() *routing.MockProvider {
	coords := map[string]domain.Coordinates{
		"Phoenix, AZ": {Lon: -112.07, Lat: 33.45},
		"Tucson, AZ":  {Lon: -110.97, Lat: 32.22},
		"El Paso, TX": {Lon: -106.44, Lat: 31.76},
	}
	route := ports.RouteResult{
		DistanceMeters:  692000,
		DurationSeconds: 9.9 * 3600,
		Legs: []ports.RouteLeg{
			{DistanceMeters: 180000, DurationSeconds: 1.8 * 3600},
			{DistanceMeters: 512000, DurationSeconds: 8.1 * 3600},
		},
		Geometry: []domain.Coordinates{
			{Lon: -112.07, Lat: 33.45},
			{Lon: -106.44, Lat: 31.76},
		},
	}
	return routing.NewMockProvider(coords, route)
}

func tripRequest() CreateTripRequest {
	return CreateTripRequest{
		StartLocation:   "Phoenix, AZ",
		PickupLocation:  "Tucson, AZ",
		DropoffLocation: "El Paso, TX",
		StartTime:       time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	}
}

func TestCreateTrip(t *testing.T) {
	repo := newMemoryTripRepository()
	provider := newMockProvider()

	trip, logs, err := CreateTrip(context.Background(), tripRequest(), repo, provider, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 3 geocodes + 1 route
	if provider.Calls() != 4 {
		t.Fatalf("provider calls = %d, want 4", provider.Calls())
	}
	if trip.DurationHours != 9.9 {
		t.Fatalf("DurationHours = %v, want 9.9", trip.DurationHours)
	}

	// 1.8h rounds to 2h to pickup, 9.9h rounds to 10h total.
	wantActions := []domain.Action{
		domain.ActionPreCheck,
		domain.ActionDriving,
		domain.ActionPickup,
		domain.ActionDriving,
		domain.ActionBreak,
		domain.ActionDriving,
		domain.ActionDropOff,
		domain.ActionDone,
	}
	if len(logs) != len(wantActions) {
		t.Fatalf("got %d logs, want %d", len(logs), len(wantActions))
	}
	for i, a := range wantActions {
		if logs[i].Action != a {
			t.Errorf("log[%d] = %s, want %s", i, logs[i].Action, a)
		}
		if logs[i].TripID != trip.ID {
			t.Errorf("log[%d] trip id = %s, want %s", i, logs[i].TripID, trip.ID)
		}
	}
	if logs[1].TimeSpent != 2*time.Hour {
		t.Fatalf("drive to pickup = %s, want 2h", logs[1].TimeSpent)
	}

	stored, err := ListTripLogs(context.Background(), repo, trip.ID)
	if err != nil || len(stored) != len(logs) {
		t.Fatalf("ListTripLogs = %d logs, err %v", len(stored), err)
	}
	got, err := GetTrip(context.Background(), repo, trip.ID)
	if err != nil || got.ID != trip.ID {
		t.Fatalf("GetTrip = %v, err %v", got, err)
	}
}

func TestCreateTripInvalidRequest(t *testing.T) {
	req := tripRequest()
	req.CurrentCycleHoursUsed = -2
	provider := newMockProvider()

	_, _, err := CreateTrip(context.Background(), req, newMemoryTripRepository(), provider, provider)
	if !errors.Is(err, domain.ErrInvalidTrip) {
		t.Fatalf("err = %v, want ErrInvalidTrip", err)
	}
	if provider.Calls() != 0 {
		t.Fatalf("provider called %d times for an invalid request", provider.Calls())
	}
}

func TestCreateTripUnknownAddress(t *testing.T) {
	req := tripRequest()
	req.PickupLocation = "Atlantis"
	provider := newMockProvider()
	repo := newMemoryTripRepository()

	_, _, err := CreateTrip(context.Background(), req, repo, provider, provider)
	if !errors.Is(err, ports.ErrNoGeocodeResult) {
		t.Fatalf("err = %v, want ErrNoGeocodeResult", err)
	}
	if trips, _ := ListTrips(context.Background(), repo); len(trips) != 0 {
		t.Fatalf("stored %d trips after a failed request", len(trips))
	}
}

func TestCreateTripProviderUnavailable(t *testing.T) {
	provider := newMockProvider()
	provider.FailRoutes(fmt.Errorf("dial: %w", ports.ErrProviderUnavailable))

	_, _, err := CreateTrip(context.Background(), tripRequest(), newMemoryTripRepository(), provider, provider)
	if !errors.Is(err, ports.ErrProviderUnavailable) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}
