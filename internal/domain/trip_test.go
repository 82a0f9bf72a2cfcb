package domain

import (
	"math"
	"testing"
	"time"
)

func TestTripApplyRoute(t *testing.T) {
	// build test data
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	trip := NewTrip(" Phoenix, AZ ", "Tucson, AZ", "El Paso, TX", start, 12.5)

	geometry := []Coordinates{
		{Lon: -112.07, Lat: 33.45},
		{Lon: -110.97, Lat: 32.22},
		{Lon: -106.44, Lat: 31.76},
	}

	// call the method under test
	if err := trip.ApplyRoute(1609.34*430, 6.5*3600, geometry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// verify behavior
	if trip.StartLocation != "Phoenix, AZ" {
		t.Errorf("StartLocation = %q, want trimmed %q", trip.StartLocation, "Phoenix, AZ")
	}
	if math.Abs(trip.DistanceMiles-430) > 1e-9 {
		t.Errorf("DistanceMiles = %v, want 430", trip.DistanceMiles)
	}
	if trip.DurationHours != 6.5 {
		t.Errorf("DurationHours = %v, want 6.5", trip.DurationHours)
	}
	if len(trip.Route) != 3 {
		t.Errorf("len(Route) = %d, want 3", len(trip.Route))
	}
}

func TestTripApplyRouteRejectsEmptyGeometry(t *testing.T) {
	trip := NewTrip("A", "B", "C", time.Now(), 0)
	if err := trip.ApplyRoute(100, 60, nil); err == nil {
		t.Fatal("expected error for empty geometry")
	}
}

func TestTripValidate(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		trip    *Trip
		wantErr bool
	}{
		{name: "valid", trip: NewTrip("A", "B", "C", start, 0)},
		{name: "missing pickup", trip: NewTrip("A", "  ", "C", start, 0), wantErr: true},
		{name: "zero start time", trip: NewTrip("A", "B", "C", time.Time{}, 0), wantErr: true},
		{name: "negative cycle hours", trip: NewTrip("A", "B", "C", start, -1), wantErr: true},
		{name: "over the cap is accepted", trip: NewTrip("A", "B", "C", start, 75)},
	}

	for _, tc := range tests {
		err := tc.trip.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: Validate() err = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestEnumsValid(t *testing.T) {
	if !StatusSleeperBerth.Valid() || DutyStatus("SLEEPING").Valid() {
		t.Fatal("DutyStatus.Valid mismatch")
	}
	if !ActionOffDays.Valid() || Action("NAP").Valid() {
		t.Fatal("Action.Valid mismatch")
	}
}

func TestCoordinatesOrder(t *testing.T) {
	c, ok := CoordinatesFromList([]float64{-112.07, 33.45})
	if !ok {
		t.Fatal("expected ok")
	}
	if got := c.LatLon(); got[0] != 33.45 || got[1] != -112.07 {
		t.Fatalf("LatLon() = %v, want [33.45 -112.07]", got)
	}
	if _, ok := CoordinatesFromList([]float64{1}); ok {
		t.Fatal("expected short pair to be rejected")
	}
}
