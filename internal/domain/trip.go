package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const metersPerMile = 1609.34

var ErrInvalidTrip = errors.New("invalid trip")

// Trip aggregate: the addresses a driver travels between, the duty-cycle hours
// already used, and the heavy-vehicle route resolved for the trip.
type Trip struct {
	ID                    uuid.UUID
	StartLocation         string
	PickupLocation        string
	DropoffLocation       string
	StartTime             time.Time
	CurrentCycleHoursUsed float64
	DistanceMiles         float64
	DurationHours         float64
	Route                 []Coordinates
}

func NewTrip(start, pickup, dropoff string, startTime time.Time, cycleHoursUsed float64) *Trip {
	return &Trip{
		ID:                    uuid.New(),
		StartLocation:         strings.TrimSpace(start),
		PickupLocation:        strings.TrimSpace(pickup),
		DropoffLocation:       strings.TrimSpace(dropoff),
		StartTime:             startTime,
		CurrentCycleHoursUsed: cycleHoursUsed,
	}
}

// Validate checks the request-level invariants of a trip before routing.
func (t *Trip) Validate() error {
	if t.StartLocation == "" || t.PickupLocation == "" || t.DropoffLocation == "" {
		return fmt.Errorf("validate trip: %w: start, pickup and dropoff locations are required", ErrInvalidTrip)
	}
	if t.StartTime.IsZero() {
		return fmt.Errorf("validate trip: %w: start time is required", ErrInvalidTrip)
	}
	if t.CurrentCycleHoursUsed < 0 {
		return fmt.Errorf("validate trip: %w: current cycle hours used must be >= 0, got %v", ErrInvalidTrip, t.CurrentCycleHoursUsed)
	}
	return nil
}

// Record the resolved route on the trip.
func (t *Trip) ApplyRoute(distanceMeters, durationSeconds float64, geometry []Coordinates) error {
	if len(geometry) == 0 {
		return fmt.Errorf("apply route: trip %s: route geometry is empty", t.ID)
	}
	t.DistanceMiles = distanceMeters / metersPerMile
	t.DurationHours = durationSeconds / 3600
	t.Route = geometry
	return nil
}
