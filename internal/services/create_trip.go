package services

import (
	"context"
	"eld-trip-service/internal/domain"
	"eld-trip-service/internal/platform/obs"
	"eld-trip-service/internal/ports"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type CreateTripRequest struct {
	StartLocation         string
	PickupLocation        string
	DropoffLocation       string
	StartTime             time.Time
	CurrentCycleHoursUsed float64
}

// CreateTrip resolves the trip's route, generates its duty-status schedule and
// stores both.
//
// The route is requested through start -> pickup -> dropoff in one call; the
// first leg is the drive to pickup and the summary is the whole drive. Both
// are rounded up to the quarter hour before simulation.
func CreateTrip(
	ctx context.Context,
	req CreateTripRequest,
	repo ports.TripRepository,
	geocoder ports.Geocoder,
	router ports.RouteProvider,
) (_ *domain.Trip, _ []domain.ELDLog, err error) {
	defer obs.Time(ctx, "trips.CreateTrip")(&err)

	trip := domain.NewTrip(req.StartLocation, req.PickupLocation, req.DropoffLocation, req.StartTime, req.CurrentCycleHoursUsed)
	if err := trip.Validate(); err != nil {
		return nil, nil, fmt.Errorf("create trip: %w", err)
	}

	addresses := []string{trip.StartLocation, trip.PickupLocation, trip.DropoffLocation}
	stops := make([]domain.Coordinates, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	for i, addr := range addresses {
		i, addr := i, addr
		g.Go(func() error {
			c, err := geocoder.Geocode(gctx, addr)
			if err != nil {
				return fmt.Errorf("geocode %q: %w", addr, err)
			}
			stops[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("create trip: %w", err)
	}

	// One route through the pickup, so DurationHours and DistanceMiles include the pickup leg.
	route, err := router.GetRoute(ctx, stops)
	if err != nil {
		return nil, nil, fmt.Errorf("create trip: get route: %w", err)
	}
	if len(route.Legs) != len(stops)-1 {
		return nil, nil, fmt.Errorf("create trip: route has %d legs, want %d", len(route.Legs), len(stops)-1)
	}

	if err := trip.ApplyRoute(route.DistanceMeters, route.DurationSeconds, route.Geometry); err != nil {
		return nil, nil, fmt.Errorf("create trip: %w", err)
	}

	pickupDrive := RoundUpToQuarterHour(route.Legs[0].DurationSeconds / 3600)
	totalDrive := RoundUpToQuarterHour(route.DurationSeconds / 3600)

	entries, err := GenerateSchedule(ScheduleParams{
		StartTime:      trip.StartTime,
		CycleHoursUsed: trip.CurrentCycleHoursUsed,
		PickupDrive:    pickupDrive,
		TotalDrive:     totalDrive,
		Waypoints:      trip.Route,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create trip: %w", err)
	}

	logs, err := repo.CreateTrip(ctx, trip, entries)
	if err != nil {
		return nil, nil, fmt.Errorf("create trip: store trip: %w", err)
	}

	obs.Logger.WithFields(logrus.Fields{
		"trip_id":      trip.ID,
		"pickup_drive": pickupDrive,
		"total_drive":  totalDrive,
		"logs":         len(logs),
	}).Info("trip created")

	return trip, logs, nil
}

func GetTrip(ctx context.Context, repo ports.TripRepository, id uuid.UUID) (*domain.Trip, error) {
	trip, err := repo.GetTrip(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

func ListTrips(ctx context.Context, repo ports.TripRepository) ([]*domain.Trip, error) {
	trips, err := repo.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}

func ListTripLogs(ctx context.Context, repo ports.TripRepository, tripID uuid.UUID) ([]domain.ELDLog, error) {
	logs, err := repo.ListLogs(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("list trip logs: %w", err)
	}
	return logs, nil
}

func DeleteTrip(ctx context.Context, repo ports.TripRepository, id uuid.UUID) error {
	if err := repo.DeleteTrip(ctx, id); err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	obs.Logger.WithField("trip_id", id).Info("trip deleted")
	return nil
}

func GetTripLog(ctx context.Context, repo ports.TripRepository, id uuid.UUID) (domain.ELDLog, error) {
	l, err := repo.GetLog(ctx, id)
	if err != nil {
		return domain.ELDLog{}, fmt.Errorf("get trip log: %w", err)
	}
	return l, nil
}
