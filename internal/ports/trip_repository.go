package ports

import (
	"context"
	"eld-trip-service/internal/domain"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrTripNotFound = errors.New("trip not found")
	ErrLogNotFound  = errors.New("eld log not found")
)

// Port: a boundary for storing trips and their duty-status logs.
type TripRepository interface {
	// Store a trip and its logs atomically, returning the persisted logs.
	CreateTrip(ctx context.Context, trip *domain.Trip, logs []domain.LogEntry) ([]domain.ELDLog, error)
	// Errors wrap ErrTripNotFound when no trip has the id.
	GetTrip(ctx context.Context, id uuid.UUID) (*domain.Trip, error)
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
	// Remove a trip together with its logs. Errors wrap ErrTripNotFound.
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	// Logs of one trip in chronological order.
	ListLogs(ctx context.Context, tripID uuid.UUID) ([]domain.ELDLog, error)
	// Errors wrap ErrLogNotFound when no log has the id.
	GetLog(ctx context.Context, id uuid.UUID) (domain.ELDLog, error)
}
