package store

import (
	"context"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., postgres, sqlite).
type Store interface {
	Trips() Trips

	// HealthPing verifies database connectivity with a cheap round trip.
	HealthPing(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}

// Trips persists saved trips. Every operation is scoped by userID; a trip
// belonging to another user behaves as if it does not exist.
type Trips interface {
	Save(ctx context.Context, t *model.SavedTrip) (*model.SavedTrip, error)
	Get(ctx context.Context, userID, tripID string) (*model.SavedTrip, error)
	List(ctx context.Context, userID string) ([]*model.SavedTrip, error)
	Delete(ctx context.Context, userID, tripID string) error
}
