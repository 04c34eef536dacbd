package services

import (
	"context"
	"strings"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
	"github.com/ronojoykumar/travel-itinerary-app/internal/store"
)

// TripService persists and retrieves saved trips. Records are read and
// written wholesale; the itinerary array is never partially patched.
type TripService struct {
	store store.Store
}

func NewTripService(s store.Store) *TripService {
	return &TripService{store: s}
}

func (s *TripService) SaveTrip(ctx context.Context, t *model.SavedTrip) (*model.SavedTrip, error) {
	if strings.TrimSpace(t.UserID) == "" {
		return nil, model.ErrValidation
	}
	if len(t.Destinations) == 0 {
		return nil, model.ErrValidation
	}
	return s.store.Trips().Save(ctx, t)
}

func (s *TripService) GetTrip(ctx context.Context, userID, tripID string) (*model.SavedTrip, error) {
	return s.store.Trips().Get(ctx, userID, tripID)
}

func (s *TripService) ListTrips(ctx context.Context, userID string) ([]*model.SavedTrip, error) {
	return s.store.Trips().List(ctx, userID)
}

func (s *TripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	return s.store.Trips().Delete(ctx, userID, tripID)
}
