package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
	"github.com/ronojoykumar/travel-itinerary-app/internal/store/sqlite"
)

func newTripService(t *testing.T) *TripService {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return NewTripService(st)
}

func savedTrip(userID string) *model.SavedTrip {
	return &model.SavedTrip{
		UserID:       userID,
		TripType:     model.TripWeekend,
		Destinations: []string{"Tokyo"},
		StartDate:    "2026-03-14",
		EndDate:      "2026-03-16",
		Budget:       1500,
		Interests:    []string{"food"},
	}
}

func TestSaveTripValidation(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	noUser := savedTrip("")
	_, err := svc.SaveTrip(ctx, noUser)
	assert.ErrorIs(t, err, model.ErrValidation)

	blankUser := savedTrip("   ")
	_, err = svc.SaveTrip(ctx, blankUser)
	assert.ErrorIs(t, err, model.ErrValidation)

	noDest := savedTrip("u1")
	noDest.Destinations = nil
	_, err = svc.SaveTrip(ctx, noDest)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestSaveAndGetTrip(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	saved, err := svc.SaveTrip(ctx, savedTrip("u1"))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreationTime.IsZero())

	got, err := svc.GetTrip(ctx, "u1", saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, []string{"Tokyo"}, got.Destinations)
}

func TestGetTripScopedToUser(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	saved, err := svc.SaveTrip(ctx, savedTrip("u1"))
	require.NoError(t, err)

	_, err = svc.GetTrip(ctx, "other-user", saved.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteTrip(t *testing.T) {
	svc := newTripService(t)
	ctx := context.Background()

	saved, err := svc.SaveTrip(ctx, savedTrip("u1"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTrip(ctx, "u1", saved.ID))
	assert.ErrorIs(t, svc.DeleteTrip(ctx, "u1", saved.ID), model.ErrNotFound)
	_, err = svc.GetTrip(ctx, "u1", saved.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
