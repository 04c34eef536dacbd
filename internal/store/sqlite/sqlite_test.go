package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
	"github.com/ronojoykumar/travel-itinerary-app/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func trip(userID string, destinations ...string) *model.SavedTrip {
	return &model.SavedTrip{
		UserID:       userID,
		TripType:     model.TripMultiCity,
		Destinations: destinations,
		StartDate:    "2026-04-01",
		EndDate:      "2026-04-07",
		Budget:       2500,
		Interests:    []string{"food", "history"},
		Itinerary: []model.ItineraryItem{
			{
				Type: model.ItemActivity,
				Day:  1,
				Activity: &model.Activity{
					Time: "09:00 AM", Title: "Senso-ji", Location: "Asakusa",
					Category: model.CategoryActivity, Price: 0, Rating: 4.7,
				},
			},
			{
				Type: model.ItemMeal,
				Day:  1,
				Meal: &model.Meal{MealType: model.MealLunch, Place: "Ichiran", Location: "Shibuya", Price: 12},
			},
		},
	}
}

func TestSaveAssignsIDAndCreationTime(t *testing.T) {
	st := newTestStore(t)
	out, err := st.Trips().Save(context.Background(), trip("u1", "Tokyo"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.WithinDuration(t, time.Now().UTC(), out.CreationTime, 5*time.Second)
}

func TestSaveKeepsProvidedID(t *testing.T) {
	st := newTestStore(t)
	in := trip("u1", "Tokyo")
	in.ID = "b2a7c8d0-0000-4000-8000-000000000001"
	out, err := st.Trips().Save(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
}

func TestGetRoundTripsItinerary(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	saved, err := st.Trips().Save(ctx, trip("u1", "Tokyo", "Kyoto"))
	require.NoError(t, err)

	got, err := st.Trips().Get(ctx, "u1", saved.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo", "Kyoto"}, got.Destinations)
	assert.Equal(t, []string{"food", "history"}, got.Interests)
	require.Len(t, got.Itinerary, 2)
	assert.True(t, got.Itinerary[0].Valid())
	assert.Equal(t, "Senso-ji", got.Itinerary[0].Activity.Title)
	assert.Equal(t, model.Price(12), got.Itinerary[1].Meal.Price)
}

func TestGetUnknownTrip(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Trips().Get(context.Background(), "u1", "b2a7c8d0-0000-4000-8000-00000000dead")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestListScopedAndOrdered(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	older := trip("u1", "Tokyo")
	older.CreationTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := st.Trips().Save(ctx, older)
	require.NoError(t, err)

	newer := trip("u1", "Seoul")
	newer.CreationTime = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err = st.Trips().Save(ctx, newer)
	require.NoError(t, err)

	_, err = st.Trips().Save(ctx, trip("u2", "Paris"))
	require.NoError(t, err)

	got, err := st.Trips().List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	assert.Equal(t, []string{"Seoul"}, got[0].Destinations)
	assert.Equal(t, []string{"Tokyo"}, got[1].Destinations)
}

func TestListEmptyUser(t *testing.T) {
	st := newTestStore(t)
	got, err := st.Trips().List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteScopedToUser(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	saved, err := st.Trips().Save(ctx, trip("u1", "Tokyo"))
	require.NoError(t, err)

	assert.ErrorIs(t, st.Trips().Delete(ctx, "u2", saved.ID), model.ErrNotFound)
	require.NoError(t, st.Trips().Delete(ctx, "u1", saved.ID))
	assert.ErrorIs(t, st.Trips().Delete(ctx, "u1", saved.ID), model.ErrNotFound)
}

func TestHealthPing(t *testing.T) {
	st := newTestStore(t)
	assert.NoError(t, st.HealthPing(context.Background()))
}

func TestDDLStatementsNonEmpty(t *testing.T) {
	stmts := DDLStatements()
	require.NotEmpty(t, stmts)
	assert.Contains(t, stmts[0], "CREATE TABLE")
}
