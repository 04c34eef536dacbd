package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
)

func TestCountryOf(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Tokyo", "Japan", true},
		{"shibuya, tokyo", "Japan", true},
		{"Seoul", "South Korea", true},
		{"Gangnam District", "South Korea", true},
		{"Singapore", "Singapore", true},
		{"Dubai Marina", "UAE", true},
		{"London Eye", "United Kingdom", true},
		{"UK", "United Kingdom", true},
		{"Atlantis", "", false},
	}
	for _, tc := range cases {
		got, ok := CountryOf(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestCountryOfWordBoundary(t *testing.T) {
	// "uk" must match as a word, not inside e.g. "Fukuoka".
	_, ok := CountryOf("Fukuoka")
	assert.False(t, ok)
}

func TestInferCountry(t *testing.T) {
	items := []model.ItineraryItem{
		{Type: model.ItemMeal, Day: 1, Meal: &model.Meal{Place: "Ramen shop", Location: ""}},
		{Type: model.ItemActivity, Day: 1, Activity: &model.Activity{Title: "Morning walk", Location: "Asakusa, Tokyo"}},
	}
	c, ok := InferCountry(items)
	assert.True(t, ok)
	assert.Equal(t, "Japan", c)
}

func TestInferCountryNoMatch(t *testing.T) {
	items := []model.ItineraryItem{
		{Type: model.ItemActivity, Day: 1, Activity: &model.Activity{Title: "Beach day", Location: "somewhere sunny"}},
		{Type: model.ItemActivity, Day: 1},
	}
	_, ok := InferCountry(items)
	assert.False(t, ok)
}

func TestIsInternational(t *testing.T) {
	assert.True(t, IsInternational(model.TransportOptions{From: "Tokyo", To: "Seoul"}))
	assert.False(t, IsInternational(model.TransportOptions{From: "Tokyo", To: "Kyoto"}))
	// Unrecognized endpoints are treated as domestic.
	assert.False(t, IsInternational(model.TransportOptions{From: "Tokyo", To: "Narnia"}))
	assert.False(t, IsInternational(model.TransportOptions{From: "", To: "Seoul"}))
}
