package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
)

func weekendParams() model.TripParameters {
	return model.TripParameters{
		TripType:     model.TripWeekend,
		Destinations: []string{"Tokyo"},
		StartDate:    "2026-03-14",
		EndDate:      "2026-03-16",
		Budget:       1500,
		Interests:    []string{"food", "culture"},
	}
}

func TestItineraryPrompt(t *testing.T) {
	p := Itinerary(weekendParams())
	assert.Contains(t, p.User, "Tokyo")
	assert.Contains(t, p.User, "3-day trip")
	assert.Contains(t, p.User, "3-4 activities")
	assert.Contains(t, p.User, "3 meals (breakfast, lunch, dinner)")
	assert.Contains(t, p.User, "Budget: $1500")
	assert.Contains(t, p.User, noFences)
	assert.Equal(t, int64(itineraryMaxTokens), p.MaxTokens)
	assert.Equal(t, structuredTemperature, p.Temperature)
}

func TestItineraryPromptCondensedForLongTrips(t *testing.T) {
	params := weekendParams()
	params.TripType = model.TripMultiCity
	params.Destinations = []string{"Tokyo", "Kyoto", "Osaka"}
	params.StartDate = "2026-03-01"
	params.EndDate = "2026-03-14" // 14 days, over the threshold

	p := Itinerary(params)
	assert.Contains(t, p.User, "2 activities")
	assert.Contains(t, p.User, "2 meals (breakfast, dinner)")
	assert.NotContains(t, p.User, "3-4 activities")
	assert.Contains(t, p.User, "Tokyo and Kyoto and Osaka")
	assert.Equal(t, int64(condensedMaxTokens), p.MaxTokens)
}

func TestRejigZeroDeltaModerateIsStructuralNoOp(t *testing.T) {
	p := Rejig(nil, nil, 1500, 1500, "")
	assert.Contains(t, p.User, "1. PRESERVE all swapped activities")
	assert.Contains(t, p.User, "2. Keep the same day structure")
	assert.NotContains(t, p.User, "meal prices")
	assert.NotContains(t, p.User, "Pace is")
	assert.Contains(t, p.User, "Trip pace: moderate")
	assert.Contains(t, p.User, "(unchanged by $0)")
}

func TestRejigBudgetDecrease(t *testing.T) {
	p := Rejig(nil, nil, 1000, 1500, "relaxed")
	assert.Contains(t, p.User, "(decreased by $500)")
	assert.Contains(t, p.User, "2. Budget decreased: Replace meals with cheaper options")
	assert.Contains(t, p.User, "3. Pace is \"relaxed\"")
	assert.Contains(t, p.User, "4. Keep the same day structure")
}

func TestRejigBudgetIncreasePacked(t *testing.T) {
	p := Rejig(nil, nil, 2000, 1500, "packed")
	assert.Contains(t, p.User, "(increased by $500)")
	assert.Contains(t, p.User, "2. Budget increased: Upgrade meals")
	assert.Contains(t, p.User, "3. Pace is \"packed\"")
}

func TestRejigPinsSwappedActivities(t *testing.T) {
	swapped := []model.ItineraryItem{{
		Type: model.ItemActivity,
		Day:  1,
		Activity: &model.Activity{
			Title: "teamLab Planets", Category: model.CategoryActivity, Price: 30,
		},
	}}
	p := Rejig(nil, swapped, 1500, 1500, "")
	assert.Contains(t, p.User, "teamLab Planets")
	assert.Contains(t, p.User, "DO NOT CHANGE THESE")
	assert.Equal(t, int64(itineraryMaxTokens), p.MaxTokens)
}

func TestChecklistPrompt(t *testing.T) {
	p := Checklist(weekendParams())
	assert.Contains(t, p.User, "packing checklist")
	assert.Contains(t, p.User, `"categories"`)
	assert.Equal(t, int64(ancillaryMaxTokens), p.MaxTokens)
}

func TestSuggestionsBudgetDirectionWording(t *testing.T) {
	up := Suggestions(12, 300, "", "Tokyo")
	assert.Contains(t, up.User, "Increased by $300")
	assert.Contains(t, up.User, "Pace change: No change")

	down := Suggestions(12, -300, "relaxed", "Tokyo")
	assert.Contains(t, down.User, "Decreased by $300")
	assert.Contains(t, down.User, "Pace change: relaxed")

	flat := Suggestions(12, 0, "", "Tokyo")
	assert.Contains(t, flat.User, "Budget change: No change")
}

func TestChatPromptGroundsOnItinerary(t *testing.T) {
	items := []model.ItineraryItem{{
		Type: model.ItemMeal,
		Day:  1,
		Meal: &model.Meal{MealType: model.MealDinner, Place: "Ichiran", Price: 15},
	}}
	p := Chat(weekendParams(), items)
	assert.Contains(t, p.System, "TripPilot")
	assert.Contains(t, p.System, "Ichiran")
	assert.Contains(t, p.System, "your trip to Tokyo")
	assert.Empty(t, p.User)
	assert.Equal(t, int64(chatMaxTokens), p.MaxTokens)
	assert.Equal(t, chatTemperature, p.Temperature)
}

func TestAllStructuredPromptsForbidFences(t *testing.T) {
	params := weekendParams()
	prompts := []Prompt{
		Itinerary(params),
		Rejig(nil, nil, 1500, 1500, ""),
		Alternatives(model.Activity{Title: "Museum"}, "Tokyo", params.Interests, params.Budget),
		Checklist(params),
		SafetyCulture("Tokyo"),
		LocationTips("Asakusa", "Tokyo", params.Interests),
		Suggestions(10, 0, "", "Tokyo"),
	}
	for _, p := range prompts {
		assert.True(t, strings.Contains(p.User, noFences))
	}
}
