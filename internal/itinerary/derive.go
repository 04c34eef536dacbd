// Package itinerary holds the pure derived views every page re-computes from
// the validated itinerary array: day buckets, cost totals, place inference
// and booking candidates. Nothing here mutates the source slice or panics on
// a field the model forgot to populate.
package itinerary

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
)

// DayItems returns the items scheduled for the given 1-indexed day. Days
// with no items simply return an empty slice; gaps are tolerated.
func DayItems(items []model.ItineraryItem, day int) []model.ItineraryItem {
	return lo.Filter(items, func(it model.ItineraryItem, _ int) bool {
		return it.Day == day
	})
}

// MealKey identifies a meal slot for selection purposes.
type MealKey struct {
	Day  int
	Type model.MealType
}

// Selection records which optional items the user has actually chosen. A nil
// map means "include everything" for that kind, which is the pre-customize
// default.
type Selection struct {
	// Meals marks the selected meal slots.
	Meals map[MealKey]bool
	// Transport picks one leg per day for days that have a transport set.
	Transport map[int]model.TransportMode
}

// TotalCost sums the trip cost in source (USD) units: every activity price,
// the selected meals, and the selected transport leg per day. Prices are
// already numeric-coerced at decode time, so string-typed junk contributes 0.
func TotalCost(items []model.ItineraryItem, sel Selection) float64 {
	return lo.SumBy(items, func(it model.ItineraryItem) float64 {
		switch it.Type {
		case model.ItemActivity:
			if it.Activity != nil {
				return float64(it.Activity.Price)
			}
		case model.ItemMeal:
			if it.Meal == nil {
				return 0
			}
			if sel.Meals != nil && !sel.Meals[MealKey{Day: it.Day, Type: it.Meal.MealType}] {
				return 0
			}
			return float64(it.Meal.Price)
		case model.ItemTransport:
			if it.Transport == nil {
				return 0
			}
			mode, ok := sel.Transport[it.Day]
			if !ok {
				return 0
			}
			for _, leg := range it.Transport.Options {
				if leg.Type == mode {
					return float64(leg.Price)
				}
			}
		}
		return 0
	})
}

// DayCost is TotalCost restricted to one day.
func DayCost(items []model.ItineraryItem, day int, sel Selection) float64 {
	return TotalCost(DayItems(items, day), sel)
}

// CostDescription renders the "Transport + N nights accommodation + X
// activities + Y meals" summary line shown next to the estimated total.
func CostDescription(items []model.ItineraryItem, p model.TripParameters) string {
	activities := lo.CountBy(items, func(it model.ItineraryItem) bool { return it.Type == model.ItemActivity })
	meals := lo.CountBy(items, func(it model.ItineraryItem) bool { return it.Type == model.ItemMeal })
	transports := lo.CountBy(items, func(it model.ItineraryItem) bool { return it.Type == model.ItemTransport })
	nights := p.DayCount() - 1

	var parts []string
	if transports > 0 {
		parts = append(parts, "Transport")
	}
	if nights > 0 {
		parts = append(parts, fmt.Sprintf("%d nights accommodation", nights))
	}
	if activities > 0 {
		parts = append(parts, fmt.Sprintf("%d activities", activities))
	}
	if meals > 0 {
		parts = append(parts, fmt.Sprintf("%d meals", meals))
	}
	return strings.Join(parts, " + ")
}

var lodgingWords = []string{
	"hotel", "check-in", "check in", "checkin", "ryokan", "hostel",
	"resort", "airbnb", "guesthouse", "guest house", "lodge", "accommodation",
}

// isLodging reports whether an activity looks like a lodging check-in rather
// than a bookable thing to do.
func isLodging(a model.Activity) bool {
	s := strings.ToLower(a.Title + " " + a.Description)
	for _, w := range lodgingWords {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// LodgingCandidates returns the activities that represent accommodation
// check-ins, in itinerary order.
func LodgingCandidates(items []model.ItineraryItem) []model.Activity {
	return lo.FilterMap(items, func(it model.ItineraryItem, _ int) (model.Activity, bool) {
		if it.Type != model.ItemActivity || it.Activity == nil {
			return model.Activity{}, false
		}
		return *it.Activity, isLodging(*it.Activity)
	})
}

// BookableActivities returns the activities that belong in the "things to do"
// booking section, i.e. everything that is not lodging.
func BookableActivities(items []model.ItineraryItem) []model.Activity {
	return lo.FilterMap(items, func(it model.ItineraryItem, _ int) (model.Activity, bool) {
		if it.Type != model.ItemActivity || it.Activity == nil {
			return model.Activity{}, false
		}
		return *it.Activity, !isLodging(*it.Activity)
	})
}

// HotelName picks a display name for a day's accommodation: the first lodging
// candidate on that day, else a generic name built from the city.
func HotelName(items []model.ItineraryItem, day int, city string) string {
	for _, a := range LodgingCandidates(DayItems(items, day)) {
		if a.Title != "" {
			return a.Title
		}
	}
	if city == "" {
		city = "Destination"
	}
	return "Hotel in " + city
}
