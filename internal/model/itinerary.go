package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ItemType discriminates the itinerary item variants.
type ItemType string

const (
	ItemActivity  ItemType = "activity"
	ItemMeal      ItemType = "meal"
	ItemTransport ItemType = "transportOptions"
)

// ActivityCategory buckets an activity for display and cost views.
type ActivityCategory string

const (
	CategoryFood     ActivityCategory = "food"
	CategoryActivity ActivityCategory = "activity"
	CategoryRelax    ActivityCategory = "relax"
)

// MealType names the meal slot.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// TransportMode is a ground-transport option kind.
type TransportMode string

const (
	ModeCab   TransportMode = "cab"
	ModeBus   TransportMode = "bus"
	ModeTrain TransportMode = "train"
)

// Price tolerates the numeric and string shapes models emit for money.
// "25", "$25", "25 USD" and 25 all decode to 25; garbage decodes to 0.
// It never fails a surrounding unmarshal.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*p = 0
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*p = Price(v)
		return nil
	}
	// String-typed price: strip everything but digits and the decimal point.
	var quoted string
	if err := json.Unmarshal(b, &quoted); err != nil {
		*p = 0
		return nil
	}
	var sb strings.Builder
	for _, r := range quoted {
		if (r >= '0' && r <= '9') || r == '.' {
			sb.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = Price(v)
	return nil
}

// Activity is a scheduled, priced thing to do.
type Activity struct {
	Time        string           `json:"time"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Category    ActivityCategory `json:"category"`
	Price       Price            `json:"price"`
	Rating      float64          `json:"rating"`
}

// Meal is a restaurant slot for one of the three daily meals.
type Meal struct {
	MealType MealType `json:"mealType"`
	Place    string   `json:"place"`
	Location string   `json:"location"`
	Price    Price    `json:"price"`
}

// TransportLeg is one way of making a city-to-city move.
type TransportLeg struct {
	Type     TransportMode `json:"type"`
	Duration string        `json:"duration"`
	Price    Price         `json:"price"`
}

// TransportOptions groups the candidate legs for a single move.
type TransportOptions struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Options []TransportLeg `json:"options"`
}

// ItineraryItem is the tagged union over the three variants. Exactly one of
// Activity, Meal or Transport is non-nil for a well-formed item; consumers
// switch on Type. Day is 1-indexed.
type ItineraryItem struct {
	Type ItemType
	Day  int

	Activity  *Activity
	Meal      *Meal
	Transport *TransportOptions
}

// itineraryItemWire is the on-the-wire shape: {"type":..., "day":..., "data":{...}}.
type itineraryItemWire struct {
	Type ItemType        `json:"type"`
	Day  int             `json:"day"`
	Data json.RawMessage `json:"data"`
}

// UnmarshalJSON decodes a wire item into the matching variant. A missing or
// unrecognized discriminator, or a malformed payload, yields an item with no
// variant set rather than an error, so one bad element never discards the
// whole itinerary.
func (it *ItineraryItem) UnmarshalJSON(b []byte) error {
	var w itineraryItemWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	it.Type = w.Type
	it.Day = w.Day
	it.Activity, it.Meal, it.Transport = nil, nil, nil

	switch w.Type {
	case ItemActivity:
		var a Activity
		if err := json.Unmarshal(w.Data, &a); err == nil {
			it.Activity = &a
		}
	case ItemMeal:
		var m Meal
		if err := json.Unmarshal(w.Data, &m); err == nil {
			it.Meal = &m
		}
	case ItemTransport:
		var t TransportOptions
		if err := json.Unmarshal(w.Data, &t); err == nil {
			it.Transport = &t
		}
	}
	return nil
}

func (it ItineraryItem) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch it.Type {
	case ItemActivity:
		data = it.Activity
	case ItemMeal:
		data = it.Meal
	case ItemTransport:
		data = it.Transport
	}
	if data == nil {
		data = struct{}{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(itineraryItemWire{Type: it.Type, Day: it.Day, Data: raw})
}

// Valid reports whether the item carries the payload its discriminator claims.
func (it ItineraryItem) Valid() bool {
	switch it.Type {
	case ItemActivity:
		return it.Activity != nil
	case ItemMeal:
		return it.Meal != nil
	case ItemTransport:
		return it.Transport != nil
	}
	return false
}
