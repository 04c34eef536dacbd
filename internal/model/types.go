package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TripType selects the overall trip shape.
type TripType string

const (
	TripWeekend   TripType = "Weekend"
	TripMultiCity TripType = "MultiCity"
)

// TripParameters is the user-supplied input for every generation request.
// Dates are calendar dates without a time component.
type TripParameters struct {
	TripType     TripType `json:"tripType"`
	Destinations []string `json:"destinations"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Budget       int      `json:"budget"`
	Interests    []string `json:"interests"`
}

// Validate checks the invariants callers rely on before prompt construction.
func (p *TripParameters) Validate() error {
	if len(p.Destinations) == 0 {
		return fmt.Errorf("%w: at least one destination is required", ErrValidation)
	}
	if p.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", ErrValidation)
	}
	start := ParseDate(p.StartDate)
	end := ParseDate(p.EndDate)
	if end.Before(start) {
		return fmt.Errorf("%w: end date precedes start date", ErrValidation)
	}
	return nil
}

// DayCount returns the trip length in days, inclusive of both endpoints.
// Equal start and end dates count as a single day.
func (p *TripParameters) DayCount() int {
	start := ParseDate(p.StartDate)
	end := ParseDate(p.EndDate)
	if end.Before(start) {
		return 1
	}
	diff := end.Sub(start).Hours() / 24
	return int(math.Ceil(diff)) + 1
}

// ParseDate accepts "2006-01-02" (optionally with a trailing time component)
// or "01/02/2006". Anything unparseable resolves to today, truncated to the
// date, so downstream computations keep working on malformed input.
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexByte(raw, 'T'); i > 0 {
		raw = raw[:i]
	}
	for _, layout := range []string{"2006-01-02", "01/02/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// SavedTrip is a persisted itinerary record. Records are read and written
// wholesale; the itinerary array is never partially patched.
type SavedTrip struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	TripType     TripType        `json:"tripType"`
	Destinations []string        `json:"destinations"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate"`
	Budget       int             `json:"budget"`
	Interests    []string        `json:"interests"`
	Itinerary    []ItineraryItem `json:"itinerary"`
	CreationTime time.Time       `json:"creationTime"`
}
