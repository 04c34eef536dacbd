package services

import (
	"context"
	"errors"

	"github.com/ronojoykumar/travel-itinerary-app/internal/jsonx"
	"github.com/ronojoykumar/travel-itinerary-app/internal/llm"
	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
	"github.com/ronojoykumar/travel-itinerary-app/internal/prompt"
)

// ErrRegenRequired signals that the model replied but the reply did not
// validate into the expected shape. The caller should surface the
// REGEN_REQUIRED sentinel so the client can request a fresh generation.
var ErrRegenRequired = errors.New("model response failed shape validation")

// Planner orchestrates the prompt -> completion -> extract -> validate
// pipeline for each generation kind.
type Planner struct {
	llm  llm.Completer
	mode jsonx.Mode
}

// NewPlanner wires a completer with the configured extraction mode.
func NewPlanner(c llm.Completer, strictExtract bool) *Planner {
	mode := jsonx.Greedy
	if strictExtract {
		mode = jsonx.Strict
	}
	return &Planner{llm: c, mode: mode}
}

// GenerateItinerary produces a full day-by-day itinerary. A response that
// does not validate into a non-empty item array returns ErrRegenRequired.
func (s *Planner) GenerateItinerary(ctx context.Context, p model.TripParameters) ([]model.ItineraryItem, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	raw, err := s.llm.Complete(ctx, prompt.Itinerary(p))
	if err != nil {
		return nil, err
	}
	res := jsonx.NonEmpty(jsonx.Array[model.ItineraryItem](raw, s.mode), raw)
	if !res.OK {
		return nil, ErrRegenRequired
	}
	return res.Data, nil
}

// Rejig regenerates an itinerary after budget, pace or activity-swap
// adjustments. Same shape contract as GenerateItinerary.
func (s *Planner) Rejig(ctx context.Context, original, swapped []model.ItineraryItem, newBudget, originalBudget int, pace string) ([]model.ItineraryItem, error) {
	raw, err := s.llm.Complete(ctx, prompt.Rejig(original, swapped, newBudget, originalBudget, pace))
	if err != nil {
		return nil, err
	}
	res := jsonx.NonEmpty(jsonx.Array[model.ItineraryItem](raw, s.mode), raw)
	if !res.OK {
		return nil, ErrRegenRequired
	}
	return res.Data, nil
}

// Alternatives suggests replacement activities for one itinerary slot.
func (s *Planner) Alternatives(ctx context.Context, activity model.Activity, destination string, interests []string, budget int) ([]model.Activity, error) {
	raw, err := s.llm.Complete(ctx, prompt.Alternatives(activity, destination, interests, budget))
	if err != nil {
		return nil, err
	}
	res := jsonx.Array[model.Activity](raw, s.mode)
	if !res.OK {
		return nil, ErrRegenRequired
	}
	return res.Data, nil
}

// Suggestions produces 2-3 recommendations after a budget or pace change.
func (s *Planner) Suggestions(ctx context.Context, itineraryLen, budgetChange int, paceChange, destination string) ([]model.Suggestion, error) {
	raw, err := s.llm.Complete(ctx, prompt.Suggestions(itineraryLen, budgetChange, paceChange, destination))
	if err != nil {
		return nil, err
	}
	res := jsonx.Array[model.Suggestion](raw, s.mode)
	if !res.OK {
		return nil, ErrRegenRequired
	}
	return res.Data, nil
}

// LocationTips produces insider tips for a single itinerary location.
func (s *Planner) LocationTips(ctx context.Context, location, destination string, interests []string) ([]string, error) {
	raw, err := s.llm.Complete(ctx, prompt.LocationTips(location, destination, interests))
	if err != nil {
		return nil, err
	}
	res := jsonx.Array[string](raw, s.mode)
	if !res.OK {
		return nil, ErrRegenRequired
	}
	return res.Data, nil
}

// Checklist produces a categorized packing list.
func (s *Planner) Checklist(ctx context.Context, p model.TripParameters) (*model.Checklist, error) {
	raw, err := s.llm.Complete(ctx, prompt.Checklist(p))
	if err != nil {
		return nil, err
	}
	res := jsonx.Object[model.Checklist](raw, s.mode)
	if !res.OK {
		return nil, ErrRegenRequired
	}
	return &res.Data, nil
}

// SafetyCulture produces the safety and culture brief for a destination.
func (s *Planner) SafetyCulture(ctx context.Context, destination string) (*model.SafetyGuidance, error) {
	raw, err := s.llm.Complete(ctx, prompt.SafetyCulture(destination))
	if err != nil {
		return nil, err
	}
	res := jsonx.Object[model.SafetyGuidance](raw, s.mode)
	if !res.OK {
		return nil, ErrRegenRequired
	}
	return &res.Data, nil
}

// Chat answers a live-trip question grounded in the trip's itinerary.
// The reply is free text, so no shape validation applies.
func (s *Planner) Chat(ctx context.Context, p model.TripParameters, itinerary []model.ItineraryItem, history []llm.Message) (string, error) {
	return s.llm.Chat(ctx, prompt.Chat(p, itinerary), history)
}
