package api

import (
	"encoding/json"
	"errors"
	"net/http"

	respond "github.com/ronojoykumar/travel-itinerary-app/internal/api/respond"
	"github.com/ronojoykumar/travel-itinerary-app/internal/llm"
	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
	"github.com/ronojoykumar/travel-itinerary-app/internal/services"
)

// PlannerHandler is a thin HTTP transport over the generation pipelines.
type PlannerHandler struct {
	svc *services.Planner
}

func NewPlannerHandler(svc *services.Planner) *PlannerHandler { return &PlannerHandler{svc: svc} }

// GenerateItinerary POST /api/itinerary/generate
func (h *PlannerHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var params model.TripParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	items, err := h.svc.GenerateItinerary(r.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			respond.WriteBadRequest(w, err.Error())
		case errors.Is(err, services.ErrRegenRequired):
			writeRegenItinerary(w)
		default:
			writeLLMError(w, err, "Failed to generate itinerary")
		}
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"itinerary": items})
}

// RejigItinerary POST /api/itinerary/rejig
func (h *PlannerHandler) RejigItinerary(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OriginalItinerary []model.ItineraryItem `json:"originalItinerary"`
		SwappedActivities []model.ItineraryItem `json:"swappedActivities"`
		NewBudget         int                   `json:"newBudget"`
		OriginalBudget    int                   `json:"originalBudget"`
		Pace              string                `json:"pace"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	items, err := h.svc.Rejig(r.Context(), req.OriginalItinerary, req.SwappedActivities, req.NewBudget, req.OriginalBudget, req.Pace)
	if err != nil {
		if errors.Is(err, services.ErrRegenRequired) {
			writeRegenItinerary(w)
		} else {
			writeLLMError(w, err, "Failed to rejig itinerary")
		}
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"itinerary": items})
}

// GenerateAlternatives POST /api/itinerary/alternatives
func (h *PlannerHandler) GenerateAlternatives(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Activity    model.Activity `json:"activity"`
		Destination string         `json:"destination"`
		Interests   []string       `json:"interests"`
		Budget      int            `json:"budget"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	alts, err := h.svc.Alternatives(r.Context(), req.Activity, req.Destination, req.Interests, req.Budget)
	if err != nil {
		writeLLMError(w, err, "Failed to generate alternatives")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"alternatives": alts})
}

// GenerateSuggestions POST /api/itinerary/suggestions
func (h *PlannerHandler) GenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Itinerary    []model.ItineraryItem `json:"itinerary"`
		BudgetChange int                   `json:"budgetChange"`
		PaceChange   string                `json:"paceChange"`
		Destination  string                `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	sugg, err := h.svc.Suggestions(r.Context(), len(req.Itinerary), req.BudgetChange, req.PaceChange, req.Destination)
	if err != nil {
		writeLLMError(w, err, "Failed to generate suggestions")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"suggestions": sugg})
}

// GenerateLocationTips POST /api/itinerary/location-tips
func (h *PlannerHandler) GenerateLocationTips(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Location    string   `json:"location"`
		Destination string   `json:"destination"`
		Interests   []string `json:"interests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	tips, err := h.svc.LocationTips(r.Context(), req.Location, req.Destination, req.Interests)
	if err != nil {
		writeLLMError(w, err, "Failed to generate tips")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"tips": tips})
}

// GenerateChecklist POST /api/itinerary/checklist
func (h *PlannerHandler) GenerateChecklist(w http.ResponseWriter, r *http.Request) {
	var params model.TripParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	checklist, err := h.svc.Checklist(r.Context(), params)
	if err != nil {
		if errors.Is(err, services.ErrRegenRequired) {
			respond.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":      model.RegenRequired,
				"categories": []model.ChecklistCategory{},
			})
		} else {
			writeLLMError(w, err, "Failed to generate checklist")
		}
		return
	}
	respond.WriteJSON(w, http.StatusOK, checklist)
}

// GenerateSafetyCulture POST /api/itinerary/safety-culture
func (h *PlannerHandler) GenerateSafetyCulture(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Destination string `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	guidance, err := h.svc.SafetyCulture(r.Context(), req.Destination)
	if err != nil {
		writeLLMError(w, err, "Failed to generate safety tips")
		return
	}
	respond.WriteJSON(w, http.StatusOK, guidance)
}

// Chat POST /api/chat
func (h *PlannerHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []llm.Message `json:"messages"`
		TripData struct {
			Destinations []string              `json:"destinations"`
			StartDate    string                `json:"startDate"`
			EndDate      string                `json:"endDate"`
			Itinerary    []model.ItineraryItem `json:"itinerary"`
		} `json:"tripData"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	params := model.TripParameters{
		Destinations: req.TripData.Destinations,
		StartDate:    req.TripData.StartDate,
		EndDate:      req.TripData.EndDate,
	}
	msg, err := h.svc.Chat(r.Context(), params, req.TripData.Itinerary, req.Messages)
	if err != nil {
		writeLLMError(w, err, "Failed to generate response")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// writeLLMError distinguishes "no key configured" from transport failures.
func writeLLMError(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, llm.ErrNotConfigured) {
		respond.WriteError(w, http.StatusServiceUnavailable, llm.ErrNotConfigured.Error())
		return
	}
	respond.WriteInternalError(w, message)
}

// writeRegenItinerary emits the fixed fallback the client treats as
// "discard and regenerate". Items is always the empty array, never null.
func writeRegenItinerary(w http.ResponseWriter) {
	respond.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error":  model.RegenRequired,
		"items":  []model.ItineraryItem{},
		"status": http.StatusInternalServerError,
	})
}
