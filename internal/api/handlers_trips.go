package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	respond "github.com/ronojoykumar/travel-itinerary-app/internal/api/respond"
	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
	"github.com/ronojoykumar/travel-itinerary-app/internal/services"
)

// TripHandler is a thin HTTP transport over TripService.
type TripHandler struct {
	svc *services.TripService
}

func NewTripHandler(svc *services.TripService) *TripHandler { return &TripHandler{svc: svc} }

// SaveTrip POST /api/users/{userId}/trips
func (h *TripHandler) SaveTrip(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	var trip model.SavedTrip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	trip.UserID = userID
	out, err := h.svc.SaveTrip(r.Context(), &trip)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			respond.WriteBadRequest(w, "Missing userId or tripData")
		} else {
			respond.WriteInternalError(w, err.Error())
		}
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "id": out.ID})
}

// ListTrips GET /api/users/{userId}/trips
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	trips, err := h.svc.ListTrips(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	if trips == nil {
		trips = []*model.SavedTrip{}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"trips": trips, "count": len(trips)})
}

// GetTrip GET /api/users/{userId}/trips/{tripId}
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	trip, err := h.svc.GetTrip(r.Context(), vars["userId"], vars["tripId"])
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Trip not found")
		} else {
			respond.WriteInternalError(w, err.Error())
		}
		return
	}
	respond.WriteJSON(w, http.StatusOK, trip)
}

// DeleteTrip DELETE /api/users/{userId}/trips/{tripId}
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteTrip(r.Context(), vars["userId"], vars["tripId"]); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Trip not found")
		} else {
			respond.WriteInternalError(w, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
