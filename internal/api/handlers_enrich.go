package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	respond "github.com/ronojoykumar/travel-itinerary-app/internal/api/respond"
	"github.com/ronojoykumar/travel-itinerary-app/internal/geo"
	"github.com/ronojoykumar/travel-itinerary-app/internal/rates"
	"github.com/ronojoykumar/travel-itinerary-app/internal/weather"
)

// EnrichHandler serves the page-enrichment endpoints: exchange rates,
// weather and travel durations. These are nice-to-haves; they degrade to
// empty payloads with HTTP 200 rather than failing the page.
type EnrichHandler struct {
	rates   *rates.Service
	weather *weather.Client
	geo     *geo.DurationClient
}

func NewEnrichHandler(r *rates.Service, w *weather.Client, g *geo.DurationClient) *EnrichHandler {
	return &EnrichHandler{rates: r, weather: w, geo: g}
}

// ExchangeRates GET /api/exchange-rates
func (h *EnrichHandler) ExchangeRates(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, h.rates.Current(r.Context()))
}

// WeatherForecast POST /api/weather-forecast
func (h *EnrichHandler) WeatherForecast(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Destinations []string `json:"destinations"`
		StartDate    string   `json:"startDate"`
		EndDate      string   `json:"endDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	forecast, err := h.weather.ForTrip(r.Context(), req.Destinations, req.StartDate, req.EndDate)
	if err != nil {
		log.Warn().Err(err).Strs("destinations", req.Destinations).Msg("weather lookup failed")
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"error":    err.Error(),
			"forecast": forecast.Forecast,
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, forecast)
}

// TravelDuration POST /api/travel-duration
func (h *EnrichHandler) TravelDuration(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Origin      string   `json:"origin"`
		Destination string   `json:"destination"`
		Types       []string `json:"types"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	empty := []geo.ModeResult{}
	if !h.geo.Configured() {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"error":     "GOOGLE_MAPS_API_KEY not configured",
			"durations": empty,
		})
		return
	}
	if req.Origin == "" || req.Destination == "" {
		respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"error":     "Missing origin or destination",
			"durations": empty,
		})
		return
	}
	durations, err := h.geo.Durations(r.Context(), req.Origin, req.Destination, req.Types)
	if err != nil {
		log.Warn().Err(err).Str("origin", req.Origin).Str("destination", req.Destination).Msg("duration lookup failed")
		respond.WriteJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error":     "Failed to fetch durations",
			"durations": empty,
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"durations":   durations,
		"origin":      req.Origin,
		"destination": req.Destination,
	})
}
