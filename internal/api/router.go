package api

import (
	"github.com/gorilla/mux"

	"github.com/ronojoykumar/travel-itinerary-app/internal/api/recovery"
	"github.com/ronojoykumar/travel-itinerary-app/internal/geo"
	"github.com/ronojoykumar/travel-itinerary-app/internal/rates"
	"github.com/ronojoykumar/travel-itinerary-app/internal/services"
	"github.com/ronojoykumar/travel-itinerary-app/internal/weather"
)

// Deps carries the constructed services the router wires into handlers.
type Deps struct {
	Planner   *services.Planner
	Trips     *services.TripService
	Rates     *rates.Service
	Weather   *weather.Client
	Geo       *geo.DurationClient
	IsHealthy func() bool
}

// NewRouter creates the HTTP router with all API routes.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	plannerHandler := NewPlannerHandler(d.Planner)
	tripHandler := NewTripHandler(d.Trips)
	enrichHandler := NewEnrichHandler(d.Rates, d.Weather, d.Geo)
	healthHandler := NewHealthHandler(d.IsHealthy)

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Generation endpoints
	router.HandleFunc("/api/itinerary/generate", plannerHandler.GenerateItinerary).Methods("POST")
	router.HandleFunc("/api/itinerary/rejig", plannerHandler.RejigItinerary).Methods("POST")
	router.HandleFunc("/api/itinerary/alternatives", plannerHandler.GenerateAlternatives).Methods("POST")
	router.HandleFunc("/api/itinerary/suggestions", plannerHandler.GenerateSuggestions).Methods("POST")
	router.HandleFunc("/api/itinerary/location-tips", plannerHandler.GenerateLocationTips).Methods("POST")
	router.HandleFunc("/api/itinerary/checklist", plannerHandler.GenerateChecklist).Methods("POST")
	router.HandleFunc("/api/itinerary/safety-culture", plannerHandler.GenerateSafetyCulture).Methods("POST")

	// Live-trip chat
	router.HandleFunc("/api/chat", plannerHandler.Chat).Methods("POST")

	// Page enrichment endpoints
	router.HandleFunc("/api/exchange-rates", enrichHandler.ExchangeRates).Methods("GET")
	router.HandleFunc("/api/weather-forecast", enrichHandler.WeatherForecast).Methods("POST")
	router.HandleFunc("/api/travel-duration", enrichHandler.TravelDuration).Methods("POST")

	// Saved trip endpoints
	router.HandleFunc("/api/users/{userId}/trips", tripHandler.SaveTrip).Methods("POST")
	router.HandleFunc("/api/users/{userId}/trips", tripHandler.ListTrips).Methods("GET")
	router.HandleFunc("/api/users/{userId}/trips/{tripId:[0-9a-fA-F-]{36}}", tripHandler.GetTrip).Methods("GET")
	router.HandleFunc("/api/users/{userId}/trips/{tripId:[0-9a-fA-F-]{36}}", tripHandler.DeleteTrip).Methods("DELETE")

	return router
}
