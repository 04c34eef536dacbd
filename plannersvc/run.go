// Package plannersvc wires configuration, storage, the model client and the
// HTTP router into a runnable trip-planner service.
package plannersvc

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ronojoykumar/travel-itinerary-app/internal/api"
	"github.com/ronojoykumar/travel-itinerary-app/internal/config"
	"github.com/ronojoykumar/travel-itinerary-app/internal/factory"
	"github.com/ronojoykumar/travel-itinerary-app/internal/geo"
	"github.com/ronojoykumar/travel-itinerary-app/internal/health"
	"github.com/ronojoykumar/travel-itinerary-app/internal/llm"
	"github.com/ronojoykumar/travel-itinerary-app/internal/logger"
	"github.com/ronojoykumar/travel-itinerary-app/internal/rates"
	"github.com/ronojoykumar/travel-itinerary-app/internal/services"
	"github.com/ronojoykumar/travel-itinerary-app/internal/store"
	"github.com/ronojoykumar/travel-itinerary-app/internal/weather"
)

// Run starts the trip planner HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("trip-planner")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Str("model", cfg.OpenAIModel).
		Bool("strict_extract", cfg.StrictJSONExtract).
		Bool("maps_configured", cfg.GoogleMapsAPIKey != "").
		Msg("Trip planner starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	st, err := factory.NewStore(cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}
	defer func() { _ = st.Close() }()

	completer := newCompleter(cfg, log)

	deps := api.Deps{
		Planner: services.NewPlanner(completer, cfg.StrictJSONExtract),
		Trips:   services.NewTripService(st),
		Rates:   rates.New(time.Duration(cfg.RatesTTLSeconds)*time.Second, log),
		Weather: weather.New(),
		Geo:     geo.NewDurationClient(cfg.GoogleMapsAPIKey),
	}

	// Health checkers: the store is the only hard dependency
	svcHealth := startHealthCheckers(ctx, cfg, log, st)
	deps.IsHealthy = svcHealth.IsHealthy

	router := api.NewRouter(deps)

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newCompleter builds the model client. A missing key is not fatal: the
// service runs with generation endpoints answering 503 so that rates,
// weather and saved trips keep working.
func newCompleter(cfg *config.Config, log zerolog.Logger) llm.Completer {
	client, err := llm.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		log.Warn().Err(err).Msg("model client disabled")
		return llm.Disabled{}
	}
	return llm.WithRetry(client, cfg.LLMMaxRetries)
}

func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, st store.Store) *health.ServiceHealthChecker {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	storeChecker := store.NewStoreHealthChecker(st, log, probeTimeout)
	go storeChecker.Start(ctx, interval)

	svcHealth := health.NewServiceHealthChecker(log, storeChecker)
	go svcHealth.Start(ctx, interval)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second, // generation calls wait on the model provider
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
