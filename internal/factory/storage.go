package factory

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ronojoykumar/travel-itinerary-app/internal/config"
	storepkg "github.com/ronojoykumar/travel-itinerary-app/internal/store"
	storepg "github.com/ronojoykumar/travel-itinerary-app/internal/store/postgres"
	storesqlite "github.com/ronojoykumar/travel-itinerary-app/internal/store/sqlite"
)

// NewStore returns a store.Store for the configured driver.
// Schema is applied on open; both drivers use idempotent DDL.
func NewStore(cfg *config.Config, log zerolog.Logger) (storepkg.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		s, err := storesqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", cfg.DBDriver).Str("path", cfg.SQLitePath).Msg("store opened")
		return s, nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("TRIP_PLANNER_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
		s, err := storepg.New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("driver", cfg.DBDriver).Msg("store opened")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
	}
}
