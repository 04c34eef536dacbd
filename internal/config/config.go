package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the trip planner service.
// Environment variables are parsed from the TRIP_PLANNER_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage: sqlite for local runs, postgres for deployments
	DBDriver    string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"./data/trips.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Model provider
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY" default:""`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
	LLMMaxRetries uint64 `envconfig:"LLM_MAX_RETRIES" default:"2"`

	// Maps key is optional; without it travel-duration estimates report
	// "not configured" instead of failing the page.
	GoogleMapsAPIKey string `envconfig:"GOOGLE_MAPS_API_KEY" default:""`

	// Exchange-rate cache
	RatesTTLSeconds int `envconfig:"RATES_TTL_SECONDS" default:"3600"`

	// Response extraction: greedy bracket match by default, depth-aware
	// scanner when set
	StrictJSONExtract bool `envconfig:"STRICT_JSON_EXTRACT" default:"false"`

	// Health monitoring
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
}

// ResolveDefaults validates derived settings.
func (c *Config) ResolveDefaults() error {
	switch c.DBDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("TRIP_PLANNER_SQLITE_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("TRIP_PLANNER_POSTGRES_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.RatesTTLSeconds <= 0 {
		c.RatesTTLSeconds = 3600
	}
	if c.HealthIntervalSeconds <= 0 {
		c.HealthIntervalSeconds = 30
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: TRIP_PLANNER_HTTP_PORT, TRIP_PLANNER_OPENAI_API_KEY.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TRIP_PLANNER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewForTesting creates a config suitable for unit tests.
func NewForTesting() *Config {
	return &Config{
		Environment:     EnvTesting,
		HTTPPort:        8080,
		DBDriver:        "sqlite",
		SQLitePath:      ":memory:",
		OpenAIModel:     "gpt-4o",
		LLMMaxRetries:   0,
		RatesTTLSeconds: 60,

		HealthIntervalSeconds:     1,
		HealthProbeTimeoutSeconds: 1,
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }
