// Package rates serves the display-currency conversion table. Upstream is
// the free frankfurter.app API (ECB data); results are held in a TTL cache
// and a hardcoded table keeps the app working when the upstream is down.
package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://api.frankfurter.app"
	// quoted currencies, all relative to 1 USD upstream
	quoteList = "INR,JPY,KRW,EUR,GBP,AED,SGD,THB,CNY,AUD,CAD"

	cacheKey = "latest"

	// fallbackUSD is the assumed INR-per-USD rate when no table is loaded.
	fallbackUSD = 84.25
)

// Table maps a currency code to how many units of the display currency (INR)
// one unit of that currency buys. It always contains at least USD.
type Table struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Fallback  bool               `json:"fallback,omitempty"`
}

// Rate returns the INR-per-unit rate for a currency, defaulting to the USD
// fallback for unknown codes so conversions never divide by zero.
func (t Table) Rate(currency string) float64 {
	if r, ok := t.Rates[currency]; ok && r > 0 {
		return r
	}
	if r, ok := t.Rates["USD"]; ok && r > 0 {
		return r
	}
	return fallbackUSD
}

// ToDisplay converts a source-currency amount to display currency (INR).
func (t Table) ToDisplay(amount float64, currency string) float64 {
	return amount * t.Rate(currency)
}

// FromDisplay is the inverse of ToDisplay.
func (t Table) FromDisplay(amount float64, currency string) float64 {
	return amount / t.Rate(currency)
}

// FallbackTable returns the hardcoded table used when upstream is
// unreachable. The values are refreshed by hand occasionally; precision is
// not the point, not crashing is.
func FallbackTable() Table {
	return Table{
		Base: "INR",
		Rates: map[string]float64{
			"USD": 84.25,
			"JPY": 0.565,
			"KRW": 0.063,
			"EUR": 91.5,
			"GBP": 106.8,
			"AED": 22.95,
			"SGD": 62.4,
			"THB": 2.45,
			"CNY": 11.6,
			"AUD": 54.2,
			"CAD": 61.8,
		},
		FetchedAt: time.Now().UTC(),
		Fallback:  true,
	}
}

// Service is the read-through cached rate provider.
type Service struct {
	client *resty.Client
	cache  *gocache.Cache
	ttl    time.Duration
	log    zerolog.Logger
}

// New builds a Service with the given cache TTL.
func New(ttl time.Duration, log zerolog.Logger) *Service {
	return &Service{
		client: resty.New().SetBaseURL(defaultBaseURL).SetTimeout(10 * time.Second),
		cache:  gocache.New(ttl, 2*ttl),
		ttl:    ttl,
		log:    log,
	}
}

// SetBaseURL points the service at a different upstream; used by tests.
func (s *Service) SetBaseURL(u string) { s.client.SetBaseURL(u) }

// Current returns the conversion table. It never fails: cache first, then
// upstream, then the hardcoded fallback.
func (s *Service) Current(ctx context.Context) Table {
	if v, ok := s.cache.Get(cacheKey); ok {
		return v.(Table)
	}

	table, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("exchange rate fetch failed, using fallback table")
		return FallbackTable()
	}
	s.cache.Set(cacheKey, table, s.ttl)
	return table
}

// frankfurterResponse is the upstream payload: rates per 1 USD.
type frankfurterResponse struct {
	Rates map[string]float64 `json:"rates"`
}

func (s *Service) fetch(ctx context.Context) (Table, error) {
	var out frankfurterResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("from", "USD").
		SetQueryParam("to", quoteList).
		SetResult(&out).
		Get("/latest")
	if err != nil {
		return Table{}, fmt.Errorf("frankfurter request: %w", err)
	}
	if resp.IsError() {
		return Table{}, fmt.Errorf("frankfurter status %d", resp.StatusCode())
	}
	if len(out.Rates) == 0 {
		return Table{}, fmt.Errorf("frankfurter returned no rates")
	}

	// Normalize to INR-per-unit: INR itself quotes USD directly, every other
	// currency converts through USD.
	inrPerUSD, ok := out.Rates["INR"]
	if !ok || inrPerUSD <= 0 {
		inrPerUSD = fallbackUSD
	}
	rates := map[string]float64{"USD": inrPerUSD}
	for currency, perUSD := range out.Rates {
		if currency == "INR" || perUSD <= 0 {
			continue
		}
		rates[currency] = inrPerUSD / perUSD
	}

	return Table{Base: "INR", Rates: rates, FetchedAt: time.Now().UTC()}, nil
}
