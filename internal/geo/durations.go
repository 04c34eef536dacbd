// Package geo estimates real travel durations between two places through the
// Google Distance Matrix API. A missing API key degrades the feature to a
// visible "not configured" state instead of failing the page.
package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://maps.googleapis.com"

// ErrNotConfigured signals that the maps API key is absent.
var ErrNotConfigured = fmt.Errorf("maps API key is not configured")

// googleMode maps internal transport types to Distance Matrix travel modes.
// Flights have no Distance Matrix equivalent; driving stands in as a rough
// lower bound.
var googleMode = map[string]string{
	"train":  "transit",
	"bus":    "transit",
	"cab":    "driving",
	"walk":   "walking",
	"flight": "driving",
}

// ModeResult is the duration estimate for one requested transport type.
type ModeResult struct {
	Type         string `json:"type"`
	DurationText string `json:"durationText"`
	DurationSecs int    `json:"durationSecs"`
}

// DurationClient calls the Distance Matrix API.
type DurationClient struct {
	key    string
	client *resty.Client
}

func NewDurationClient(apiKey string) *DurationClient {
	return &DurationClient{
		key:    apiKey,
		client: resty.New().SetBaseURL(defaultBaseURL).SetTimeout(10 * time.Second),
	}
}

// SetBaseURL points the client at a test server.
func (c *DurationClient) SetBaseURL(u string) { c.client.SetBaseURL(u) }

// Configured reports whether the client has an API key.
func (c *DurationClient) Configured() bool { return c.key != "" }

type dmResponse struct {
	Rows []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Durations returns one estimate per requested type. Types sharing a travel
// mode (train and bus are both transit sub-modes) are fetched once and the
// result fanned back to each. Unresolvable modes report an em-dash and 0.
func (c *DurationClient) Durations(ctx context.Context, origin, destination string, types []string) ([]ModeResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}
	if origin == "" || destination == "" {
		return nil, fmt.Errorf("missing origin or destination")
	}
	if len(types) == 0 {
		types = []string{"train", "cab", "walk"}
	}

	type fetchKey struct{ mode, transit string }
	fetched := map[fetchKey]*ModeResult{}

	results := make([]ModeResult, 0, len(types))
	for _, t := range types {
		mode, ok := googleMode[t]
		if !ok {
			mode = "driving"
		}
		transit := ""
		if t == "train" {
			transit = "rail"
		} else if t == "bus" {
			transit = "bus"
		}
		key := fetchKey{mode, transit}

		if cached, ok := fetched[key]; ok {
			if cached != nil {
				results = append(results, ModeResult{Type: t, DurationText: cached.DurationText, DurationSecs: cached.DurationSecs})
			} else {
				results = append(results, ModeResult{Type: t, DurationText: "–", DurationSecs: 0})
			}
			continue
		}

		r, err := c.fetchOne(ctx, origin, destination, mode, transit)
		if err != nil {
			return nil, err
		}
		fetched[key] = r
		if r != nil {
			results = append(results, ModeResult{Type: t, DurationText: r.DurationText, DurationSecs: r.DurationSecs})
		} else {
			results = append(results, ModeResult{Type: t, DurationText: "–", DurationSecs: 0})
		}
	}
	return results, nil
}

// fetchOne returns nil (not an error) when the API answers but has no route,
// so one impossible mode doesn't sink the others.
func (c *DurationClient) fetchOne(ctx context.Context, origin, destination, mode, transitMode string) (*ModeResult, error) {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"origins":      origin,
			"destinations": destination,
			"mode":         mode,
			"language":     "en",
			"key":          c.key,
		})
	if mode == "transit" && transitMode != "" {
		req.SetQueryParam("transit_mode", transitMode)
	}

	var out dmResponse
	resp, err := req.SetResult(&out).Get("/maps/api/distancematrix/json")
	if err != nil {
		return nil, fmt.Errorf("distance matrix request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("distance matrix status %d", resp.StatusCode())
	}

	if len(out.Rows) == 0 || len(out.Rows[0].Elements) == 0 {
		return nil, nil
	}
	el := out.Rows[0].Elements[0]
	if el.Status != "OK" {
		return nil, nil
	}
	return &ModeResult{DurationText: el.Duration.Text, DurationSecs: el.Duration.Value}, nil
}
