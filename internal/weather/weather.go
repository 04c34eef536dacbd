// Package weather fetches a per-day forecast for the trip window from
// open-meteo. Trips starting beyond the 16-day forecast horizon fall back to
// the archive API one year back, relabeled with the real trip dates, so the
// packing page always has something seasonal to show.
package weather

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
)

const (
	forecastBaseURL = "https://api.open-meteo.com"
	archiveBaseURL  = "https://archive-api.open-meteo.com"

	// forecastHorizonDays is open-meteo's maximum forward window.
	forecastHorizonDays = 16
)

type coords struct {
	Lat float64
	Lon float64
	TZ  string
}

var cityCoords = map[string]coords{
	"tokyo":         {35.6762, 139.6503, "Asia/Tokyo"},
	"osaka":         {34.6937, 135.5023, "Asia/Tokyo"},
	"kyoto":         {35.0116, 135.7681, "Asia/Tokyo"},
	"hiroshima":     {34.3853, 132.4553, "Asia/Tokyo"},
	"nara":          {34.6851, 135.8048, "Asia/Tokyo"},
	"yokohama":      {35.4437, 139.6380, "Asia/Tokyo"},
	"sapporo":       {43.0618, 141.3545, "Asia/Tokyo"},
	"fukuoka":       {33.5904, 130.4017, "Asia/Tokyo"},
	"seoul":         {37.5665, 126.9780, "Asia/Seoul"},
	"busan":         {35.1796, 129.0756, "Asia/Seoul"},
	"incheon":       {37.4563, 126.7052, "Asia/Seoul"},
	"jeju":          {33.4996, 126.5312, "Asia/Seoul"},
	"singapore":     {1.3521, 103.8198, "Asia/Singapore"},
	"bangkok":       {13.7563, 100.5018, "Asia/Bangkok"},
	"phuket":        {7.8804, 98.3923, "Asia/Bangkok"},
	"bali":          {-8.4095, 115.1889, "Asia/Makassar"},
	"dubai":         {25.2048, 55.2708, "Asia/Dubai"},
	"paris":         {48.8566, 2.3522, "Europe/Paris"},
	"london":        {51.5074, -0.1278, "Europe/London"},
	"rome":          {41.9028, 12.4964, "Europe/Rome"},
	"barcelona":     {41.3851, 2.1734, "Europe/Madrid"},
	"amsterdam":     {52.3676, 4.9041, "Europe/Amsterdam"},
	"new york":      {40.7128, -74.0060, "America/New_York"},
	"los angeles":   {34.0522, -118.2437, "America/Los_Angeles"},
	"san francisco": {37.7749, -122.4194, "America/Los_Angeles"},
	"miami":         {25.7617, -80.1918, "America/New_York"},
	"sydney":        {-33.8688, 151.2093, "Australia/Sydney"},
	"melbourne":     {-37.8136, 144.9631, "Australia/Melbourne"},
	"mumbai":        {19.0760, 72.8777, "Asia/Kolkata"},
	"delhi":         {28.7041, 77.1025, "Asia/Kolkata"},
	"goa":           {15.2993, 74.1240, "Asia/Kolkata"},
}

// capital fallback when a destination names a country rather than a city
var countryCapital = map[string]string{
	"japan":                "tokyo",
	"south korea":          "seoul",
	"korea":                "seoul",
	"singapore":            "singapore",
	"thailand":             "bangkok",
	"uae":                  "dubai",
	"united arab emirates": "dubai",
	"france":               "paris",
	"uk":                   "london",
	"united kingdom":       "london",
	"england":              "london",
	"australia":            "sydney",
	"india":                "delhi",
	"indonesia":            "bali",
	"usa":                  "new york",
	"united states":        "new york",
	"italy":                "rome",
	"spain":                "barcelona",
	"netherlands":          "amsterdam",
}

func resolveCity(destination string) (coords, bool) {
	d := strings.ToLower(destination)
	for key, c := range cityCoords {
		if strings.Contains(d, key) {
			return c, true
		}
	}
	for country, capital := range countryCapital {
		if strings.Contains(d, country) {
			if c, ok := cityCoords[capital]; ok {
				return c, true
			}
		}
	}
	return coords{}, false
}

// condition maps WMO weather codes onto a short label and emoji.
func condition(code int) (string, string) {
	switch {
	case code == 0:
		return "Clear sky", "☀️"
	case code <= 2:
		return "Partly cloudy", "🌤️"
	case code == 3:
		return "Overcast", "☁️"
	case code >= 51 && code <= 57:
		return "Drizzle", "🌦️"
	case code >= 61 && code <= 67:
		return "Rain", "🌧️"
	case code >= 71 && code <= 77:
		return "Snow", "❄️"
	case code >= 80 && code <= 82:
		return "Rain showers", "⛈️"
	case code >= 85 && code <= 86:
		return "Snow showers", "🌨️"
	case code >= 95:
		return "Thunderstorm", "⛈️"
	}
	return "Cloudy", "🌥️"
}

// DayForecast is a single rendered forecast row.
type DayForecast struct {
	Date       string `json:"date"`
	DayLabel   string `json:"dayLabel"`
	MaxC       int    `json:"maxC"`
	MinC       int    `json:"minC"`
	MaxF       int    `json:"maxF"`
	MinF       int    `json:"minF"`
	Condition  string `json:"condition"`
	Emoji      string `json:"emoji"`
	RainChance int    `json:"rainChance"`
}

// TripForecast is the endpoint payload.
type TripForecast struct {
	Forecast       []DayForecast `json:"forecast"`
	Destination    string        `json:"destination"`
	IsHistorical   bool          `json:"isHistorical"`
	HistoricalYear *int          `json:"historicalYear"`
}

// Client calls open-meteo. The zero client is not usable; use New.
type Client struct {
	forecast *resty.Client
	archive  *resty.Client
}

func New() *Client {
	return &Client{
		forecast: resty.New().SetBaseURL(forecastBaseURL).SetTimeout(10 * time.Second),
		archive:  resty.New().SetBaseURL(archiveBaseURL).SetTimeout(10 * time.Second),
	}
}

// SetBaseURLs points both upstreams at a test server.
func (c *Client) SetBaseURLs(forecastURL, archiveURL string) {
	c.forecast.SetBaseURL(forecastURL)
	c.archive.SetBaseURL(archiveURL)
}

type dailyBlock struct {
	Time              []string  `json:"time"`
	TempMax           []float64 `json:"temperature_2m_max"`
	TempMin           []float64 `json:"temperature_2m_min"`
	WeatherCode       []int     `json:"weathercode"`
	WeatherCodeSnake  []int     `json:"weather_code"`
	PrecipProbability []float64 `json:"precipitation_probability_max"`
	PrecipSum         []float64 `json:"precipitation_sum"`
}

type meteoResponse struct {
	Daily dailyBlock `json:"daily"`
}

// ForTrip returns the forecast for the trip's primary destination. The error
// is informational; callers surface it with an empty forecast and HTTP 200,
// matching the "weather is a nice-to-have" product stance.
func (c *Client) ForTrip(ctx context.Context, destinations []string, startDate, endDate string) (TripForecast, error) {
	primary := ""
	if len(destinations) > 0 {
		primary = destinations[0]
	}
	out := TripForecast{Forecast: []DayForecast{}, Destination: primary}

	co, ok := resolveCity(primary)
	if !ok {
		return out, fmt.Errorf("unknown destination")
	}

	start := model.ParseDate(startDate)
	end := model.ParseDate(endDate)
	if end.Before(start) {
		end = start
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	daysAway := int(math.Round(start.Sub(today).Hours() / 24))
	useArchive := daysAway > forecastHorizonDays

	// Display labels always show the real (future) trip dates.
	var originalDates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		originalDates = append(originalDates, d.Format("2006-01-02"))
	}

	var resp meteoResponse
	var err error
	if useArchive {
		histStart := start.AddDate(-1, 0, 0).Format("2006-01-02")
		histEnd := end.AddDate(-1, 0, 0).Format("2006-01-02")
		err = c.get(ctx, c.archive, "/v1/archive", map[string]string{
			"latitude":   fmt.Sprintf("%g", co.Lat),
			"longitude":  fmt.Sprintf("%g", co.Lon),
			"daily":      "temperature_2m_max,temperature_2m_min,weather_code,precipitation_sum",
			"start_date": histStart,
			"end_date":   histEnd,
			"timezone":   co.TZ,
		}, &resp)
	} else {
		err = c.get(ctx, c.forecast, "/v1/forecast", map[string]string{
			"latitude":   fmt.Sprintf("%g", co.Lat),
			"longitude":  fmt.Sprintf("%g", co.Lon),
			"daily":      "temperature_2m_max,temperature_2m_min,weathercode,precipitation_probability_max",
			"start_date": start.Format("2006-01-02"),
			"end_date":   end.Format("2006-01-02"),
			"timezone":   co.TZ,
		}, &resp)
	}
	if err != nil {
		return out, err
	}
	if len(resp.Daily.Time) == 0 {
		return out, fmt.Errorf("no weather data available")
	}

	out.Forecast = buildForecast(resp.Daily, originalDates)
	out.IsHistorical = useArchive
	if useArchive {
		year := start.Year() - 1
		out.HistoricalYear = &year
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, client *resty.Client, path string, params map[string]string, out *meteoResponse) error {
	resp, err := client.R().SetContext(ctx).SetQueryParams(params).SetResult(out).Get(path)
	if err != nil {
		return fmt.Errorf("open-meteo request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("open-meteo status %d", resp.StatusCode())
	}
	return nil
}

func buildForecast(d dailyBlock, originalDates []string) []DayForecast {
	rows := make([]DayForecast, 0, len(d.Time))
	for i, date := range d.Time {
		maxC := int(math.Round(at(d.TempMax, i)))
		minC := int(math.Round(at(d.TempMin, i)))

		code := 0
		if i < len(d.WeatherCode) {
			code = d.WeatherCode[i]
		} else if i < len(d.WeatherCodeSnake) {
			code = d.WeatherCodeSnake[i]
		}
		label, emoji := condition(code)

		rain := 0
		if i < len(d.PrecipProbability) {
			rain = int(math.Round(d.PrecipProbability[i]))
		} else if i < len(d.PrecipSum) && d.PrecipSum[i] > 0 {
			// Archive data has no probability; scale the daily sum instead.
			rain = int(math.Min(100, math.Round(d.PrecipSum[i]*15)))
		}

		displayDate := date
		if i < len(originalDates) {
			displayDate = originalDates[i]
		}
		rows = append(rows, DayForecast{
			Date:       displayDate,
			DayLabel:   model.ParseDate(displayDate).Format("Mon, 2 Jan"),
			MaxC:       maxC,
			MinC:       minC,
			MaxF:       int(math.Round(float64(maxC)*9/5 + 32)),
			MinF:       int(math.Round(float64(minC)*9/5 + 32)),
			Condition:  label,
			Emoji:      emoji,
			RainChance: rain,
		})
	}
	return rows
}

func at(xs []float64, i int) float64 {
	if i < len(xs) {
		return xs[i]
	}
	return 0
}
