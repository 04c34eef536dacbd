package itinerary

import (
	"regexp"
	"strings"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
)

// countryEntry maps location keywords to a display country. The table covers
// the destinations the product actually promotes; anything else falls back to
// the neutral default.
type countryEntry struct {
	pattern *regexp.Regexp
	country string
}

var countryTable = []countryEntry{
	{regexp.MustCompile(`(?i)japan|tokyo|osaka|kyoto|hiroshima|nara|yokohama`), "Japan"},
	{regexp.MustCompile(`(?i)korea|seoul|busan|incheon|jeju|daegu|hongdae|gangnam`), "South Korea"},
	{regexp.MustCompile(`(?i)singapore`), "Singapore"},
	{regexp.MustCompile(`(?i)dubai|abu dhabi|sharjah|uae`), "UAE"},
	{regexp.MustCompile(`(?i)thailand|bangkok|phuket|chiang mai`), "Thailand"},
	{regexp.MustCompile(`(?i)france|paris`), "France"},
	{regexp.MustCompile(`(?i)italy|rome|milan|venice`), "Italy"},
	{regexp.MustCompile(`(?i)\buk\b|london|england|britain`), "United Kingdom"},
	{regexp.MustCompile(`(?i)china|beijing|shanghai`), "China"},
	{regexp.MustCompile(`(?i)australia|sydney|melbourne`), "Australia"},
	{regexp.MustCompile(`(?i)india|mumbai|delhi|bangalore|hyderabad`), "India"},
	{regexp.MustCompile(`(?i)usa|new york|los angeles|chicago|san francisco`), "USA"},
}

// CountryOf labels a free-text location with its country, if recognized.
func CountryOf(location string) (string, bool) {
	for _, e := range countryTable {
		if e.pattern.MatchString(location) {
			return e.country, true
		}
	}
	return "", false
}

// InferCountry scans a day's items for location-ish fields and returns the
// first recognized country. Used to label the day's region banner.
func InferCountry(items []model.ItineraryItem) (string, bool) {
	for _, it := range items {
		var fields []string
		switch it.Type {
		case model.ItemActivity:
			if it.Activity != nil {
				fields = []string{it.Activity.Location, it.Activity.Title}
			}
		case model.ItemMeal:
			if it.Meal != nil {
				fields = []string{it.Meal.Location, it.Meal.Place}
			}
		case model.ItemTransport:
			if it.Transport != nil {
				fields = []string{it.Transport.From, it.Transport.To}
			}
		}
		search := strings.Join(fields, " ")
		if search == "" {
			continue
		}
		if c, ok := CountryOf(search); ok {
			return c, true
		}
	}
	return "", false
}

// IsInternational reports whether a transport move crosses a country border,
// which decides whether the booking UI shows flights or ground transport.
// Unrecognized endpoints are treated as domestic.
func IsInternational(t model.TransportOptions) bool {
	from, okFrom := CountryOf(t.From)
	to, okTo := CountryOf(t.To)
	return okFrom && okTo && from != to
}
