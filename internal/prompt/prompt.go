// Package prompt renders trip parameters into model instruction strings.
// Every builder is a pure function; the output embeds the exact JSON shape
// expected back, because the model offers no structured-output guarantee.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
)

// LongTripThreshold is the day count above which the condensed itinerary
// variant is used to stay within model output limits.
const LongTripThreshold = 10

// Default decoding parameters. Structured tasks run cold; chat is looser.
const (
	structuredTemperature = 0.3
	chatTemperature       = 0.7

	itineraryMaxTokens = 4096
	condensedMaxTokens = 3072
	ancillaryMaxTokens = 1024
	chatMaxTokens      = 768
)

// Prompt is a fully-rendered model request: instruction strings plus the
// fixed decoding parameters the invocation shim passes through unchanged.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int64
	Temperature float64
}

const noFences = "Do not wrap the response in markdown or code blocks. Just the raw JSON"

// Itinerary builds the day-by-day generation prompt. Trips longer than
// LongTripThreshold days get the condensed variant: fewer items per day and a
// lower token ceiling.
func Itinerary(p model.TripParameters) Prompt {
	days := p.DayCount()
	condensed := days > LongTripThreshold

	perDay := "3-4 activities"
	meals := "3 meals (breakfast, lunch, dinner)"
	if condensed {
		perDay = "2 activities"
		meals = "2 meals (breakfast, dinner)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed travel itinerary for a %s trip to %s.\n", p.TripType, strings.Join(p.Destinations, " and "))
	fmt.Fprintf(&b, "Dates: %s to %s.\n", p.StartDate, p.EndDate)
	fmt.Fprintf(&b, "Budget: $%d.\n", p.Budget)
	fmt.Fprintf(&b, "Interests: %s.\n\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(&b, "CRITICAL: This is a %d-day trip. You MUST generate items for EVERY SINGLE DAY from day 1 to day %d.\n\n", days, days)
	b.WriteString(`Return strictly a JSON array of objects representing the schedule.
The JSON should adhere to this structure for each item:

For Activities:
{
  "type": "activity",
  "data": {
    "time": "HH:MM AM/PM",
    "title": "Activity Name",
    "description": "Short description",
    "location": "Location Name",
    "category": "food" | "activity" | "relax",
    "price": 25,
    "rating": 4.5
  },
  "day": 1
}

For Transport Options (provide 3 options: cab, bus, train):
{
  "type": "transportOptions",
  "data": {
    "from": "City A",
    "to": "City B",
    "options": [
      { "type": "cab", "duration": "1h 30m", "price": 50 },
      { "type": "bus", "duration": "2h 15m", "price": 15 },
      { "type": "train", "duration": "1h 45m", "price": 30 }
    ]
  },
  "day": 2
}

For Meals:
{
  "type": "meal",
  "data": {
    "mealType": "breakfast" | "lunch" | "dinner",
    "place": "Restaurant Name",
    "location": "Area/District",
    "price": 15
  },
  "day": 1
}

REQUIREMENTS:
`)
	fmt.Fprintf(&b, "- Generate %s per day for EACH of the %d days\n", perDay, days)
	fmt.Fprintf(&b, "- Include %s for EACH day\n", meals)
	b.WriteString("- If multi-city, include 1 transport option set when moving between cities\n")
	fmt.Fprintf(&b, "- The \"day\" field must range from 1 to %d\n", days)
	b.WriteString("- DO NOT skip any days\n\n")
	b.WriteString(noFences + " array.")

	maxTokens := int64(itineraryMaxTokens)
	if condensed {
		maxTokens = condensedMaxTokens
	}
	return Prompt{
		System:      "You are a helpful travel assistant.",
		User:        b.String(),
		MaxTokens:   maxTokens,
		Temperature: structuredTemperature,
	}
}

// Alternatives asks for 3 replacement activities near the original in price,
// duration and interest fit.
func Alternatives(activity model.Activity, destination string, interests []string, budget int) Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate 3 alternative activities to replace %q in %s.\n\n", activity.Title, destination)
	fmt.Fprintf(&b, "Original activity details:\n- Category: %s\n- Duration: %s\n- Price: $%.0f\n\n", activity.Category, activity.Time, float64(activity.Price))
	fmt.Fprintf(&b, "Trip context:\n- Interests: %s\n- Budget level: $%d\n\n", strings.Join(interests, ", "), budget)
	b.WriteString(`Return ONLY a JSON array of 3 alternative activities with this structure:
[
  {
    "title": "Activity Name",
    "description": "Brief description",
    "location": "Location name",
    "category": "food" | "activity" | "relax",
    "time": "HH:MM AM/PM",
    "price": 25,
    "rating": 4.5
  }
]

Make sure alternatives are:
- Similar in price range (within 30%)
- Similar duration
- Match the trip interests
- Unique and different from the original

`)
	b.WriteString(noFences + " array.")
	return Prompt{
		System:      "You are a travel planning assistant.",
		User:        b.String(),
		MaxTokens:   ancillaryMaxTokens,
		Temperature: structuredTemperature,
	}
}

// Checklist asks for a categorized packing list tuned to the trip.
func Checklist(p model.TripParameters) Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a comprehensive packing checklist for an international trip to %s.\n\n", strings.Join(p.Destinations, " and "))
	fmt.Fprintf(&b, "Trip details:\n- Type: %s\n- Dates: %s to %s\n- Interests: %s\n\n", p.TripType, p.StartDate, p.EndDate, strings.Join(p.Interests, ", "))
	b.WriteString(`Return ONLY a JSON object with categorized packing items:
{
  "categories": [
    { "name": "Documents & Essentials", "items": ["Passport", "Visa", "Travel insurance"] },
    { "name": "Clothing", "items": ["Comfortable walking shoes"] },
    { "name": "Electronics", "items": ["Phone charger", "Universal adapter"] },
    { "name": "Health & Hygiene", "items": ["Medications", "Sunscreen"] },
    { "name": "Other", "items": [] }
  ]
}

Consider:
- Climate and weather for the destination
- Trip type and activities
- International travel requirements
- Cultural considerations

Provide 20-30 essential items total across all categories.
`)
	b.WriteString(noFences + ".")
	return Prompt{
		System:      "You are a travel packing expert.",
		User:        b.String(),
		MaxTokens:   ancillaryMaxTokens,
		Temperature: structuredTemperature,
	}
}

// SafetyCulture asks for safety tips, cultural dos/don'ts and emergency
// numbers for a destination.
func SafetyCulture(destination string) Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide essential safety tips and cultural guidance for travelers visiting %s.\n\n", destination)
	b.WriteString(`Return ONLY a JSON object with three sections:
{
  "safetyTips": ["Keep copies of important documents", "Be aware of common scams"],
  "culturalGuidance": {
    "dos": ["Remove shoes before entering homes"],
    "donts": ["Don't point with your feet"]
  },
  "emergencyNumbers": { "police": "110", "ambulance": "119", "fire": "119" }
}

Provide:
- 5-7 practical safety tips specific to the destination
- 4-5 cultural dos
- 4-5 cultural don'ts
- Accurate emergency numbers for the destination

Be specific and actionable.
`)
	b.WriteString(noFences + ".")
	return Prompt{
		System:      "You are a travel safety and cultural expert.",
		User:        b.String(),
		MaxTokens:   ancillaryMaxTokens,
		Temperature: structuredTemperature,
	}
}

// LocationTips asks for 3 short "good to know" tips for one stop.
func LocationTips(location, destination string, interests []string) Prompt {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide 3 practical \"good to know\" tourist tips for visiting %s in %s.\n\n", location, destination)
	fmt.Fprintf(&b, "User interests: %s.\n\n", strings.Join(interests, ", "))
	b.WriteString(`Return ONLY a JSON array of 3 strings.
Example:
[
  "Arrive early to avoid crowds at the main gate.",
  "The best photo spot is from the observation deck on the 2nd floor.",
  "Don't forget to remove your shoes before entering the inner hall."
]

Tips should be:
- Short (under 15 words)
- Actionable
- Specific to the location

`)
	b.WriteString(noFences + " array.")
	return Prompt{
		System:      "You are a local travel guide.",
		User:        b.String(),
		MaxTokens:   ancillaryMaxTokens,
		Temperature: structuredTemperature,
	}
}

// Suggestions asks for 2-3 personalized suggestions after a customize pass.
func Suggestions(itineraryLen int, budgetChange int, paceChange, destination string) Prompt {
	var budgetDesc string
	switch {
	case budgetChange > 0:
		budgetDesc = fmt.Sprintf("Increased by $%d", budgetChange)
	case budgetChange < 0:
		budgetDesc = fmt.Sprintf("Decreased by $%d", -budgetChange)
	default:
		budgetDesc = "No change"
	}
	if paceChange == "" {
		paceChange = "No change"
	}

	var b strings.Builder
	b.WriteString("Analyze this travel itinerary and provide 2-3 personalized AI suggestions.\n\n")
	fmt.Fprintf(&b, "Destination: %s\nBudget change: %s\nPace change: %s\n\n", destination, budgetDesc, paceChange)
	fmt.Fprintf(&b, "Current itinerary has %d items.\n\n", itineraryLen)
	b.WriteString(`Return ONLY a JSON array of 2-3 suggestions with this structure:
[
  {
    "title": "Suggestion title",
    "description": "Detailed explanation of the suggestion",
    "icon": "lightbulb" | "trending-up" | "heart" | "star"
  }
]

Suggestions should be:
- Actionable and specific
- Based on budget/pace changes
- Enhance the trip experience

`)
	b.WriteString(noFences + " array.")
	return Prompt{
		System:      "You are a travel planning assistant providing personalized suggestions.",
		User:        b.String(),
		MaxTokens:   ancillaryMaxTokens,
		Temperature: structuredTemperature,
	}
}

// Rejig asks the model to rework a whole itinerary around user customizations.
// The swapped activities are pinned verbatim. Meal-price instructions appear
// only when the budget actually moved, and pace instructions only when a pace
// was requested, so a zero-delta moderate rejig is a structural no-op.
func Rejig(original, swapped []model.ItineraryItem, newBudget, originalBudget int, pace string) Prompt {
	diff := newBudget - originalBudget
	direction := "unchanged"
	if diff > 0 {
		direction = "increased"
	} else if diff < 0 {
		direction = "decreased"
	}
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	if pace == "" {
		pace = "moderate"
	}

	swappedJSON, _ := json.MarshalIndent(swapped, "", "  ")
	originalJSON, _ := json.MarshalIndent(original, "", "  ")

	var b strings.Builder
	b.WriteString("Rejig this travel itinerary based on user customizations.\n\n")
	fmt.Fprintf(&b, "Original budget: $%d\n", originalBudget)
	fmt.Fprintf(&b, "New budget: $%d (%s by $%d)\n", newBudget, direction, abs)
	fmt.Fprintf(&b, "Trip pace: %s\n\n", pace)
	fmt.Fprintf(&b, "User has swapped these activities (DO NOT CHANGE THESE):\n%s\n\n", swappedJSON)
	fmt.Fprintf(&b, "Original itinerary:\n%s\n\n", originalJSON)

	b.WriteString("Instructions:\n")
	n := 1
	instr := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, "%d. ", n)
		fmt.Fprintf(&b, format+"\n", args...)
		n++
	}
	instr("PRESERVE all swapped activities exactly as provided")
	if diff < 0 {
		instr("Budget decreased: Replace meals with cheaper options (reduce meal prices by ~20-30%%)")
	} else if diff > 0 {
		instr("Budget increased: Upgrade meals to nicer restaurants (increase meal prices by ~20-30%%)")
	}
	if pace == "relaxed" {
		instr("Pace is \"relaxed\": Reduce number of activities per day, add more relax time")
	} else if pace == "packed" {
		instr("Pace is \"packed\": Add more activities if budget allows")
	}
	instr("Keep the same day structure and types (activity, meal, transportOptions)")

	b.WriteString("\nReturn the COMPLETE updated itinerary as a JSON array with the same structure as the original.\n")
	b.WriteString(noFences + " array.")
	return Prompt{
		System:      "You are a travel itinerary optimizer.",
		User:        b.String(),
		MaxTokens:   itineraryMaxTokens,
		Temperature: structuredTemperature,
	}
}

// Chat builds the live-trip companion system prompt. The reply is prose, not
// JSON; the user turns are appended by the caller.
func Chat(p model.TripParameters, itinerary []model.ItineraryItem) Prompt {
	itinJSON, _ := json.Marshal(itinerary)
	primary := "your destination"
	if len(p.Destinations) > 0 {
		primary = p.Destinations[0]
	}

	var b strings.Builder
	b.WriteString(`You are TripPilot, an AI travel assistant embedded inside a live trip itinerary app.

You are NOT a general chatbot.
You exist only to help the user during this specific trip.

Your tone is: Friendly, Calm, Practical, Context-aware, Concise.
You should feel like a knowledgeable local guide + trip coordinator.

TRIP CONTEXT:
`)
	fmt.Fprintf(&b, "Destination: %s\n", strings.Join(p.Destinations, ", "))
	fmt.Fprintf(&b, "Dates: %s to %s\n", p.StartDate, p.EndDate)
	fmt.Fprintf(&b, "Itinerary: %s\n\n", itinJSON)
	b.WriteString(`HARD CONSTRAINTS:
1. Stay in trip scope: Only answer questions directly relevant to this trip.
2. Use the itinerary explicitly: Anchor responses to actual days, places, or activities in the provided itinerary.
3. Be action-oriented: Suggest what to do next, offer 2-3 concrete options.

`)
	fmt.Fprintf(&b, "If a question is out of scope, politely redirect: \"I can help with anything related to your trip to %s. What would you like to adjust or explore?\"\n\n", primary)
	b.WriteString(`Do NOT hallucinate places not in the itinerary unless explicitly framed as "nearby suggestions".`)

	return Prompt{
		System:      b.String(),
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	}
}
