package model

// Suggestion is one personalized recommendation produced for an itinerary
// after a budget or pace adjustment.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// ChecklistCategory groups packing items under a heading such as
// "Documents & Essentials" or "Clothing".
type ChecklistCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Checklist is a categorized packing list for a trip.
type Checklist struct {
	Categories []ChecklistCategory `json:"categories"`
}

// CulturalGuidance lists destination-specific dos and don'ts.
type CulturalGuidance struct {
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// SafetyGuidance is the safety and culture brief for a destination.
type SafetyGuidance struct {
	SafetyTips       []string          `json:"safetyTips"`
	CulturalGuidance CulturalGuidance  `json:"culturalGuidance"`
	EmergencyNumbers map[string]string `json:"emergencyNumbers"`
}
