package domain

import "strings"

// AdvisoryThreshold is the risk score above which the engine consults the
// advisory tables.
const AdvisoryThreshold = 40

// LocationSuggestion is a lower-risk alternative area.
type LocationSuggestion struct {
	Area    string  `json:"area"`
	Pincode string  `json:"pincode"`
	Risk    float64 `json:"risk"`
	Reason  string  `json:"reason"`
}

// BusinessSuggestion is an alternative business model for a risky location.
type BusinessSuggestion struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

const maxLocationSuggestions = 3

// locationCandidates is the fixed advisory table, ordered by preference.
var locationCandidates = []LocationSuggestion{
	{Area: "Connaught Place", Pincode: "110001", Risk: 25, Reason: "High footfall, established commercial hub"},
	{Area: "Dwarka Sector 10", Pincode: "110075", Risk: 28, Reason: "New residential development, growing population"},
	{Area: "Saket", Pincode: "110017", Risk: 30, Reason: "Affluent residential area with strong retail demand"},
}

// businessKeywords maps business-type keywords to their suggestion lists.
// Iterated via businessKeywordOrder so matches are deterministic.
var businessKeywords = map[string][]BusinessSuggestion{
	"restaurant": {
		{Type: "Cloud Kitchen", Reason: "Lower overhead, delivery-focused model"},
		{Type: "Co-working Space", Reason: "Growing remote work culture"},
	},
	"cafe": {
		{Type: "Cloud Kitchen", Reason: "Lower overhead, delivery-focused model"},
		{Type: "Co-working Space", Reason: "Growing remote work culture"},
	},
}

var businessKeywordOrder = []string{"restaurant", "cafe"}

// AlternativeLocations returns up to three candidate areas whose tabulated
// risk is strictly below the current risk, preserving table order.
func AlternativeLocations(currentRisk float64) []LocationSuggestion {
	var suggestions []LocationSuggestion
	for _, candidate := range locationCandidates {
		if candidate.Risk >= currentRisk {
			continue
		}
		suggestions = append(suggestions, candidate)
		if len(suggestions) == maxLocationSuggestions {
			break
		}
	}
	return suggestions
}

// AlternativeBusinesses returns the suggestion list for the first keyword
// contained in the business type, matched case-insensitively. Unmatched
// types get an empty list.
func AlternativeBusinesses(businessType string) []BusinessSuggestion {
	lowered := strings.ToLower(businessType)
	for _, keyword := range businessKeywordOrder {
		if strings.Contains(lowered, keyword) {
			return businessKeywords[keyword]
		}
	}
	return nil
}
