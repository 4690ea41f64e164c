package domain

// Analysis is the full result of one location query. Every field is derived;
// nothing here outlives the request.
type Analysis struct {
	RiskScore        float64 `json:"risk_score"`
	RiskLabel        string  `json:"risk_label"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	BreakEvenMonths  float64 `json:"break_even_months"`
	YearlyGrowth     string  `json:"yearly_growth"`

	Events        []RelevantEvent `json:"events"`
	PositiveCount int             `json:"positive_count"`
	NegativeCount int             `json:"negative_count"`

	ProjectionData []ProjectionPoint `json:"projection_data"`

	Alternatives        []LocationSuggestion `json:"alternatives"`
	AlternateBusinesses []BusinessSuggestion `json:"alternate_businesses"`

	Formula string `json:"formula"`
}
