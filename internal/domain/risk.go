package domain

import "math"

// Risk formula constants. The weights are part of the published formula
// string returned with every analysis, so changing them is an API change.
const (
	baseRisk       = 50
	negativeWeight = 40
	positiveWeight = 30
)

// RiskFormula is the human-readable form of the scoring formula, returned
// verbatim in every analysis for frontend display.
const RiskFormula = "Risk = 50 + (Avg_Negative × 40) - (Avg_Positive × 30) + Location_Factor"

// RiskScore computes the weighted risk score from the sentiment-partitioned
// relevant events plus a location adjustment, clamped to [0, 100] and
// rounded to two decimals. Empty subsets contribute a zero mean, so with no
// relevant events the score degrades to the clamped base.
func RiskScore(positive, negative []RelevantEvent, locationFactor float64) float64 {
	avgPositive := meanAbsoluteScore(positive)
	avgNegative := meanAbsoluteScore(negative)

	risk := baseRisk + negativeWeight*avgNegative - positiveWeight*avgPositive + locationFactor
	return round2(clamp(risk, 0, 100))
}

// RiskLabel maps a score to its band. Lower bounds are inclusive, upper
// bounds exclusive; 100 falls in "Very High".
func RiskLabel(score float64) string {
	switch {
	case score < 30:
		return "Low"
	case score < 50:
		return "Moderate"
	case score < 70:
		return "High"
	default:
		return "Very High"
	}
}

func meanAbsoluteScore(events []RelevantEvent) float64 {
	if len(events) == 0 {
		return 0
	}
	var sum float64
	for _, event := range events {
		sum += math.Abs(event.Impact.Score)
	}
	return sum / float64(len(events))
}
