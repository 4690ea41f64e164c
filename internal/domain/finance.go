package domain

// Financial projection constants: expected first-year revenue as a share of
// investment, and monthly margin as a share of revenue.
const (
	revenueShare  = 0.45
	monthlyMargin = 0.2
)

// ProjectedRevenue estimates first-year revenue from the investment and the
// computed risk score. A score of 0 keeps the full 45% share; a score of
// 100 halves it.
func ProjectedRevenue(investment, riskScore float64) float64 {
	riskMultiplier := 1 - riskScore/200
	return investment * revenueShare * riskMultiplier
}

// BreakEvenMonths estimates months to recover the investment at a 20%
// monthly margin on revenue, rounded to one decimal. Zero or negative
// revenue yields 0 rather than a division error.
func BreakEvenMonths(investment, revenue float64) float64 {
	if revenue <= 0 {
		return 0
	}
	return round1(investment / (revenue * monthlyMargin))
}
