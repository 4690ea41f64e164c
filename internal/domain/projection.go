package domain

import (
	"fmt"
	"math"
	"time"
)

// Projection shape constants.
const (
	projectionYears = 11 // current year through current year + 10
	impactWeight    = 30
	decayRate       = 0.1
	minSuccess      = 20
	maxSuccess      = 95

	// DefaultBaseSuccessRate seeds every projection year before event
	// contributions are applied.
	DefaultBaseSuccessRate = 60
)

// ProjectionPoint is one year of the success/risk projection. Probability
// and Risk always sum to 100.
type ProjectionPoint struct {
	Year        int     `json:"year"`
	Probability float64 `json:"probability"`
	Risk        float64 `json:"risk"`
}

// Projection produces the eleven-year success-probability curve for the
// given relevant events, starting at the current calendar year from the
// package clock. Each event whose impact has started by the projected year
// contributes its score weighted by an exponential decay of the years
// elapsed since impact start. Events with unparsable impact-start
// timestamps are skipped individually.
func Projection(events []RelevantEvent, baseSuccessRate float64) []ProjectionPoint {
	currentYear := clock.Now().Year()
	projection := make([]ProjectionPoint, 0, projectionYears)

	// Resolve impact years once; a nil entry means the event never
	// contributes.
	impactYears := make([]*int, len(events))
	for i, event := range events {
		start, err := ParseImpactStart(event.Timelines.ImpactStart)
		if err != nil {
			continue
		}
		year := start.Year()
		impactYears[i] = &year
	}

	for offset := 0; offset < projectionYears; offset++ {
		year := currentYear + offset
		success := baseSuccessRate

		for i, event := range events {
			if impactYears[i] == nil || year < *impactYears[i] {
				continue
			}
			yearsAfterImpact := float64(year - *impactYears[i])
			decay := math.Exp(-decayRate * yearsAfterImpact)
			success += event.Impact.Score * impactWeight * decay
		}

		success = clamp(success, minSuccess, maxSuccess)
		projection = append(projection, ProjectionPoint{
			Year:        year,
			Probability: round1(success),
			Risk:        round1(100 - success),
		})
	}

	return projection
}

// impactStartLayouts are tried in order. The dataset nominally uses RFC 3339
// but some records omit the zone suffix or carry a bare date.
var impactStartLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseImpactStart parses an event's impact-start timestamp. It returns an
// error instead of panicking or defaulting so callers can skip the single
// bad record.
func ParseImpactStart(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("impact_start is empty")
	}
	for _, layout := range impactStartLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("impact_start %q: unrecognized timestamp", value)
}
