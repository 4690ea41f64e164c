// Package domain models future city events and the pure computations that
// turn them into a business-location risk analysis.
//
// # Data Source
//
// Future events (construction projects, festivals, infrastructure work)
// come from a static JSON dataset loaded once at process start. Each record
// carries a WGS-84 coordinate, an impact radius in meters, a sentiment
// (POSITIVE or NEGATIVE), a signed impact score conventionally in [-1, 1],
// and an ISO-8601 impact-start timestamp.
//
// # Relevance
//
// An event is relevant to a query point when the haversine great-circle
// distance between the two is less than or equal to the event's impact
// radius (boundary inclusive). Relevant events are annotated with the
// computed distance; the canonical dataset record is never mutated.
//
// # Risk Formula
//
//	Risk = 50 + (Avg_Negative × 40) - (Avg_Positive × 30) + Location_Factor
//
// where Avg_Negative and Avg_Positive are the mean absolute impact scores
// of the NEGATIVE-relevant and POSITIVE-relevant event subsets (0 when a
// subset is empty). The result is clamped to [0, 100] and rounded to two
// decimals. Label bands:
//
//	[0, 30)   Low
//	[30, 50)  Moderate
//	[50, 70)  High
//	[70, 100] Very High
//
// # Projection
//
// The success projection covers eleven calendar years starting from the
// current year. Each year starts at the base success rate; every relevant
// event whose impact has started by that year contributes
//
//	score × 30 × e^(-0.1 × years_since_impact_start)
//
// so influence decays exponentially with age. Events starting after the
// projected year contribute nothing, and events with unparsable timestamps
// are skipped individually without aborting the projection. The yearly
// success probability is clamped to [20, 95]; risk is its complement.
//
// The current year comes from a package-level clock so tests can pin a
// reference year with [SetClock].
package domain
