// Command validate performs integrity checks on a future-events dataset
// file before it is deployed: schema validation, geographic sanity,
// impact-score consistency, and timeline parseability.
//
// Usage:
//
//	go run ./cmd/validate -dataset data/delhi_future_events.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/couchcryptid/location-risk-service/internal/domain"
)

// Delhi NCR bounding box. Events outside it are almost certainly data-entry
// mistakes (swapped lat/lng, truncated digits).
const (
	minLat = 28.30
	maxLat = 28.90
	minLng = 76.80
	maxLng = 77.45
)

// maxRadiusMeters caps plausible impact radii; the whole NCR is under 60 km
// across.
const maxRadiusMeters = 50_000

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	datasetPath := flag.String("dataset", "data/delhi_future_events.json", "path to the future-events dataset JSON")
	flag.Parse()

	if code := run(*datasetPath); code != 0 {
		os.Exit(code)
	}
}

func run(datasetPath string) int {
	fmt.Println("=== Future-Events Dataset Validation ===")
	fmt.Println()

	data, err := os.ReadFile(datasetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read dataset: %v\n", err)
		return 1
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: parse dataset: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateSchema(events),
		validateGeography(events),
		validateImpact(events),
		validateTimelines(events),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d events in %s\n", len(events), datasetPath)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Schema ──
// Runs the same per-record validation the service applies at load time, plus
// duplicate-name detection.

func validateSchema(events []domain.Event) *phase {
	p := &phase{name: "Phase 1: Schema (per-record invariants)"}

	if len(events) == 0 {
		p.errorf("dataset is empty")
		return p
	}

	seen := map[string]int{}
	for i, e := range events {
		if err := e.Validate(); err != nil {
			p.errorf("record %d: %v", i, err)
		}
		if e.Name == "" {
			continue
		}
		if prev, ok := seen[strings.ToLower(e.Name)]; ok {
			p.errorf("record %d: duplicate name %q (first at record %d)", i, e.Name, prev)
			continue
		}
		seen[strings.ToLower(e.Name)] = i
	}
	return p
}

// ── Phase 2: Geography ──
// Coordinates must fall inside the Delhi NCR box, radii must be plausible,
// and any declared area name should resolve against the static table.

func validateGeography(events []domain.Event) *phase {
	p := &phase{name: "Phase 2: Geography (NCR bounds, radii)"}

	for i, e := range events {
		if e.Location.Lat < minLat || e.Location.Lat > maxLat {
			p.errorf("record %d (%s): lat %g outside [%g, %g]", i, e.Name, e.Location.Lat, minLat, maxLat)
		}
		if e.Location.Lng < minLng || e.Location.Lng > maxLng {
			p.errorf("record %d (%s): lng %g outside [%g, %g]", i, e.Name, e.Location.Lng, minLng, maxLng)
		}
		if e.Impact.RadiusMeters > maxRadiusMeters {
			p.errorf("record %d (%s): radius %gm exceeds %dm", i, e.Name, e.Impact.RadiusMeters, maxRadiusMeters)
		}

		if e.Location.AreaName == "" {
			continue
		}
		coord, ok := domain.LookupArea(e.Location.AreaName)
		if !ok {
			p.errorf("record %d (%s): area_name %q not in static area table", i, e.Name, e.Location.AreaName)
			continue
		}
		// The declared area should sit reasonably close to the event itself.
		if d := domain.Haversine(coord, e.Location.Coordinate); d > 15_000 {
			p.errorf("record %d (%s): coordinate is %.0fm from area %q center", i, e.Name, d, e.Location.AreaName)
		}
	}
	return p
}

// ── Phase 3: Impact ──
// Score sign must agree with sentiment and stay within the conventional
// [-1, 1] range.

func validateImpact(events []domain.Event) *phase {
	p := &phase{name: "Phase 3: Impact (sentiment/score consistency)"}

	for i, e := range events {
		if math.Abs(e.Impact.Score) > 1 {
			p.errorf("record %d (%s): score %g outside [-1, 1]", i, e.Name, e.Impact.Score)
		}
		if e.Impact.Score == 0 {
			p.errorf("record %d (%s): score is zero (event has no effect)", i, e.Name)
		}
		switch e.Impact.Sentiment {
		case domain.SentimentNegative:
			if e.Impact.Score > 0 {
				p.errorf("record %d (%s): NEGATIVE sentiment with positive score %g", i, e.Name, e.Impact.Score)
			}
		case domain.SentimentPositive:
			if e.Impact.Score < 0 {
				p.errorf("record %d (%s): POSITIVE sentiment with negative score %g", i, e.Name, e.Impact.Score)
			}
		}
	}
	return p
}

// ── Phase 4: Timelines ──
// Every impact_start must parse; an unparsable value silently drops the
// event from success-rate projections at runtime.

func validateTimelines(events []domain.Event) *phase {
	p := &phase{name: "Phase 4: Timelines (impact_start parseable)"}

	for i, e := range events {
		start, err := domain.ParseImpactStart(e.Timelines.ImpactStart)
		if err != nil {
			p.errorf("record %d (%s): %v", i, e.Name, err)
			continue
		}
		if year := start.Year(); year < 2020 || year > 2050 {
			p.errorf("record %d (%s): impact_start year %d is implausible", i, e.Name, year)
		}
	}
	return p
}
