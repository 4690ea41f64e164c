// Command genevents generates the Delhi future-events dataset fixture and
// prints aggregate stats useful for updating test assertions. It uses the
// actual domain package under a fixed clock so the printed projections match
// real engine behavior.
//
// Usage:
//
//	go run ./cmd/genevents -out data/delhi_future_events.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/location-risk-service/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/delhi_future_events.json", "output path for the dataset fixture")
	flag.Parse()

	// Fix the clock so printed projections are reproducible.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	events := delhiEvents()
	for i, e := range events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("generated record %d invalid: %w", i, err)
		}
	}

	if err := writeJSON(*out, events); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	log.Printf("wrote %d events: %s", len(events), *out)

	printStats(events)
	return nil
}

// delhiEvents is the curated fixture: announced infrastructure, civic, and
// commercial projects around Delhi with hand-assigned impact scores.
func delhiEvents() []domain.Event {
	return []domain.Event{
		{
			Name: "Metro Phase V Construction",
			Location: domain.EventLocation{
				Coordinate: domain.Coordinate{Lat: 28.6315, Lng: 77.2167},
				AreaName:   "Connaught Place",
			},
			Impact:    domain.Impact{RadiusMeters: 5000, Sentiment: domain.SentimentNegative, Score: -0.8},
			Timelines: domain.Timelines{ImpactStart: "2026-09-01T00:00:00Z"},
		},
		{
			Name: "Connaught Place Pedestrianization",
			Location: domain.EventLocation{
				Coordinate: domain.Coordinate{Lat: 28.6330, Lng: 77.2190},
				AreaName:   "Connaught Place",
			},
			Impact:    domain.Impact{RadiusMeters: 2000, Sentiment: domain.SentimentPositive, Score: 0.7},
			Timelines: domain.Timelines{ImpactStart: "2028-03-15T00:00:00Z"},
		},
		{
			Name: "Karol Bagh Flyover Repair",
			Location: domain.EventLocation{
				Coordinate: domain.Coordinate{Lat: 28.6519, Lng: 77.1900},
				AreaName:   "Karol Bagh",
			},
			Impact:    domain.Impact{RadiusMeters: 3000, Sentiment: domain.SentimentNegative, Score: -0.5},
			Timelines: domain.Timelines{ImpactStart: "2027-01-10T00:00:00Z"},
		},
		{
			Name: "Saket Cyber Hub Expansion",
			Location: domain.EventLocation{
				Coordinate: domain.Coordinate{Lat: 28.5244, Lng: 77.2066},
				AreaName:   "Saket",
			},
			Impact:    domain.Impact{RadiusMeters: 4000, Sentiment: domain.SentimentPositive, Score: 0.9},
			Timelines: domain.Timelines{ImpactStart: "2029-07-01T00:00:00Z"},
		},
		{
			Name: "Dwarka Expressway Interchange",
			Location: domain.EventLocation{
				Coordinate: domain.Coordinate{Lat: 28.5921, Lng: 77.0460},
				AreaName:   "Dwarka",
			},
			Impact:    domain.Impact{RadiusMeters: 6000, Sentiment: domain.SentimentNegative, Score: -0.6},
			Timelines: domain.Timelines{ImpactStart: "2026-11-20T00:00:00Z"},
		},
		{
			Name: "Dwarka Convention Centre Opening",
			Location: domain.EventLocation{
				Coordinate: domain.Coordinate{Lat: 28.5890, Lng: 77.0520},
				AreaName:   "Dwarka",
			},
			Impact:    domain.Impact{RadiusMeters: 3500, Sentiment: domain.SentimentPositive, Score: 0.8},
			Timelines: domain.Timelines{ImpactStart: "2027-10-05T00:00:00Z"},
		},
		{
			Name: "Rohini Industrial Corridor Rezoning",
			Location: domain.EventLocation{
				Coordinate: domain.Coordinate{Lat: 28.7496, Lng: 77.0669},
				AreaName:   "Rohini",
			},
			Impact:    domain.Impact{RadiusMeters: 5000, Sentiment: domain.SentimentNegative, Score: -0.4},
			Timelines: domain.Timelines{ImpactStart: "2028-06-01T00:00:00Z"},
		},
		{
			Name: "Sarojini Nagar Market Redevelopment",
			Location: domain.EventLocation{
				Coordinate: domain.Coordinate{Lat: 28.5753, Lng: 77.1953},
				AreaName:   "Sarojini Nagar",
			},
			Impact:    domain.Impact{RadiusMeters: 2500, Sentiment: domain.SentimentPositive, Score: 0.6},
			Timelines: domain.Timelines{ImpactStart: "2027-04-01T00:00:00Z"},
		},
	}
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(events []domain.Event) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(events))

	var positive, negative int
	areaCounts := map[string]int{}
	for _, e := range events {
		switch e.Impact.Sentiment {
		case domain.SentimentPositive:
			positive++
		case domain.SentimentNegative:
			negative++
		}
		areaCounts[e.Location.AreaName]++
	}
	fmt.Printf("By sentiment: positive=%d, negative=%d\n", positive, negative)
	fmt.Printf("By area: ")
	for area, n := range areaCounts {
		fmt.Printf("%s=%d ", area, n)
	}
	fmt.Println()

	// Sample analysis at each static area center (base success rate 60).
	fmt.Println("\nPer-area sample analysis:")
	for _, name := range []string{"Connaught Place", "Karol Bagh", "Saket", "Dwarka", "Rohini", "Sarojini Nagar"} {
		coord, ok := domain.LookupArea(name)
		if !ok {
			continue
		}
		relevant := domain.RelevantEvents(coord, events)
		pos, neg := domain.PartitionBySentiment(relevant)
		score := domain.RiskScore(pos, neg, 0)
		projection := domain.Projection(relevant, domain.DefaultBaseSuccessRate)

		fmt.Printf("  %-18s relevant=%d pos=%d neg=%d risk=%.2f (%s) year1=%.1f\n",
			name, len(relevant), len(pos), len(neg), score, domain.RiskLabel(score), projection[0].Probability)
	}
}
