package domain

import (
	"fmt"
	"math"
	"time"
)

// Sentiment is the polarity of an event's effect on business viability.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
)

// Coordinate is a WGS-84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EventLocation is an event's coordinate plus its human-readable area name.
type EventLocation struct {
	Coordinate
	AreaName string `json:"area_name,omitempty"`
}

// Impact describes how strongly, how far, and in which direction an event
// affects nearby businesses.
type Impact struct {
	RadiusMeters float64   `json:"radius_meters"`
	Sentiment    Sentiment `json:"sentiment"`
	Score        float64   `json:"score"` // signed, conventionally in [-1, 1]
}

// Timelines holds the event's schedule. ImpactStart is kept as the raw
// dataset string and parsed lazily; a bad value disables that event's
// projection contribution without invalidating the record.
type Timelines struct {
	ImpactStart string `json:"impact_start"`
}

// Event is one immutable record from the future-events dataset.
type Event struct {
	Name      string        `json:"name"`
	Location  EventLocation `json:"location"`
	Impact    Impact        `json:"impact"`
	Timelines Timelines     `json:"timelines"`
}

// Validate checks the dataset invariants for a single record.
func (e Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("event has no name")
	}
	if math.IsNaN(e.Location.Lat) || math.IsInf(e.Location.Lat, 0) ||
		math.IsNaN(e.Location.Lng) || math.IsInf(e.Location.Lng, 0) {
		return fmt.Errorf("event %q: coordinate is not finite", e.Name)
	}
	if e.Impact.RadiusMeters <= 0 {
		return fmt.Errorf("event %q: radius_meters must be positive, got %g", e.Name, e.Impact.RadiusMeters)
	}
	switch e.Impact.Sentiment {
	case SentimentPositive, SentimentNegative:
	default:
		return fmt.Errorf("event %q: unknown sentiment %q", e.Name, e.Impact.Sentiment)
	}
	return nil
}

// RelevantEvent is an Event annotated with its distance to a specific query
// point. Derived per request, never stored.
type RelevantEvent struct {
	Event
	DistanceMeters float64 `json:"distance_meters"`
	DistanceKM     float64 `json:"distance_km"`
}

// Query is one location-analysis request.
type Query struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Investment   float64 `json:"investment"`
	BusinessType string  `json:"type"`
}

// Coordinate returns the query point as a Coordinate.
func (q Query) Coordinate() Coordinate {
	return Coordinate{Lat: q.Lat, Lng: q.Lng}
}

// AuditRecord is the wire form of one completed analysis, published to the
// audit topic when auditing is enabled.
type AuditRecord struct {
	Query         Query     `json:"query"`
	RiskScore     float64   `json:"risk_score"`
	RiskLabel     string    `json:"risk_label"`
	PositiveCount int       `json:"positive_count"`
	NegativeCount int       `json:"negative_count"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
}

// NewAuditRecord captures the audit-relevant slice of an analysis at the
// current clock time.
func NewAuditRecord(q Query, a Analysis) AuditRecord {
	return AuditRecord{
		Query:         q,
		RiskScore:     a.RiskScore,
		RiskLabel:     a.RiskLabel,
		PositiveCount: a.PositiveCount,
		NegativeCount: a.NegativeCount,
		AnalyzedAt:    clock.Now(),
	}
}
