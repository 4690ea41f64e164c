package engine_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/location-risk-service/internal/dataset"
	"github.com/couchcryptid/location-risk-service/internal/domain"
	"github.com/couchcryptid/location-risk-service/internal/engine"
	"github.com/couchcryptid/location-risk-service/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var connaughtPlace = domain.Coordinate{Lat: 28.6139, Lng: 77.2090}

type mockAudit struct {
	records []domain.AuditRecord
	err     error
}

func (m *mockAudit) Publish(_ context.Context, record domain.AuditRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, record)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func defaultOptions() engine.Options {
	return engine.Options{
		BaseSuccessRate:   domain.DefaultBaseSuccessRate,
		LocationFactor:    0,
		DefaultCoordinate: connaughtPlace,
	}
}

func negativeEventAt(coord domain.Coordinate, score float64) domain.Event {
	return domain.Event{
		Name:      "Metro Construction",
		Location:  domain.EventLocation{Coordinate: coord, AreaName: "Connaught Place"},
		Impact:    domain.Impact{RadiusMeters: 5000, Sentiment: domain.SentimentNegative, Score: score},
		Timelines: domain.Timelines{ImpactStart: "2026-01-15T00:00:00Z"},
	}
}

func pinYear(t *testing.T, year int) {
	t.Helper()
	domain.SetClock(clockwork.NewFakeClockAt(time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { domain.SetClock(nil) })
}

func TestAnalyze_SingleNegativeEventScenario(t *testing.T) {
	pinYear(t, 2026)

	store := dataset.New([]domain.Event{negativeEventAt(connaughtPlace, -0.8)})
	e := engine.New(store, nil, nil, testLogger(), observability.NewMetricsForTesting(), defaultOptions())

	analysis := e.Analyze(context.Background(), domain.Query{
		Lat: connaughtPlace.Lat, Lng: connaughtPlace.Lng,
		Investment: 1_000_000, BusinessType: "Cafe",
	})

	require.Len(t, analysis.Events, 1)
	assert.Equal(t, 82.0, analysis.RiskScore)
	assert.Equal(t, "Very High", analysis.RiskLabel)
	assert.Equal(t, 0, analysis.PositiveCount)
	assert.Equal(t, 1, analysis.NegativeCount)
	assert.Zero(t, analysis.Events[0].DistanceMeters)

	// risk 82 → multiplier 0.59 → 1,000,000 * 0.45 * 0.59 = 265,500.
	assert.InDelta(t, 265500, analysis.ProjectedRevenue, 0.01)
	// 1,000,000 / (265,500 * 0.2) = 18.832... → 18.8.
	assert.Equal(t, 18.8, analysis.BreakEvenMonths)

	require.Len(t, analysis.ProjectionData, 11)
	assert.Equal(t, 2026, analysis.ProjectionData[0].Year)
	// 60 - 0.8*30 = 36.
	assert.Equal(t, 36.0, analysis.ProjectionData[0].Probability)

	// Score above 40 triggers the advisory tables.
	assert.Len(t, analysis.Alternatives, 3)
	assert.Len(t, analysis.AlternateBusinesses, 2)
	assert.Equal(t, domain.RiskFormula, analysis.Formula)
}

func TestAnalyze_NoRelevantEvents(t *testing.T) {
	pinYear(t, 2026)

	// One event far outside its radius.
	far := negativeEventAt(domain.Coordinate{Lat: 28.7496, Lng: 77.0669}, -0.9)
	far.Impact.RadiusMeters = 1000

	store := dataset.New([]domain.Event{far})
	e := engine.New(store, nil, nil, testLogger(), observability.NewMetricsForTesting(), defaultOptions())

	analysis := e.Analyze(context.Background(), domain.Query{
		Lat: connaughtPlace.Lat, Lng: connaughtPlace.Lng, Investment: 500_000, BusinessType: "Salon",
	})

	assert.Empty(t, analysis.Events)
	assert.Equal(t, 50.0, analysis.RiskScore)
	assert.Equal(t, "High", analysis.RiskLabel)
	assert.Zero(t, analysis.PositiveCount)
	assert.Zero(t, analysis.NegativeCount)

	// 50 > 40 still consults the tables; Salon matches no keyword.
	assert.Len(t, analysis.Alternatives, 3)
	assert.Empty(t, analysis.AlternateBusinesses)

	for _, point := range analysis.ProjectionData {
		assert.Equal(t, 60.0, point.Probability)
	}
}

func TestAnalyze_LocationFactorShiftsBase(t *testing.T) {
	pinYear(t, 2026)

	opts := defaultOptions()
	opts.LocationFactor = -15

	store := dataset.New(nil)
	e := engine.New(store, nil, nil, testLogger(), observability.NewMetricsForTesting(), opts)

	analysis := e.Analyze(context.Background(), domain.Query{Lat: 28.6, Lng: 77.2})
	assert.Equal(t, 35.0, analysis.RiskScore)
	assert.Equal(t, "Moderate", analysis.RiskLabel)
	// Below the advisory threshold: no suggestions.
	assert.Empty(t, analysis.Alternatives)
	assert.Empty(t, analysis.AlternateBusinesses)
}

func TestAnalyze_PublishesAuditRecord(t *testing.T) {
	pinYear(t, 2026)

	audit := &mockAudit{}
	store := dataset.New([]domain.Event{negativeEventAt(connaughtPlace, -0.8)})
	e := engine.New(store, nil, audit, testLogger(), observability.NewMetricsForTesting(), defaultOptions())

	query := domain.Query{Lat: connaughtPlace.Lat, Lng: connaughtPlace.Lng, Investment: 100, BusinessType: "cafe"}
	e.Analyze(context.Background(), query)

	require.Len(t, audit.records, 1)
	assert.Equal(t, query, audit.records[0].Query)
	assert.Equal(t, 82.0, audit.records[0].RiskScore)
	assert.Equal(t, 2026, audit.records[0].AnalyzedAt.Year())
}

func TestAnalyze_AuditFailureDoesNotAffectResult(t *testing.T) {
	pinYear(t, 2026)

	audit := &mockAudit{err: errors.New("broker unavailable")}
	store := dataset.New([]domain.Event{negativeEventAt(connaughtPlace, -0.8)})
	e := engine.New(store, nil, audit, testLogger(), observability.NewMetricsForTesting(), defaultOptions())

	analysis := e.Analyze(context.Background(), domain.Query{Lat: connaughtPlace.Lat, Lng: connaughtPlace.Lng})
	assert.Equal(t, 82.0, analysis.RiskScore)
	assert.Empty(t, audit.records)
}

func TestCheckReadiness(t *testing.T) {
	empty := engine.New(dataset.New(nil), nil, nil, testLogger(), observability.NewMetricsForTesting(), defaultOptions())
	require.Error(t, empty.CheckReadiness(context.Background()))

	loaded := engine.New(dataset.New([]domain.Event{negativeEventAt(connaughtPlace, -0.5)}), nil, nil, testLogger(), observability.NewMetricsForTesting(), defaultOptions())
	require.NoError(t, loaded.CheckReadiness(context.Background()))
}

func TestResolveLocation_FallsBackToDefault(t *testing.T) {
	e := engine.New(dataset.New(nil), nil, nil, testLogger(), observability.NewMetricsForTesting(), defaultOptions())

	assert.Equal(t, connaughtPlace, e.ResolveLocation(context.Background(), ""))
	assert.Equal(t, connaughtPlace, e.ResolveLocation(context.Background(), "Atlantis"))
	assert.Equal(t, domain.Coordinate{Lat: 28.6519, Lng: 77.1900}, e.ResolveLocation(context.Background(), "Karol Bagh"))
}
