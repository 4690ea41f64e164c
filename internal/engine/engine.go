// Package engine orchestrates one location-risk analysis: relevance
// filtering, scoring, financial projection, the multi-year success curve,
// and advisory lookups, plus best-effort audit publishing.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/location-risk-service/internal/dataset"
	"github.com/couchcryptid/location-risk-service/internal/domain"
	"github.com/couchcryptid/location-risk-service/internal/observability"
)

// AuditPublisher records completed analyses on an external topic.
type AuditPublisher interface {
	Publish(ctx context.Context, record domain.AuditRecord) error
}

// Options are the tunable engine defaults, constructed from config rather
// than scattered literals.
type Options struct {
	BaseSuccessRate   float64
	LocationFactor    float64
	DefaultCoordinate domain.Coordinate
}

// Engine computes analyses against the immutable event store. Stateless per
// request; safe for concurrent use.
type Engine struct {
	store    *dataset.Store
	geocoder domain.Geocoder // nil disables remote geocoding
	audit    AuditPublisher  // nil disables audit publishing
	logger   *slog.Logger
	metrics  *observability.Metrics
	opts     Options
}

// New creates an Engine. Pass a nil geocoder or audit publisher to disable
// the corresponding feature.
func New(store *dataset.Store, geocoder domain.Geocoder, audit AuditPublisher, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Engine {
	return &Engine{
		store:    store,
		geocoder: geocoder,
		audit:    audit,
		logger:   logger,
		metrics:  metrics,
		opts:     opts,
	}
}

// CheckReadiness returns nil once the event dataset is loaded and
// non-empty.
func (e *Engine) CheckReadiness(_ context.Context) error {
	if e.store.Len() == 0 {
		return errors.New("event dataset is empty")
	}
	return nil
}

// Events exposes the loaded dataset for debug reporting.
func (e *Engine) Events() []domain.Event {
	return e.store.Events()
}

// ResolveLocation turns an area name into a coordinate using the remote
// geocoder (when configured), the static area table, and finally the
// configured default coordinate.
func (e *Engine) ResolveLocation(ctx context.Context, name string) domain.Coordinate {
	return domain.ResolveArea(ctx, name, e.geocoder, e.opts.DefaultCoordinate, e.logger)
}

// Analyze runs the full risk computation for one query. Pure except for
// metrics, logging, and the best-effort audit publish; identical inputs
// under a fixed clock produce identical output.
func (e *Engine) Analyze(ctx context.Context, query domain.Query) domain.Analysis {
	start := time.Now()

	relevant := domain.RelevantEvents(query.Coordinate(), e.store.Events())
	positive, negative := domain.PartitionBySentiment(relevant)

	if unknown := len(relevant) - len(positive) - len(negative); unknown > 0 {
		e.logger.Warn("relevant events excluded for unknown sentiment", "count", unknown)
		e.metrics.UnknownSentiment.Add(float64(unknown))
	}

	score := domain.RiskScore(positive, negative, e.opts.LocationFactor)
	label := domain.RiskLabel(score)

	revenue := domain.ProjectedRevenue(query.Investment, score)
	analysis := domain.Analysis{
		RiskScore:        score,
		RiskLabel:        label,
		ProjectedRevenue: revenue,
		BreakEvenMonths:  domain.BreakEvenMonths(query.Investment, revenue),
		YearlyGrowth:     "12%",
		Events:           relevant,
		PositiveCount:    len(positive),
		NegativeCount:    len(negative),
		ProjectionData:   domain.Projection(relevant, e.opts.BaseSuccessRate),
		Formula:          domain.RiskFormula,
	}

	if score > domain.AdvisoryThreshold {
		analysis.Alternatives = domain.AlternativeLocations(score)
		analysis.AlternateBusinesses = domain.AlternativeBusinesses(query.BusinessType)
	}

	e.metrics.RelevantEvents.Observe(float64(len(relevant)))
	e.metrics.RiskScore.Observe(score)
	e.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	e.logger.Info("analysis complete",
		"lat", query.Lat,
		"lng", query.Lng,
		"business_type", query.BusinessType,
		"relevant_events", len(relevant),
		"positive", len(positive),
		"negative", len(negative),
		"risk_score", score,
		"risk_label", label,
	)

	e.publishAudit(ctx, query, analysis)

	return analysis
}

// publishAudit records the analysis on the audit topic. Failures are logged
// and counted, never surfaced to the caller.
func (e *Engine) publishAudit(ctx context.Context, query domain.Query, analysis domain.Analysis) {
	if e.audit == nil {
		return
	}
	record := domain.NewAuditRecord(query, analysis)
	if err := e.audit.Publish(ctx, record); err != nil {
		e.logger.Warn("audit publish failed", "error", err)
		e.metrics.AuditErrors.Inc()
		return
	}
	e.metrics.AuditPublished.Inc()
}
