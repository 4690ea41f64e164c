package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// risk engine and its adapters.
type Metrics struct {
	AnalysesTotal    *prometheus.CounterVec // labels: endpoint={predict,analyze}, outcome={success,bad_request}
	AnalysisDuration prometheus.Histogram
	RelevantEvents   prometheus.Histogram
	RiskScore        prometheus.Histogram

	// Dataset metrics.
	EventsLoaded     prometheus.Gauge
	EventsRejected   prometheus.Counter
	UnknownSentiment prometheus.Counter

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge

	// Audit publishing metrics.
	AuditPublished prometheus.Counter
	AuditErrors    prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "location_risk",
			Name:      "analyses_total",
			Help:      "Completed analysis requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		AnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "location_risk",
			Name:      "analysis_duration_seconds",
			Help:      "Duration of one full analysis computation.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		RelevantEvents: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "location_risk",
			Name:      "relevant_events",
			Help:      "Number of events within impact radius per analysis.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
		RiskScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "location_risk",
			Name:      "risk_score",
			Help:      "Computed risk scores.",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		EventsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "location_risk",
			Name:      "events_loaded",
			Help:      "Events in the loaded dataset.",
		}),
		EventsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "location_risk",
			Name:      "events_rejected_total",
			Help:      "Dataset records skipped during load for failing validation.",
		}),
		UnknownSentiment: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "location_risk",
			Name:      "unknown_sentiment_total",
			Help:      "Relevant events excluded from scoring for carrying a sentiment outside POSITIVE/NEGATIVE.",
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "location_risk",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "location_risk",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "location_risk",
			Name:      "geocode_api_duration_seconds",
			Help:      "Geocoding provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "location_risk",
			Name:      "geocode_enabled",
			Help:      "1 when remote geocoding is enabled, 0 otherwise.",
		}),
		AuditPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "location_risk",
			Name:      "audit_published_total",
			Help:      "Audit records published to the audit topic.",
		}),
		AuditErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "location_risk",
			Name:      "audit_errors_total",
			Help:      "Audit publish failures (best-effort, never surfaced to callers).",
		}),
	}

	prometheus.MustRegister(
		m.AnalysesTotal,
		m.AnalysisDuration,
		m.RelevantEvents,
		m.RiskScore,
		m.EventsLoaded,
		m.EventsRejected,
		m.UnknownSentiment,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
		m.AuditPublished,
		m.AuditErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AnalysesTotal:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "location_risk", Name: "analyses_total"}, []string{"endpoint", "outcome"}),
		AnalysisDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "location_risk", Name: "analysis_duration_seconds"}),
		RelevantEvents:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "location_risk", Name: "relevant_events"}),
		RiskScore:          prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "location_risk", Name: "risk_score"}),
		EventsLoaded:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "location_risk", Name: "events_loaded"}),
		EventsRejected:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "location_risk", Name: "events_rejected_total"}),
		UnknownSentiment:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "location_risk", Name: "unknown_sentiment_total"}),
		GeocodeRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "location_risk", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "location_risk", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "location_risk", Name: "geocode_api_duration_seconds"}),
		GeocodeEnabled:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "location_risk", Name: "geocode_enabled"}),
		AuditPublished:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "location_risk", Name: "audit_published_total"}),
		AuditErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "location_risk", Name: "audit_errors_total"}),
	}
}
