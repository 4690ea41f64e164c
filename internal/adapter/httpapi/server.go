// Package httpapi exposes the risk engine over HTTP: the prediction
// endpoints consumed by the frontend plus health, readiness, metrics, and a
// dataset debug view.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/location-risk-service/internal/domain"
	"github.com/couchcryptid/location-risk-service/internal/observability"
)

// Analyzer is the engine surface the server needs.
type Analyzer interface {
	Analyze(ctx context.Context, query domain.Query) domain.Analysis
	ResolveLocation(ctx context.Context, name string) domain.Coordinate
	CheckReadiness(ctx context.Context) error
	Events() []domain.Event
}

// Server exposes the prediction API and operational endpoints.
type Server struct {
	httpServer *http.Server
	engine     Analyzer
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates the HTTP server. The API is CORS-open: the original
// frontend is served from a different origin.
func NewServer(addr string, engine Analyzer, logger *slog.Logger, metrics *observability.Metrics) *Server {
	s := &Server{
		engine:  engine,
		logger:  logger,
		metrics: metrics,
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/debug/events", s.handleDebugEvents)
	r.Post("/predict", s.handlePredict)
	r.Post("/api/analyze", s.handleAnalyze)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"service":       "location-risk-service",
		"events_loaded": len(s.engine.Events()),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.engine.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// eventSummary is the trimmed per-event view returned by /debug/events.
type eventSummary struct {
	Name      string               `json:"name"`
	Location  domain.EventLocation `json:"location"`
	Radius    float64              `json:"radius"`
	Sentiment domain.Sentiment     `json:"sentiment"`
}

func (s *Server) handleDebugEvents(w http.ResponseWriter, _ *http.Request) {
	events := s.engine.Events()
	summaries := make([]eventSummary, len(events))
	for i, event := range events {
		summaries[i] = eventSummary{
			Name:      event.Name,
			Location:  event.Location,
			Radius:    event.Impact.RadiusMeters,
			Sentiment: event.Impact.Sentiment,
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_events":   len(events),
		"events_summary": summaries,
	})
}

// predictRequest is the /predict payload. Lat and Lng are pointers so a
// missing field is distinguishable from zero and rejected fast.
type predictRequest struct {
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Investment float64  `json:"investment"`
	Type       string   `json:"type"`
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, "predict", "invalid request body: "+err.Error())
		return
	}
	if req.Lat == nil || req.Lng == nil {
		s.badRequest(w, "predict", "lat and lng are required")
		return
	}

	businessType := req.Type
	if businessType == "" {
		businessType = "Restaurant"
	}

	s.respondAnalysis(w, r, "predict", domain.Query{
		Lat:          *req.Lat,
		Lng:          *req.Lng,
		Investment:   req.Investment,
		BusinessType: businessType,
	})
}

// analyzeRequest is the /api/analyze payload. Location is either an object
// with lat/lng/name or a bare area-name string.
type analyzeRequest struct {
	BusinessType string          `json:"businessType"`
	Investment   float64         `json:"investment"`
	Location     json.RawMessage `json:"location"`
}

type analyzeLocation struct {
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
	Name string   `json:"name"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.badRequest(w, "analyze", "invalid request body: "+err.Error())
		return
	}

	coord, err := s.resolveAnalyzeLocation(r.Context(), req.Location)
	if err != nil {
		s.badRequest(w, "analyze", err.Error())
		return
	}

	s.respondAnalysis(w, r, "analyze", domain.Query{
		Lat:          coord.Lat,
		Lng:          coord.Lng,
		Investment:   req.Investment,
		BusinessType: req.BusinessType,
	})
}

func (s *Server) resolveAnalyzeLocation(ctx context.Context, raw json.RawMessage) (domain.Coordinate, error) {
	if len(raw) == 0 {
		return s.engine.ResolveLocation(ctx, ""), nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return s.engine.ResolveLocation(ctx, name), nil
	}

	var loc analyzeLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return domain.Coordinate{}, errors.New("location must be an object or an area-name string")
	}
	if loc.Lat != nil && loc.Lng != nil {
		return domain.Coordinate{Lat: *loc.Lat, Lng: *loc.Lng}, nil
	}
	return s.engine.ResolveLocation(ctx, loc.Name), nil
}

func (s *Server) respondAnalysis(w http.ResponseWriter, r *http.Request, endpoint string, query domain.Query) {
	analysis := s.engine.Analyze(r.Context(), query)
	s.metrics.AnalysesTotal.WithLabelValues(endpoint, "success").Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"analysis": analysis,
	})
}

func (s *Server) badRequest(w http.ResponseWriter, endpoint, message string) {
	s.metrics.AnalysesTotal.WithLabelValues(endpoint, "bad_request").Inc()
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"status":  "error",
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
