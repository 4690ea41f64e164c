package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/location-risk-service/internal/adapter/httpapi"
	kafkaadapter "github.com/couchcryptid/location-risk-service/internal/adapter/kafka"
	"github.com/couchcryptid/location-risk-service/internal/adapter/nominatim"
	"github.com/couchcryptid/location-risk-service/internal/config"
	"github.com/couchcryptid/location-risk-service/internal/dataset"
	"github.com/couchcryptid/location-risk-service/internal/domain"
	"github.com/couchcryptid/location-risk-service/internal/engine"
	"github.com/couchcryptid/location-risk-service/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	store, err := dataset.Load(cfg.DatasetPath, logger)
	if err != nil {
		logger.Error("failed to load event dataset", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}
	metrics.EventsLoaded.Set(float64(store.Len()))
	metrics.EventsRejected.Add(float64(store.Rejected()))
	logger.Info("event dataset loaded", "path", cfg.DatasetPath, "events", store.Len(), "rejected", store.Rejected())

	// Remote geocoding is feature-flagged; the static area table always
	// remains as fallback.
	var geocoder domain.Geocoder
	if cfg.GeocoderEnabled {
		client := nominatim.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderTimeout, metrics, logger)
		geocoder = nominatim.NewCachedGeocoder(client, cfg.GeocoderCacheSize, metrics)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("remote geocoding enabled", "base_url", cfg.GeocoderBaseURL, "cache_size", cfg.GeocoderCacheSize, "timeout", cfg.GeocoderTimeout)
	} else {
		logger.Info("remote geocoding disabled")
	}

	var audit engine.AuditPublisher
	var auditWriter *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		auditWriter = kafkaadapter.NewWriter(cfg, logger)
		audit = auditWriter
		logger.Info("audit publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaAuditTopic)
	} else {
		logger.Info("audit publishing disabled")
	}

	eng := engine.New(store, geocoder, audit, logger, metrics, engine.Options{
		BaseSuccessRate:   cfg.BaseSuccessRate,
		LocationFactor:    cfg.LocationFactor,
		DefaultCoordinate: domain.Coordinate{Lat: cfg.DefaultLat, Lng: cfg.DefaultLng},
	})

	srv := httpapi.NewServer(cfg.HTTPAddr, eng, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if auditWriter != nil {
		if err := auditWriter.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
