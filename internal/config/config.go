package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Dataset and engine defaults. The default coordinate (Connaught Place)
	// anchors area-name queries that resolve nowhere.
	DatasetPath     string  `env:"DATASET_PATH" envDefault:"data/delhi_future_events.json"`
	BaseSuccessRate float64 `env:"BASE_SUCCESS_RATE" envDefault:"60"`
	LocationFactor  float64 `env:"LOCATION_FACTOR" envDefault:"0"`
	DefaultLat      float64 `env:"DEFAULT_LAT" envDefault:"28.6139"`
	DefaultLng      float64 `env:"DEFAULT_LNG" envDefault:"77.2090"`

	// Remote geocoding configuration (optional; the static area table is
	// always available as fallback).
	GeocoderEnabled   bool          `env:"GEOCODER_ENABLED" envDefault:"false"`
	GeocoderBaseURL   string        `env:"GEOCODER_BASE_URL" envDefault:"https://nominatim.openstreetmap.org"`
	GeocoderTimeout   time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"5s"`
	GeocoderCacheSize int           `env:"GEOCODER_CACHE_SIZE" envDefault:"1000"`

	// Audit trail configuration (optional).
	KafkaEnabled    bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers    []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaAuditTopic string   `env:"KAFKA_AUDIT_TOPIC" envDefault:"location-risk-audit"`
}

// Load reads configuration from environment variables, applying defaults
// where unset, and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.DatasetPath == "" {
		return nil, errors.New("DATASET_PATH is required")
	}
	if cfg.BaseSuccessRate <= 0 || cfg.BaseSuccessRate > 100 {
		return nil, fmt.Errorf("BASE_SUCCESS_RATE must be in (0, 100], got %g", cfg.BaseSuccessRate)
	}
	if cfg.GeocoderEnabled {
		if cfg.GeocoderBaseURL == "" {
			return nil, errors.New("GEOCODER_ENABLED is true but GEOCODER_BASE_URL is not set")
		}
		if cfg.GeocoderTimeout <= 0 {
			return nil, errors.New("GEOCODER_TIMEOUT must be positive")
		}
		if cfg.GeocoderCacheSize <= 0 {
			return nil, errors.New("GEOCODER_CACHE_SIZE must be positive")
		}
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaAuditTopic == "" {
			return nil, errors.New("KAFKA_ENABLED is true but KAFKA_AUDIT_TOPIC is not set")
		}
	}

	return &cfg, nil
}
