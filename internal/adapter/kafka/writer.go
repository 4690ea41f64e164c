// Package kafka publishes analysis audit records to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/location-risk-service/internal/config"
	"github.com/couchcryptid/location-risk-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces audit records to the configured audit topic.
// It implements engine.AuditPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the audit topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaAuditTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish serializes and writes one audit record. Callers treat failures as
// best-effort; the writer itself reports them faithfully.
func (w *Writer) Publish(ctx context.Context, record domain.AuditRecord) error {
	msg, err := serializeToMessage(record)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an audit record into a Kafka message. The key
// is the risk label so downstream consumers can partition by severity.
func serializeToMessage(record domain.AuditRecord) (kafkago.Message, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize audit record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(record.RiskLabel),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "risk_label", Value: []byte(record.RiskLabel)},
			{Key: "analyzed_at", Value: []byte(record.AnalyzedAt.Format(time.RFC3339))},
		},
	}, nil
}
