package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/couchcryptid/location-risk-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	record := domain.AuditRecord{
		Query:         domain.Query{Lat: 28.6139, Lng: 77.2090, Investment: 1_000_000, BusinessType: "Cafe"},
		RiskScore:     82,
		RiskLabel:     "Very High",
		NegativeCount: 1,
		AnalyzedAt:    time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC),
	}

	msg, err := serializeToMessage(record)
	require.NoError(t, err)

	assert.Equal(t, []byte("Very High"), msg.Key)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "Very High", headers["risk_label"])
	assert.Equal(t, "2026-08-28T10:00:00Z", headers["analyzed_at"])

	var roundtrip domain.AuditRecord
	require.NoError(t, json.Unmarshal(msg.Value, &roundtrip))
	assert.Equal(t, record.Query, roundtrip.Query)
	assert.Equal(t, 82.0, roundtrip.RiskScore)
	assert.Equal(t, 1, roundtrip.NegativeCount)
}
