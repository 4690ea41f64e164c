package dataset_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/location-risk-service/internal/dataset"
	"github.com/couchcryptid/location-risk-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ValidDataset(t *testing.T) {
	path := writeDataset(t, `[
		{
			"name": "Metro Construction",
			"location": {"lat": 28.6139, "lng": 77.2090, "area_name": "Connaught Place"},
			"impact": {"radius_meters": 5000, "sentiment": "NEGATIVE", "score": -0.8},
			"timelines": {"impact_start": "2026-03-01T00:00:00Z"}
		},
		{
			"name": "Trade Fair",
			"location": {"lat": 28.6200, "lng": 77.2400, "area_name": "Pragati Maidan"},
			"impact": {"radius_meters": 3000, "sentiment": "POSITIVE", "score": 0.6},
			"timelines": {"impact_start": "2026-11-14T00:00:00Z"}
		}
	]`)

	store, err := dataset.Load(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	assert.Zero(t, store.Rejected())
	assert.Equal(t, "Metro Construction", store.Events()[0].Name)
	assert.Equal(t, domain.SentimentPositive, store.Events()[1].Impact.Sentiment)
}

func TestLoad_SkipsInvalidRecords(t *testing.T) {
	path := writeDataset(t, `[
		{
			"name": "Good Event",
			"location": {"lat": 28.6, "lng": 77.2},
			"impact": {"radius_meters": 1000, "sentiment": "POSITIVE", "score": 0.4},
			"timelines": {"impact_start": "2026-01-01T00:00:00Z"}
		},
		{
			"name": "Zero Radius",
			"location": {"lat": 28.6, "lng": 77.2},
			"impact": {"radius_meters": 0, "sentiment": "POSITIVE", "score": 0.4},
			"timelines": {"impact_start": "2026-01-01T00:00:00Z"}
		},
		{
			"name": "Odd Sentiment",
			"location": {"lat": 28.6, "lng": 77.2},
			"impact": {"radius_meters": 500, "sentiment": "NEUTRAL", "score": 0.1},
			"timelines": {"impact_start": "2026-01-01T00:00:00Z"}
		}
	]`)

	store, err := dataset.Load(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 2, store.Rejected())
	assert.Equal(t, "Good Event", store.Events()[0].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.json"), discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read events dataset")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeDataset(t, `{not json`)
	_, err := dataset.Load(path, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse events dataset")
}

func TestNew_EmptyStore(t *testing.T) {
	store := dataset.New(nil)
	assert.Zero(t, store.Len())
	assert.Empty(t, store.Events())
}
