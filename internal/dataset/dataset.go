// Package dataset loads the static future-events file into an immutable
// in-memory store shared read-only across requests.
package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/location-risk-service/internal/domain"
)

// Store holds the loaded event dataset. Read-only after construction, so
// concurrent requests need no synchronization.
type Store struct {
	events   []domain.Event
	rejected int
}

// New builds a Store from pre-validated events. Intended for tests and
// generators; production code loads from disk via Load.
func New(events []domain.Event) *Store {
	return &Store{events: events}
}

// Load reads and validates the events JSON file. Records that fail
// validation are skipped with a warning so one bad entry cannot take the
// whole dataset down; a missing or unreadable file is a startup failure.
func Load(path string, logger *slog.Logger) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events dataset: %w", err)
	}

	var records []domain.Event
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse events dataset %s: %w", path, err)
	}

	store := &Store{events: make([]domain.Event, 0, len(records))}
	for _, record := range records {
		if err := record.Validate(); err != nil {
			logger.Warn("skipping invalid event record", "error", err)
			store.rejected++
			continue
		}
		store.events = append(store.events, record)
	}

	logger.Info("events dataset loaded",
		"path", path,
		"events", len(store.events),
		"rejected", store.rejected,
	)
	return store, nil
}

// Events returns the loaded events. Callers must treat the slice as
// read-only.
func (s *Store) Events() []domain.Event { return s.events }

// Len reports the number of valid events loaded.
func (s *Store) Len() int { return len(s.events) }

// Rejected reports how many records were skipped during load.
func (s *Store) Rejected() int { return s.rejected }
