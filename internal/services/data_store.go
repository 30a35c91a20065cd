package services

import (
	"sync"
	"time"

	"nedhal-be/internal/models"
)

// DataStore holds the latest fetched row set. Every computation re-derives
// its output from a snapshot of this store, so there is no hidden cross-call
// state; a refresh swaps the whole snapshot at once.
type DataStore struct {
	mu       sync.RWMutex
	entries  []models.Entry
	warnings []models.AdminWarning
	loadedAt time.Time
}

func NewDataStore() *DataStore {
	return &DataStore{}
}

func (s *DataStore) Set(entries []models.Entry, warnings []models.AdminWarning, loadedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.warnings = warnings
	s.loadedAt = loadedAt
}

// Entries returns the current snapshot. The slice is shared and must be
// treated as read-only; entries are immutable once stored.
func (s *DataStore) Entries() []models.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries
}

func (s *DataStore) Warnings() []models.AdminWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warnings
}

func (s *DataStore) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
