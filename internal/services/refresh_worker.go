package services

import (
	"context"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"nedhal-be/internal/repository"
)

var ErrRefreshInFlight = errors.New("refresh: a cycle is already running")

// RefreshService runs one full fetch-and-recompute cycle: pull rows, repair
// and flag suspicious ones, replace the Mongo cache and the in-memory
// snapshot. On any failure the previous snapshot stays in place and the next
// tick retries implicitly.
type RefreshService struct {
	sheets    *SheetsService
	entryRepo *repository.EntryRepository
	store     *DataStore
	inFlight  atomic.Bool
}

func NewRefreshService(sheets *SheetsService, entryRepo *repository.EntryRepository, store *DataStore) *RefreshService {
	return &RefreshService{
		sheets:    sheets,
		entryRepo: entryRepo,
		store:     store,
	}
}

// Refresh executes one cycle. A slow fetch must not race the next scheduled
// one, so overlapping calls are rejected.
func (s *RefreshService) Refresh(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer s.inFlight.Store(false)

	started := time.Now()
	entries, err := s.sheets.FetchEntries(ctx)
	if err != nil {
		return err
	}

	entries, warnings := CheckEntries(entries)

	if err := s.entryRepo.ReplaceAll(ctx, entries); err != nil {
		// The in-memory snapshot is still updated: a cache write failure
		// should not hide fresh data from the dashboard.
		log.Println("refresh: failed to persist entries:", err)
	}

	s.store.Set(entries, warnings, time.Now())
	log.Printf("refresh: loaded %d rows (%d flagged) in %s", len(entries), len(warnings), time.Since(started).Round(time.Millisecond))
	return nil
}

// Seed fills the in-memory store from the Mongo cache so the API can serve
// stale data before the first fetch completes.
func (s *RefreshService) Seed(ctx context.Context) error {
	entries, err := s.entryRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	entries, warnings := CheckEntries(entries)
	s.store.Set(entries, warnings, time.Time{})
	log.Printf("refresh: seeded %d cached rows", len(entries))
	return nil
}

// StartRefreshWorker runs an immediate cycle and then refreshes on a fixed
// interval until ctx is done.
func StartRefreshWorker(ctx context.Context, interval time.Duration, refresher *RefreshService) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()

		if err := refresher.Refresh(ctx); err != nil {
			log.Println("refresh worker: initial load failed:", err)
		}

		for {
			select {
			case <-ctx.Done():
				log.Println("refresh worker: shutting down")
				return
			case <-ticker.C:
				if err := refresher.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
					log.Println("refresh worker: cycle failed:", err)
				}
			}
		}
	}()
}
