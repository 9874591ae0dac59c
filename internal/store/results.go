package store

import (
	"context"
	"sync"
	"time"

	"lcoe/internal/lcoe"
	"lcoe/internal/model"
)

// Record is one stored LCOE computation.
type Record struct {
	ID          string
	CreatedAt   time.Time
	AnnualYield float64
	Economics   model.Economics
	Calc        model.CalcConfig
	Result      *lcoe.Result
}

type entry struct {
	record    Record
	expiresAt time.Time
}

// ResultStore keeps computations in memory so their ledgers can be fetched later.
// Entries expire after the configured TTL.
type ResultStore struct {
	mu    sync.RWMutex
	items map[string]*entry
	ttl   time.Duration
	now   func() time.Time
}

func NewResultStore(ttl time.Duration) *ResultStore {
	return &ResultStore{
		items: make(map[string]*entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns a record if present and not expired.
func (s *ResultStore) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	if !ok || s.now().After(e.expiresAt) {
		return Record{}, false
	}
	return e.record, true
}

func (s *ResultStore) Put(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[rec.ID] = &entry{
		record:    rec,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Cleanup removes expired entries and returns how many were dropped.
func (s *ResultStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.items {
		if now.After(e.expiresAt) {
			delete(s.items, id)
			n++
		}
	}
	return n
}

func (s *ResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (s *ResultStore) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}
