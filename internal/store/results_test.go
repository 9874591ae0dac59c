package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcoe/internal/lcoe"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStore(ttl time.Duration) (*ResultStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewResultStore(ttl)
	s.now = clock.Now
	return s, clock
}

func TestResultStore_PutGet(t *testing.T) {
	s, _ := newTestStore(time.Minute)
	s.Put(Record{ID: "a", AnnualYield: 1500, Result: &lcoe.Result{LCOE: 0.05}})

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1500.0, got.AnnualYield)
	assert.Equal(t, 0.05, got.Result.LCOE)

	_, ok = s.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestResultStore_Expiry(t *testing.T) {
	s, clock := newTestStore(time.Minute)
	s.Put(Record{ID: "old"})
	clock.Advance(30 * time.Second)
	s.Put(Record{ID: "new"})

	clock.Advance(45 * time.Second)
	_, ok := s.Get("old")
	assert.False(t, ok)
	_, ok = s.Get("new")
	assert.True(t, ok)

	assert.Equal(t, 1, s.Cleanup())
	assert.Equal(t, 1, s.Len())
}

func TestResultStore_RunCleanupStops(t *testing.T) {
	s := NewResultStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.RunCleanup(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunCleanup did not return after cancel")
	}
}

func TestResultStore_Concurrent(t *testing.T) {
	s := NewResultStore(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			s.Put(Record{ID: id})
			s.Get(id)
			s.Cleanup()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 26, s.Len())
}
