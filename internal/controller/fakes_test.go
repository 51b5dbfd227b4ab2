package controller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/javiermolinar/tafel/internal/departure"
	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/station"
)

const waitTimeout = 2 * time.Second

type fakeTicker struct {
	ch      chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }
func (f *fakeTicker) Stop()               { f.stopped.Store(true) }

// tick delivers one tick, failing the test if nobody receives it.
func (f *fakeTicker) tick(t *testing.T) {
	t.Helper()
	select {
	case f.ch <- time.Now():
	case <-time.After(waitTimeout):
		t.Fatal("tick was not received")
	}
}

type tickers struct {
	mu        sync.Mutex
	created   []*fakeTicker
	intervals []time.Duration
}

func (f *tickers) New(d time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	f.created = append(f.created, t)
	f.intervals = append(f.intervals, d)
	return t
}

func (f *tickers) get(t *testing.T, i int) *fakeTicker {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if i >= len(f.created) {
		t.Fatalf("ticker %d not created (have %d)", i, len(f.created))
	}
	return f.created[i]
}

func (f *tickers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type recorder struct {
	boards chan led.Board

	mu         sync.Mutex
	loading    []bool
	failed     []bool
	selections []station.Selection
}

func newRecorder() *recorder {
	return &recorder{boards: make(chan led.Board, 64)}
}

func (r *recorder) ShowBoard(b led.Board) { r.boards <- b }

func (r *recorder) ShowSelection(sel station.Selection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.selections = append(r.selections, sel)
}

func (r *recorder) SetLoading(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = append(r.loading, v)
}

func (r *recorder) SetError(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, v)
}

func (r *recorder) next(t *testing.T) led.Board {
	t.Helper()
	select {
	case b := <-r.boards:
		return b
	case <-time.After(waitTimeout):
		t.Fatal("no board rendered")
		return nil
	}
}

func (r *recorder) none(t *testing.T) {
	t.Helper()
	select {
	case b := <-r.boards:
		t.Fatalf("unexpected render: %q", b.Lines())
	case <-time.After(50 * time.Millisecond):
	}
}

func (r *recorder) lastError() (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.failed) == 0 {
		return false, false
	}
	return r.failed[len(r.failed)-1], true
}

func (r *recorder) loadingStates() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.loading...)
}

type fakeFetcher struct {
	mu    sync.Mutex
	calls [][]int
	fetch func(ctx context.Context, rbls []int) ([]departure.Departure, error)
}

func (f *fakeFetcher) FetchDepartures(ctx context.Context, rbls []int) ([]departure.Departure, error) {
	f.mu.Lock()
	f.calls = append(f.calls, rbls)
	fn := f.fetch
	f.mu.Unlock()
	if fn == nil {
		return nil, errors.New("no fetch configured")
	}
	return fn(ctx, rbls)
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type memStore struct {
	mu      sync.Mutex
	saved   *station.Selection
	saveErr error
}

func (m *memStore) SaveSelection(_ context.Context, sel station.Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = &sel
	return nil
}

func (m *memStore) LoadSelection(context.Context) (station.Selection, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saved == nil {
		return station.Selection{}, false
	}
	return *m.saved, true
}
