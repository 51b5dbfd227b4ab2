package controller

import (
	"context"
	"sync"

	"github.com/javiermolinar/tafel/internal/logging"
)

// Poller fetches departures on a fixed interval and renders them.
type Poller struct {
	mu      sync.Mutex
	fetcher Fetcher
	display Display
	opts    Options

	ctx    context.Context
	cancel context.CancelFunc
	gen    uint64
	run    *polling
	wg     sync.WaitGroup
}

type polling struct {
	gen      uint64
	rbls     []int
	ticker   Ticker
	done     chan struct{}
	refresh  chan struct{}
	inFlight bool
}

// NewPoller creates a stopped poller.
func NewPoller(fetcher Fetcher, display Display, opts Options) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		fetcher: fetcher,
		display: display,
		opts:    opts.withDefaults(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start polls rbls: one fetch right away, then one per poll interval. A
// running session is stopped first.
func (p *Poller) Start(rbls []int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	p.gen++
	run := &polling{
		gen:     p.gen,
		rbls:    append([]int(nil), rbls...),
		ticker:  p.opts.NewTicker(p.opts.PollInterval),
		done:    make(chan struct{}),
		refresh: make(chan struct{}, 1),
	}
	p.run = run
	logging.Event("POLL_START", map[string]any{"rbls": run.rbls, "gen": run.gen})

	p.wg.Add(1)
	go p.loop(run)
}

// Stop cancels the poll timer. A fetch already in flight is not cancelled;
// its result is dropped when it lands. Stopping twice is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Refresh fetches immediately without waiting for the next tick.
func (p *Poller) Refresh() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.run == nil {
		return
	}
	select {
	case p.run.refresh <- struct{}{}:
	default:
	}
}

// Running reports whether a poll session is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.run != nil
}

// Close stops polling, cancels in-flight fetches and waits for them.
func (p *Poller) Close() {
	p.Stop()
	p.cancel()
	p.wg.Wait()
}

func (p *Poller) stopLocked() {
	if p.run == nil {
		return
	}
	p.run.ticker.Stop()
	close(p.run.done)
	if p.run.inFlight {
		p.display.SetLoading(false)
	}
	logging.Event("POLL_STOP", map[string]any{"gen": p.run.gen})
	p.run = nil
}

func (p *Poller) loop(run *polling) {
	defer p.wg.Done()

	p.load(run)
	for {
		select {
		case <-run.done:
			return
		case <-run.ticker.C():
			p.load(run)
		case <-run.refresh:
			p.load(run)
		}
	}
}

// current reports whether run is still the active session.
func (p *Poller) current(run *polling) bool {
	return p.run != nil && p.run.gen == run.gen
}

func (p *Poller) load(run *polling) {
	p.mu.Lock()
	if !p.current(run) {
		p.mu.Unlock()
		return
	}
	run.inFlight = true
	p.display.SetLoading(true)
	p.display.SetError(false)
	p.mu.Unlock()

	ctx, cancel := context.WithTimeout(p.ctx, p.opts.FetchTimeout)
	deps, err := p.fetcher.FetchDepartures(ctx, run.rbls)
	cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	run.inFlight = false
	if !p.current(run) {
		logging.Event("STALE_FETCH", map[string]any{"gen": run.gen})
		return
	}

	if err != nil {
		logging.Error("fetching departures", err)
		p.display.SetError(true)
		p.display.ShowBoard(p.opts.Layout.RenderBoard(p.opts.Rows, nil))
	} else {
		logging.Event("FETCH", map[string]any{"gen": run.gen, "departures": len(deps)})
		p.display.ShowBoard(p.opts.Layout.RenderBoard(p.opts.Rows, deps))
	}
	p.display.SetLoading(false)
}
