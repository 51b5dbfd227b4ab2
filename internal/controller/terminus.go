package controller

import (
	"sync"

	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/logging"
)

// Terminus message pairs, one line per board row.
var (
	TerminusEnglish = []string{"NO DEPARTURE", "PLATFORM"}
	TerminusGerman  = []string{"", "NICHT EINSTEIGEN"}
)

// Alternator shows the terminus message, switching language on every tick.
type Alternator struct {
	mu      sync.Mutex
	opts    Options
	display Display
	run     *alternation
	wg      sync.WaitGroup
}

type alternation struct {
	ticker Ticker
	done   chan struct{}
	german bool
}

// NewAlternator creates a stopped alternator.
func NewAlternator(display Display, opts Options) *Alternator {
	return &Alternator{opts: opts.withDefaults(), display: display}
}

// Start renders the English message immediately, then alternates every
// terminus interval. A running alternation is stopped first.
func (a *Alternator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()

	run := &alternation{
		ticker: a.opts.NewTicker(a.opts.TerminusInterval),
		done:   make(chan struct{}),
	}
	a.run = run
	a.render(run.german)
	logging.Event("TERMINUS_START", map[string]any{"interval": a.opts.TerminusInterval.String()})

	a.wg.Add(1)
	go a.loop(run)
}

// Stop cancels the alternation. Stopping a stopped alternator is a no-op.
func (a *Alternator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

// Running reports whether an alternation is active.
func (a *Alternator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.run != nil
}

// Close stops the alternator and waits for its goroutine to exit.
func (a *Alternator) Close() {
	a.Stop()
	a.wg.Wait()
}

func (a *Alternator) stopLocked() {
	if a.run == nil {
		return
	}
	a.run.ticker.Stop()
	close(a.run.done)
	a.run = nil
	logging.Event("TERMINUS_STOP", nil)
}

func (a *Alternator) loop(run *alternation) {
	defer a.wg.Done()
	for {
		select {
		case <-run.done:
			return
		case <-run.ticker.C():
			a.mu.Lock()
			if a.run != run {
				a.mu.Unlock()
				return
			}
			run.german = !run.german
			a.render(run.german)
			a.mu.Unlock()
		}
	}
}

func (a *Alternator) render(german bool) {
	a.display.ShowBoard(TerminusBoard(a.opts.Layout, a.opts.Rows, german))
}

// TerminusBoard returns the board the alternator shows for a language.
func TerminusBoard(layout led.Layout, rows int, german bool) led.Board {
	if german {
		return layout.TerminusBoard(rows, TerminusGerman)
	}
	return layout.TerminusBoard(rows, TerminusEnglish)
}
