// Package controller drives the board: it polls the departure feed, runs
// the terminus message alternation and owns the current station selection.
// At most one of the two timers is active at any time.
package controller

import (
	"context"
	"time"

	"github.com/javiermolinar/tafel/internal/config"
	"github.com/javiermolinar/tafel/internal/departure"
	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/station"
)

// Defaults for Options.
const (
	DefaultRows             = 2
	DefaultPollInterval     = 30 * time.Second
	DefaultTerminusInterval = 2500 * time.Millisecond
	DefaultFetchTimeout     = 10 * time.Second
)

// Fetcher is the departure feed.
type Fetcher interface {
	FetchDepartures(ctx context.Context, rbls []int) ([]departure.Departure, error)
}

// SelectionStore persists the chosen platform.
type SelectionStore interface {
	SaveSelection(ctx context.Context, sel station.Selection) error
	LoadSelection(ctx context.Context) (station.Selection, bool)
}

// Display receives render results. Calls are serialised; implementations
// must not call back into the controller synchronously.
type Display interface {
	ShowBoard(board led.Board)
	ShowSelection(sel station.Selection)
	SetLoading(loading bool)
	SetError(failed bool)
}

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker with period d.
type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	t *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTicker wraps time.NewTicker.
func NewTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

// Options configures the poller, the alternator and the controller.
type Options struct {
	Rows             int
	Layout           led.Layout
	PollInterval     time.Duration
	TerminusInterval time.Duration
	FetchTimeout     time.Duration
	NewTicker        TickerFunc
}

func (o Options) withDefaults() Options {
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	if o.Layout.StationWidth <= 0 {
		o.Layout = led.DefaultLayout()
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.TerminusInterval <= 0 {
		o.TerminusInterval = DefaultTerminusInterval
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = DefaultFetchTimeout
	}
	if o.NewTicker == nil {
		o.NewTicker = NewTicker
	}
	return o
}

// FromConfig maps the [board] and [api] sections onto Options.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Rows:             cfg.Board.Rows,
		Layout:           led.Layout{StationWidth: cfg.Board.StationWidth},
		PollInterval:     cfg.PollInterval(),
		TerminusInterval: cfg.TerminusInterval(),
		FetchTimeout:     cfg.Timeout(),
	}
}
