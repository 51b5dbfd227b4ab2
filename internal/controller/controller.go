package controller

import (
	"context"
	"sync"

	"github.com/javiermolinar/tafel/internal/logging"
	"github.com/javiermolinar/tafel/internal/station"
)

// Controller owns the selected platform and switches between live polling
// and the terminus message.
type Controller struct {
	mu       sync.Mutex
	poller   *Poller
	terminus *Alternator
	store    SelectionStore
	display  Display

	selection station.Selection
	selected  bool
}

// New creates an idle controller. store may be nil, in which case nothing
// is persisted.
func New(fetcher Fetcher, store SelectionStore, display Display, opts Options) *Controller {
	return &Controller{
		poller:   NewPoller(fetcher, display, opts),
		terminus: NewAlternator(display, opts),
		store:    store,
		display:  display,
	}
}

// Select switches the board to sel: both timers are stopped, the selection
// is saved, then either the terminus message or polling starts.
func (c *Controller) Select(ctx context.Context, sel station.Selection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.poller.Stop()
	c.terminus.Stop()

	c.selection = sel
	c.selected = true
	c.display.ShowSelection(sel)
	logging.Event("SELECT", map[string]any{
		"station":  sel.Name,
		"rbl":      sel.RBL,
		"platform": sel.Platform,
		"terminus": sel.Terminus,
	})

	if c.store != nil {
		if err := c.store.SaveSelection(ctx, sel); err != nil {
			logging.Error("saving selection", err)
		}
	}

	if sel.Terminus {
		c.terminus.Start()
		return
	}
	c.poller.Start([]int{sel.RBL})
}

// Restore selects the saved platform, or the default station when nothing
// usable is saved.
func (c *Controller) Restore(ctx context.Context) station.Selection {
	sel, ok := station.Selection{}, false
	if c.store != nil {
		sel, ok = c.store.LoadSelection(ctx)
	}
	if !ok {
		sel = station.Default()
		logging.Event("RESTORE_DEFAULT", map[string]any{"station": sel.Name})
	}
	c.Select(ctx, sel)
	return sel
}

// Selection returns the current selection. The bool is false before the
// first Select.
func (c *Controller) Selection() (station.Selection, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection, c.selected
}

// Refresh fetches immediately when polling.
func (c *Controller) Refresh() {
	c.poller.Refresh()
}

// StartPolling polls the current selection's RBL.
func (c *Controller) StartPolling() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.selected {
		return
	}
	c.terminus.Stop()
	c.poller.Start([]int{c.selection.RBL})
}

// StopPolling stops the poll timer.
func (c *Controller) StopPolling() {
	c.poller.Stop()
}

// StartTerminus shows the terminus message.
func (c *Controller) StartTerminus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.poller.Stop()
	c.terminus.Start()
}

// StopTerminus stops the terminus message.
func (c *Controller) StopTerminus() {
	c.terminus.Stop()
}

// Polling reports whether the poll timer is active.
func (c *Controller) Polling() bool { return c.poller.Running() }

// ShowingTerminus reports whether the terminus alternation is active.
func (c *Controller) ShowingTerminus() bool { return c.terminus.Running() }

// Close stops both timers and waits for background work to finish.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.poller.Close()
	c.terminus.Close()
}
