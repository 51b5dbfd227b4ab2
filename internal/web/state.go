package web

import (
	"sync"
	"time"

	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/station"
)

// Snapshot is what the page shows at one moment.
type Snapshot struct {
	Board     led.Board
	Selection station.Selection
	Selected  bool
	Loading   bool
	Failed    bool
	Updated   time.Time
}

// BoardState keeps the latest controller output for request handlers. It
// implements controller.Display.
type BoardState struct {
	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

// NewBoardState starts with a placeholder board of rows rows.
func NewBoardState(layout led.Layout, rows int) *BoardState {
	return &BoardState{
		snap: Snapshot{Board: layout.RenderBoard(rows, nil)},
		now:  time.Now,
	}
}

// Snapshot returns a copy of the current state.
func (s *BoardState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// ShowBoard implements controller.Display.
func (s *BoardState) ShowBoard(board led.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Board = board
	s.snap.Updated = s.now()
}

// ShowSelection implements controller.Display.
func (s *BoardState) ShowSelection(sel station.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Selection = sel
	s.snap.Selected = true
}

// SetLoading implements controller.Display.
func (s *BoardState) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Loading = loading
}

// SetError implements controller.Display.
func (s *BoardState) SetError(failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Failed = failed
}
