// Package tui provides the terminal departure board.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tafel/internal/config"
	"github.com/javiermolinar/tafel/internal/controller"
	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/logging"
	"github.com/javiermolinar/tafel/internal/station"
	"github.com/javiermolinar/tafel/internal/store"
	"github.com/javiermolinar/tafel/internal/tui/commands"
	"github.com/javiermolinar/tafel/internal/tui/theme"
	"github.com/javiermolinar/tafel/internal/wienerlinien"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeBoard Mode = iota
	ModePicker
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctrl   commands.Controller
	config *config.Config
	now    func() time.Time

	styles  *Styles
	painter ledPainter

	// Board state
	board     led.Board
	layout    led.Layout
	selection station.Selection
	line      station.Line
	hasLine   bool
	loading   bool
	failed    bool
	updated   time.Time
	clock     time.Time
	blinkOn   bool
	mode      Mode
	info      infoOverlay
	picker    list.Model
	spinner   spinner.Model
	restoring bool

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string
	statusTime time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
		m.clock = now()
	}
}

// New creates a new TUI model.
func New(ctrl commands.Controller, cfg *config.Config, opts ...ModelOption) Model {
	styles := NewStyles(theme.FromConfig(cfg.UI))
	layout := led.Layout{StationWidth: cfg.Board.StationWidth}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = styles.SpinnerStyle

	m := Model{
		ctrl:      ctrl,
		config:    cfg,
		now:       time.Now,
		styles:    styles,
		painter:   newLEDPainter(styles),
		layout:    layout,
		board:     layout.RenderBoard(cfg.Board.Rows, nil),
		clock:     time.Now(),
		blinkOn:   true,
		mode:      ModeBoard,
		info:      newInfoOverlay(styles.colorPanel),
		picker:    newPicker(0, 0),
		spinner:   sp,
		restoring: true,
	}

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		commands.Restore(m.ctrl),
		commands.ClockTick(),
		commands.Blink(m.config.BlinkInterval()),
	)
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := logging.Init(debug, ""); err != nil {
		return err
	}
	defer logging.Close()

	st, err := store.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	client := wienerlinien.New(wienerlinien.Options{
		BaseURL: cfg.API.BaseURL,
		Sender:  cfg.API.Sender,
		Timeout: cfg.Timeout(),
		Limit:   cfg.Board.Rows,
	})

	display := commands.NewDisplay()
	ctrl := controller.New(client, st, display, controller.FromConfig(cfg))
	defer ctrl.Close()

	p := tea.NewProgram(New(ctrl, cfg), tea.WithAltScreen())
	display.Attach(p)
	_, err = p.Run()
	return err
}
