// Package web serves the departure board as an HTML page with inline SVG
// LED cells, for use in a browser or a kiosk screen.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/javiermolinar/tafel/internal/clock"
	"github.com/javiermolinar/tafel/internal/config"
	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/logging"
	"github.com/javiermolinar/tafel/internal/station"
)

//go:embed templates/*.html
var templates embed.FS

var pageTmpl = template.Must(template.ParseFS(templates, "templates/board.html"))

const shutdownTimeout = 5 * time.Second

// Selector switches the board to another platform.
type Selector interface {
	Select(ctx context.Context, sel station.Selection)
	Refresh()
}

// Server renders the board over HTTP.
type Server struct {
	sel     Selector
	state   *BoardState
	colors  led.SVGColors
	refresh int
	now     func() time.Time
	mux     *http.ServeMux
}

// New creates a server. The page reloads itself every terminus interval so
// the alternating message stays visible.
func New(sel Selector, state *BoardState, cfg *config.Config) *Server {
	s := &Server{
		sel:     sel,
		state:   state,
		colors:  led.ColorsFor(cfg.UI.LEDColor, cfg.UI.Background),
		refresh: int(math.Ceil(cfg.TerminusInterval().Seconds())),
		now:     time.Now,
		mux:     http.NewServeMux(),
	}
	if s.refresh < 1 {
		s.refresh = 1
	}

	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /board.svg", s.handleBoardSVG)
	s.mux.HandleFunc("POST /select", s.handleSelect)
	s.mux.HandleFunc("POST /refresh", s.handleRefresh)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logging.Event("HTTP", map[string]any{"method": r.Method, "path": r.URL.Path})
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

type lineView struct {
	Name     string
	Color    template.CSS
	Stations []stationView
}

type stationView struct {
	Name       string
	Line       string
	Index      int
	Directions []directionView
}

type directionView struct {
	Label    string
	Dir      int
	Selected bool
}

type pageData struct {
	Title      string
	Refresh    int
	Background template.CSS
	Lit        template.CSS
	Unlit      template.CSS
	Clock      template.HTML
	Line       *lineView
	Station    string
	Platform   string
	Loading    bool
	Failed     bool
	Updated    string
	Rows       [][]template.HTML
	Lines      []lineView
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap := s.state.Snapshot()

	data := pageData{
		Title:      "Abfahrt",
		Refresh:    s.refresh,
		Background: template.CSS(s.colors.Background),
		Lit:        template.CSS(s.colors.Lit),
		Unlit:      template.CSS(s.colors.Unlit),
		Clock:      template.HTML(clock.SVG(s.now())),
		Station:    "…",
		Platform:   "-",
		Loading:    snap.Loading,
		Failed:     snap.Failed,
		Lines:      directory(snap.Selection),
	}
	if snap.Selected {
		data.Title = snap.Selection.Name + " · Abfahrt"
		data.Station = snap.Selection.Name
		data.Platform = strconv.Itoa(snap.Selection.Platform)
		if l, ok := station.LineOf(snap.Selection); ok {
			data.Line = &lineView{Name: l.Name, Color: template.CSS(l.Color)}
		}
	}
	if !snap.Updated.IsZero() {
		data.Updated = humanize.RelTime(snap.Updated, s.now(), "ago", "from now")
	}
	for _, row := range snap.Board {
		cells := make([]template.HTML, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = template.HTML(c.SVG())
		}
		data.Rows = append(data.Rows, cells)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		logging.Error("rendering page", err)
	}
}

func (s *Server) handleBoardSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(s.state.Snapshot().Board.SVG(s.colors)))
}

// handleSelect takes line, station (index on the line) and dir (0 or 1).
// It only answers POST so link prefetchers cannot switch the board.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	sel, err := parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.sel.Select(context.WithoutCancel(r.Context()), sel)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.sel.Refresh()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseSelection(r *http.Request) (station.Selection, error) {
	if err := r.ParseForm(); err != nil {
		return station.Selection{}, fmt.Errorf("parsing form: %w", err)
	}
	l, ok := station.FindLine(r.Form.Get("line"))
	if !ok {
		return station.Selection{}, fmt.Errorf("unknown line %q", r.Form.Get("line"))
	}
	idx, err := strconv.Atoi(r.Form.Get("station"))
	if err != nil {
		return station.Selection{}, fmt.Errorf("invalid station index %q", r.Form.Get("station"))
	}
	dir, err := strconv.Atoi(r.Form.Get("dir"))
	if err != nil || dir < 0 || dir > 1 {
		return station.Selection{}, fmt.Errorf("invalid direction %q", r.Form.Get("dir"))
	}
	dirs, err := l.Directions(idx)
	if err != nil {
		return station.Selection{}, err
	}
	return dirs[dir].Selection(), nil
}

// directory builds the picker, marking the current selection.
func directory(current station.Selection) []lineView {
	var out []lineView
	for _, l := range station.Lines() {
		lv := lineView{Name: l.Name, Color: template.CSS(l.Color)}
		for i := range l.Stations {
			dirs, _ := l.Directions(i)
			sv := stationView{Name: l.Stations[i].Name, Line: l.ID, Index: i}
			for d, dir := range dirs {
				sv.Directions = append(sv.Directions, directionView{
					Label:    dir.Label(),
					Dir:      d,
					Selected: dir.Selection() == current,
				})
			}
			lv.Stations = append(lv.Stations, sv)
		}
		out = append(out, lv)
	}
	return out
}
