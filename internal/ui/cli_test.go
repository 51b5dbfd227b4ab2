package ui

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/tafel/internal/config"
	"github.com/javiermolinar/tafel/internal/departure"
	"github.com/javiermolinar/tafel/internal/station"
	"github.com/javiermolinar/tafel/internal/wienerlinien"
)

type fakeFetcher struct {
	deps []departure.Departure
	err  error
	rbls []int
}

func (f *fakeFetcher) FetchDepartures(_ context.Context, rbls []int) ([]departure.Departure, error) {
	f.rbls = append(f.rbls, rbls...)
	return f.deps, f.err
}

func newTestApp(t *testing.T, f *fakeFetcher) *App {
	t.Helper()
	DisableColor()
	t.Cleanup(EnableColor)

	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "tafel.db")
	a := NewApp(cfg)
	if f != nil {
		a.fetcher = f
	}
	return a
}

func execute(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a.root.SetOut(&out)
	a.root.SetErr(&out)
	a.root.SetArgs(args)
	err := a.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	a := newTestApp(t, nil)
	out, err := execute(t, a, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "tafel dev (commit: none)") {
		t.Errorf("output = %q", out)
	}
}

func TestRenderCmd_Text(t *testing.T) {
	f := &fakeFetcher{deps: []departure.Departure{
		{Line: "U1", Destination: "Leopoldau", Countdown: departure.Arriving},
		{Line: "U1", Destination: "Leopoldau", Countdown: departure.In(3)},
	}}
	a := newTestApp(t, f)

	out, err := execute(t, a, "render")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{
		"U1 Stephansplatz  Gleis 1",
		"│ LEOPOLDAU          ★ │",
		"│ LEOPOLDAU          3 │",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if len(f.rbls) != 1 || f.rbls[0] != station.Default().RBL {
		t.Errorf("fetched rbls %v", f.rbls)
	}
}

func TestRenderCmd_SVG(t *testing.T) {
	a := newTestApp(t, &fakeFetcher{})

	out, err := execute(t, a, "render", "--svg")
	if err != nil {
		t.Fatalf("render --svg failed: %v", err)
	}
	if !strings.HasPrefix(out, `<svg class="led-board"`) {
		t.Errorf("output is not an SVG document: %.60q", out)
	}
	if !strings.Contains(out, ".segment.lit{fill:#ffb000}") {
		t.Error("LED colour missing from SVG")
	}
}

func TestRenderCmd_Terminus(t *testing.T) {
	f := &fakeFetcher{}
	a := newTestApp(t, f)

	out, err := execute(t, a, "render", "--line", "u1", "--station", "leopoldau", "--dir", "0")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "NO DEPARTURE") || !strings.Contains(out, "PLATFORM") {
		t.Errorf("terminus message missing:\n%s", out)
	}
	if len(f.rbls) != 0 {
		t.Errorf("terminus platform fetched %v", f.rbls)
	}

	out, err = execute(t, a, "render", "--line", "u1", "--station", "leopoldau", "--german")
	if err != nil {
		t.Fatalf("render --german failed: %v", err)
	}
	if !strings.Contains(out, "NICHT EINSTEIGEN") {
		t.Errorf("German terminus message missing:\n%s", out)
	}
}

func TestRenderCmd_FetchError(t *testing.T) {
	a := newTestApp(t, &fakeFetcher{err: errors.New("offline")})

	_, err := execute(t, a, "render")
	if err == nil || !strings.Contains(err.Error(), "offline") {
		t.Fatalf("err = %v, want fetch error", err)
	}
}

func TestResolveSelection(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		station string
		dir     int
		want    string
		wantErr bool
	}{
		{name: "default", want: "Stephansplatz"},
		{name: "found", line: "u4", station: "Hietzing", dir: 1, want: "Hietzing"},
		{name: "line only", line: "u4", wantErr: true},
		{name: "station only", station: "Hietzing", wantErr: true},
		{name: "bad direction", line: "u4", station: "Hietzing", dir: 2, wantErr: true},
		{name: "unknown station", line: "u4", station: "Nowhere", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := resolveSelection(tt.line, tt.station, tt.dir)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && sel.Name != tt.want {
				t.Errorf("Name = %q, want %q", sel.Name, tt.want)
			}
		})
	}
}

func TestPrintStations(t *testing.T) {
	DisableColor()
	defer EnableColor()

	l, ok := station.FindLine("u1")
	if !ok {
		t.Fatal("u1 missing")
	}

	var out bytes.Buffer
	printStations(&out, []station.Line{l}, 120)
	got := out.String()
	for _, want := range []string{"U1  Oberlaa ↔ Leopoldau", "Oberlaa", "→ 4101", "← 4128*"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	out.Reset()
	printStations(&out, []station.Line{l}, 30)
	if !strings.Contains(out.String(), "Oberlaa ") || !strings.Contains(out.String(), "…") {
		t.Errorf("narrow listing not truncated:\n%s", out.String())
	}
}

func TestStationsCmd_UnknownLine(t *testing.T) {
	a := newTestApp(t, nil)
	if _, err := execute(t, a, "stations", "--line", "u5"); err == nil {
		t.Fatal("expected error for unknown line")
	}
}

func TestRunDiscover(t *testing.T) {
	DisableColor()
	defer EnableColor()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("rbl") {
		case "4101", "4102":
			_, _ = w.Write([]byte(`{"data":{"monitors":[{"locationStop":{"properties":{"title":"Oberlaa"}},"lines":[{"name":"U1","towards":"Leopoldau"}]}]}}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	c := wienerlinien.New(wienerlinien.Options{BaseURL: srv.URL})
	var out bytes.Buffer
	ranges := []wienerlinien.Range{{Line: "U1", Start: 4101, End: 4104}}
	if err := runDiscover(context.Background(), &out, c, ranges, time.Millisecond); err != nil {
		t.Fatalf("runDiscover failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Scanning U1 (RBL 4101-4104)",
		"4101 Oberlaa -> Leopoldau",
		`{Name: "Oberlaa", RBLs: [2]int{4101, 4102}},`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDiscoveryRanges(t *testing.T) {
	all, err := discoveryRanges("")
	if err != nil || len(all) != len(wienerlinien.URanges) {
		t.Fatalf("discoveryRanges(\"\") = %v, %v", all, err)
	}
	one, err := discoveryRanges("u6")
	if err != nil || len(one) != 1 || one[0].Line != "U6" {
		t.Fatalf("discoveryRanges(u6) = %v, %v", one, err)
	}
	if _, err := discoveryRanges("U5"); err == nil {
		t.Fatal("expected error for unknown line")
	}
}

func TestRunServe_StopsOnCancel(t *testing.T) {
	a := newTestApp(t, &fakeFetcher{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := a.runServe(ctx, &out, "127.0.0.1:0"); err != nil {
		t.Fatalf("runServe failed: %v", err)
	}
	if !strings.Contains(out.String(), "Showing Stephansplatz, platform 1") {
		t.Errorf("output = %q", out.String())
	}
}

func TestServerURL(t *testing.T) {
	if got := serverURL(":8080"); got != "http://localhost:8080" {
		t.Errorf("serverURL(:8080) = %q", got)
	}
	if got := serverURL("0.0.0.0:9000"); got != "http://0.0.0.0:9000" {
		t.Errorf("serverURL(0.0.0.0:9000) = %q", got)
	}
}
