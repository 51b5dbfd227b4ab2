package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/javiermolinar/tafel/internal/config"
	"github.com/javiermolinar/tafel/internal/departure"
	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/station"
)

type fakeSelector struct {
	mu        sync.Mutex
	selected  []station.Selection
	refreshes int
}

func (f *fakeSelector) Select(_ context.Context, sel station.Selection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = append(f.selected, sel)
}

func (f *fakeSelector) Refresh() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
}

var fixedNow = time.Date(2026, 3, 14, 3, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*Server, *BoardState, *fakeSelector) {
	t.Helper()
	state := NewBoardState(led.DefaultLayout(), 2)
	state.now = func() time.Time { return fixedNow.Add(-20 * time.Second) }
	sel := &fakeSelector{}
	srv := New(sel, state, config.Default())
	srv.now = func() time.Time { return fixedNow }
	return srv, state, sel
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// findAll returns every element whose class list contains class.
func findAll(n *html.Node, class string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "class" && hasClass(a.Val, class) {
					out = append(out, n)
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func hasClass(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if c == class {
			return true
		}
	}
	return false
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// submitted returns what a form posts when button is clicked.
func submitted(button *html.Node) url.Values {
	vals := url.Values{}
	for c := button.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "input" {
			vals.Set(attr(c, "name"), attr(c, "value"))
		}
	}
	vals.Set(attr(button, "name"), attr(button, "value"))
	return vals
}

func TestIndex_RendersBoard(t *testing.T) {
	srv, state, _ := newTestServer(t)
	state.ShowSelection(station.Default())
	state.ShowBoard(led.RenderBoard(2, []departure.Departure{
		{Destination: "Leopoldau", Countdown: departure.Arriving},
	}))
	state.SetError(true)

	rec := get(t, srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	doc, err := html.Parse(rec.Body)
	require.NoError(t, err)

	assert.Len(t, findAll(doc, "led-row"), 2)
	assert.Len(t, findAll(doc, "led-cell"), 40)
	assert.Len(t, findAll(doc, "led-segment"), 40)
	assert.Len(t, findAll(doc, "arriving"), 2)

	gleis := findAll(doc, "tafel__gleis-number")
	require.Len(t, gleis, 1)
	assert.Equal(t, "1", text(gleis[0]))

	tafel := findAll(doc, "tafel")
	require.Len(t, tafel, 1)
	assert.True(t, hasClass(attr(tafel[0], "class"), "tafel--error"))
	assert.False(t, hasClass(attr(tafel[0], "class"), "tafel--loading"))

	hour := findAll(doc, "clock-hour")
	require.Len(t, hour, 1)
	assert.Equal(t, "rotate(105 50 50)", attr(hour[0], "transform"))

	status := findAll(doc, "tafel__status")
	require.Len(t, status, 1)
	assert.Contains(t, text(status[0]), "20 seconds ago")

	selected := findAll(doc, "selected")
	require.Len(t, selected, 1)
	form := selected[0].Parent
	assert.Equal(t, "post", attr(form, "method"))
	assert.Equal(t, "/select", attr(form, "action"))
	assert.Equal(t, url.Values{"line": {"u1"}, "station": {"10"}, "dir": {"0"}}, submitted(selected[0]))
}

func TestIndex_BeforeSelection(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := get(t, srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `<meta http-equiv="refresh" content="3">`)

	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	directions := findAll(doc, "direction-btn")
	assert.Len(t, directions, len(station.All()))
	assert.Empty(t, findAll(doc, "selected"))
}

func TestIndex_UnknownPath(t *testing.T) {
	srv, _, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/nope").Code)
}

func TestBoardSVG(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := get(t, srv, "/board.svg")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), `<svg class="led-board"`))
	assert.Equal(t, 40, strings.Count(rec.Body.String(), `class="led-segment`))
}

func TestSelect(t *testing.T) {
	srv, _, sel := newTestServer(t)

	rec := post(t, srv, "/select?line=u1&station=23&dir=0", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	require.Len(t, sel.selected, 1)
	got := sel.selected[0]
	assert.Equal(t, "Leopoldau", got.Name)
	assert.True(t, got.Terminus, "Leopoldau towards Leopoldau is a terminus")
	assert.Equal(t, 1, got.Platform)
}

func TestSelect_Post(t *testing.T) {
	srv, _, sel := newTestServer(t)

	rec := post(t, srv, "/select", url.Values{"line": {"U3"}, "station": {"0"}, "dir": {"1"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, sel.selected, 1)
	assert.Equal(t, 2, sel.selected[0].Platform)
	assert.True(t, sel.selected[0].Terminus)
}

func TestSelect_BadRequest(t *testing.T) {
	srv, _, sel := newTestServer(t)

	for _, target := range []string{
		"/select",
		"/select?line=u9&station=0&dir=0",
		"/select?line=u1&station=x&dir=0",
		"/select?line=u1&station=0&dir=2",
		"/select?line=u1&station=99&dir=0",
	} {
		assert.Equal(t, http.StatusBadRequest, post(t, srv, target, nil).Code, target)
	}
	assert.Empty(t, sel.selected)
}

func TestSelect_GetDoesNotSwitch(t *testing.T) {
	srv, _, sel := newTestServer(t)

	rec := get(t, srv, "/select?line=u1&station=23&dir=0")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Empty(t, sel.selected)
}

func TestIndex_PickerPostsSelection(t *testing.T) {
	srv, _, sel := newTestServer(t)

	doc, err := html.Parse(strings.NewReader(get(t, srv, "/").Body.String()))
	require.NoError(t, err)
	buttons := findAll(doc, "direction-btn")
	require.NotEmpty(t, buttons)

	// towards the end of the line, from its last station
	rec := post(t, srv, "/select", submitted(buttons[len(buttons)-2]))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, sel.selected, 1)
	assert.True(t, sel.selected[0].Terminus)
	assert.Equal(t, 1, sel.selected[0].Platform)
}

func TestRefresh(t *testing.T) {
	srv, _, sel := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/refresh", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 1, sel.refreshes)
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	srv, _, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
