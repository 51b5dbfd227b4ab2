// Package wienerlinien is a client for the Wiener Linien real-time monitor
// API, the departure feed of the board.
package wienerlinien

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/javiermolinar/tafel/internal/departure"
)

// Defaults for Options.
const (
	DefaultBaseURL = "https://www.wienerlinien.at/ogd_realtime/monitor"
	DefaultSender  = "wien-tafel"
	DefaultTimeout = 10 * time.Second
	DefaultLimit   = 2
)

// perLine is how many departures of each line are considered.
const perLine = 2

// linePrefix keeps only U-Bahn lines.
const linePrefix = "U"

// ErrStatus is returned when the API answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

// Options configures a Client.
type Options struct {
	BaseURL    string
	Sender     string
	Timeout    time.Duration
	Limit      int // departures returned by FetchDepartures
	HTTPClient *http.Client
}

// Client fetches departures from the monitor endpoint.
type Client struct {
	baseURL string
	sender  string
	limit   int
	http    *http.Client
}

// New creates a client, filling unset options with defaults.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Sender == "" {
		opts.Sender = DefaultSender
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL: opts.BaseURL,
		sender:  opts.Sender,
		limit:   opts.Limit,
		http:    hc,
	}
}

// FetchDepartures returns the next U-Bahn departures for the given RBLs,
// arriving first, then by ascending countdown, trimmed to the client limit.
func (c *Client) FetchDepartures(ctx context.Context, rbls []int) ([]departure.Departure, error) {
	body, err := c.monitor(ctx, rbls, c.sender)
	if err != nil {
		return nil, err
	}
	deps, err := parseDepartures(body)
	if err != nil {
		return nil, err
	}
	departure.SortEarliestFirst(deps)
	if len(deps) > c.limit {
		deps = deps[:c.limit]
	}
	return deps, nil
}

// monitor performs the GET request and returns the raw body.
func (c *Client) monitor(ctx context.Context, rbls []int, sender string) ([]byte, error) {
	q := url.Values{}
	for _, id := range rbls {
		q.Add("rbl", strconv.Itoa(id))
	}
	q.Set("sender", sender)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting departures: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("monitor API: %w: %d", ErrStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

// parseDepartures walks data.monitors[].lines[] and keeps the first two
// departures of every U-Bahn line. Entries without a countdown are skipped.
func parseDepartures(body []byte) ([]departure.Departure, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("parsing response: invalid JSON")
	}

	var deps []departure.Departure
	gjson.GetBytes(body, "data.monitors").ForEach(func(_, monitor gjson.Result) bool {
		monitor.Get("lines").ForEach(func(_, line gjson.Result) bool {
			name := line.Get("name").String()
			if !strings.HasPrefix(name, linePrefix) {
				return true
			}
			towards := strings.TrimSpace(line.Get("towards").String())

			kept := 0
			for _, d := range line.Get("departures.departure").Array() {
				if kept >= perLine {
					break
				}
				minutes := d.Get("departureTime.countdown")
				if !minutes.Exists() {
					continue
				}
				kept++
				countdown := departure.In(int(minutes.Int()))
				if countdown.Minutes() == 0 {
					countdown = departure.Arriving
				}
				deps = append(deps, departure.Departure{
					Line:        name,
					Destination: towards,
					Countdown:   countdown,
				})
			}
			return true
		})
		return true
	})
	return deps, nil
}
