package wienerlinien

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// discoverySender identifies discovery scans to the API.
const discoverySender = "rbl-discovery"

// DefaultDiscoveryDelay spaces discovery requests to stay under rate limits.
const DefaultDiscoveryDelay = 200 * time.Millisecond

// Mapping describes what an RBL serves.
type Mapping struct {
	RBL     int    `json:"rbl"`
	Station string `json:"station"`
	Line    string `json:"line"`
	Towards string `json:"towards"`
}

// Range is a block of RBL numbers assigned to a line.
type Range struct {
	Line       string
	Start, End int
}

// URanges are the known U-Bahn RBL blocks (41xx for U1, 42xx for U2, ...).
var URanges = []Range{
	{Line: "U1", Start: 4101, End: 4150},
	{Line: "U2", Start: 4201, End: 4280},
	{Line: "U3", Start: 4301, End: 4399},
	{Line: "U4", Start: 4401, End: 4450},
	{Line: "U6", Start: 4601, End: 4670},
}

// LookupRBL asks the API what the RBL serves. It reports false when the API
// has no U-Bahn monitor for it.
func (c *Client) LookupRBL(ctx context.Context, rbl int) (Mapping, bool, error) {
	body, err := c.monitor(ctx, []int{rbl}, discoverySender)
	if errors.Is(err, ErrStatus) {
		return Mapping{}, false, nil
	}
	if err != nil {
		return Mapping{}, false, err
	}
	if !gjson.ValidBytes(body) {
		return Mapping{}, false, nil
	}

	monitor := gjson.GetBytes(body, "data.monitors.0")
	if !monitor.Exists() {
		return Mapping{}, false, nil
	}
	line := monitor.Get("lines.0")
	if !line.Exists() {
		return Mapping{}, false, nil
	}
	name := line.Get("name").String()
	if !strings.HasPrefix(name, linePrefix) {
		return Mapping{}, false, nil
	}

	m := Mapping{
		RBL:     rbl,
		Station: orUnknown(monitor.Get("locationStop.properties.title").String()),
		Line:    name,
		Towards: orUnknown(strings.TrimSpace(line.Get("towards").String())),
	}
	return m, true, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// Discover scans r, waiting delay between requests, and returns every RBL
// that serves r.Line. found, when non-nil, is called for each hit as it
// arrives.
func (c *Client) Discover(ctx context.Context, r Range, delay time.Duration, found func(Mapping)) ([]Mapping, error) {
	var out []Mapping
	for rbl := r.Start; rbl <= r.End; rbl++ {
		m, ok, err := c.LookupRBL(ctx, rbl)
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			// transport errors on a single RBL do not stop the scan
			ok = false
		}
		if ok && m.Line == r.Line {
			out = append(out, m)
			if found != nil {
				found(m)
			}
		}

		if rbl == r.End {
			break
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return out, ctx.Err()
		case <-t.C:
		}
	}
	return out, nil
}

// StationRBLs is a station with the RBLs discovered for it.
type StationRBLs struct {
	Station string
	RBLs    [2]int
	Single  bool // only one RBL was found; it is used for both directions
}

// GroupByStation groups mappings by station in first-seen order and keeps
// the first two RBLs of each.
func GroupByStation(mappings []Mapping) []StationRBLs {
	index := make(map[string]int)
	var groups [][]int
	var names []string
	for _, m := range mappings {
		i, ok := index[m.Station]
		if !ok {
			i = len(groups)
			index[m.Station] = i
			groups = append(groups, nil)
			names = append(names, m.Station)
		}
		groups[i] = append(groups[i], m.RBL)
	}

	out := make([]StationRBLs, 0, len(groups))
	for i, rbls := range groups {
		s := StationRBLs{Station: names[i]}
		if len(rbls) >= 2 {
			s.RBLs = [2]int{rbls[0], rbls[1]}
		} else {
			s.RBLs = [2]int{rbls[0], rbls[0]}
			s.Single = true
		}
		out = append(out, s)
	}
	return out
}

// String formats the group as a directory entry.
func (s StationRBLs) String() string {
	entry := fmt.Sprintf("{Name: %q, RBLs: [2]int{%d, %d}},", s.Station, s.RBLs[0], s.RBLs[1])
	if s.Single {
		entry += " // only 1 RBL found"
	}
	return entry
}
