// File: route.go
// Role: Route, the reconstructed path of one destination, and its accessors.

package routing

import (
	"github.com/katalvlaran/lvtransit/clock"
	"github.com/katalvlaran/lvtransit/core"
)

// Route is the result of a search for one destination: the ordered edges
// from the source, or no edges when the destination is the source itself or
// could not be reached.
type Route struct {
	Destination int
	Edges       []core.TimedEdge
}

// Empty reports whether the route has no edges.
func (r Route) Empty() bool { return len(r.Edges) == 0 }

// Len returns the number of edges.
func (r Route) Len() int { return len(r.Edges) }

// Departure returns minutes from start until the first edge departs, or 0 for an empty route.
func (r Route) Departure(start clock.Clock) int {
	if r.Empty() {
		return 0
	}
	return start.MinutesTo(r.Edges[0].Start)
}

// Arrival returns minutes from start until the last edge arrives, or 0 for an empty route.
func (r Route) Arrival(start clock.Clock) int {
	if r.Empty() {
		return 0
	}
	return start.MinutesTo(r.Edges[len(r.Edges)-1].End)
}

// Changes counts the line switches along the route.
func (r Route) Changes() int {
	n := 0
	for i := 1; i < len(r.Edges); i++ {
		if r.Edges[i].Line != r.Edges[i-1].Line {
			n++
		}
	}
	return n
}

// Lines returns the distinct lines in order of first use.
func (r Route) Lines() []core.Line {
	var out []core.Line
	seen := make(map[core.Line]struct{}, len(r.Edges))
	for _, e := range r.Edges {
		if _, ok := seen[e.Line]; ok {
			continue
		}
		seen[e.Line] = struct{}{}
		out = append(out, e.Line)
	}
	return out
}
