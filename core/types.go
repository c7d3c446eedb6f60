// File: types.go
// Role: Line, TimedEdge, Station value types and the core sentinel errors.

package core

import (
	"errors"
	"fmt"
	"image/color"
	"iter"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvtransit/clock"
)

// Sentinel errors for dataset construction.
var (
	// ErrDuplicateStation indicates that an external station id was registered twice.
	ErrDuplicateStation = errors.New("core: station id already in use")

	// ErrUnknownStation indicates that an edge referenced a station that was never added.
	ErrUnknownStation = errors.New("core: unknown station")

	// ErrEmptyLine indicates an edge whose line has no name.
	ErrEmptyLine = errors.New("core: line name is empty")

	// ErrNegativeTour indicates an edge with a negative tour number.
	ErrNegativeTour = errors.New("core: tour number is negative")

	// ErrBuilderFrozen indicates that a Builder was used after Build.
	ErrBuilderFrozen = errors.New("core: builder already built")
)

// Line identifies one transit line. Two lines are the same line iff their
// values are equal.
type Line struct {
	// Name is the public line name, e.g. "S1" or "10/E".
	Name string

	// Color is the display color; it takes part in equality.
	Color color.RGBA
}

// String returns the line name.
func (l Line) String() string { return l.Name }

// TimedEdge is one scheduled directed traversal between two stations.
// It is a value type; copies are as good as the original.
type TimedEdge struct {
	// Line is the line operating this traversal.
	Line Line

	// Tour distinguishes runs of the same line; unique per line.
	Tour int

	// From is the origin station id.
	From int

	// To is the destination station id.
	To int

	// Start is the departure time at From.
	Start clock.Clock

	// End is the arrival time at To.
	End clock.Clock
}

// Duration is the cyclic travel time from Start to End in minutes.
func (e TimedEdge) Duration() int { return e.Start.MinutesTo(e.End) }

// IsLoop reports whether the edge leads back to its origin.
func (e TimedEdge) IsLoop() bool { return e.From == e.To }

// String renders the edge for logs and test failures.
func (e TimedEdge) String() string {
	return fmt.Sprintf("%s#%d %d→%d %s-%s", e.Line.Name, e.Tour, e.From, e.To, e.Start, e.End)
}

// compareEdges is the storage order of a station's edges: absolute start
// time, then line name, tour and destination so simultaneous departures
// have a reproducible position.
func compareEdges(a, b TimedEdge) int {
	if d := a.Start.Minutes() - b.Start.Minutes(); d != 0 {
		return d
	}
	if a.Line.Name != b.Line.Name {
		if a.Line.Name < b.Line.Name {
			return -1
		}
		return 1
	}
	if d := a.Tour - b.Tour; d != 0 {
		return d
	}
	if d := a.To - b.To; d != 0 {
		return d
	}
	return a.End.Minutes() - b.End.Minutes()
}

// Station is a stop of the network. It exclusively owns its outgoing edges.
type Station struct {
	// ID is the dense zero-based id within its Network.
	ID int

	// Name is the display name.
	Name string

	// Coord is the geographic position (lon, lat) or any planar position
	// used by layout collaborators.
	Coord orb.Point

	// edges stores outgoing edges ascending by absolute start time.
	edges []TimedEdge
}

// Edges returns a copy of the outgoing edges in storage order.
func (s *Station) Edges() []TimedEdge {
	out := make([]TimedEdge, len(s.edges))
	copy(out, s.edges)
	return out
}

// EdgeCount returns the number of outgoing edges.
func (s *Station) EdgeCount() int { return len(s.edges) }

// Edge returns the outgoing edge at storage position i.
func (s *Station) Edge(i int) TimedEdge { return s.edges[i] }

// Rotation returns the position of the first edge departing at or after t.
// If every edge departs before t the rotation wraps to 0.
//
// Complexity: O(log d), d = EdgeCount().
func (s *Station) Rotation(t clock.Clock) int {
	i, _ := slices.BinarySearchFunc(s.edges, t, func(e TimedEdge, t clock.Clock) int {
		return e.Start.Minutes() - t.Minutes()
	})
	if i == len(s.edges) {
		return 0
	}
	return i
}

// EdgesFrom iterates the outgoing edges in cyclic order relative to t,
// starting at Rotation(t) and visiting each edge exactly once. The first
// value is the storage position of the edge.
func (s *Station) EdgesFrom(t clock.Clock) iter.Seq2[int, TimedEdge] {
	return func(yield func(int, TimedEdge) bool) {
		n := len(s.edges)
		if n == 0 {
			return
		}
		start := s.Rotation(t)
		for k := 0; k < n; k++ {
			i := (start + k) % n
			if !yield(i, s.edges[i]) {
				return
			}
		}
	}
}

// String renders the station for logs.
func (s *Station) String() string {
	return fmt.Sprintf("Station[%s, %d]", s.Name, s.ID)
}
