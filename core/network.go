// File: network.go
// Role: frozen Network (dense station ids, global edge numbering) and its Builder.
// Concurrency:
//   - Network is immutable after Build; reads need no locking.
//   - Builder is not safe for concurrent use.

package core

import (
	"cmp"
	"fmt"

	"github.com/paulmach/orb"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvtransit/clock"
)

// Network is the immutable station/edge dataset.
type Network struct {
	stations []*Station
	offsets  []int // offsets[i] = number of edges owned by stations 0..i-1
	edges    int
	lines    []Line
	bound    orb.Bound
}

// StationCount returns the number of stations; ids are 0..StationCount()-1.
func (n *Network) StationCount() int { return len(n.stations) }

// EdgeCount returns the total number of timed edges.
func (n *Network) EdgeCount() int { return n.edges }

// HasStation reports whether id is a valid station id.
func (n *Network) HasStation(id int) bool { return id >= 0 && id < len(n.stations) }

// Station returns the station with the given dense id, or nil if out of range.
func (n *Network) Station(id int) *Station {
	if !n.HasStation(id) {
		return nil
	}
	return n.stations[id]
}

// Stations returns the stations ordered by id. The slice is a copy; the
// stations are shared.
func (n *Network) Stations() []*Station {
	out := make([]*Station, len(n.stations))
	copy(out, n.stations)
	return out
}

// EdgeOffset returns the global number of the first edge owned by station id.
// The global number of that station's i-th edge is EdgeOffset(id)+i.
func (n *Network) EdgeOffset(id int) int { return n.offsets[id] }

// EdgeByNumber resolves a global edge number back to the edge.
//
// Complexity: O(log V).
func (n *Network) EdgeByNumber(num int) (TimedEdge, bool) {
	if num < 0 || num >= n.edges {
		return TimedEdge{}, false
	}
	// Largest station whose offset is <= num; it must own num because the
	// next offset is strictly larger. BinarySearch lands on the first offset
	// >= num+1 even among duplicates left by stations without edges.
	i, _ := slices.BinarySearch(n.offsets, num+1)
	s := i - 1
	return n.stations[s].edges[num-n.offsets[s]], true
}

// Lines returns every distinct line of the network sorted by name.
func (n *Network) Lines() []Line {
	out := make([]Line, len(n.lines))
	copy(out, n.lines)
	return out
}

// Bound returns the bounding box of all station coordinates.
// An empty network yields the zero Bound.
func (n *Network) Bound() orb.Bound { return n.bound }

// Builder assembles a Network. External station ids are mapped to dense
// zero-based ids in insertion order.
type Builder struct {
	ids      map[int]int
	stations []*Station
	built    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{ids: make(map[int]int)}
}

// AddStation registers a station under an external id and returns its dense id.
func (b *Builder) AddStation(externalID int, name string, coord orb.Point) (int, error) {
	if b.built {
		return 0, ErrBuilderFrozen
	}
	if _, ok := b.ids[externalID]; ok {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateStation, externalID)
	}
	id := len(b.stations)
	b.ids[externalID] = id
	b.stations = append(b.stations, &Station{ID: id, Name: name, Coord: coord})
	return id, nil
}

// DenseID resolves an external station id.
func (b *Builder) DenseID(externalID int) (int, bool) {
	id, ok := b.ids[externalID]
	return id, ok
}

// AddEdge registers a timed edge between two stations given by external id.
func (b *Builder) AddEdge(from int, line Line, tour int, to int, start, end clock.Clock) error {
	if b.built {
		return ErrBuilderFrozen
	}
	if line.Name == "" {
		return ErrEmptyLine
	}
	if tour < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTour, tour)
	}
	f, ok := b.ids[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStation, from)
	}
	t, ok := b.ids[to]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownStation, to)
	}
	s := b.stations[f]
	s.edges = append(s.edges, TimedEdge{
		Line:  line,
		Tour:  tour,
		From:  f,
		To:    t,
		Start: start,
		End:   end,
	})
	return nil
}

// Build sorts every station's edges, computes the global edge numbering and
// returns the frozen Network. The Builder cannot be used afterwards.
func (b *Builder) Build() (*Network, error) {
	if b.built {
		return nil, ErrBuilderFrozen
	}
	b.built = true

	n := &Network{
		stations: b.stations,
		offsets:  make([]int, len(b.stations)),
	}
	seen := make(map[Line]struct{})
	for i, s := range b.stations {
		slices.SortStableFunc(s.edges, compareEdges)
		n.offsets[i] = n.edges
		n.edges += len(s.edges)
		for _, e := range s.edges {
			if _, ok := seen[e.Line]; !ok {
				seen[e.Line] = struct{}{}
				n.lines = append(n.lines, e.Line)
			}
		}
		if i == 0 {
			n.bound = s.Coord.Bound()
		} else {
			n.bound = n.bound.Extend(s.Coord)
		}
	}
	slices.SortStableFunc(n.lines, func(a, b Line) int { return cmp.Compare(a.Name, b.Name) })

	return n, nil
}
