// File: undirected_edge.go
// Role: UndirectedEdge with its immutable line set and guarded highlight bitset.
// Concurrency:
//   - lines is immutable after construction.
//   - highlighted and count are guarded by mu.

package edgematrix

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvtransit/core"
)

// Sentinel errors for the edge matrix.
var (
	// ErrNilNetwork indicates that Build received a nil network.
	ErrNilNetwork = errors.New("edgematrix: network is nil")

	// ErrLineNotFound indicates a highlight for a line that does not connect the pair.
	ErrLineNotFound = errors.New("edgematrix: line not found on undirected edge")

	// ErrNoUndirectedEdge indicates a route edge between stations the matrix
	// holds no entry for.
	ErrNoUndirectedEdge = errors.New("edgematrix: no undirected edge for station pair")
)

// UndirectedEdge is the order-independent aggregation of every line that
// connects two stations.
type UndirectedEdge struct {
	lower  int
	higher int
	lines  []core.Line

	mu          sync.RWMutex
	highlighted *bitset.BitSet
	count       int
}

// newUndirectedEdge requires lower < higher.
func newUndirectedEdge(lower, higher int, lines []core.Line) *UndirectedEdge {
	if lower >= higher {
		panic(fmt.Sprintf("edgematrix: unordered pair %d,%d", lower, higher))
	}
	return &UndirectedEdge{
		lower:       lower,
		higher:      higher,
		lines:       lines,
		highlighted: bitset.New(uint(len(lines))),
	}
}

// Lower returns the smaller station id.
func (e *UndirectedEdge) Lower() int { return e.lower }

// Higher returns the larger station id.
func (e *UndirectedEdge) Higher() int { return e.higher }

// Lines returns a copy of the connecting lines.
func (e *UndirectedEdge) Lines() []core.Line {
	out := make([]core.Line, len(e.lines))
	copy(out, e.lines)
	return out
}

// LineDegree returns the number of connecting lines.
func (e *UndirectedEdge) LineDegree() int { return len(e.lines) }

// indexOf returns the position of l in lines, or -1.
func (e *UndirectedEdge) indexOf(l core.Line) int {
	for i, x := range e.lines {
		if x == l {
			return i
		}
	}
	return -1
}

// Clear removes every highlight.
func (e *UndirectedEdge) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.highlighted.ClearAll()
	e.count = 0
}

// AddHighlighted marks l as highlighted. It returns ErrLineNotFound, and
// changes nothing, if l does not connect this pair.
func (e *UndirectedEdge) AddHighlighted(l core.Line) error {
	i := e.indexOf(l)
	if i < 0 {
		return fmt.Errorf("%w: %s on %d-%d", ErrLineNotFound, l.Name, e.lower, e.higher)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.highlighted.Test(uint(i)) {
		e.highlighted.Set(uint(i))
		e.count++
	}
	return nil
}

// replace swaps in a fully computed highlight set.
func (e *UndirectedEdge) replace(set *bitset.BitSet) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.highlighted = set
	e.count = int(set.Count())
}

// HighlightedCount returns the number of highlighted lines.
func (e *UndirectedEdge) HighlightedCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.count
}

// IsHighlighted reports whether l is highlighted on this pair.
func (e *UndirectedEdge) IsHighlighted(l core.Line) bool {
	i := e.indexOf(l)
	if i < 0 {
		return false
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.highlighted.Test(uint(i))
}

// Highlighted returns the highlighted lines in their original order.
func (e *UndirectedEdge) Highlighted() []core.Line {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]core.Line, 0, e.count)
	for i, ok := e.highlighted.NextSet(0); ok && i < uint(len(e.lines)); i, ok = e.highlighted.NextSet(i + 1) {
		out = append(out, e.lines[i])
	}
	return out
}

// NonHighlighted returns the lines that are not highlighted, in their
// original order.
func (e *UndirectedEdge) NonHighlighted() []core.Line {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]core.Line, 0, len(e.lines)-e.count)
	for i, l := range e.lines {
		if !e.highlighted.Test(uint(i)) {
			out = append(out, l)
		}
	}
	return out
}

// Split returns Highlighted and NonHighlighted from one consistent snapshot.
func (e *UndirectedEdge) Split() (highlighted, rest []core.Line) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	highlighted = make([]core.Line, 0, e.count)
	rest = make([]core.Line, 0, len(e.lines)-e.count)
	for i, l := range e.lines {
		if e.highlighted.Test(uint(i)) {
			highlighted = append(highlighted, l)
		} else {
			rest = append(rest, l)
		}
	}
	return highlighted, rest
}

// String renders the pair for logs.
func (e *UndirectedEdge) String() string {
	return fmt.Sprintf("UndirectedEdge[%d-%d, %d lines]", e.lower, e.higher, len(e.lines))
}
