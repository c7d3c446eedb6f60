// File: matrix.go
// Role: triangular Matrix of UndirectedEdges, per-station degree and
//       max-lines, and the highlight refresh pass.
// Concurrency:
//   - Structure (rows, degree, maxLines) is immutable after Build.
//   - mu serializes refresh passes against whole-matrix snapshot readers;
//     per-edge readers only take the edge's own lock.

package edgematrix

import (
	"cmp"
	"fmt"
	"sort"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvtransit/core"
	"github.com/katalvlaran/lvtransit/routing"
)

// Matrix is the undirected, line-aggregated view of a Network.
type Matrix struct {
	mu sync.RWMutex

	stations int
	rows     [][]*UndirectedEdge // rows[h-1][l] for l < h
	degree   []int
	maxLines []int
	edges    int
}

type pair struct{ lower, higher int }

// Build aggregates net. For every unordered pair (a, b), a < b, the union of
// lines with a directed edge a→b or b→a becomes one UndirectedEdge, lines
// sorted by name. Self loops are not aggregated.
//
// Complexity: O(V² + E log E) time, O(V²/2 + E) space.
func Build(net *core.Network) (*Matrix, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	n := net.StationCount()

	// 1) Collect line sets per unordered pair.
	sets := make(map[pair]map[core.Line]struct{})
	for _, s := range net.Stations() {
		for _, e := range s.Edges() {
			if e.IsLoop() {
				continue
			}
			p := pair{lower: min(e.From, e.To), higher: max(e.From, e.To)}
			lines, ok := sets[p]
			if !ok {
				lines = make(map[core.Line]struct{})
				sets[p] = lines
			}
			lines[e.Line] = struct{}{}
		}
	}

	// 2) Allocate the lower triangle only.
	m := &Matrix{
		stations: n,
		degree:   make([]int, n),
		maxLines: make([]int, n),
	}
	if n > 1 {
		m.rows = make([][]*UndirectedEdge, n-1)
		for h := 1; h < n; h++ {
			m.rows[h-1] = make([]*UndirectedEdge, h)
		}
	}

	// 3) Materialize entries and per-station statistics.
	for p, set := range sets {
		lines := make([]core.Line, 0, len(set))
		for l := range set {
			lines = append(lines, l)
		}
		sort.Slice(lines, func(i, j int) bool { return compareLines(lines[i], lines[j]) < 0 })

		m.rows[p.higher-1][p.lower] = newUndirectedEdge(p.lower, p.higher, lines)
		m.edges++
		for _, id := range [2]int{p.lower, p.higher} {
			m.degree[id]++
			m.maxLines[id] = max(m.maxLines[id], len(lines))
		}
	}

	return m, nil
}

func compareLines(a, b core.Line) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	ca, cb := a.Color, b.Color
	return cmp.Compare(
		uint32(ca.R)<<24|uint32(ca.G)<<16|uint32(ca.B)<<8|uint32(ca.A),
		uint32(cb.R)<<24|uint32(cb.G)<<16|uint32(cb.B)<<8|uint32(cb.A),
	)
}

// Stations returns the number of stations the matrix was built for.
func (m *Matrix) Stations() int { return m.stations }

// Len returns the number of UndirectedEdges.
func (m *Matrix) Len() int { return m.edges }

func (m *Matrix) valid(id int) bool { return id >= 0 && id < m.stations }

// GetFor returns the UndirectedEdge between a and b in either order, or nil
// if a == b, an id is out of range, or no line connects them.
func (m *Matrix) GetFor(a, b int) *UndirectedEdge {
	if a == b || !m.valid(a) || !m.valid(b) {
		return nil
	}
	if a > b {
		a, b = b, a
	}
	return m.rows[b-1][a]
}

// EdgesOf returns the UndirectedEdges between id and stations with a lower
// id, in ascending partner order. Walking EdgesOf over all stations visits
// every UndirectedEdge exactly once.
func (m *Matrix) EdgesOf(id int) []*UndirectedEdge {
	if id <= 0 || !m.valid(id) {
		return nil
	}
	var out []*UndirectedEdge
	for _, e := range m.rows[id-1] {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Neighbours returns every UndirectedEdge incident to id, ordered by partner id.
func (m *Matrix) Neighbours(id int) []*UndirectedEdge {
	if !m.valid(id) {
		return nil
	}
	out := m.EdgesOf(id)
	for h := id + 1; h < m.stations; h++ {
		if e := m.rows[h-1][id]; e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Degree returns the number of stations sharing at least one line with id.
func (m *Matrix) Degree(id int) int {
	if !m.valid(id) {
		return 0
	}
	return m.degree[id]
}

// MaxLines returns the largest number of parallel lines on any pair
// incident to id.
func (m *Matrix) MaxLines(id int) int {
	if !m.valid(id) {
		return 0
	}
	return m.maxLines[id]
}

// all visits every UndirectedEdge in row-major order.
func (m *Matrix) all(visit func(*UndirectedEdge)) {
	for _, row := range m.rows {
		for _, e := range row {
			if e != nil {
				visit(e)
			}
		}
	}
}

// ClearHighlights resets every highlight.
func (m *Matrix) ClearHighlights() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.all(func(e *UndirectedEdge) { e.Clear() })
}

// RefreshHighlights replaces all highlight state with the lines used by
// routes. Empty routes contribute nothing.
//
// Implementation:
//   - Stage 1: resolve every route edge to its UndirectedEdge and line index
//     into fresh bitsets, touching no shared state. Any mismatch aborts with
//     ErrNoUndirectedEdge or ErrLineNotFound and leaves the previous
//     highlights untouched.
//   - Stage 2: under the matrix write lock, swap each edge's set in under its
//     own lock (edges not used by any route get an empty set).
func (m *Matrix) RefreshHighlights(routes []routing.Route) error {
	fresh := make(map[*UndirectedEdge]*bitset.BitSet)
	for _, r := range routes {
		for _, te := range r.Edges {
			ue := m.GetFor(te.From, te.To)
			if ue == nil {
				return fmt.Errorf("%w: %d-%d", ErrNoUndirectedEdge, te.From, te.To)
			}
			i := ue.indexOf(te.Line)
			if i < 0 {
				return fmt.Errorf("%w: %s on %d-%d", ErrLineNotFound, te.Line.Name, ue.lower, ue.higher)
			}
			set, ok := fresh[ue]
			if !ok {
				set = bitset.New(uint(len(ue.lines)))
				fresh[ue] = set
			}
			set.Set(uint(i))
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.all(func(e *UndirectedEdge) {
		if set, ok := fresh[e]; ok {
			e.replace(set)
			return
		}
		e.replace(bitset.New(uint(len(e.lines))))
	})
	return nil
}

// HighlightedEdges returns every UndirectedEdge with at least one
// highlighted line, as of one consistent refresh pass.
func (m *Matrix) HighlightedEdges() []*UndirectedEdge {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*UndirectedEdge
	m.all(func(e *UndirectedEdge) {
		if e.HighlightedCount() > 0 {
			out = append(out, e)
		}
	})
	return out
}
