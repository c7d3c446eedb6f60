// File: frontier.go
// Role: candidate edges and the arrival-ordered min-heap of the search.

package routing

import (
	"container/heap"

	"github.com/katalvlaran/lvtransit/core"
)

// candidate is one timed edge waiting in the frontier.
// dep and arr are minutes after the query start.
type candidate struct {
	edge core.TimedEdge
	num  int // global edge number
	pred int // global edge number of the edge it continues, or noPred
	dep  int
	arr  int
}

// less is the frontier order: earliest arrival first, then a fixed chain of
// tie-breakers so simultaneous events are settled reproducibly.
func (a candidate) less(b candidate) bool {
	if a.arr != b.arr {
		return a.arr < b.arr
	}
	if a.dep != b.dep {
		return a.dep < b.dep
	}
	if a.edge.Line.Name != b.edge.Line.Name {
		return a.edge.Line.Name < b.edge.Line.Name
	}
	if a.edge.Tour != b.edge.Tour {
		return a.edge.Tour < b.edge.Tour
	}
	if a.edge.To != b.edge.To {
		return a.edge.To < b.edge.To
	}
	return a.num < b.num
}

// frontier is a min-heap of candidates. Duplicates of an edge may be pushed
// from different predecessors; stale ones are dropped when popped
// (checked via visited).
type frontier []candidate

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].less(f[j]) }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be a candidate.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(candidate)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}

func (f *frontier) push(c candidate) { heap.Push(f, c) }

func (f *frontier) pop() candidate { return heap.Pop(f).(candidate) }
