// Package edgematrix aggregates a core.Network into an undirected view: one
// UndirectedEdge per station pair that is connected by at least one line in
// either direction, together with a highlight subset marking which of those
// lines a batch of computed routes actually uses.
//
// Storage:
//
//	Every UndirectedEdge is built with Lower() < Higher(), so only the strict
//	lower triangle of the V×V matrix is allocated: row h-1 holds the h
//	entries for partners 0..h-1.
//
//	      0   1   2   3
//	  1 [ ·  ]
//	  2 [ ·   ·  ]
//	  3 [ ·   ·   ·  ]
//
// Highlights:
//
//	RefreshHighlights overwrites the highlight state from a batch of routes
//	(it is not incremental). New highlight sets are computed first and then
//	swapped into each edge under that edge's lock, so a reader never observes
//	a half-applied pass. A route edge whose line is not among the pair's
//	precomputed lines means the index and the routing dataset disagree; the
//	pass is aborted with ErrLineNotFound and the previous highlights stay.
//
// Errors:
//
//	ErrNilNetwork       - Build received a nil network.
//	ErrLineNotFound     - a highlighted line does not connect the pair.
//	ErrNoUndirectedEdge - a route edge connects a pair with no entry.
package edgematrix
