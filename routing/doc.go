// Package routing implements the time-dependent earliest-arrival search over
// a core.Network, with a per-line stopover penalty.
//
// Overview:
//
//   - The search is a label-setting Dijkstra variant over the virtual
//     time-expanded graph. The frontier holds timed edges, ordered by their
//     arrival time relative to the query start (clock wraparound handled by
//     measuring everything as clock.MinutesTo from the start instant).
//   - Staying on the same line needs no dwell time. Boarding a different line
//     requires at least ChangeTime minutes between arrival and departure.
//     Boarding at the source needs none.
//   - Every settled arrival emits two candidate batches into the frontier:
//     same-line edges departing at or after the raw arrival, and other-line
//     edges departing at or after arrival + ChangeTime. Both are cut off by
//     the Horizon: an edge departing more than Horizon hours after the
//     query start is discarded. An edge departing exactly at the limit is
//     kept, so Horizon 0 still admits departures at the query start.
//   - Station labels are first-write-wins: the first edge to reach a station
//     is its earliest arrival and is never overwritten. Expansion, however,
//     happens per arrival edge, not per station. A later arrival on the line
//     you could simply stay on may still lead to the best onward journey, and
//     settling stations alone would lose it.
//
// Entry points:
//
//	RouteTo(net, source, dest, start, opts...)  // single destination, stops early
//	RoutesFrom(net, source, start, opts...)     // one Route per station
//	NewEngine(net, opts...)                     // long-lived, shared horizon
//
// Determinism:
//
//	Ties in the frontier are broken by arrival, departure, line name, tour,
//	destination id and finally the global edge number, so simultaneous
//	departures always produce the same route.
//
// Complexity:
//
//   - Time:  O(E log E) per query. Each timed edge is settled at most once;
//     each (station, line) pair is expanded for same-line continuation once
//     and each station for transfers at most twice.
//   - Space: O(V + E) per query (labels, predecessors, visited flags).
//
// Errors (sentinel):
//
//	ErrNilNetwork      - nil *core.Network.
//	ErrStationNotFound - source or destination id out of range.
//	ErrBadHorizon      - horizon outside [0, 24] hours.
//	ErrBadChangeTime   - negative change time.
//	ErrCorruptLabels   - path reconstruction exceeded its bound.
//
// No route is not an error: the returned Route is simply Empty().
//
// Thread safety:
//
//	A Network is immutable and every query allocates its own state, so any
//	number of searches may run in parallel. Engine stores its horizon in an
//	atomic; each query reads it once.
package routing
