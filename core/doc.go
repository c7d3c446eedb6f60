// Package core defines the transit dataset consumed by the routing engine:
// Line, TimedEdge, Station and the frozen Network that owns them.
//
// A Network is built once by a Builder and is immutable afterwards, so any
// number of goroutines may read it (and search it) without locking.
//
// Model:
//
//   - Line:      identity token (Name + Color). Used for equality, grouping
//     and stopover-penalty decisions only.
//   - TimedEdge: one scheduled directed traversal {Line, Tour, From, To,
//     Start, End}. Distinct tours of the same line are distinct edges.
//   - Station:   {ID, Name, Coord} plus its outgoing edges, stored ascending
//     by absolute Start. Edges reference stations by id only.
//   - Network:   stations with dense zero-based ids, plus a global dense
//     edge numbering (EdgeOffset(station) + position) for per-query state.
//
// Cyclic access:
//
//	Station.Rotation(t) finds, by binary search, the first edge departing at
//	or after t; Station.EdgesFrom(t) iterates from there, wrapping once
//	around the end of the day. This replaces a comparator whose meaning
//	changes with every query.
//
//	          t
//	  [05:10 06:00 | 08:15 09:40 23:55] → 08:15 09:40 23:55 05:10 06:00
//
// Errors:
//
//	ErrDuplicateStation - external station id registered twice.
//	ErrUnknownStation   - edge references an unregistered station.
//	ErrEmptyLine        - edge line has an empty name.
//	ErrNegativeTour     - edge tour number is negative.
//	ErrBuilderFrozen    - Builder used after Build.
package core
