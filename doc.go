// Package lvtransit is an in-memory routing core for scheduled public
// transit: timetables in, earliest-arrival journeys and per-line map
// highlights out.
//
// 🚏 What is in the box?
//
//	• Cyclic time of day: minute-precision clock that wraps at midnight
//	• Timetable model: lines, timed edges, stations, an immutable network
//	• Earliest-arrival search: change time between lines, search horizon
//	• Edge matrix: undirected per-pair line sets with highlight state
//	• Configuration: YAML file plus LVTRANSIT_* environment overrides
//
// Layout:
//
//	clock/      - Clock, the minute-of-day value with cyclic arithmetic
//	core/       - Line, TimedEdge, Station, Network and the Builder
//	routing/    - RouteTo, RoutesFrom, Route, Horizon and the Engine
//	edgematrix/ - Matrix and UndirectedEdge, fed by routing results
//	config/     - Config, Load, NewLogger, EngineOptions
//	examples/   - a runnable city scenario wiring every package
//
// Quick ASCII example:
//
//	  L1 08:00-08:10     L2 08:16-08:24
//	[A] ───────────▶ [B] ───────────▶ [C]
//
//	with a 5-minute change time, A→C departs 08:00 and arrives 08:24.
//
//	go get github.com/katalvlaran/lvtransit
package lvtransit
