// File: search.go
// Role: RouteTo / RoutesFrom entry points and the per-query runner.
// Determinism:
//   - Frontier order is total (see candidate.less); equal inputs give equal routes.
// Concurrency:
//   - runner state is private to one call; the Network is only read.

package routing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvtransit/clock"
	"github.com/katalvlaran/lvtransit/core"
)

const (
	noLabel     = -1 // station not reached yet
	sourceLabel = -2 // the query source; never followed during reconstruction
	noPred      = -1 // edge boarded at the source
)

// RouteTo finds the earliest-arrival route from source to dest when leaving
// at start. It stops as soon as dest is settled.
//
// Returns an empty Route (not an error) when source == dest or when dest is
// unreachable within the horizon.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. source and dest must be station ids of net (ErrStationNotFound).
func RouteTo(net *core.Network, source, dest int, start clock.Clock, opts ...Option) (Route, error) {
	if net == nil {
		return Route{}, ErrNilNetwork
	}
	if !net.HasStation(source) {
		return Route{}, fmt.Errorf("%w: source %d", ErrStationNotFound, source)
	}
	if !net.HasStation(dest) {
		return Route{}, fmt.Errorf("%w: destination %d", ErrStationNotFound, dest)
	}
	if source == dest {
		return Route{Destination: dest}, nil
	}

	r := newRunner(net, source, dest, start, buildOptions(opts))
	r.run()

	return r.route(dest)
}

// RoutesFrom runs the search from source until the frontier is exhausted and
// returns one Route per station, indexed by station id. The source's own
// entry and unreachable stations are empty.
func RoutesFrom(net *core.Network, source int, start clock.Clock, opts ...Option) ([]Route, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if !net.HasStation(source) {
		return nil, fmt.Errorf("%w: source %d", ErrStationNotFound, source)
	}

	r := newRunner(net, source, noLabel, start, buildOptions(opts))
	r.run()

	routes := make([]Route, net.StationCount())
	for id := range routes {
		route, err := r.route(id)
		if err != nil {
			return nil, err
		}
		routes[id] = route
	}
	return routes, nil
}

// stationLine keys the same-line expansion set.
type stationLine struct {
	station int
	line    core.Line
}

// transfer tracks the other-line batches already emitted from a station.
// Arrivals are settled in non-decreasing order, so boarding thresholds only
// grow. After the first batch (excluding excluded) every later batch differs
// only by edges of excluded; after two batches with different excluded lines
// nothing new can be emitted.
type transfer struct {
	batches  int
	excluded core.Line
}

// runner holds the mutable state of a single search.
type runner struct {
	net     *core.Network
	options Options
	start   clock.Clock
	source  int
	target  int // noLabel for one-to-all
	limit   int // inclusive departure limit, minutes after start

	labels    []int  // station → global edge number of its fixed incoming edge
	pred      []int  // global edge number → predecessor edge number
	visited   []bool // global edge number → settled
	sameLine  map[stationLine]struct{}
	transfers []transfer

	pq      frontier
	settled int
	pushed  int
}

func newRunner(net *core.Network, source, target int, start clock.Clock, cfg Options) *runner {
	r := &runner{
		net:       net,
		options:   cfg,
		start:     start,
		source:    source,
		target:    target,
		limit:     cfg.Horizon.Minutes(),
		labels:    make([]int, net.StationCount()),
		pred:      make([]int, net.EdgeCount()),
		visited:   make([]bool, net.EdgeCount()),
		sameLine:  make(map[stationLine]struct{}),
		transfers: make([]transfer, net.StationCount()),
		pq:        make(frontier, 0, 16),
	}
	for i := range r.labels {
		r.labels[i] = noLabel
	}
	r.labels[source] = sourceLabel

	return r
}

// run seeds the frontier with every edge leaving the source and settles
// edges until the target is labelled or the frontier empties.
func (r *runner) run() {
	// 1) Boarding at the source needs no change time.
	r.emit(r.source, 0, noPred, func(core.Line) bool { return true })
	r.transfers[r.source].batches = 2

	// 2) Settle edges in arrival order.
	for r.pq.Len() > 0 {
		c := r.pq.pop()
		if r.visited[c.num] {
			continue
		}
		r.visited[c.num] = true
		r.pred[c.num] = c.pred

		// First write wins: the earliest arrival fixes the station label.
		to := c.edge.To
		if r.labels[to] == noLabel {
			r.labels[to] = c.num
			r.settled++
			if to == r.target {
				break
			}
		}

		r.expand(c)
	}

	log := r.options.Logger
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("route search finished",
			"query", uuid.NewString(),
			"source", r.source,
			"target", r.target,
			"start", r.start.String(),
			"change_time", r.options.ChangeTime,
			"horizon", r.options.Horizon.Hours(),
			"settled", r.settled,
			"pushed", r.pushed,
		)
	}
}

// expand emits the two candidate batches of an arrival: same-line edges at
// the raw arrival time and other-line edges after the change time.
func (r *runner) expand(c candidate) {
	at := c.edge.To
	line := c.edge.Line

	// Same line, no dwell. Later arrivals on the same line at the same
	// station can only emit a subset, so one batch per pair suffices.
	key := stationLine{station: at, line: line}
	if _, done := r.sameLine[key]; !done {
		r.sameLine[key] = struct{}{}
		r.emit(at, c.arr, c.num, func(l core.Line) bool { return l == line })
	}

	// Other lines, after the change time.
	tr := &r.transfers[at]
	switch {
	case tr.batches >= 2:
		return
	case tr.batches == 1 && tr.excluded == line:
		return
	case tr.batches == 1:
		excluded := tr.excluded
		tr.batches = 2
		r.emit(at, c.arr+r.options.ChangeTime, c.num, func(l core.Line) bool { return l == excluded })
	default:
		tr.batches = 1
		tr.excluded = line
		r.emit(at, c.arr+r.options.ChangeTime, c.num, func(l core.Line) bool { return l != line })
	}
}

// emit pushes every edge leaving station that departs at or after from
// minutes (relative to the query start), departs no later than the horizon limit
// and whose line passes accept.
func (r *runner) emit(station, from, pred int, accept func(core.Line) bool) {
	if from > r.limit {
		return
	}
	s := r.net.Station(station)
	offset := r.net.EdgeOffset(station)

	for i, e := range s.EdgesFrom(r.start.Later(0, from)) {
		dep := r.start.MinutesTo(e.Start)
		// Cyclic iteration wrapped past the query start, or left the horizon.
		if dep < from || dep > r.limit {
			break
		}
		num := offset + i
		if r.visited[num] || !accept(e.Line) {
			continue
		}
		if e.IsLoop() || e.To == r.source {
			continue
		}
		arr := r.start.MinutesTo(e.End)
		if arr < dep { // runs across the query start instant
			continue
		}
		r.pq.push(candidate{edge: e, num: num, pred: pred, dep: dep, arr: arr})
		r.pushed++
	}
}

// route reconstructs the path into dest by following predecessor edges back
// to the source. The loop is bounded by the edge count.
func (r *runner) route(dest int) (Route, error) {
	res := Route{Destination: dest}
	label := r.labels[dest]
	if label == noLabel || label == sourceLabel {
		return res, nil
	}

	var rev []core.TimedEdge
	for num, steps := label, 0; num != noPred; num, steps = r.pred[num], steps+1 {
		if steps > r.net.EdgeCount() {
			return Route{Destination: dest}, fmt.Errorf("%w: destination %d", ErrCorruptLabels, dest)
		}
		e, ok := r.net.EdgeByNumber(num)
		if !ok {
			return Route{Destination: dest}, fmt.Errorf("%w: edge %d", ErrCorruptLabels, num)
		}
		rev = append(rev, e)
	}

	res.Edges = make([]core.TimedEdge, len(rev))
	for i, e := range rev {
		res.Edges[len(rev)-1-i] = e
	}
	if res.Edges[0].From != r.source {
		return Route{Destination: dest}, fmt.Errorf("%w: destination %d", ErrCorruptLabels, dest)
	}
	return res, nil
}
