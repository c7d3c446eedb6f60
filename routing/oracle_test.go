package routing_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransit/clock"
	"github.com/katalvlaran/lvtransit/core"
	"github.com/katalvlaran/lvtransit/routing"
)

// bruteForce enumerates every valid edge chain from source and returns the
// earliest arrival (minutes after start) per station, -1 if unreachable.
// The rules mirror the search: free boarding at the source, no dwell on the
// same line, changeTime between different lines, departures no later than
// the horizon limit, no loops, no edges back into the source, no edges running
// across the start instant.
func bruteForce(net *core.Network, source int, start clock.Clock, change, limit int) []int {
	best := make([]int, net.StationCount())
	for i := range best {
		best[i] = -1
	}
	used := make(map[[2]int]bool)
	// Reaching (station, line) again no earlier than before cannot open any
	// new departure, so such states are not explored twice.
	type state struct {
		at   int
		line core.Line
	}
	explored := make(map[state]int)

	var walk func(at, arr int, line *core.Line)
	walk = func(at, arr int, line *core.Line) {
		if line != nil {
			k := state{at, *line}
			if prev, ok := explored[k]; ok && prev <= arr {
				return
			}
			explored[k] = arr
		}
		s := net.Station(at)
		for i := 0; i < s.EdgeCount(); i++ {
			e := s.Edge(i)
			key := [2]int{at, i}
			if used[key] || e.IsLoop() || e.To == source {
				continue
			}
			dep := start.MinutesTo(e.Start)
			end := start.MinutesTo(e.End)
			if dep > limit || end < dep {
				continue
			}
			need := arr
			if line != nil && *line != e.Line {
				need += change
			}
			if dep < need {
				continue
			}
			if best[e.To] == -1 || end < best[e.To] {
				best[e.To] = end
			}
			used[key] = true
			l := e.Line
			walk(e.To, end, &l)
			used[key] = false
		}
	}
	walk(source, 0, nil)

	return best
}

// checkRoute asserts the structural properties of a returned route.
func checkRoute(t *testing.T, r routing.Route, source int, start clock.Clock, change, limit int) {
	t.Helper()
	if r.Empty() {
		return
	}
	require.Equal(t, source, r.Edges[0].From, "route must start at the source")
	require.Equal(t, r.Destination, r.Edges[len(r.Edges)-1].To)
	for i, e := range r.Edges {
		dep := start.MinutesTo(e.Start)
		require.LessOrEqual(t, dep, limit, "edge %s outside horizon", e)
		require.GreaterOrEqual(t, start.MinutesTo(e.End), dep)
		if i == 0 {
			continue
		}
		prev := r.Edges[i-1]
		require.Equal(t, prev.To, e.From, "route must be contiguous")
		gap := dep - start.MinutesTo(prev.End)
		if prev.Line == e.Line {
			require.GreaterOrEqual(t, gap, 0)
		} else {
			require.GreaterOrEqual(t, gap, change, "line change %s → %s too tight", prev, e)
		}
	}
}

// randomNetwork builds up to 8 stations with a dense random timetable
// around 08:00, including midnight-crossing runs.
func randomNetwork(t *testing.T, rng *rand.Rand) *core.Network {
	stations := 3 + rng.Intn(6)
	lines := []core.Line{l1, l2, l3}
	var hops []hop
	edges := 6 + rng.Intn(20)
	for i := 0; i < edges; i++ {
		from := rng.Intn(stations)
		to := rng.Intn(stations)
		base := 7*60 + 30
		if rng.Intn(6) == 0 {
			base = 23*60 + 30
		}
		startMin := base + rng.Intn(90)
		dur := rng.Intn(25)
		s := clock.FromMinutes(startMin)
		e := s.Later(0, dur)
		hops = append(hops, hop{lines[rng.Intn(len(lines))], i, from, to, s.String(), e.String()})
	}
	return network(t, stations, hops...)
}

func TestRouteTo_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	for trial := 0; trial < 300; trial++ {
		net := randomNetwork(t, rng)
		source := rng.Intn(net.StationCount())
		start := clock.FromMinutes(7*60 + 30 + rng.Intn(60))
		if trial%10 == 0 {
			start = clock.New(23, 45)
		}
		change := rng.Intn(12)
		horizon := routing.Horizon(1 + rng.Intn(24))

		t.Run(fmt.Sprintf("trial%d", trial), func(t *testing.T) {
			want := bruteForce(net, source, start, change, horizon.Minutes())
			routes, err := routing.RoutesFrom(net, source, start,
				routing.WithChangeTime(change), routing.WithHorizon(horizon))
			require.NoError(t, err)

			for id, r := range routes {
				checkRoute(t, r, source, start, change, horizon.Minutes())
				if id == source {
					require.True(t, r.Empty())
					continue
				}
				if want[id] == -1 {
					require.True(t, r.Empty(), "station %d should be unreachable", id)
					continue
				}
				require.False(t, r.Empty(), "station %d reachable at +%d", id, want[id])
				require.Equal(t, want[id], r.Arrival(start), "station %d", id)

				// Single-destination search agrees with the one-to-all run.
				single, err := routing.RouteTo(net, source, id, start,
					routing.WithChangeTime(change), routing.WithHorizon(horizon))
				require.NoError(t, err)
				require.Equal(t, r.Arrival(start), single.Arrival(start))
				checkRoute(t, single, source, start, change, horizon.Minutes())
			}
		})
	}
}
