package routing_test

import (
	"image/color"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransit/clock"
	"github.com/katalvlaran/lvtransit/core"
)

var (
	l1 = core.Line{Name: "L1", Color: color.RGBA{R: 200, A: 255}}
	l2 = core.Line{Name: "L2", Color: color.RGBA{G: 200, A: 255}}
	l3 = core.Line{Name: "L3", Color: color.RGBA{B: 200, A: 255}}
)

// hop is a compact edge description for fixtures.
type hop struct {
	line     core.Line
	tour     int
	from, to int
	start    string
	end      string
}

// network builds stations 0..n-1 (external id == dense id) and the given hops.
func network(t testing.TB, n int, hops ...hop) *core.Network {
	t.Helper()
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		_, err := b.AddStation(i, string(rune('A'+i)), orb.Point{float64(i), 0})
		require.NoError(t, err)
	}
	for _, h := range hops {
		require.NoError(t, b.AddEdge(h.from, h.line, h.tour, h.to, clock.MustParse(h.start), clock.MustParse(h.end)))
	}
	net, err := b.Build()
	require.NoError(t, err)
	return net
}

// describe turns a route into "from>to@HH:MM/line" tokens for readable asserts.
func describe(edges []core.TimedEdge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = string(rune('A'+e.From)) + ">" + string(rune('A'+e.To)) + "@" + e.Start.String() + "/" + e.Line.Name
	}
	return out
}
