package edgematrix_test

import (
	"image/color"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtransit/clock"
	"github.com/katalvlaran/lvtransit/core"
	"github.com/katalvlaran/lvtransit/edgematrix"
)

var (
	red   = core.Line{Name: "R", Color: color.RGBA{R: 255, A: 255}}
	green = core.Line{Name: "G", Color: color.RGBA{G: 255, A: 255}}
	blue  = core.Line{Name: "B", Color: color.RGBA{B: 255, A: 255}}
)

type link struct {
	line     core.Line
	from, to int
	start    string
}

// fixture builds n stations and one 5-minute edge per link.
func fixture(t testing.TB, n int, links ...link) *core.Network {
	t.Helper()
	b := core.NewBuilder()
	for i := 0; i < n; i++ {
		_, err := b.AddStation(i, string(rune('A'+i)), orb.Point{float64(i), float64(i % 2)})
		require.NoError(t, err)
	}
	for i, l := range links {
		s := clock.MustParse(l.start)
		require.NoError(t, b.AddEdge(l.from, l.line, i, l.to, s, s.Later(0, 5)))
	}
	net, err := b.Build()
	require.NoError(t, err)
	return net
}

// square: 0-1 by R and G (opposite directions), 1-2 by G, 2-3 by B, 0-3 by R,
// plus a loop at 2.
func square(t testing.TB) *core.Network {
	return fixture(t, 4,
		link{red, 0, 1, "08:00"},
		link{green, 1, 0, "08:10"},
		link{green, 1, 2, "08:20"},
		link{blue, 2, 3, "08:30"},
		link{blue, 2, 2, "08:40"},
		link{red, 3, 0, "08:50"},
		link{red, 1, 0, "09:00"},
	)
}

func names(lines []core.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Name
	}
	return out
}

func TestBuild_NilNetwork(t *testing.T) {
	_, err := edgematrix.Build(nil)
	require.ErrorIs(t, err, edgematrix.ErrNilNetwork)
}

func TestBuild_AggregatesBothDirections(t *testing.T) {
	m, err := edgematrix.Build(square(t))
	require.NoError(t, err)

	assert.Equal(t, 4, m.Stations())
	assert.Equal(t, 4, m.Len(), "0-1, 1-2, 2-3, 0-3")

	e := m.GetFor(0, 1)
	require.NotNil(t, e)
	assert.Equal(t, 0, e.Lower())
	assert.Equal(t, 1, e.Higher())
	assert.Equal(t, []string{"G", "R"}, names(e.Lines()), "union sorted by name, duplicates merged")
	assert.Equal(t, 2, e.LineDegree())

	assert.Nil(t, m.GetFor(2, 2), "loops are not aggregated")
	assert.Nil(t, m.GetFor(0, 2), "no line connects 0 and 2")
	assert.Nil(t, m.GetFor(-1, 2))
	assert.Nil(t, m.GetFor(0, 4))
}

func TestGetFor_Symmetric(t *testing.T) {
	m, err := edgematrix.Build(square(t))
	require.NoError(t, err)
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			assert.Same(t, m.GetFor(a, b), m.GetFor(b, a), "pair %d,%d", a, b)
		}
	}
}

func TestDegreeAndMaxLines(t *testing.T) {
	m, err := edgematrix.Build(square(t))
	require.NoError(t, err)

	cases := []struct {
		id, degree, maxLines int
	}{
		{0, 2, 2},
		{1, 2, 2},
		{2, 2, 1},
		{3, 2, 1},
		{7, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.degree, m.Degree(tc.id), "degree of %d", tc.id)
		assert.Equal(t, tc.maxLines, m.MaxLines(tc.id), "max lines of %d", tc.id)
	}
}

func TestEdgesOf_LowerRowCoversEveryEdgeOnce(t *testing.T) {
	m, err := edgematrix.Build(square(t))
	require.NoError(t, err)

	assert.Empty(t, m.EdgesOf(0))
	seen := 0
	for id := 0; id < m.Stations(); id++ {
		for _, e := range m.EdgesOf(id) {
			assert.Equal(t, id, e.Higher())
			seen++
		}
	}
	assert.Equal(t, m.Len(), seen)

	var partners []int
	for _, e := range m.Neighbours(0) {
		partners = append(partners, e.Lower()+e.Higher())
	}
	assert.Equal(t, []int{1, 3}, partners)
	assert.Nil(t, m.Neighbours(9))
}

func TestUndirectedEdge_AddHighlighted(t *testing.T) {
	m, err := edgematrix.Build(square(t))
	require.NoError(t, err)
	e := m.GetFor(0, 1)

	require.NoError(t, e.AddHighlighted(green))
	require.NoError(t, e.AddHighlighted(green))
	assert.Equal(t, 1, e.HighlightedCount(), "idempotent")

	err = e.AddHighlighted(blue)
	require.ErrorIs(t, err, edgematrix.ErrLineNotFound)
	assert.Equal(t, 1, e.HighlightedCount())

	require.NoError(t, e.AddHighlighted(red))
	assert.Equal(t, []string{"G", "R"}, names(e.Highlighted()))
	assert.Empty(t, e.NonHighlighted())

	e.Clear()
	assert.Zero(t, e.HighlightedCount())
	assert.Equal(t, "UndirectedEdge[0-1, 2 lines]", e.String())
}
