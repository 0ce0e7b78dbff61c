package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oss.terrastruct.com/d2/lib/geo"

	"github.com/katalvlaran/onestroke/builder"
	"github.com/katalvlaran/onestroke/euler"
	"github.com/katalvlaran/onestroke/geometry"
	"github.com/katalvlaran/onestroke/level"
)

// TestBuilders_Functional runs table-driven topology checks for each template.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		ctor      builder.Constructor
		wantV     int
		wantE     int
		wantOdd   int
		connected bool
	}{
		{"Polygon(3)", builder.Polygon(3), 3, 3, 0, true},
		{"Polygon(6)", builder.Polygon(6), 6, 6, 0, true},
		{"PolygonWithCenter(4)", builder.PolygonWithCenter(4), 5, 8, 4, true},
		{"PolygonWithCenter(5)", builder.PolygonWithCenter(5), 6, 10, 6, true},
		{"Star(5)", builder.Star(5), 5, 10, 0, true},
		{"Star(6)", builder.Star(6), 6, 9, 6, true},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7, 2, true},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0, 0, true},
		{"DoubleRing(4)", builder.DoubleRing(4), 8, 12, 8, true},
		{"Honeycomb", builder.Honeycomb(), 7, 12, 6, true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Len(t, l.Nodes, tc.wantV)
			assert.Len(t, l.Edges, tc.wantE)
			assert.Len(t, euler.OddDegreeNodes(l.Nodes, l.Edges), tc.wantOdd)
			assert.Equal(t, tc.connected, euler.IsConnected(l.Nodes, l.Edges))

			lv := l.Level(1, 1)
			assert.NoError(t, lv.Validate(), "templates never emit loops, duplicates or dangling edges")
			for i, n := range l.Nodes {
				assert.Equal(t, i+1, n.ID, "IDs are 1..n in emission order")
			}
		})
	}
}

func TestPolygon_Coordinates(t *testing.T) {
	l, err := builder.Build([]builder.BuilderOption{builder.WithGrid(4, 4)}, builder.Polygon(3))
	require.NoError(t, err)
	assert.Equal(t, []level.Node{
		{ID: 1, X: 2, Y: 0.4},
		{ID: 2, X: 3.39, Y: 2.8},
		{ID: 3, X: 0.61, Y: 2.8},
	}, l.Nodes)
	assert.Equal(t, []level.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}}, l.Edges)
}

func TestPolygonWithCenter_HubAtCentre(t *testing.T) {
	l, err := builder.Build([]builder.BuilderOption{builder.WithGrid(5, 3)}, builder.PolygonWithCenter(4))
	require.NoError(t, err)
	hub := l.Nodes[len(l.Nodes)-1]
	assert.Equal(t, level.Node{ID: 5, X: 2.5, Y: 1.5}, hub)
	assert.Equal(t, 4, level.Degrees(l.Nodes, l.Edges)[hub.ID])
}

func TestDoubleRing_InnerAtHalfRadius(t *testing.T) {
	l, err := builder.Build(nil, builder.DoubleRing(3))
	require.NoError(t, err)
	outerTop, innerTop := l.Nodes[0], l.Nodes[3]
	assert.InDelta(t, 2-1.6, outerTop.Y, 1e-9)
	assert.InDelta(t, 2-0.8, innerTop.Y, 1e-9)
	assert.True(t, level.HasEdge(l.Edges, 1, 4))
	assert.True(t, level.HasEdge(l.Edges, 3, 6))
}

func TestBuild_Composes(t *testing.T) {
	l, err := builder.Build(nil, builder.Polygon(3), builder.Polygon(4))
	require.NoError(t, err)
	assert.Len(t, l.Nodes, 7)
	assert.Len(t, l.Edges, 7)
	assert.True(t, level.HasEdge(l.Edges, 4, 7))
	assert.False(t, euler.IsConnected(l.Nodes, l.Edges))
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"nil constructor", nil, builder.ErrConstructFailed},
		{"polygon too small", builder.Polygon(2), builder.ErrTooFewVertices},
		{"hub too small", builder.PolygonWithCenter(2), builder.ErrTooFewVertices},
		{"star too small", builder.Star(4), builder.ErrTooFewVertices},
		{"grid zero", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"ring too small", builder.DoubleRing(2), builder.ErrTooFewVertices},
		{"safe random no rng", builder.SafeRandom(4), builder.ErrNeedRandSource},
		{"safe random too small", builder.SafeRandom(2), builder.ErrTooFewVertices},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := builder.Build(nil, tc.ctor)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSafeRandom_PlacementRules(t *testing.T) {
	const n = 6
	l, err := builder.Build([]builder.BuilderOption{builder.WithSeed(11), builder.WithGrid(4, 5)}, builder.SafeRandom(n))
	require.NoError(t, err)
	require.Len(t, l.Nodes, n)
	assert.Empty(t, l.Edges)

	pl := geometry.DefaultPlacement()
	for i := 0; i < n; i++ {
		a := l.Nodes[i]
		assert.GreaterOrEqual(t, a.X, 0.0)
		assert.LessOrEqual(t, a.X, 4.0)
		assert.GreaterOrEqual(t, a.Y, 0.0)
		assert.LessOrEqual(t, a.Y, 5.0)
		for j := i + 1; j < n; j++ {
			b := l.Nodes[j]
			assert.GreaterOrEqual(t, geo.EuclideanDistance(a.X, a.Y, b.X, b.Y), pl.MinDistance)
		}
	}
}

func TestSafeRandom_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(5)}
	a, err := builder.Build(opts, builder.SafeRandom(5))
	require.NoError(t, err)
	b, err := builder.Build([]builder.BuilderOption{builder.WithSeed(5)}, builder.SafeRandom(5))
	require.NoError(t, err)
	assert.Equal(t, a.Nodes, b.Nodes)
}

func TestSafeRandom_Crowded(t *testing.T) {
	_, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithGrid(1, 1)},
		builder.SafeRandom(12),
	)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestByName(t *testing.T) {
	cases := []struct {
		pattern string
		n       int
		wantV   int
	}{
		{builder.PatternPolygon, 5, 5},
		{builder.PatternPolygonWithCenter, 6, 6},
		{builder.PatternStar, 3, 5},
		{builder.PatternGrid, 5, 6},
		{builder.PatternGrid, 9, 9},
		{builder.PatternDoubleRing, 7, 6},
		{builder.PatternDoubleRing, 4, 6},
		{builder.PatternHoneycomb, 3, 7},
	}
	for _, tc := range cases {
		ctor, err := builder.ByName(tc.pattern, tc.n)
		require.NoError(t, err, tc.pattern)
		l, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.NoError(t, err, tc.pattern)
		assert.Len(t, l.Nodes, tc.wantV, "%s(%d)", tc.pattern, tc.n)
	}

	_, err := builder.ByName("spiral", 5)
	assert.ErrorIs(t, err, builder.ErrUnknownPattern)
	assert.True(t, builder.KnownPattern(builder.PatternSafeRandom))
	assert.False(t, builder.KnownPattern("spiral"))
}

func TestLayout_Level(t *testing.T) {
	l, err := builder.Build(nil, builder.Polygon(4))
	require.NoError(t, err)
	lv := l.Level(9, 2)
	assert.Equal(t, 9, lv.ID)
	assert.Equal(t, 2, lv.Difficulty)
	assert.Equal(t, level.ExtentOf(l.Nodes), lv.Grid)

	lv.Nodes[0].X = 100
	assert.NotEqual(t, 100.0, l.Nodes[0].X, "Level copies the layout")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithGrid(0, 1) })
	assert.Panics(t, func() { builder.WithScale(-1) })
	assert.Panics(t, func() { builder.WithPlacement(geometry.Placement{MinDistance: -1}) })
}
