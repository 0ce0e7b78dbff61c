package euler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onestroke/euler"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/level"
)

func nodes(ids ...int) []level.Node {
	out := make([]level.Node, len(ids))
	for i, id := range ids {
		out[i] = level.Node{ID: id}
	}
	return out
}

func edges(pairs ...[2]int) []level.Edge {
	out := make([]level.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = level.Edge{From: p[0], To: p[1]}
	}
	return out
}

// assertTrail checks that w uses every edge exactly once.
func assertTrail(t *testing.T, w []int, es []level.Edge) {
	t.Helper()
	require.Len(t, w, len(es)+1)
	want := make(map[level.EdgeKey]int, len(es))
	for _, e := range es {
		want[e.Key()]++
	}
	for i := 1; i < len(w); i++ {
		k := level.KeyOf(w[i-1], w[i])
		require.Equal(t, 1, want[k], "edge %s missing or reused", k)
		want[k]--
	}
}

var (
	triNodes = nodes(1, 2, 3)
	triEdges = edges([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1})

	pathNodes = nodes(1, 2, 3, 4)
	pathEdges = edges([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})
)

func TestOddDegreeNodes(t *testing.T) {
	assert.Empty(t, euler.OddDegreeNodes(triNodes, triEdges))
	assert.Equal(t, []int{1, 4}, euler.OddDegreeNodes(pathNodes, pathEdges))
}

func TestIsConnected(t *testing.T) {
	assert.True(t, euler.IsConnected(nil, nil))
	assert.True(t, euler.IsConnected(nodes(5), nil))
	assert.True(t, euler.IsConnected(pathNodes, pathEdges))
	assert.False(t, euler.IsConnected(nodes(1, 2, 3), edges([2]int{1, 2})))
	// self-loops and dangling edges do not connect anything
	assert.False(t, euler.IsConnected(nodes(1, 2), edges([2]int{1, 1}, [2]int{2, 9})))
}

func TestHasEulerianTrail(t *testing.T) {
	assert.True(t, euler.HasEulerianTrail(triNodes, triEdges))
	assert.True(t, euler.HasEulerianTrail(pathNodes, pathEdges))

	// star K1,3: four odd nodes
	star := edges([2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4})
	assert.False(t, euler.HasEulerianTrail(pathNodes, star))

	// two disjoint triangles: all even but disconnected
	two := append(append([]level.Edge{}, triEdges...), edges([2]int{4, 5}, [2]int{5, 6}, [2]int{6, 4})...)
	assert.False(t, euler.HasEulerianTrail(nodes(1, 2, 3, 4, 5, 6), two))
}

func TestValidStarts(t *testing.T) {
	assert.Equal(t, []int{1, 4}, euler.ValidStarts(pathNodes, pathEdges))
	assert.Equal(t, []int{1, 2, 3}, euler.ValidStarts(triNodes, triEdges))
	assert.Equal(t, []int{7, 8}, euler.ValidStarts(nodes(7, 8), nil))
}

func TestFindCompleteWalk(t *testing.T) {
	w, ok := euler.FindCompleteWalk(triNodes, triEdges, 1)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 1}, w)

	w, ok = euler.FindCompleteWalk(pathNodes, pathEdges, 1)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, w)

	_, ok = euler.FindCompleteWalk(pathNodes, pathEdges, 2)
	assert.False(t, ok, "an even interior node cannot start an open trail")

	_, ok = euler.FindCompleteWalk(pathNodes, pathEdges, 99)
	assert.False(t, ok)

	w, ok = euler.FindCompleteWalk(nodes(3), nil, 3)
	assert.True(t, ok)
	assert.Equal(t, []int{3}, w)
}

func TestFindCompleteWalk_NeedsBacktracking(t *testing.T) {
	// Bowtie: two triangles sharing node 3. Greedy order from 3 must not
	// strand the second triangle.
	ns := nodes(1, 2, 3, 4, 5)
	es := edges(
		[2]int{3, 1}, [2]int{1, 2}, [2]int{2, 3},
		[2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3},
	)
	w, ok := euler.FindCompleteWalk(ns, es, 1)
	require.True(t, ok)
	assertTrail(t, w, es)

	// House with a roof: odd nodes 1 and 2 force a specific start.
	ns = nodes(1, 2, 3, 4, 5)
	es = edges(
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 1},
		[2]int{1, 3}, [2]int{3, 5}, [2]int{5, 4},
	)
	w, ok = euler.Solve(ns, es)
	require.True(t, ok)
	assertTrail(t, w, es)
}

func TestSolve_Unsolvable(t *testing.T) {
	star := edges([2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4})
	_, ok := euler.Solve(pathNodes, star)
	assert.False(t, ok)
}

func TestSearch_FromPartialState(t *testing.T) {
	g := graph.New(level.Level{Nodes: triNodes, Edges: triEdges})
	visited := map[level.EdgeKey]struct{}{level.KeyOf(1, 2): {}}
	s := euler.NewSearch(g, visited)

	w, ok := s.Complete(2)
	require.True(t, ok)
	assert.Equal(t, euler.Walk{2, 3, 1}, w)
	// caller's set untouched
	assert.Len(t, visited, 1)

	// repeatable: internal marks were restored
	w2, ok := s.Complete(2)
	assert.True(t, ok)
	assert.Equal(t, w, w2)
}

func TestSearch_StepLimit(t *testing.T) {
	star := edges([2]int{1, 2}, [2]int{1, 3}, [2]int{1, 4})
	g := graph.New(level.Level{Nodes: pathNodes, Edges: star})

	s := euler.NewSearch(g, nil, euler.WithStepLimit(1))
	_, ok := s.Complete(1)
	assert.False(t, ok)
	assert.True(t, s.Exhausted)

	s = euler.NewSearch(g, nil)
	_, ok = s.Complete(1)
	assert.False(t, ok)
	assert.False(t, s.Exhausted, "unlimited search ends by exhaustion of candidates")
	assert.Greater(t, s.Steps, 0)
}

func TestWithStepLimit_Panics(t *testing.T) {
	assert.Panics(t, func() { euler.WithStepLimit(0) })
}

func TestWalk_Helpers(t *testing.T) {
	w := euler.Walk{1, 2, 3}
	s, ok := w.Start()
	assert.True(t, ok)
	assert.Equal(t, 1, s)
	e, _ := w.End()
	assert.Equal(t, 3, e)
	assert.Equal(t, []level.EdgeKey{level.KeyOf(1, 2), level.KeyOf(2, 3)}, w.Keys())

	_, ok = euler.Walk(nil).Start()
	assert.False(t, ok)
}
