package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onestroke/euler"
	"github.com/katalvlaran/onestroke/level"
	"github.com/katalvlaran/onestroke/tier"
)

func TestToggleRepair(t *testing.T) {
	g := New(tier.Default(), WithSeed(1))
	// Path 1-2-3-4 with a pendant 5 on node 2: odd nodes 1, 2, 4, 5.
	nodes := []level.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	edges := []level.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}, {From: 2, To: 5}}
	require.Len(t, euler.OddDegreeNodes(nodes, edges), 4)

	out, ok := g.toggleRepair(g.cfg.rng, nodes, edges)
	assert.True(t, ok)
	assert.LessOrEqual(t, len(euler.OddDegreeNodes(nodes, out)), 2)
	assert.Len(t, edges, 4, "input slice untouched")
}

func TestPad(t *testing.T) {
	g := New(tier.Default(), WithSeed(1))
	nodes := []level.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	out := pad(g.cfg.rng, nodes, nil, 4)
	assert.Len(t, out, 4)
	for _, e := range out {
		assert.NotEqual(t, e.From, e.To)
	}

	full := pad(g.cfg.rng, nodes, nil, 99)
	assert.Len(t, full, 6, "capped at the complete graph")
}

func TestSpanningTree(t *testing.T) {
	nodes := []level.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	pool := []level.Edge{{From: 3, To: 4}, {From: 2, To: 3}, {From: 1, To: 2}, {From: 1, To: 4}}

	tree, ok := spanningTree(nodes, pool)
	require.True(t, ok)
	assert.Equal(t, []level.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}, tree)
	assert.True(t, euler.IsConnected(nodes, tree))

	_, ok = spanningTree(nodes, []level.Edge{{From: 1, To: 2}, {From: 3, To: 4}})
	assert.False(t, ok)
}
