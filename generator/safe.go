package generator

import (
	"math/rand"

	"github.com/katalvlaran/onestroke/builder"
	"github.com/katalvlaran/onestroke/euler"
	"github.com/katalvlaran/onestroke/internal/rng"
	"github.com/katalvlaran/onestroke/level"
	"github.com/katalvlaran/onestroke/tier"
)

// safeAttempt is one pass of the safe-random strategy.
//
// Steps:
//  1. Place n nodes with builder.SafeRandom on the tier's base grid.
//  2. Collect every non-overlapping pair; bail out if fewer than the
//     tier's minimum edge count exist.
//  3. Grow a spanning tree from the first node over the shuffled pairs.
//  4. Pad from the same pairs up to a target clamped to the pool size.
//  5. Repair odd degrees with safe edges only, then run the gate.
func (g *Generator) safeAttempt(r *rand.Rand, id, difficulty int, tr tier.Tier, reg *Registry) (level.Level, string, string) {
	const pattern = builder.PatternSafeRandom

	// 1. Placement
	n := tr.Nodes.Pick(r)
	layout, err := builder.Build([]builder.BuilderOption{
		builder.WithGrid(float64(tr.Grid.Width), float64(tr.Grid.Height)),
		builder.WithRand(r),
		builder.WithPlacement(g.cfg.placement),
	}, builder.SafeRandom(n))
	if err != nil {
		return level.Level{}, pattern, rejectBuild
	}
	nodes := layout.Nodes

	// 2. Candidate pool
	pool := g.cfg.guard.SafeCandidateEdges(nodes, nil)
	if len(pool) < tr.Edges.Min {
		return level.Level{}, pattern, rejectFewEdges
	}
	rng.Shuffle(r, pool)
	target := rng.IntBetween(r, min(tr.Edges.Min, len(pool)), min(tr.Edges.Max, len(pool)))

	// 3. Spanning tree
	edges, ok := spanningTree(nodes, pool)
	if !ok {
		return level.Level{}, pattern, rejectNoTree
	}

	// 4. Pad
	for _, e := range pool {
		if len(edges) >= target {
			break
		}
		if !level.HasEdge(edges, e.From, e.To) {
			edges = append(edges, e)
		}
	}

	// 5. Repair and gate
	edges = g.safeRepair(r, nodes, edges)
	lvl := level.Level{ID: id, Difficulty: difficulty, Grid: level.ExtentOf(nodes), Nodes: nodes, Edges: edges}
	return lvl, pattern, g.gate(lvl, reg)
}

// spanningTree repeatedly takes the first pool edge with exactly one
// endpoint inside the tree, starting from nodes[0].
func spanningTree(nodes []level.Node, pool []level.Edge) ([]level.Edge, bool) {
	if len(nodes) == 0 {
		return nil, true
	}
	in := map[int]bool{nodes[0].ID: true}
	edges := make([]level.Edge, 0, len(nodes)-1)
	for len(in) < len(nodes) {
		grown := false
		for _, e := range pool {
			if in[e.From] != in[e.To] {
				edges = append(edges, e)
				in[e.From], in[e.To] = true, true
				grown = true
				break
			}
		}
		if !grown {
			return nil, false
		}
	}
	return edges, true
}

// safeRepair pairs odd nodes with absent safe edges. When no odd pair can
// be joined safely it adds a random safe edge to shake the degrees, and
// stops when none is left.
func (g *Generator) safeRepair(r *rand.Rand, nodes []level.Node, edges []level.Edge) []level.Edge {
	guard := g.cfg.guard
	for i := 0; i < g.cfg.eulerFixLimit; i++ {
		odd := euler.OddDegreeNodes(nodes, edges)
		if len(odd) <= 2 {
			return edges
		}

		added := false
	pairs:
		for a := 0; a < len(odd); a++ {
			for b := a + 1; b < len(odd); b++ {
				e := level.Edge{From: odd[a], To: odd[b]}
				if !level.HasEdge(edges, e.From, e.To) && !guard.WouldOverlapAnyNode(e, nodes) {
					edges = append(edges, e)
					added = true
					break pairs
				}
			}
		}
		if added {
			continue
		}

		avail := guard.SafeCandidateEdges(nodes, edges)
		if len(avail) == 0 {
			return edges
		}
		edges = append(edges, avail[r.Intn(len(avail))])
	}
	return edges
}
