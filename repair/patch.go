package repair

import (
	"github.com/katalvlaran/onestroke/euler"
	"github.com/katalvlaran/onestroke/geometry"
	"github.com/katalvlaran/onestroke/level"
)

// FixOverlap patches l in place of regenerating it: every edge that passes
// through a node is dropped, safe edges are added until the graph is
// connected again, and odd nodes are paired with safe edges for at most
// limit rounds. The node layout is kept. The returned level is a copy; ok
// reports whether the result is connected, Euler-feasible and overlap-free.
//
// Complexity: O(limit·V³).
func FixOverlap(l level.Level, g geometry.Guard, limit int) (level.Level, bool) {
	out := l.Clone()
	overlaps := g.OverlappingEdges(out)
	if len(overlaps) == 0 {
		return out, false
	}

	// 1. Drop offending edges
	drop := make(map[int]struct{}, len(overlaps))
	for _, o := range overlaps {
		drop[o.EdgeIndex] = struct{}{}
	}
	kept := make([]level.Edge, 0, len(out.Edges)-len(drop))
	for i, e := range out.Edges {
		if _, ok := drop[i]; !ok {
			kept = append(kept, e)
		}
	}
	out.Edges = kept

	// 2. Reconnect
	if !euler.IsConnected(out.Nodes, out.Edges) {
		for _, e := range g.SafeCandidateEdges(out.Nodes, out.Edges) {
			out.Edges = append(out.Edges, e)
			if euler.IsConnected(out.Nodes, out.Edges) {
				break
			}
		}
	}

	// 3. Pair odd nodes
	for i := 0; i < limit; i++ {
		odd := euler.OddDegreeNodes(out.Nodes, out.Edges)
		if len(odd) <= 2 {
			break
		}
		if e, ok := safePair(g, out, odd); ok {
			out.Edges = append(out.Edges, e)
			continue
		}
		avail := g.SafeCandidateEdges(out.Nodes, out.Edges)
		if len(avail) == 0 {
			break
		}
		out.Edges = append(out.Edges, avail[0])
	}

	ok := euler.HasEulerianTrail(out.Nodes, out.Edges) && !g.HasOverlap(out)
	return out, ok
}

// safePair returns the first absent, non-overlapping edge joining two odd
// nodes.
func safePair(g geometry.Guard, l level.Level, odd []int) (level.Edge, bool) {
	for i := 0; i < len(odd); i++ {
		for j := i + 1; j < len(odd); j++ {
			e := level.Edge{From: odd[i], To: odd[j]}
			if !l.HasEdge(e.From, e.To) && !g.WouldOverlapAnyNode(e, l.Nodes) {
				return e, true
			}
		}
	}
	return level.Edge{}, false
}
