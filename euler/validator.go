package euler

import (
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/onestroke/level"
)

// OddDegreeNodes returns the IDs of nodes with an odd number of incident
// edges, in node declaration order.
// Complexity: O(V + E).
func OddDegreeNodes(nodes []level.Node, edges []level.Edge) []int {
	return level.Degrees(nodes, edges).Odd(nodes)
}

// IsConnected reports whether every node is reachable from the first declared
// node. An empty node list is trivially connected; isolated nodes make the
// graph disconnected. Self-loops and edges naming unknown nodes are ignored.
//
// Complexity: O(V + E).
func IsConnected(nodes []level.Node, edges []level.Edge) bool {
	if len(nodes) == 0 {
		return true
	}

	// 1. Mirror the level into a gonum undirected graph.
	g := simple.NewUndirectedGraph()
	for _, n := range nodes {
		if g.Node(int64(n.ID)) == nil {
			g.AddNode(simple.Node(n.ID))
		}
	}
	for _, e := range edges {
		if e.From == e.To || g.Node(int64(e.From)) == nil || g.Node(int64(e.To)) == nil {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	// 2. Breadth-first walk from the first declared node, counting visits.
	visited := 0
	bf := traverse.BreadthFirst{
		Visit: func(gonum.Node) { visited++ },
	}
	bf.Walk(g, simple.Node(nodes[0].ID), nil)

	return visited == g.Nodes().Len()
}

// HasEulerianTrail reports whether a trail using every edge exactly once
// exists: the graph is connected and has exactly 0 or 2 odd-degree nodes.
func HasEulerianTrail(nodes []level.Node, edges []level.Edge) bool {
	if !IsConnected(nodes, edges) {
		return false
	}
	odd := len(OddDegreeNodes(nodes, edges))
	return odd == 0 || odd == 2
}

// ValidStarts returns the nodes a complete trail may start from: the two odd
// nodes when exactly two exist, otherwise every node with positive degree.
// A level without edges yields every node.
func ValidStarts(nodes []level.Node, edges []level.Edge) []int {
	deg := level.Degrees(nodes, edges)
	if odd := deg.Odd(nodes); len(odd) == 2 {
		return odd
	}

	starts := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if deg[n.ID] > 0 {
			starts = append(starts, n.ID)
		}
	}
	if len(starts) == 0 {
		for _, n := range nodes {
			starts = append(starts, n.ID)
		}
	}
	return starts
}
