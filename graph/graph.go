// File: graph.go
// Role: Graph construction and read-only adjacency queries.
// Determinism:
//   - Nodes() follows node declaration order.
//   - Arcs(id) follows edge declaration order.

package graph

import "github.com/katalvlaran/onestroke/level"

// Arc is one direction of an undirected edge as seen from its source node.
type Arc struct {
	Neighbor int           // node at the other end
	Key      level.EdgeKey // canonical identity shared by both directions
}

// Graph is the adjacency structure of a single level. It is never mutated
// after New returns and is safe for concurrent reads.
type Graph struct {
	order []int         // node IDs, declaration order
	arcs  map[int][]Arc // node ID → incident arcs, edge declaration order
	keys  map[level.EdgeKey]struct{}
}

// New builds the adjacency of l.
//
// Steps:
//  1. Register every node (duplicate IDs keep their first position).
//  2. Walk edges in order, skipping self-loops, unknown endpoints and keys
//     already seen; append an arc on both endpoints.
//
// Complexity: O(V + E).
func New(l level.Level) *Graph {
	g := &Graph{
		order: make([]int, 0, len(l.Nodes)),
		arcs:  make(map[int][]Arc, len(l.Nodes)),
		keys:  make(map[level.EdgeKey]struct{}, len(l.Edges)),
	}

	// 1. Nodes
	for _, n := range l.Nodes {
		if _, ok := g.arcs[n.ID]; ok {
			continue
		}
		g.order = append(g.order, n.ID)
		g.arcs[n.ID] = nil
	}

	// 2. Edges
	var k level.EdgeKey
	for _, e := range l.Edges {
		if e.From == e.To || !g.Has(e.From) || !g.Has(e.To) {
			continue
		}
		k = e.Key()
		if _, dup := g.keys[k]; dup {
			continue
		}
		g.keys[k] = struct{}{}
		g.arcs[e.From] = append(g.arcs[e.From], Arc{Neighbor: e.To, Key: k})
		g.arcs[e.To] = append(g.arcs[e.To], Arc{Neighbor: e.From, Key: k})
	}

	return g
}

// Has reports whether id is a node of g.
func (g *Graph) Has(id int) bool {
	_, ok := g.arcs[id]
	return ok
}

// Arcs returns the arcs leaving id, or nil for an unknown node.
// The slice is shared; callers must not modify it.
func (g *Graph) Arcs(id int) []Arc { return g.arcs[id] }

// Degree is the number of distinct edges incident to id (0 if unknown).
func (g *Graph) Degree(id int) int { return len(g.arcs[id]) }

// Neighbors returns the neighbour IDs of id in arc order.
func (g *Graph) Neighbors(id int) []int {
	arcs := g.arcs[id]
	out := make([]int, len(arcs))
	for i, a := range arcs {
		out[i] = a.Neighbor
	}
	return out
}

// Arc returns the arc from → to, if the two nodes are adjacent.
func (g *Graph) Arc(from, to int) (Arc, bool) {
	for _, a := range g.arcs[from] {
		if a.Neighbor == to {
			return a, true
		}
	}
	return Arc{}, false
}

// HasKey reports whether k is an accepted edge of g.
func (g *Graph) HasKey(k level.EdgeKey) bool {
	_, ok := g.keys[k]
	return ok
}

// Nodes returns node IDs in declaration order (a fresh slice).
func (g *Graph) Nodes() []int {
	return append([]int(nil), g.order...)
}

// EdgeCount is the number of distinct accepted edges.
func (g *Graph) EdgeCount() int { return len(g.keys) }

// Degrees returns the degree of every node, zero-degree nodes included.
func (g *Graph) Degrees() level.DegreeTable {
	deg := make(level.DegreeTable, len(g.order))
	for _, id := range g.order {
		deg[id] = len(g.arcs[id])
	}
	return deg
}
