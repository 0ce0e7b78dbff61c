// Package graph builds the immutable adjacency view of a level.Level used by
// the traversal engine and the Euler search.
//
// For every declared node the graph keeps an ordered list of arcs
// (neighbour, canonical edge key) in edge declaration order, which is the
// order every depth-first search in this module explores candidates in.
//
// Construction is tolerant: a second edge with an already-present canonical
// key is ignored, and so are self-loops and edges naming unknown nodes. A
// malformed level therefore never crashes graph construction; it just yields
// fewer arcs than declared edges (see EdgeCount).
//
// Complexity:
//
//   - New:       O(V + E) time and space.
//   - Arcs, Degree, Has: O(1).
//   - Arc(from, to): O(deg(from)).
package graph
