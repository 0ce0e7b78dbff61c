// Package euler implements the Eulerian-trail checks shared by the traversal
// engine, the level generator and the repair pipeline.
//
// Two kinds of answer are offered:
//
//   - Existence (HasEulerianTrail): the graph is connected and has 0 or 2
//     odd-degree nodes. Cheap, O(V + E).
//   - Construction (FindCompleteWalk, Solve, Search): an exhaustive
//     mark-recurse-unmark depth-first search that returns the actual node
//     sequence. Worst case is exponential in the edge count, which is fine
//     for puzzle-sized levels (a few dozen edges at most).
//
// The constructive search explores candidates in edge declaration order and
// never touches state it does not own: it works on a private copy of the
// visited-edge set and undoes every speculative mark on the way out, so the
// same inputs always yield the same walk.
//
// Options:
//
//   - WithStepLimit(n)  bounds the number of edges the search may try.
//     When the bound is hit the search reports no walk and sets
//     Search.Exhausted, letting callers distinguish "unsolvable" from
//     "gave up".
//
// Connectivity is computed with gonum's breadth-first traversal over a
// simple.UndirectedGraph.
package euler
