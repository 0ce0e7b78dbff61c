package euler

import (
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/level"
)

// Walk is a node sequence in which consecutive pairs are edges.
type Walk []int

// Start returns the first node of w, or (0, false) for an empty walk.
func (w Walk) Start() (int, bool) {
	if len(w) == 0 {
		return 0, false
	}
	return w[0], true
}

// End returns the last node of w, or (0, false) for an empty walk.
func (w Walk) End() (int, bool) {
	if len(w) == 0 {
		return 0, false
	}
	return w[len(w)-1], true
}

// Keys returns the canonical keys of the edges w traverses, in order.
func (w Walk) Keys() []level.EdgeKey {
	if len(w) < 2 {
		return nil
	}
	keys := make([]level.EdgeKey, len(w)-1)
	for i := 1; i < len(w); i++ {
		keys[i-1] = level.KeyOf(w[i-1], w[i])
	}
	return keys
}

// Search is one exhaustive depth-first completion attempt over a graph.
// It owns a private copy of the visited-edge set and restores it on every
// exit path, so it can be reused for several Complete calls.
//
// Search is not safe for concurrent use.
type Search struct {
	g       *graph.Graph
	visited map[level.EdgeKey]struct{}
	target  int
	cfg     searchConfig

	// Steps counts edge traversals tried by the last Complete call.
	Steps int

	// Exhausted is set when the last Complete call hit the step limit.
	Exhausted bool
}

// NewSearch prepares a search over g that treats the keys in visited as
// already consumed. The target is every accepted edge of g; visited is
// copied, never retained.
func NewSearch(g *graph.Graph, visited map[level.EdgeKey]struct{}, opts ...Option) *Search {
	cfg := defaultSearchConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	own := make(map[level.EdgeKey]struct{}, g.EdgeCount())
	for k := range visited {
		if g.HasKey(k) {
			own[k] = struct{}{}
		}
	}

	return &Search{g: g, visited: own, target: g.EdgeCount(), cfg: cfg}
}

// Complete searches for a continuation from tip that consumes every
// remaining edge. On success it returns the walk starting at tip (so the
// node after tip is walk[1]). Unknown tips yield (nil, false).
//
// Complexity: O(E!) worst case, O(E) on trail-friendly layouts.
func (s *Search) Complete(tip int) (Walk, bool) {
	s.Steps, s.Exhausted = 0, false
	if !s.g.Has(tip) {
		return nil, false
	}

	path := make(Walk, 1, s.target-len(s.visited)+1)
	path[0] = tip
	if s.dfs(tip, &path) {
		return path, true
	}
	return nil, false
}

// dfs marks an unvisited arc, recurses, and unmarks on the way back out,
// success included.
func (s *Search) dfs(at int, path *Walk) bool {
	// 1. Goal
	if len(s.visited) == s.target {
		return true
	}

	// 2. Try every unvisited arc in declaration order.
	for _, a := range s.g.Arcs(at) {
		if _, used := s.visited[a.Key]; used {
			continue
		}
		if s.cfg.stepLimit > 0 && s.Steps >= s.cfg.stepLimit {
			s.Exhausted = true
			return false
		}
		s.Steps++

		s.visited[a.Key] = struct{}{}
		*path = append(*path, a.Neighbor)
		ok := s.dfs(a.Neighbor, path)
		delete(s.visited, a.Key)
		if ok {
			return true
		}
		*path = (*path)[:len(*path)-1]
		if s.Exhausted {
			return false
		}
	}

	// 3. Dead end
	return false
}

// FindCompleteWalk runs an exhaustive backtracking search from start over the
// level described by nodes and edges and returns the full node sequence of a
// trail using every edge exactly once.
//
// A start that is not a node yields (nil, false). With no edges the walk is
// just [start].
func FindCompleteWalk(nodes []level.Node, edges []level.Edge, start int, opts ...Option) ([]int, bool) {
	s := NewSearch(graph.New(level.Level{Nodes: nodes, Edges: edges}), nil, opts...)
	w, ok := s.Complete(start)
	return w, ok
}

// Solve returns the first complete walk found from ValidStarts, trying them
// in order. It is the constructive solvability check used by acceptance
// gates.
func Solve(nodes []level.Node, edges []level.Edge, opts ...Option) (Walk, bool) {
	g := graph.New(level.Level{Nodes: nodes, Edges: edges})
	s := NewSearch(g, nil, opts...)
	for _, start := range ValidStarts(nodes, edges) {
		if w, ok := s.Complete(start); ok {
			return w, true
		}
	}
	return nil, false
}
