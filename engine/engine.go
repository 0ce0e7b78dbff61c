package engine

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/onestroke/euler"
	"github.com/katalvlaran/onestroke/graph"
	"github.com/katalvlaran/onestroke/level"
)

// Engine is one play session over one level.
type Engine struct {
	lvl     level.Level
	g       *graph.Graph
	total   int
	path    []int
	visited map[level.EdgeKey]struct{}
	status  Status
}

// New starts a session on l. The edge target is len(l.Edges); the level is
// expected to be pre-validated, but malformed input only degrades the
// session (it reports Fail or no hint) and never panics.
//
// Complexity: O(V + E).
func New(l level.Level) *Engine {
	e := &Engine{
		lvl:   l.Clone(),
		g:     graph.New(l),
		total: len(l.Edges),
	}
	e.Reset()
	return e
}

// Load looks id up in cat and starts a session on it.
// Unknown IDs wrap level.ErrLevelNotFound.
func Load(cat level.Catalog, id int) (*Engine, error) {
	l, err := cat.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("engine: Load: %w", err)
	}
	return New(l), nil
}

// Reset discards the walk and returns to the initial Playing state.
func (e *Engine) Reset() {
	e.path = e.path[:0]
	e.visited = make(map[level.EdgeKey]struct{}, e.total)
	e.status = Playing
}

// Level returns a copy of the level being played.
func (e *Engine) Level() level.Level { return e.lvl.Clone() }

// Status returns the current outcome tag.
func (e *Engine) Status() Status { return e.status }

// Path returns a copy of the visited node sequence.
func (e *Engine) Path() []int { return append([]int(nil), e.path...) }

// Tip returns the last node of the path, or (0, false) before a start.
func (e *Engine) Tip() (int, bool) {
	if len(e.path) == 0 {
		return 0, false
	}
	return e.path[len(e.path)-1], true
}

// CanMove reports whether MoveTo(target) would apply.
// With an empty path any existing node is a legal start; afterwards target
// must be adjacent to the tip through an unused edge.
func (e *Engine) CanMove(target int) bool {
	_, ok := e.arcTo(target)
	return ok
}

// arcTo returns the arc the move to target would consume. For a start move
// the zero Arc is returned.
func (e *Engine) arcTo(target int) (graph.Arc, bool) {
	tip, started := e.Tip()
	if !started {
		return graph.Arc{}, e.g.Has(target)
	}
	a, ok := e.g.Arc(tip, target)
	if !ok {
		return graph.Arc{}, false
	}
	if _, used := e.visited[a.Key]; used {
		return graph.Arc{}, false
	}
	return a, true
}

// MoveTo extends the walk to target and reports whether it applied.
//
// Steps:
//  1. Reject illegal targets (no state change).
//  2. Empty path: target becomes the start.
//  3. Otherwise append target and mark the connecting edge.
//  4. Re-evaluate status: Success if the target is met, Fail if the new tip
//     is a dead end, else Playing.
func (e *Engine) MoveTo(target int) bool {
	// 1. Legality
	a, ok := e.arcTo(target)
	if !ok {
		return false
	}

	// 2. Start
	if len(e.path) == 0 {
		e.path = append(e.path, target)
		return true
	}

	// 3. Step
	e.path = append(e.path, target)
	e.visited[a.Key] = struct{}{}

	// 4. Status
	switch {
	case e.completed():
		e.status = Success
	case e.deadEnd():
		e.status = Fail
	default:
		e.status = Playing
	}
	return true
}

// Undo removes the last step and reports whether it applied. The start node
// cannot be undone (paths of length ≤ 1 are left as is). A successful undo
// always returns the session to Playing.
func (e *Engine) Undo() bool {
	if len(e.path) <= 1 {
		return false
	}
	last := e.path[len(e.path)-1]
	e.path = e.path[:len(e.path)-1]
	delete(e.visited, level.KeyOf(e.path[len(e.path)-1], last))
	e.status = Playing
	return true
}

// AvailableEdges returns the neighbours of node reachable over unused edges,
// in edge declaration order. Unknown nodes yield an empty slice.
func (e *Engine) AvailableEdges(node int) []int {
	out := []int{}
	for _, a := range e.g.Arcs(node) {
		if _, used := e.visited[a.Key]; !used {
			out = append(out, a.Neighbor)
		}
	}
	return out
}

// completed reports whether the edge target is met.
func (e *Engine) completed() bool { return len(e.visited) == e.total }

// deadEnd reports whether the tip has no unused edge while the target is
// unmet. Before a start there is no dead end.
func (e *Engine) deadEnd() bool {
	tip, ok := e.Tip()
	if !ok || e.completed() {
		return false
	}
	return len(e.AvailableEdges(tip)) == 0
}

// Snapshot is the read-only projection of a session handed to the UI.
type Snapshot struct {
	LevelID      int      `json:"levelId"`
	Path         []int    `json:"currentPath"`
	VisitedEdges []string `json:"visitedEdges"`
	VisitedNodes []int    `json:"visitedNodes"`
	StartNode    int      `json:"startNode,omitempty"`
	HasStart     bool     `json:"hasStart"`
	TotalEdges   int      `json:"totalEdges"`
	Status       Status   `json:"status"`
	Completed    bool     `json:"isCompleted"`
	DeadEnd      bool     `json:"isDeadEnd"`
}

// State returns a snapshot of the session. Slices are fresh copies; edge
// keys are rendered "lo-hi" and sorted, visited nodes are the sorted
// distinct path nodes.
func (e *Engine) State() Snapshot {
	keys := make([]level.EdgeKey, 0, len(e.visited))
	for k := range e.visited {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lo != keys[j].Lo {
			return keys[i].Lo < keys[j].Lo
		}
		return keys[i].Hi < keys[j].Hi
	})
	edgeNames := make([]string, len(keys))
	for i, k := range keys {
		edgeNames[i] = k.String()
	}

	seen := make(map[int]struct{}, len(e.path))
	nodes := make([]int, 0, len(e.path))
	for _, id := range e.path {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			nodes = append(nodes, id)
		}
	}
	sort.Ints(nodes)

	s := Snapshot{
		LevelID:      e.lvl.ID,
		Path:         e.Path(),
		VisitedEdges: edgeNames,
		VisitedNodes: nodes,
		TotalEdges:   e.total,
		Status:       e.status,
		Completed:    e.completed(),
		DeadEnd:      e.deadEnd(),
	}
	if len(e.path) > 0 {
		s.StartNode, s.HasStart = e.path[0], true
	}
	return s
}

// search prepares a backtracking search over the remaining edges.
func (e *Engine) search() *euler.Search {
	return euler.NewSearch(e.g, e.visited)
}
