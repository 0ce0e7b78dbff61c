package engine

// Hint suggests the next node to tap.
//
// Before a start it returns a node from which a complete trail exists,
// trying odd-degree nodes first and then even nodes of positive degree, both
// in declaration order; if none works it falls back to the first declared
// node. Only a level without nodes yields (0, false).
//
// After a start it returns the node right after the tip on the first
// complete continuation found, or (0, false) when no continuation consumes
// every remaining edge.
//
// Hint never mutates the session.
func (e *Engine) Hint() (int, bool) {
	tip, started := e.Tip()
	if !started {
		return e.hintStart()
	}
	if len(e.AvailableEdges(tip)) == 0 {
		return 0, false
	}

	walk, ok := e.search().Complete(tip)
	if !ok || len(walk) < 2 {
		return 0, false
	}
	return walk[1], true
}

// hintStart picks a start node for an empty path.
func (e *Engine) hintStart() (int, bool) {
	nodes := e.g.Nodes()
	if len(nodes) == 0 {
		return 0, false
	}

	// 1. Candidate order: odd first, then even with positive degree.
	var odd, even []int
	for _, id := range nodes {
		switch d := e.g.Degree(id); {
		case d%2 == 1:
			odd = append(odd, id)
		case d > 0:
			even = append(even, id)
		}
	}

	// 2. First candidate with a complete trail.
	s := e.search()
	for _, id := range append(odd, even...) {
		if _, ok := s.Complete(id); ok {
			return id, true
		}
	}

	// 3. Fallback
	return nodes[0], true
}

// CanFindSolution reports whether the session can still be completed: true
// when already completed, false at a dead end, otherwise whether the
// remaining edges can be finished from the tip (or, before a start, from
// some node).
func (e *Engine) CanFindSolution() bool {
	if len(e.path) > 0 && e.completed() {
		return true
	}
	if e.deadEnd() {
		return false
	}

	tip, started := e.Tip()
	s := e.search()
	if started {
		_, ok := s.Complete(tip)
		return ok
	}
	for _, id := range e.g.Nodes() {
		if _, ok := s.Complete(id); ok {
			return true
		}
	}
	return false
}
