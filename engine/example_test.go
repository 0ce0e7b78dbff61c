package engine_test

import (
	"fmt"

	"github.com/katalvlaran/onestroke/engine"
	"github.com/katalvlaran/onestroke/level"
)

// ExampleEngine plays the triangle level to completion, asking for a hint
// along the way.
func ExampleEngine() {
	l := level.Level{
		ID:    1,
		Nodes: []level.Node{{ID: 1}, {ID: 2}, {ID: 3}},
		Edges: []level.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}},
	}
	e := engine.New(l)

	start, _ := e.Hint()
	e.MoveTo(start)
	for e.Status() == engine.Playing {
		next, ok := e.Hint()
		if !ok {
			break
		}
		e.MoveTo(next)
	}

	s := e.State()
	fmt.Println(s.Status, s.Path, s.VisitedEdges)
	// Output:
	// success [1 2 3 1] [1-2 1-3 2-3]
}
