// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// api.go — Layout, Constructor and the Build orchestrator.
//
// Design contract:
//   • One orchestrator: Build(bopts, cons...). Creates the Layout, resolves
//     cfg, runs cons in order.
//   • Constructors append nodes with consecutive IDs and append edges through
//     addEdge, which drops self-loops and duplicates.
//   • Determinism: same options/seed and constructor order ⇒ identical layout.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/onestroke/level"
)

// Layout is the product of the builder: positioned nodes plus base edges.
type Layout struct {
	Nodes []level.Node
	Edges []level.Edge
}

// Constructor applies one template to the layout using the resolved config.
// Constructors validate parameters early, return sentinel-wrapped errors and
// never panic.
type Constructor func(l *Layout, cfg builderConfig) error

// Build resolves bopts and applies every constructor to a fresh Layout.
// The first error is wrapped with "Build: %w" and returned; no partial layout
// is returned.
//
// Complexity: O(len(bopts)) plus the sum of constructor costs.
func Build(bopts []BuilderOption, cons ...Constructor) (*Layout, error) {
	cfg := newBuilderConfig(bopts...)
	l := &Layout{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(l, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return l, nil
}

// Level wraps the layout into a level with the given ID and difficulty and a
// grid extent derived from the coordinates (level.ExtentOf).
func (l *Layout) Level(id, difficulty int) level.Level {
	return level.Level{
		ID:         id,
		Difficulty: difficulty,
		Grid:       level.ExtentOf(l.Nodes),
		Nodes:      append([]level.Node(nil), l.Nodes...),
		Edges:      append([]level.Edge(nil), l.Edges...),
	}
}

// nextID is the ID the next added node will receive.
func (l *Layout) nextID() int { return len(l.Nodes) + 1 }

// addNode appends a node at (x, y), rounded to two decimals, and returns its ID.
func (l *Layout) addNode(x, y float64) int {
	id := l.nextID()
	l.Nodes = append(l.Nodes, level.Node{ID: id, X: round2(x), Y: round2(y)})
	return id
}

// addEdge appends {a, b} unless it is a self-loop or already present.
func (l *Layout) addEdge(a, b int) bool {
	if a == b || level.HasEdge(l.Edges, a, b) {
		return false
	}
	l.Edges = append(l.Edges, level.Edge{From: a, To: b})
	return true
}

// round2 rounds to two decimals, the precision of catalog coordinates.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
