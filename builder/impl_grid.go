// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node (r, c) gets ID first + r·cols + c (row-major) at
//     (dx·(c+1), dy·(r+1)) with dx = W/(cols+1), dy = H/(rows+1).
//   • For each node in row-major order: right edge, then down edge.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		dx := cfg.width / float64(cols+1)
		dy := cfg.height / float64(rows+1)

		first := l.nextID()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				l.addNode(dx*float64(c+1), dy*float64(r+1))
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := first + r*cols + c
				if c < cols-1 {
					l.addEdge(id, id+1)
				}
				if r < rows-1 {
					l.addEdge(id, id+cols)
				}
			}
		}
		return nil
	}
}
