// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_star.go — Star(n) constructor.
//
// Contract:
//   • n ≥ 5 (else ErrTooFewVertices); smaller stars collapse into the polygon.
//   • Polygon(n) first, then chords i → (i + ⌊n/2⌋) mod n in ascending i,
//     skipping chords already present.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 5
)

// Star returns a Constructor for a polygon with skip-⌊n/2⌋ chords.
func Star(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		first := ring(l, cfg, n, cfg.scale)
		cycle(l, first, n)

		step := n / 2
		for i := 0; i < n; i++ {
			l.addEdge(first+i, first+(i+step)%n)
		}
		return nil
	}
}
