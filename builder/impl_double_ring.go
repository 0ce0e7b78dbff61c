// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_double_ring.go — DoubleRing(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Outer ring IDs first..first+n-1 at scale, inner ring first+n.. at
//     half scale; outer cycle, inner cycle, then spokes i ↔ n+i.
//   • 2n nodes, 3n edges, every node of degree 3.

package builder

import "fmt"

const (
	methodDoubleRing   = "DoubleRing"
	minDoubleRingNodes = 3
	innerRingScale     = 0.5
)

// DoubleRing returns a Constructor for two concentric n-rings with spokes.
func DoubleRing(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minDoubleRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDoubleRing, n, minDoubleRingNodes, ErrTooFewVertices)
		}
		outer := ring(l, cfg, n, cfg.scale)
		inner := ring(l, cfg, n, cfg.scale*innerRingScale)
		cycle(l, outer, n)
		cycle(l, inner, n)
		for i := 0; i < n; i++ {
			l.addEdge(outer+i, inner+i)
		}
		return nil
	}
}
