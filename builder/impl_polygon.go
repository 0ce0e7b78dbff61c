// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_polygon.go — Polygon and PolygonWithCenter constructors.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Rim radius r = 0.8 · min(cx, cy) · scale, first vertex at the top,
//     counter-clockwise in screen terms (angle i/n·2π − π/2).
//   • Rim edges i → i+1 (mod n) in ascending i.
//   • PolygonWithCenter appends the hub after the rim, then spokes hub → i.
//
// Complexity: O(n) nodes + O(n) edges (addEdge duplicate scan makes it
// O(n·E) in the worst case, negligible at puzzle sizes).

package builder

import (
	"fmt"
	"math"
)

const (
	methodPolygon           = "Polygon"
	methodPolygonWithCenter = "PolygonWithCenter"
	minPolygonNodes         = 3
	rimRadiusFactor         = 0.8
)

// ring places n nodes on a circle around the centre and returns the first ID.
func ring(l *Layout, cfg builderConfig, n int, scale float64) int {
	cx, cy := cfg.center()
	r := math.Min(cx, cy) * rimRadiusFactor * scale

	first := l.nextID()
	for i := 0; i < n; i++ {
		angle := float64(i)/float64(n)*2*math.Pi - math.Pi/2
		l.addNode(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return first
}

// cycle closes the ring starting at first.
func cycle(l *Layout, first, n int) {
	for i := 0; i < n; i++ {
		l.addEdge(first+i, first+(i+1)%n)
	}
}

// Polygon returns a Constructor for a regular n-gon cycle.
func Polygon(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minPolygonNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygon, n, minPolygonNodes, ErrTooFewVertices)
		}
		first := ring(l, cfg, n, cfg.scale)
		cycle(l, first, n)
		return nil
	}
}

// PolygonWithCenter returns a Constructor for an n-gon plus a hub node at
// the centre connected to every rim node (n+1 nodes, 2n edges).
func PolygonWithCenter(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		if n < minPolygonNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPolygonWithCenter, n, minPolygonNodes, ErrTooFewVertices)
		}
		first := ring(l, cfg, n, cfg.scale)
		cycle(l, first, n)

		cx, cy := cfg.center()
		hub := l.addNode(cx, cy)
		for i := 0; i < n; i++ {
			l.addEdge(hub, first+i)
		}
		return nil
	}
}
