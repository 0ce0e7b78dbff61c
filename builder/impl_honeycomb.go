// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_honeycomb.go — Honeycomb() constructor.
//
// Contract:
//   • Fixed shape: six rim nodes of a pointy-top hexagon (r = 0.4·min(cx, cy))
//     and a hub at the centre, appended last.
//   • Rim cycle first, then spokes rim → hub: 7 nodes, 12 edges.

package builder

const honeycombRadiusFactor = 0.4

// honeycombRim lists rim offsets in units of r, clockwise from the top.
var honeycombRim = [6][2]float64{
	{0, -1.5}, {1, -0.5}, {1, 0.5}, {0, 1.5}, {-1, 0.5}, {-1, -0.5},
}

// Honeycomb returns a Constructor for the fixed hexagon-plus-hub shape.
func Honeycomb() Constructor {
	return func(l *Layout, cfg builderConfig) error {
		cx, cy := cfg.center()
		r := min(cx, cy) * honeycombRadiusFactor

		first := l.nextID()
		for _, off := range honeycombRim {
			l.addNode(cx+off[0]*r, cy+off[1]*r)
		}
		hub := l.addNode(cx, cy)

		cycle(l, first, len(honeycombRim))
		for i := range honeycombRim {
			l.addEdge(first+i, hub)
		}
		return nil
	}
}
