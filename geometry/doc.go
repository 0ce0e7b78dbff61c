// Package geometry detects layouts in which a straight edge visually passes
// through a node it does not connect, and computes the pool of edges that can
// be added to a layout without creating such an overlap.
//
// A node P lies on edge AB when
//
//	|(B-A) × (P-A)| ≤ ε   and   P is inside AB's bounding box widened by ε.
//
// ε defaults to DefaultEpsilon. The same collinearity test, with looser
// thresholds, drives Placement, the acceptance rule of the safe-random node
// layout.
//
// Coordinates are logical grid units taken from level.Node and handled as
// d2 geo.Point values.
package geometry
