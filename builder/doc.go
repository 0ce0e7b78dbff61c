// Package builder synthesizes the node layouts and base edge sets that the
// level generator starts from.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(bopts, cons...):  resolves options once and runs constructors in
//     order against a fresh Layout.
//     – Constructor:            func(*Layout, builderConfig) error.
//   - Configuration (functional options, panic on meaningless values):
//     – WithSeed / WithRand:    RNG for stochastic constructors.
//     – WithGrid(w, h):         nominal extent the layout is centred in.
//     – WithScale(s):           radius multiplier for ring-based shapes.
//     – WithPlacement(p):       thresholds for SafeRandom.
//   - Pattern templates:
//     – Polygon(n):             regular n-gon cycle, first vertex at the top.
//     – PolygonWithCenter(n):   polygon plus a hub wired to every rim node.
//     – Star(n):                polygon plus chords i → i+⌊n/2⌋.
//     – Grid(rows, cols):       lattice with right/down adjacency.
//     – DoubleRing(n):          outer and half-size inner ring joined by spokes.
//     – Honeycomb():            fixed hexagon plus hub (7 nodes, 12 edges).
//     – SafeRandom(n):          jittered placement that avoids collinear
//     triples and crowded pairs; no edges.
//   - Pattern names: ByName(pattern, nodeCount) maps the names used in tier
//     files to sized constructors.
//
// Guarantees:
//
//   - Node IDs are 1..n in emission order; composed constructors continue the
//     numbering.
//   - Edges are never self-loops or duplicates (addEdge drops both).
//   - Coordinates are rounded to two decimals.
//   - Deterministic for equal options, seed and constructor order.
//
// Errors:
//
//	ErrTooFewVertices  - size parameter below the constructor minimum.
//	ErrNeedRandSource  - SafeRandom without WithSeed/WithRand.
//	ErrConstructFailed - nil constructor, or SafeRandom could not place n nodes.
//	ErrUnknownPattern  - ByName with an unregistered pattern name.
package builder
