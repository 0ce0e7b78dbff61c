// Package onestroke is the core of a single-stroke drawing puzzle: trace
// every edge of a small graph exactly once without lifting the pen.
//
// The module is organized into focused subpackages:
//
//	level/     Node, Edge, Level, Catalog, degrees and fingerprints
//	graph/     adjacency lists keyed by canonical edge keys
//	euler/     Euler condition checks and the complete-walk search
//	geometry/  edge-through-node overlap guard and safe placement rules
//	engine/    a play session: MoveTo, Undo, Hint, Status
//	builder/   pattern templates (polygon, star, grid, rings, honeycomb)
//	tier/      difficulty tiers decoded from HCL
//	generator/ template and safe-random level synthesis with a registry
//	validate/  the full acceptance check for catalog entries
//	repair/    patch or regenerate invalid catalog entries
//	store/     JSON catalog files, badger storage and a text notation
//
// The onestroke command in cmd/onestroke drives check, fix, generate,
// solve, import and export over a catalog file.
//
// Quick ASCII example (the "house"):
//
//	  5
//	 / \
//	1───2
//	│ ╳ │
//	3───4
//
// Nodes 3 and 4 have odd degree, so every complete trail starts at one of
// them and ends at the other.
package onestroke
