// Package level defines the plain data model shared by every other onestroke
// package: nodes, undirected edges, canonical edge keys, levels, catalogs,
// degree tables and structural fingerprints.
//
// A Level is a pure graph description. Coordinates are logical grid units and
// are only interpreted by the geometry package; all graph logic is
// coordinate-independent.
//
// Invariants enforced by Level.Validate (load-time, referential):
//   - level ID > 0, difficulty in [MinDifficulty, MaxDifficulty];
//   - grid extent strictly positive;
//   - node IDs positive and unique;
//   - every edge names two distinct existing nodes;
//   - no two edges share a canonical key.
//
// Structural rules (connectivity, odd-degree count, solvability) are NOT
// checked here; see packages euler and validate.
//
// Errors:
//
//	ErrLevelNotFound  - Catalog.Lookup on an unknown ID.
//	ErrBadLevelID     - non-positive level ID.
//	ErrBadDifficulty  - difficulty outside [1,5].
//	ErrBadGridSize    - non-positive grid extent.
//	ErrBadNodeID      - non-positive node ID.
//	ErrDuplicateNode  - node ID declared twice.
//	ErrDanglingEdge   - edge references a missing node.
//	ErrSelfLoop       - edge with From == To.
//	ErrParallelEdge   - two edges with the same canonical key.
//	ErrDuplicateLevel - catalog contains the same level ID twice.
package level
