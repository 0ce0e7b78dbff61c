// Package store moves catalogs in and out of the process.
//
// Three forms are supported:
//
//   - JSON documents (ReadCatalog, WriteCatalog, LoadFile, SaveFile). Reads
//     accept {"levels": [...]} with an optional "checksum" or a bare array;
//     writes always use the object form with a sha256 checksum of the
//     levels array. SaveFile replaces the target atomically.
//   - A badger key-value store (OpenBadger), one JSON value per level under
//     "level/<8-digit id>", so iteration order is ID order.
//   - A text notation for hand-authored levels (ParseNotation,
//     FormatNotation).
//
// Notation example; "grid" is optional and derived from the nodes when
// omitted, and an edge line may chain several nodes:
//
//	level 1 difficulty 1 grid 3 3 {
//	  node 1 at 1 0
//	  node 2 at 0 2
//	  node 3 at 2 2
//	  edge 1 2 3 1   # 1-2, 2-3, 3-1
//	}
//
// Reads do not run the acceptance gate; structural checks belong to
// level.Level.Validate and validate.Check. ParseNotation is the exception:
// hand-written input is validated before it is returned.
package store
