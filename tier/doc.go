// Package tier loads the difficulty tiers that drive level generation.
//
// Tiers are configuration data written in HCL:
//
//	tier "2" {
//	  name     = "practiced"
//	  nodes    = [5, 8]        # inclusive node-count range
//	  edges    = [7, 12]       # inclusive edge-count range
//	  grid     = [4, 5]        # base extent; each attempt adds 0 or 1 per side
//	  patterns = ["polygon", "star", "grid"]
//	}
//
// Expressions may reference min_nodes and max_edges, the global bounds of
// a puzzle-sized level. Default returns the embedded table reproducing the
// shipped five tiers; LoadFile and Parse decode user overrides.
//
// Errors:
//
//	ErrUnknownTier - Table.Get for a level with no tier.
//	ErrBadTier     - a block that decodes but describes an unusable tier
//	                 (bad label, empty or inverted range, unknown pattern,
//	                 duplicate level).
package tier
