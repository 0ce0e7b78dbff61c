// Package generator synthesizes new puzzle levels for a difficulty tier.
//
// Two strategies share one acceptance gate:
//
//   - Generate (template): pick a node count, a pattern and a widened grid
//     from the tier, build the layout, pad it with random extra edges to a
//     target count, reject disconnected graphs, toggle edges between odd
//     nodes until at most two remain, then require a novel fingerprint,
//     zero overlaps and a constructive walk.
//   - GenerateSafe: place nodes on a jittered lattice away from each other
//     and from existing segments, connect them with a random spanning tree
//     over non-overlapping candidate edges, pad and repair with safe edges
//     only. Used when templates keep producing overlaps.
//
// Neither strategy records the fingerprint it accepted; callers decide by
// calling Registry.Add. GenerateRange does this for a batch of IDs.
//
// Errors:
//
//	ErrExhausted        - no candidate survived the attempt budget.
//	tier.ErrUnknownTier - the difficulty has no tier.
//
// Concurrency: a Generator owns one *rand.Rand and must not be shared
// across goroutines. Registry is safe for concurrent use.
package generator
