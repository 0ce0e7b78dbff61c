// Package repair rewrites the broken levels of a catalog.
//
// Pipeline.Run checks every level with validate.Check and, for each one that
// fails:
//
//  1. if the only problem is an edge passing through a node, tries a local
//     patch (FixOverlap): drop the offending edges, reconnect and re-pair
//     odd nodes with safe edges, keep the node layout;
//  2. otherwise, or if the patch fails, regenerates the level in the same
//     tier with the template generator;
//  3. falls back to the safe-random generator.
//
// A candidate is accepted only if it passes the full check and its
// fingerprint is not used by any other level of the (already updated)
// catalog. A level with no acceptable candidate is left untouched and
// reported as a Failure. Running the pipeline on a valid catalog changes
// nothing.
package repair
