// Package engine is the single-stroke traversal engine: a session object
// that owns one player's walk over one level.
//
// State machine:
//
//	Playing ──MoveTo──▶ Playing
//	Playing ──MoveTo──▶ Success   (every edge consumed)
//	Playing ──MoveTo──▶ Fail      (tip has no unused edge, edges remain)
//	Success/Fail ──Undo──▶ Playing
//	any ──Reset──▶ Playing (empty path)
//
// Invariants while the path is non-empty:
//
//   - len(visited edges) == len(path) - 1;
//   - Status == Success iff every edge is visited;
//   - Status == Fail iff the tip has no unvisited edge and the target is unmet.
//
// Gameplay input never produces an error or a panic: illegal moves report
// false and leave the state untouched. The only error path is Load, which
// wraps level.ErrLevelNotFound for an unknown catalog ID.
//
// Hints and solvability queries run the euler package's backtracking search
// on a private copy of the visited-edge set, so they never mutate the live
// session.
//
// An Engine is not safe for concurrent use; hold one per play session.
package engine
