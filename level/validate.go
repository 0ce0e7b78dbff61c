package level

import "fmt"

// Validate performs load-time referential checks on l and returns the first
// violation, wrapped with the level ID for context. Structural properties
// (connectivity, Euler condition) are deliberately out of its reach.
//
// Complexity: O(V + E) time, O(V + E) space.
func (l Level) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("level %d: %w", l.ID, ErrBadLevelID)
	}
	if l.Difficulty < MinDifficulty || l.Difficulty > MaxDifficulty {
		return fmt.Errorf("level %d: difficulty=%d not in [%d,%d]: %w",
			l.ID, l.Difficulty, MinDifficulty, MaxDifficulty, ErrBadDifficulty)
	}
	if l.Grid.Width <= 0 || l.Grid.Height <= 0 {
		return fmt.Errorf("level %d: grid=%gx%g: %w", l.ID, l.Grid.Width, l.Grid.Height, ErrBadGridSize)
	}

	ids := make(map[int]struct{}, len(l.Nodes))
	for _, n := range l.Nodes {
		if n.ID <= 0 {
			return fmt.Errorf("level %d: node %d: %w", l.ID, n.ID, ErrBadNodeID)
		}
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("level %d: node %d: %w", l.ID, n.ID, ErrDuplicateNode)
		}
		ids[n.ID] = struct{}{}
	}

	seen := make(map[EdgeKey]struct{}, len(l.Edges))
	for i, e := range l.Edges {
		if e.From == e.To {
			return fmt.Errorf("level %d: edge #%d (%d-%d): %w", l.ID, i, e.From, e.To, ErrSelfLoop)
		}
		if _, ok := ids[e.From]; !ok {
			return fmt.Errorf("level %d: edge #%d from=%d: %w", l.ID, i, e.From, ErrDanglingEdge)
		}
		if _, ok := ids[e.To]; !ok {
			return fmt.Errorf("level %d: edge #%d to=%d: %w", l.ID, i, e.To, ErrDanglingEdge)
		}
		k := e.Key()
		if _, dup := seen[k]; dup {
			return fmt.Errorf("level %d: edge #%d %s: %w", l.ID, i, k, ErrParallelEdge)
		}
		seen[k] = struct{}{}
	}

	return nil
}
