package level

import (
	"fmt"
	"sort"
)

// Catalog is the ordered, read-mostly list of levels shipped with the game.
type Catalog []Level

// Lookup returns the level with the given ID.
// Unknown IDs yield ErrLevelNotFound: that is a data-integrity problem, not
// a gameplay one.
func (c Catalog) Lookup(id int) (Level, error) {
	for _, l := range c {
		if l.ID == id {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("level %d: %w", id, ErrLevelNotFound)
}

// Index returns the position of level id, or -1.
func (c Catalog) Index(id int) int {
	for i, l := range c {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// Replace swaps in l for the entry with the same ID and reports whether one
// was found. The catalog order is preserved.
func (c Catalog) Replace(l Level) bool {
	i := c.Index(l.ID)
	if i < 0 {
		return false
	}
	c[i] = l
	return true
}

// Clone returns a deep copy of c.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, l := range c {
		out[i] = l.Clone()
	}
	return out
}

// IDs returns the level IDs in catalog order.
func (c Catalog) IDs() []int {
	ids := make([]int, len(c))
	for i, l := range c {
		ids[i] = l.ID
	}
	return ids
}

// MaxID returns the largest level ID, or 0 for an empty catalog.
func (c Catalog) MaxID() int {
	maxID := 0
	for _, l := range c {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	return maxID
}

// SortByID orders the catalog by ascending level ID (stable).
func (c Catalog) SortByID() {
	sort.SliceStable(c, func(i, j int) bool { return c[i].ID < c[j].ID })
}

// Fingerprints returns the fingerprint strings of every level except
// exceptID (pass 0 to include all). Order follows the catalog.
func (c Catalog) Fingerprints(exceptID int) []string {
	out := make([]string, 0, len(c))
	for _, l := range c {
		if exceptID != 0 && l.ID == exceptID {
			continue
		}
		out = append(out, l.Fingerprint().String())
	}
	return out
}

// UniqueIDs reports the first level ID that appears twice.
func (c Catalog) UniqueIDs() error {
	seen := make(map[int]struct{}, len(c))
	for _, l := range c {
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("level %d: %w", l.ID, ErrDuplicateLevel)
		}
		seen[l.ID] = struct{}{}
	}
	return nil
}

// Validate checks ID uniqueness and runs Level.Validate on every entry.
func (c Catalog) Validate() error {
	if err := c.UniqueIDs(); err != nil {
		return err
	}
	for _, l := range c {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Append adds l to the end of the catalog. An existing ID yields
// ErrDuplicateLevel and leaves the catalog unchanged.
func (c *Catalog) Append(l Level) error {
	if c.Index(l.ID) >= 0 {
		return fmt.Errorf("level %d: %w", l.ID, ErrDuplicateLevel)
	}
	*c = append(*c, l)
	return nil
}
