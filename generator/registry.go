package generator

import (
	"sync"

	"github.com/emirpasic/gods/sets/treeset"

	"github.com/katalvlaran/onestroke/level"
)

// Registry is the set of fingerprints already used by a catalog.
// Values are kept sorted so listings are deterministic. A nil *Registry
// behaves as an empty, read-only set.
type Registry struct {
	mu  sync.Mutex
	set *treeset.Set
}

// NewRegistry seeds a registry with the fingerprints of every level in cat
// except exceptID (0 keeps all).
func NewRegistry(cat level.Catalog, exceptID int) *Registry {
	r := &Registry{set: treeset.NewWithStringComparator()}
	for _, fp := range cat.Fingerprints(exceptID) {
		r.set.Add(fp)
	}
	return r
}

// Has reports whether fp is registered.
func (r *Registry) Has(fp string) bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.set.Contains(fp)
}

// Add registers fp and reports whether it was new. Concurrent callers
// racing on the same fingerprint see exactly one true.
func (r *Registry) Add(fp string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.set.Contains(fp) {
		return false
	}
	r.set.Add(fp)
	return true
}

// Remove forgets fp.
func (r *Registry) Remove(fp string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set.Remove(fp)
}

// Len is the number of registered fingerprints.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.set.Size()
}

// Values lists the fingerprints in ascending string order.
func (r *Registry) Values() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, r.set.Size())
	for _, v := range r.set.Values() {
		out = append(out, v.(string))
	}
	return out
}
