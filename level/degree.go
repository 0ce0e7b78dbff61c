package level

import (
	"sort"
	"strconv"
	"strings"
)

// DegreeTable maps node ID to its incident-edge count.
type DegreeTable map[int]int

// Degrees computes the degree of every node in nodes (zero included).
// Edges naming unknown nodes still count toward whichever endpoint exists,
// so the table never silently hides a dangling reference from callers that
// compare sums.
// Complexity: O(V + E).
func Degrees(nodes []Node, edges []Edge) DegreeTable {
	deg := make(DegreeTable, len(nodes))
	for _, n := range nodes {
		deg[n.ID] = 0
	}
	for _, e := range edges {
		if _, ok := deg[e.From]; ok {
			deg[e.From]++
		}
		if _, ok := deg[e.To]; ok {
			deg[e.To]++
		}
	}
	return deg
}

// Odd returns the IDs with odd degree, ordered as in nodes.
func (d DegreeTable) Odd(nodes []Node) []int {
	var odd []int
	for _, n := range nodes {
		if d[n.ID]%2 == 1 {
			odd = append(odd, n.ID)
		}
	}
	return odd
}

// Sorted returns the degree multiset in ascending order.
func (d DegreeTable) Sorted() []int {
	seq := make([]int, 0, len(d))
	for _, v := range d {
		seq = append(seq, v)
	}
	sort.Ints(seq)
	return seq
}

// Fingerprint is the structural summary used for approximate deduplication:
// node count, edge count and sorted degree sequence. Layouts that differ only
// in coordinates, or even in wiring, may share a fingerprint.
type Fingerprint struct {
	Nodes   int
	Edges   int
	Degrees []int
}

// FingerprintOf computes the fingerprint of a node/edge set.
func FingerprintOf(nodes []Node, edges []Edge) Fingerprint {
	return Fingerprint{
		Nodes:   len(nodes),
		Edges:   len(edges),
		Degrees: Degrees(nodes, edges).Sorted(),
	}
}

// Fingerprint computes the structural fingerprint of l.
func (l Level) Fingerprint() Fingerprint {
	return FingerprintOf(l.Nodes, l.Edges)
}

// String renders "nodes-edges-d1,d2,...", the comparable form used in sets.
func (f Fingerprint) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(f.Nodes))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(f.Edges))
	b.WriteByte('-')
	for i, d := range f.Degrees {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}
