package geometry

import (
	"fmt"
	"math"

	"oss.terrastruct.com/d2/lib/geo"

	"github.com/katalvlaran/onestroke/level"
)

// DefaultEpsilon is the overlap tolerance used by a zero Guard.
const DefaultEpsilon = 0.01

// Guard holds the numeric tolerance for overlap tests.
// An Epsilon of 0 (including the zero value) selects DefaultEpsilon; an
// exact test is not offered, pass a tiny positive tolerance instead.
type Guard struct {
	Epsilon float64
}

// NewGuard returns a Guard with tolerance eps; 0 selects DefaultEpsilon.
// Panics if eps is negative or NaN.
func NewGuard(eps float64) Guard {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("geometry: NewGuard(%v): epsilon must be >= 0 (0 = default)", eps))
	}
	return Guard{Epsilon: eps}
}

func (g Guard) eps() float64 {
	if g.Epsilon == 0 {
		return DefaultEpsilon
	}
	return g.Epsilon
}

// Overlap records one edge passing through a third node.
type Overlap struct {
	EdgeIndex int        // position in Level.Edges
	Edge      level.Edge // the offending edge
	Through   int        // ID of the node it passes through
}

// String renders "a-b through n".
func (o Overlap) String() string {
	return fmt.Sprintf("%d-%d through %d", o.Edge.From, o.Edge.To, o.Through)
}

// point converts a level node to a d2 geometry point.
func point(n level.Node) *geo.Point { return geo.NewPoint(n.X, n.Y) }

// index maps node ID to position.
func index(nodes []level.Node) map[int]*geo.Point {
	m := make(map[int]*geo.Point, len(nodes))
	for _, n := range nodes {
		m[n.ID] = point(n)
	}
	return m
}

// Cross returns the z component of (b-a) × (p-a).
func Cross(a, b, p *geo.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// Collinear reports whether p lies on the line through a and b within eps.
func Collinear(a, b, p *geo.Point, eps float64) bool {
	return math.Abs(Cross(a, b, p)) <= eps
}

// onSegment is the collinearity plus widened bounding-box test.
func onSegment(a, b, p *geo.Point, eps float64) bool {
	if !Collinear(a, b, p, eps) {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-eps && p.X <= math.Max(a.X, b.X)+eps &&
		p.Y >= math.Min(a.Y, b.Y)-eps && p.Y <= math.Max(a.Y, b.Y)+eps
}

// EdgePassesThroughNode reports whether edge's straight segment passes
// through candidate. It is false when candidate is one of edge's endpoints or
// when any of the three nodes is missing from nodes.
//
// Complexity: O(V) for the lookups.
func (g Guard) EdgePassesThroughNode(edge level.Edge, nodes []level.Node, candidate int) bool {
	if candidate == edge.From || candidate == edge.To {
		return false
	}
	l := level.Level{Nodes: nodes}
	a, okA := l.NodeByID(edge.From)
	b, okB := l.NodeByID(edge.To)
	p, okP := l.NodeByID(candidate)
	if !okA || !okB || !okP {
		return false
	}
	return onSegment(point(a), point(b), point(p), g.eps())
}

// WouldOverlapAnyNode reports whether edge passes through any node of the
// layout other than its own endpoints.
// Complexity: O(V).
func (g Guard) WouldOverlapAnyNode(edge level.Edge, nodes []level.Node) bool {
	pts := index(nodes)
	return g.overlapsAny(edge, nodes, pts)
}

func (g Guard) overlapsAny(edge level.Edge, nodes []level.Node, pts map[int]*geo.Point) bool {
	a, okA := pts[edge.From]
	b, okB := pts[edge.To]
	if !okA || !okB {
		return false
	}
	eps := g.eps()
	for _, n := range nodes {
		if n.ID == edge.From || n.ID == edge.To {
			continue
		}
		if onSegment(a, b, pts[n.ID], eps) {
			return true
		}
	}
	return false
}

// SafeCandidateEdges returns every pair (i < j in node order) that is not
// already connected by existing and whose segment does not pass through a
// third node. This is the candidate pool for generation and repair.
//
// Complexity: O(V³).
func (g Guard) SafeCandidateEdges(nodes []level.Node, existing []level.Edge) []level.Edge {
	pts := index(nodes)
	have := make(map[level.EdgeKey]struct{}, len(existing))
	for _, e := range existing {
		have[e.Key()] = struct{}{}
	}

	var out []level.Edge
	var e level.Edge
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			e = level.Edge{From: nodes[i].ID, To: nodes[j].ID}
			if e.From == e.To {
				continue
			}
			if _, ok := have[e.Key()]; ok {
				continue
			}
			if g.overlapsAny(e, nodes, pts) {
				continue
			}
			out = append(out, e)
		}
	}
	return out
}

// OverlappingEdges lists every (edge, through-node) overlap in l, in edge
// order then node order.
// Complexity: O(V·E).
func (g Guard) OverlappingEdges(l level.Level) []Overlap {
	pts := index(l.Nodes)
	eps := g.eps()

	var out []Overlap
	for i, e := range l.Edges {
		a, okA := pts[e.From]
		b, okB := pts[e.To]
		if !okA || !okB {
			continue
		}
		for _, n := range l.Nodes {
			if n.ID == e.From || n.ID == e.To {
				continue
			}
			if onSegment(a, b, pts[n.ID], eps) {
				out = append(out, Overlap{EdgeIndex: i, Edge: e, Through: n.ID})
			}
		}
	}
	return out
}

// HasOverlap reports whether any edge of l passes through a third node.
func (g Guard) HasOverlap(l level.Level) bool {
	pts := index(l.Nodes)
	for _, e := range l.Edges {
		if g.overlapsAny(e, l.Nodes, pts) {
			return true
		}
	}
	return false
}
