package geometry

import (
	"math"

	"oss.terrastruct.com/d2/lib/geo"
)

// Default thresholds for Placement.
const (
	DefaultCollinearity = 0.05
	DefaultSlack        = 0.1
	DefaultMinDistance  = 0.4
)

// Placement decides whether a new point may join a partial layout. It rejects
// points too close to an existing one and points that would sit on (or very
// near) the segment between two existing points.
type Placement struct {
	Collinearity float64 // cross-product tolerance
	Slack        float64 // bounding-box widening
	MinDistance  float64 // minimum pairwise distance
}

// DefaultPlacement returns the thresholds used by the safe-random layout.
func DefaultPlacement() Placement {
	return Placement{
		Collinearity: DefaultCollinearity,
		Slack:        DefaultSlack,
		MinDistance:  DefaultMinDistance,
	}
}

// Accepts reports whether p can be added to placed.
//
// Steps:
//  1. Reject if p is within MinDistance of any placed point.
//  2. Reject if p lies within Collinearity of the line through any placed
//     pair and inside their bounding box widened by Slack.
//
// Complexity: O(k²) for k placed points.
func (pl Placement) Accepts(placed []*geo.Point, p *geo.Point) bool {
	// 1. Spacing
	for _, q := range placed {
		if geo.EuclideanDistance(p.X, p.Y, q.X, q.Y) < pl.MinDistance {
			return false
		}
	}

	// 2. Collinearity against every existing pair
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if !Collinear(a, b, p, pl.Collinearity) {
				continue
			}
			if p.X >= math.Min(a.X, b.X)-pl.Slack && p.X <= math.Max(a.X, b.X)+pl.Slack &&
				p.Y >= math.Min(a.Y, b.Y)-pl.Slack && p.Y <= math.Max(a.Y, b.Y)+pl.Slack {
				return false
			}
		}
	}
	return true
}
