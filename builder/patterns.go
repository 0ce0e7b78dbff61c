// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// patterns.go — pattern names used by tier files and their size mapping.

package builder

import (
	"fmt"
	"math"
)

// Pattern names accepted by ByName.
const (
	PatternPolygon           = "polygon"
	PatternPolygonWithCenter = "polygon_with_center"
	PatternStar              = "star"
	PatternGrid              = "grid"
	PatternDoubleRing        = "double_ring"
	PatternHoneycomb         = "honeycomb"
	PatternSafeRandom        = "safe_random"
)

// Patterns returns every registered pattern name in a stable order.
func Patterns() []string {
	return []string{
		PatternPolygon, PatternPolygonWithCenter, PatternStar,
		PatternGrid, PatternDoubleRing, PatternHoneycomb, PatternSafeRandom,
	}
}

// KnownPattern reports whether name is registered.
func KnownPattern(name string) bool {
	for _, p := range Patterns() {
		if p == name {
			return true
		}
	}
	return false
}

// ByName returns the constructor for pattern sized for roughly nodeCount
// nodes:
//
//	polygon             Polygon(n)
//	polygon_with_center PolygonWithCenter(n-1)       (hub makes n)
//	star                Star(max(5, n))
//	grid                Grid(r, c), r = max(2, ⌊√n⌋), c = max(2, ⌈n/r⌉)
//	double_ring         DoubleRing(max(3, ⌊n/2⌋))
//	honeycomb           Honeycomb()                  (always 7 nodes)
//	safe_random         SafeRandom(n)
//
// Size errors surface when the constructor runs, not here.
func ByName(pattern string, nodeCount int) (Constructor, error) {
	switch pattern {
	case PatternPolygon:
		return Polygon(nodeCount), nil
	case PatternPolygonWithCenter:
		return PolygonWithCenter(nodeCount - 1), nil
	case PatternStar:
		return Star(max(minStarNodes, nodeCount)), nil
	case PatternGrid:
		rows := max(2, int(math.Floor(math.Sqrt(float64(nodeCount)))))
		cols := max(2, int(math.Ceil(float64(nodeCount)/float64(rows))))
		return Grid(rows, cols), nil
	case PatternDoubleRing:
		return DoubleRing(max(minDoubleRingNodes, nodeCount/2)), nil
	case PatternHoneycomb:
		return Honeycomb(), nil
	case PatternSafeRandom:
		return SafeRandom(nodeCount), nil
	}
	return nil, fmt.Errorf("ByName(%q): %w", pattern, ErrUnknownPattern)
}
