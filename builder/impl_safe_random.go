// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// impl_safe_random.go — SafeRandom(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); cfg.rng required (else ErrNeedRandSource).
//   • Candidate positions: a half-unit lattice over [0, W]×[0, H], each point
//     jittered by up to ±0.15 and rounded to one decimal.
//   • Candidates are shuffled and accepted greedily with cfg.placement
//     (minimum spacing, no near-collinear triple inside a pair's box).
//   • Fewer than n accepted positions ⇒ ErrConstructFailed.
//   • Emits nodes only; edges are the generator's job.
//
// Complexity: O(P + n²·P) for P lattice candidates.

package builder

import (
	"fmt"
	"math"

	"oss.terrastruct.com/d2/lib/geo"

	"github.com/katalvlaran/onestroke/internal/rng"
)

const (
	methodSafeRandom   = "SafeRandom"
	minSafeRandomNodes = 3
	latticeStep        = 0.5
	latticeJitter      = 0.15
)

// SafeRandom returns a Constructor that places n nodes away from each other
// and away from the segments between already-placed pairs.
func SafeRandom(n int) Constructor {
	return func(l *Layout, cfg builderConfig) error {
		// 1. Validate
		if n < minSafeRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSafeRandom, n, minSafeRandomNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodSafeRandom, ErrNeedRandSource)
		}

		// 2. Jittered lattice candidates inside the extent
		cols := int(cfg.width / latticeStep)
		rows := int(cfg.height / latticeStep)
		candidates := make([]*geo.Point, 0, cols*rows)
		for i := 0; i < cols; i++ {
			for j := 0; j < rows; j++ {
				x := float64(i)*latticeStep + (cfg.rng.Float64()*2-1)*latticeJitter
				y := float64(j)*latticeStep + (cfg.rng.Float64()*2-1)*latticeJitter
				if x < 0 || x > cfg.width || y < 0 || y > cfg.height {
					continue
				}
				candidates = append(candidates, geo.NewPoint(round1(x), round1(y)))
			}
		}
		rng.Shuffle(cfg.rng, candidates)

		// 3. Greedy acceptance
		placed := make([]*geo.Point, 0, n)
		for _, p := range candidates {
			if len(placed) == n {
				break
			}
			if cfg.placement.Accepts(placed, p) {
				placed = append(placed, p)
			}
		}
		if len(placed) < n {
			return fmt.Errorf("%s: placed %d of %d nodes in %gx%g: %w",
				methodSafeRandom, len(placed), n, cfg.width, cfg.height, ErrConstructFailed)
		}

		// 4. Emit
		for _, p := range placed {
			l.addNode(p.X, p.Y)
		}
		return nil
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
