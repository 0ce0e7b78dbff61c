// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/onestroke/geometry"
)

// BuilderOption customizes the resolved builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithGrid sets the nominal extent shapes are centred in.
// Panics unless both sides are positive.
func WithGrid(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("builder: WithGrid(%v, %v): sides must be > 0", width, height))
	}
	return func(c *builderConfig) { c.width, c.height = width, height }
}

// WithScale multiplies ring radii. Panics if s <= 0.
func WithScale(s float64) BuilderOption {
	if s <= 0 {
		panic(fmt.Sprintf("builder: WithScale(%v): scale must be > 0", s))
	}
	return func(c *builderConfig) { c.scale = s }
}

// WithPlacement overrides the SafeRandom acceptance thresholds.
// Panics on negative thresholds.
func WithPlacement(p geometry.Placement) BuilderOption {
	if p.Collinearity < 0 || p.Slack < 0 || p.MinDistance < 0 {
		panic(fmt.Sprintf("builder: WithPlacement(%+v): thresholds must be >= 0", p))
	}
	return func(c *builderConfig) { c.placement = p }
}
