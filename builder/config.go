// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng       = nil          (pure templates; SafeRandom requires a seed)
//   • width     = 4, height = 4
//   • scale     = 1.0
//   • placement = geometry.DefaultPlacement()

package builder

import (
	"math/rand"

	"github.com/katalvlaran/onestroke/geometry"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng       *rand.Rand
	width     float64
	height    float64
	scale     float64
	placement geometry.Placement
}

const (
	defaultWidth  = 4.0
	defaultHeight = 4.0
	defaultScale  = 1.0
)

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		width:     defaultWidth,
		height:    defaultHeight,
		scale:     defaultScale,
		placement: geometry.DefaultPlacement(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// center returns the middle of the nominal extent.
func (c builderConfig) center() (cx, cy float64) {
	return c.width / 2, c.height / 2
}
