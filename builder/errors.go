// SPDX-License-Identifier: MIT
// Package: onestroke/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w` ("Method: detail: %w").
//   • Runtime code never panics; option constructors do.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed/WithRand not set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor exhausted its candidates
// (or was nil) and could not produce the requested layout.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPattern indicates a pattern name with no registered template.
var ErrUnknownPattern = errors.New("builder: unknown pattern")
