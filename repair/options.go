package repair

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/onestroke/geometry"
)

// Defaults for the regeneration budgets.
const (
	DefaultMaxRegenerations = 100
	DefaultSafeRetries      = 10
	DefaultPatchLimit       = 100
)

// Option configures a Pipeline.
type Option func(*config)

type config struct {
	maxRegenerations int
	safeRetries      int
	patchLimit       int
	safeFallback     bool
	localFix         bool
	stepLimit        int
	guard            geometry.Guard
	logger           *slog.Logger
	tracer           trace.Tracer
}

func defaultConfig() config {
	return config{
		maxRegenerations: DefaultMaxRegenerations,
		safeRetries:      DefaultSafeRetries,
		patchLimit:       DefaultPatchLimit,
		safeFallback:     true,
		localFix:         true,
	}
}

// WithMaxRegenerations bounds template Generate calls per broken level.
// Panics if n <= 0.
func WithMaxRegenerations(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("repair: WithMaxRegenerations(%d): must be > 0", n))
	}
	return func(c *config) { c.maxRegenerations = n }
}

// WithSafeRetries bounds GenerateSafe calls per broken level.
// Panics if n <= 0.
func WithSafeRetries(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("repair: WithSafeRetries(%d): must be > 0", n))
	}
	return func(c *config) { c.safeRetries = n }
}

// WithSafeFallback enables or disables the safe-random fallback.
func WithSafeFallback(on bool) Option {
	return func(c *config) { c.safeFallback = on }
}

// WithLocalFix enables or disables in-place overlap patching.
func WithLocalFix(on bool) Option {
	return func(c *config) { c.localFix = on }
}

// WithStepLimit bounds the solvability search of every check.
// Panics if n <= 0.
func WithStepLimit(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("repair: WithStepLimit(%d): must be > 0", n))
	}
	return func(c *config) { c.stepLimit = n }
}

// WithGuard sets the overlap tolerance for checks and patches.
func WithGuard(g geometry.Guard) Option {
	return func(c *config) { c.guard = g }
}

// WithLogger logs to l instead of the context logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithTracer records the repair.Run span with tr.
func WithTracer(tr trace.Tracer) Option {
	return func(c *config) { c.tracer = tr }
}
