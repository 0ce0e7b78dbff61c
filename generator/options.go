package generator

import (
	"fmt"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/onestroke/geometry"
	"github.com/katalvlaran/onestroke/internal/rng"
)

// Defaults for the attempt budgets.
const (
	DefaultMaxAttempts   = 50
	DefaultSafeAttempts  = 200
	DefaultEulerFixLimit = 100
	DefaultBatchRetries  = 10
)

// Option configures a Generator.
type Option func(*config)

type config struct {
	rng           *rand.Rand
	seed          int64 // parent of the per-level streams used by Accept
	seeded        bool
	maxAttempts   int
	safeAttempts  int
	eulerFixLimit int
	batchRetries  int
	stepLimit     int // 0 = unlimited
	guard         geometry.Guard
	placement     geometry.Placement
	logger        *slog.Logger // nil = observability.FromContext
	tracer        trace.Tracer // nil = observability.Tracer()
}

func defaultConfig() config {
	return config{
		rng:           rng.FromSeed(0),
		seeded:        true,
		maxAttempts:   DefaultMaxAttempts,
		safeAttempts:  DefaultSafeAttempts,
		eulerFixLimit: DefaultEulerFixLimit,
		batchRetries:  DefaultBatchRetries,
		guard:         geometry.Guard{Epsilon: geometry.DefaultEpsilon},
		placement:     geometry.DefaultPlacement(),
	}
}

// WithSeed seeds the generator; 0 selects rng.DefaultSeed. The same seed
// also fixes the per-level streams of Accept and GenerateRange.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rng.FromSeed(seed)
		c.seed = seed
		c.seeded = true
	}
}

// WithRand uses r as the random source. The per-level streams of Accept are
// seeded from r's first draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
		c.seeded = false
	}
}

// WithMaxAttempts bounds template attempts per Generate call. Panics if n <= 0.
func WithMaxAttempts(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("generator: WithMaxAttempts(%d): must be > 0", n))
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithSafeAttempts bounds attempts per GenerateSafe call. Panics if n <= 0.
func WithSafeAttempts(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("generator: WithSafeAttempts(%d): must be > 0", n))
	}
	return func(c *config) { c.safeAttempts = n }
}

// WithEulerFixLimit bounds the odd-degree repair rounds. Panics if n <= 0.
func WithEulerFixLimit(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("generator: WithEulerFixLimit(%d): must be > 0", n))
	}
	return func(c *config) { c.eulerFixLimit = n }
}

// WithBatchRetries bounds how often GenerateRange retries one ID.
// Panics if n <= 0.
func WithBatchRetries(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("generator: WithBatchRetries(%d): must be > 0", n))
	}
	return func(c *config) { c.batchRetries = n }
}

// WithStepLimit bounds the solvability search of every candidate.
// Panics if n <= 0.
func WithStepLimit(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("generator: WithStepLimit(%d): must be > 0", n))
	}
	return func(c *config) { c.stepLimit = n }
}

// WithGuard sets the overlap guard used by the acceptance gate.
func WithGuard(g geometry.Guard) Option {
	return func(c *config) { c.guard = g }
}

// WithPlacement sets the node placement thresholds of GenerateSafe.
func WithPlacement(p geometry.Placement) Option {
	return func(c *config) { c.placement = p }
}

// WithLogger logs attempts to l instead of the context logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithTracer records spans with tr instead of the global tracer.
func WithTracer(tr trace.Tracer) Option {
	return func(c *config) { c.tracer = tr }
}
