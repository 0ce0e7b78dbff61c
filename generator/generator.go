package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/onestroke/builder"
	"github.com/katalvlaran/onestroke/euler"
	"github.com/katalvlaran/onestroke/internal/observability"
	"github.com/katalvlaran/onestroke/internal/rng"
	"github.com/katalvlaran/onestroke/level"
	"github.com/katalvlaran/onestroke/tier"
)

const (
	methodGenerate     = "Generate"
	methodGenerateSafe = "GenerateSafe"
)

// Rejection reasons reported in attempt logs.
const (
	rejectBuild        = "build failed"
	rejectDisconnected = "disconnected"
	rejectOddDegree    = "odd-degree repair failed"
	rejectDuplicate    = "duplicate fingerprint"
	rejectOverlap      = "edge passes through node"
	rejectUnsolvable   = "no complete walk"
	rejectFewEdges     = "too few safe edges"
	rejectNoTree       = "no spanning tree"
)

// Generator produces levels for the tiers of one table.
type Generator struct {
	tiers tier.Table
	cfg   config
}

// Result is an accepted candidate.
type Result struct {
	Level       level.Level
	Fingerprint level.Fingerprint
	Attempts    int
	Pattern     string
}

// New returns a generator over tiers.
func New(tiers tier.Table, opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = cfg.rng.Int63()
	}
	return &Generator{tiers: tiers, cfg: cfg}
}

// Tiers returns the table the generator draws from.
func (g *Generator) Tiers() tier.Table { return g.tiers }

func (g *Generator) logger(ctx context.Context) *slog.Logger {
	if g.cfg.logger != nil {
		return g.cfg.logger
	}
	return observability.FromContext(ctx)
}

// attemptFunc builds one candidate from r or returns a rejection reason.
type attemptFunc func(r *rand.Rand, id, difficulty int, tr tier.Tier, reg *Registry) (level.Level, string, string)

// Generate runs up to WithMaxAttempts template attempts for a level of the
// given difficulty whose fingerprint is not in reg (nil means no history).
// The accepted fingerprint is NOT added to reg.
//
// Steps per attempt:
//  1. Pick node count, pattern and grid from the tier; build the layout.
//  2. Pad with random absent non-loop edges up to a target edge count.
//  3. Reject if disconnected.
//  4. Toggle edges between random odd nodes until 0 or 2 remain.
//  5. Gate: connected, novel fingerprint, no overlap, complete walk exists.
func (g *Generator) Generate(ctx context.Context, id, difficulty int, reg *Registry) (*Result, error) {
	return g.generate(ctx, g.cfg.rng, id, difficulty, reg)
}

func (g *Generator) generate(ctx context.Context, r *rand.Rand, id, difficulty int, reg *Registry) (*Result, error) {
	return g.run(ctx, r, "generator.Generate", methodGenerate, g.cfg.maxAttempts, g.templateAttempt, id, difficulty, reg)
}

// GenerateSafe is Generate with the safe-random layout and safe-edge
// repair. It runs up to WithSafeAttempts attempts.
func (g *Generator) GenerateSafe(ctx context.Context, id, difficulty int, reg *Registry) (*Result, error) {
	return g.generateSafe(ctx, g.cfg.rng, id, difficulty, reg)
}

func (g *Generator) generateSafe(ctx context.Context, r *rand.Rand, id, difficulty int, reg *Registry) (*Result, error) {
	return g.run(ctx, r, "generator.GenerateSafe", methodGenerateSafe, g.cfg.safeAttempts, g.safeAttempt, id, difficulty, reg)
}

// run is the shared attempt loop. The context is checked between attempts.
func (g *Generator) run(ctx context.Context, r *rand.Rand, span, method string, budget int, try attemptFunc, id, difficulty int, reg *Registry) (*Result, error) {
	ctx, sp := observability.StartLevelSpan(ctx, g.cfg.tracer, span, id, difficulty)
	defer sp.End()
	log := g.logger(ctx).With("method", method, "level_id", id, "difficulty", difficulty)

	tr, err := g.tiers.Get(difficulty)
	if err != nil {
		observability.RecordError(sp, err)
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	for attempt := 1; attempt <= budget; attempt++ {
		if err = ctx.Err(); err != nil {
			observability.RecordError(sp, err)
			return nil, fmt.Errorf("%s: level %d: %w", method, id, err)
		}
		lvl, pattern, reason := try(r, id, difficulty, tr, reg)
		if reason != "" {
			log.Debug("attempt rejected", "attempt", attempt, "pattern", pattern, "reason", reason)
			continue
		}
		res := &Result{Level: lvl, Fingerprint: lvl.Fingerprint(), Attempts: attempt, Pattern: pattern}
		sp.SetAttributes(
			attribute.Int(observability.AttrAttempts, attempt),
			attribute.String(observability.AttrPattern, pattern),
		)
		log.Debug("candidate accepted", "attempt", attempt, "pattern", pattern,
			"nodes", len(lvl.Nodes), "edges", len(lvl.Edges), "fingerprint", res.Fingerprint.String())
		return res, nil
	}

	err = fmt.Errorf("%s: level %d difficulty %d after %d attempts: %w", method, id, difficulty, budget, ErrExhausted)
	sp.SetAttributes(attribute.Int(observability.AttrAttempts, budget))
	observability.RecordError(sp, err)
	return nil, err
}

// templateAttempt is one pass of the template strategy.
func (g *Generator) templateAttempt(r *rand.Rand, id, difficulty int, tr tier.Tier, reg *Registry) (level.Level, string, string) {
	// 1. Layout
	n := tr.Nodes.Pick(r)
	pattern := tr.Patterns[r.Intn(len(tr.Patterns))]
	grid := tr.Grid.Pick(r)
	con, err := builder.ByName(pattern, n)
	if err != nil {
		return level.Level{}, pattern, rejectBuild
	}
	layout, err := builder.Build([]builder.BuilderOption{
		builder.WithGrid(grid.Width, grid.Height),
		builder.WithRand(r),
		builder.WithPlacement(g.cfg.placement),
	}, con)
	if err != nil {
		return level.Level{}, pattern, rejectBuild
	}
	nodes, edges := layout.Nodes, layout.Edges

	// 2. Pad
	edges = pad(r, nodes, edges, tr.Edges.Pick(r))

	// 3. Connectivity before repair
	if !euler.IsConnected(nodes, edges) {
		return level.Level{}, pattern, rejectDisconnected
	}

	// 4. Odd-degree toggle
	edges, ok := g.toggleRepair(r, nodes, edges)
	if !ok {
		return level.Level{}, pattern, rejectOddDegree
	}

	// 5. Gate
	lvl := level.Level{ID: id, Difficulty: difficulty, Grid: level.ExtentOf(nodes), Nodes: nodes, Edges: edges}
	return lvl, pattern, g.gate(lvl, reg)
}

// pad appends random absent non-loop edges until target is reached or the
// graph is complete.
func pad(r *rand.Rand, nodes []level.Node, edges []level.Edge, target int) []level.Edge {
	n := len(nodes)
	if n < 2 {
		return edges
	}
	target = min(target, n*(n-1)/2)
	for len(edges) < target {
		a := nodes[r.Intn(n)].ID
		b := nodes[r.Intn(n)].ID
		if a != b && !level.HasEdge(edges, a, b) {
			edges = append(edges, level.Edge{From: a, To: b})
		}
	}
	return edges
}

// toggleRepair pairs two random odd nodes per round: their edge is added
// if absent and removed if present. It stops once 0 or 2 odd nodes remain
// or after WithEulerFixLimit rounds.
func (g *Generator) toggleRepair(r *rand.Rand, nodes []level.Node, edges []level.Edge) ([]level.Edge, bool) {
	for i := 0; i < g.cfg.eulerFixLimit; i++ {
		odd := euler.OddDegreeNodes(nodes, edges)
		if len(odd) <= 2 {
			return edges, true
		}
		rng.Shuffle(r, odd)
		a, b := odd[0], odd[1]
		if next, removed := level.RemoveEdge(edges, a, b); removed {
			edges = next
		} else {
			edges = append(edges, level.Edge{From: a, To: b})
		}
	}
	return edges, len(euler.OddDegreeNodes(nodes, edges)) <= 2
}

// gate applies the acceptance checks shared by both strategies and returns
// the first failing reason, or "".
func (g *Generator) gate(lvl level.Level, reg *Registry) string {
	if !euler.IsConnected(lvl.Nodes, lvl.Edges) {
		return rejectDisconnected
	}
	if odd := len(euler.OddDegreeNodes(lvl.Nodes, lvl.Edges)); odd != 0 && odd != 2 {
		return rejectOddDegree
	}
	if reg.Has(lvl.Fingerprint().String()) {
		return rejectDuplicate
	}
	if g.cfg.guard.HasOverlap(lvl) {
		return rejectOverlap
	}
	if _, ok := euler.Solve(lvl.Nodes, lvl.Edges, g.searchOptions()...); !ok {
		return rejectUnsolvable
	}
	return ""
}

func (g *Generator) searchOptions() []euler.Option {
	if g.cfg.stepLimit > 0 {
		return []euler.Option{euler.WithStepLimit(g.cfg.stepLimit)}
	}
	return nil
}
