package repair

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/onestroke/generator"
	"github.com/katalvlaran/onestroke/internal/observability"
	"github.com/katalvlaran/onestroke/level"
	"github.com/katalvlaran/onestroke/validate"
)

// Failure records a level that could not be replaced.
type Failure struct {
	LevelID int
	Reason  string
}

// Result summarizes one Run.
type Result struct {
	Checked  int
	Invalid  int
	Patched  []int // fixed in place by FixOverlap
	Replaced []int // regenerated
	Failed   []Failure
}

// Changed reports whether Run modified the catalog.
func (r Result) Changed() bool { return len(r.Patched)+len(r.Replaced) > 0 }

// Pipeline repairs catalogs with a generator.
type Pipeline struct {
	gen *generator.Generator
	cfg config
}

// New returns a pipeline drawing replacements from gen.
func New(gen *generator.Generator, opts ...Option) *Pipeline {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pipeline{gen: gen, cfg: cfg}
}

func (p *Pipeline) logger(ctx context.Context) *slog.Logger {
	if p.cfg.logger != nil {
		return p.cfg.logger
	}
	return observability.FromContext(ctx)
}

func (p *Pipeline) checkOptions() []validate.Option {
	opts := []validate.Option{validate.WithGuard(p.cfg.guard)}
	if p.cfg.stepLimit > 0 {
		opts = append(opts, validate.WithStepLimit(p.cfg.stepLimit))
	}
	return opts
}

// Run returns a repaired copy of cat; cat itself is not modified. Levels
// are processed in catalog order and every accepted replacement is visible
// to the novelty check of the levels after it.
//
// Errors: only context cancellation aborts the run; the catalog returned
// alongside holds the replacements made so far.
func (p *Pipeline) Run(ctx context.Context, cat level.Catalog) (level.Catalog, Result, error) {
	ctx, span := p.cfg.tracerStart(ctx)
	defer span.End()
	log := p.logger(ctx)

	out := cat.Clone()
	reports := validate.CheckCatalog(out, p.checkOptions()...)
	res := Result{Checked: len(reports)}

	for _, r := range reports {
		if r.Valid {
			continue
		}
		res.Invalid++
		log.Info("invalid level", "level_id", r.LevelID, "reason", r.Reason)

		if err := ctx.Err(); err != nil {
			observability.RecordError(span, err)
			return out, res, fmt.Errorf("repair: Run: %w", err)
		}

		idx := out.Index(r.LevelID)
		if idx < 0 {
			continue
		}
		old := out[idx]
		reg := generator.NewRegistry(out, old.ID)

		// 1. Local patch
		if p.cfg.localFix && errors.Is(r.Err, validate.ErrOverlap) {
			if fixed, ok := p.patch(old, reg); ok {
				out.Replace(fixed)
				res.Patched = append(res.Patched, old.ID)
				log.Info("level patched", "level_id", old.ID, "edges", len(fixed.Edges))
				continue
			}
		}

		// 2-3. Regenerate
		repl, reason, err := p.regenerate(ctx, old, reg)
		if err != nil {
			observability.RecordError(span, err)
			return out, res, fmt.Errorf("repair: Run: %w", err)
		}
		if reason != "" {
			res.Failed = append(res.Failed, Failure{LevelID: old.ID, Reason: reason})
			log.Warn("level kept", "level_id", old.ID, "reason", reason)
			continue
		}
		out.Replace(repl.Level)
		res.Replaced = append(res.Replaced, old.ID)
		log.Info("level replaced", "level_id", old.ID, "difficulty", old.Difficulty,
			"pattern", repl.Pattern, "nodes", len(repl.Level.Nodes), "edges", len(repl.Level.Edges))
	}

	span.SetAttributes(
		attribute.Int("repair.checked", res.Checked),
		attribute.Int("repair.replaced", len(res.Replaced)+len(res.Patched)),
		attribute.Int("repair.failed", len(res.Failed)),
	)
	return out, res, nil
}

// patch applies FixOverlap and the acceptance checks.
func (p *Pipeline) patch(old level.Level, reg *generator.Registry) (level.Level, bool) {
	fixed, ok := FixOverlap(old, p.cfg.guard, p.cfg.patchLimit)
	if !ok {
		return level.Level{}, false
	}
	fixed.Grid = level.ExtentOf(fixed.Nodes)
	if !validate.Check(fixed, p.checkOptions()...).Valid {
		return level.Level{}, false
	}
	if reg.Has(fixed.Fingerprint().String()) {
		return level.Level{}, false
	}
	return fixed, true
}

// regenerate runs the template generator, then the safe one. A non-empty
// reason means no candidate was accepted; err is reserved for cancellation.
func (p *Pipeline) regenerate(ctx context.Context, old level.Level, reg *generator.Registry) (*generator.Result, string, error) {
	type stage struct {
		name  string
		tries int
		run   func(context.Context, int, int, *generator.Registry) (*generator.Result, error)
	}
	stages := []stage{{"template", p.cfg.maxRegenerations, p.gen.Generate}}
	if p.cfg.safeFallback {
		stages = append(stages, stage{"safe", p.cfg.safeRetries, p.gen.GenerateSafe})
	}

	reason := "no candidate passed the checks"
	for _, st := range stages {
		for i := 0; i < st.tries; i++ {
			cand, err := st.run(ctx, old.ID, old.Difficulty, reg)
			switch {
			case err == nil:
			case errors.Is(err, generator.ErrExhausted):
				continue
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				return nil, "", err
			default:
				return nil, err.Error(), nil
			}
			if rep := validate.Check(cand.Level, p.checkOptions()...); !rep.Valid {
				p.logger(ctx).Debug("candidate rejected", "level_id", old.ID, "stage", st.name, "reason", rep.Reason)
				continue
			}
			return cand, "", nil
		}
	}
	return nil, reason, nil
}

func (c config) tracerStart(ctx context.Context) (context.Context, trace.Span) {
	tr := c.tracer
	if tr == nil {
		tr = observability.Tracer()
	}
	return tr.Start(ctx, "repair.Run", trace.WithSpanKind(trace.SpanKindInternal))
}
