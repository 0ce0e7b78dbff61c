package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/onestroke/internal/rng"
	"github.com/katalvlaran/onestroke/level"
)

// Gate is an extra acceptance check applied by GenerateRange, typically
// the full validation of a level. A nil Gate accepts everything.
type Gate func(level.Level) error

// Batch is the outcome of GenerateRange.
type Batch struct {
	Levels level.Catalog
	Failed []int
}

// GenerateRange generates levels from..to (inclusive) of one difficulty.
// Each ID draws from its own random stream (see Accept) and gets up to
// WithBatchRetries template runs followed by the same number of safe runs;
// a candidate is accepted only if gate passes and its fingerprint is newly
// added to reg. IDs that never succeed are listed in
// Batch.Failed and logged; they do not abort the batch.
//
// Errors: unknown tier and context cancellation abort the whole batch.
func (g *Generator) GenerateRange(ctx context.Context, from, to, difficulty int, reg *Registry, gate Gate) (Batch, error) {
	if reg == nil {
		reg = NewRegistry(nil, 0)
	}
	if _, err := g.tiers.Get(difficulty); err != nil {
		return Batch{}, fmt.Errorf("GenerateRange: %w", err)
	}
	log := g.logger(ctx)

	var out Batch
	for id := from; id <= to; id++ {
		res, err := g.accept(ctx, id, difficulty, reg, gate)
		switch {
		case err == nil:
			out.Levels = append(out.Levels, res.Level)
			log.Info("level generated", "level_id", id, "difficulty", difficulty,
				"pattern", res.Pattern, "attempts", res.Attempts, "fingerprint", res.Fingerprint.String())
		case errors.Is(err, ErrExhausted):
			out.Failed = append(out.Failed, id)
			log.Warn("level generation failed", "level_id", id, "difficulty", difficulty, "error", err)
		default:
			return out, fmt.Errorf("GenerateRange: %w", err)
		}
	}
	return out, nil
}

// Accept generates one level that passes gate and registers its
// fingerprint in reg. Template runs come first, safe runs after.
//
// Accept draws from a random stream derived from the generator seed and id
// alone, so for the same registry contents level id comes out the same no
// matter which levels were generated before it.
func (g *Generator) Accept(ctx context.Context, id, difficulty int, reg *Registry, gate Gate) (*Result, error) {
	return g.accept(ctx, id, difficulty, reg, gate)
}

func (g *Generator) accept(ctx context.Context, id, difficulty int, reg *Registry, gate Gate) (*Result, error) {
	if reg == nil {
		reg = NewRegistry(nil, 0)
	}
	r := rng.Stream(g.cfg.seed, uint64(id))
	strategies := []func(context.Context, *rand.Rand, int, int, *Registry) (*Result, error){g.generate, g.generateSafe}
	for _, generate := range strategies {
		for retry := 0; retry < g.cfg.batchRetries; retry++ {
			res, err := generate(ctx, r, id, difficulty, reg)
			if errors.Is(err, ErrExhausted) {
				continue
			}
			if err != nil {
				return nil, err
			}
			if gate != nil {
				if gerr := gate(res.Level); gerr != nil {
					g.logger(ctx).Debug("candidate failed gate", "level_id", id, "error", gerr)
					continue
				}
			}
			if !reg.Add(res.Fingerprint.String()) {
				continue
			}
			return res, nil
		}
	}
	return nil, fmt.Errorf("level %d difficulty %d: %w", id, difficulty, ErrExhausted)
}
