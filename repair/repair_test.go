package repair_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/onestroke/generator"
	"github.com/katalvlaran/onestroke/geometry"
	"github.com/katalvlaran/onestroke/internal/observability"
	"github.com/katalvlaran/onestroke/level"
	"github.com/katalvlaran/onestroke/repair"
	"github.com/katalvlaran/onestroke/tier"
	"github.com/katalvlaran/onestroke/validate"
)

func mk(id, difficulty int, nodes []level.Node, edges ...level.Edge) level.Level {
	return level.Level{ID: id, Difficulty: difficulty, Grid: level.ExtentOf(nodes), Nodes: nodes, Edges: edges}
}

func triangle(id int) level.Level {
	return mk(id, 1,
		[]level.Node{{ID: 1, X: 1, Y: 0}, {ID: 2, X: 0, Y: 2}, {ID: 3, X: 2, Y: 2}},
		level.Edge{From: 1, To: 2}, level.Edge{From: 2, To: 3}, level.Edge{From: 3, To: 1},
	)
}

// house is the classic envelope: square 1-2-3-4, diagonals and roof 5.
func house(id int) level.Level {
	return mk(id, 2,
		[]level.Node{{ID: 1, X: 0, Y: 2}, {ID: 2, X: 2, Y: 2}, {ID: 3, X: 0, Y: 4}, {ID: 4, X: 2, Y: 4}, {ID: 5, X: 1, Y: 0}},
		level.Edge{From: 1, To: 2}, level.Edge{From: 1, To: 3}, level.Edge{From: 1, To: 4},
		level.Edge{From: 2, To: 3}, level.Edge{From: 2, To: 4}, level.Edge{From: 3, To: 4},
		level.Edge{From: 1, To: 5}, level.Edge{From: 2, To: 5},
	)
}

// claw has four odd nodes.
func claw(id int) level.Level {
	return mk(id, 1,
		[]level.Node{{ID: 1, X: 1, Y: 1}, {ID: 2, X: 0, Y: 0}, {ID: 3, X: 2, Y: 0}, {ID: 4, X: 1, Y: 3}},
		level.Edge{From: 1, To: 2}, level.Edge{From: 1, To: 3}, level.Edge{From: 1, To: 4},
	)
}

// flat has edge 1-3 running through node 2.
func flat(id int) level.Level {
	return mk(id, 1,
		[]level.Node{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 1, Y: 0}, {ID: 3, X: 2, Y: 0}},
		level.Edge{From: 1, To: 3}, level.Edge{From: 1, To: 2}, level.Edge{From: 2, To: 3},
	)
}

func quietGen(tb tier.Table, opts ...generator.Option) *generator.Generator {
	opts = append([]generator.Option{generator.WithSeed(9), generator.WithLogger(observability.Discard())}, opts...)
	return generator.New(tb, opts...)
}

func run(t *testing.T, p *repair.Pipeline, cat level.Catalog) (level.Catalog, repair.Result) {
	t.Helper()
	out, res, err := p.Run(context.Background(), cat)
	require.NoError(t, err)
	return out, res
}

func TestRun_IdempotentOnValidCatalog(t *testing.T) {
	cat := level.Catalog{triangle(1), house(2)}
	p := repair.New(quietGen(tier.Default()), repair.WithLogger(observability.Discard()))

	out, res := run(t, p, cat)
	assert.False(t, res.Changed())
	assert.Equal(t, 2, res.Checked)
	assert.Zero(t, res.Invalid)
	if diff := cmp.Diff(cat, out); diff != "" {
		t.Errorf("valid catalog changed (-want +got):\n%s", diff)
	}

	again, res2 := run(t, p, out)
	assert.False(t, res2.Changed())
	assert.Empty(t, cmp.Diff(out, again))
}

func TestRun_PatchesOverlap(t *testing.T) {
	cat := level.Catalog{triangle(1), flat(2)}
	p := repair.New(quietGen(tier.Default()), repair.WithLogger(observability.Discard()))

	out, res := run(t, p, cat)
	assert.Equal(t, []int{2}, res.Patched)
	assert.Empty(t, res.Replaced)
	assert.Equal(t, 1, res.Invalid)

	fixed, err := out.Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, []level.Edge{{From: 1, To: 2}, {From: 2, To: 3}}, fixed.Edges)
	assert.Equal(t, flat(2).Nodes, fixed.Nodes)
	assert.True(t, validate.Check(fixed).Valid)

	orig, _ := cat.Lookup(2)
	assert.Len(t, orig.Edges, 3, "input catalog untouched")
}

func TestRun_RegeneratesBrokenLevels(t *testing.T) {
	cat := level.Catalog{triangle(1), claw(2), flat(3)}
	p := repair.New(quietGen(tier.Default(), generator.WithMaxAttempts(200)),
		repair.WithLocalFix(false), repair.WithLogger(observability.Discard()))

	out, res := run(t, p, cat)
	require.Empty(t, res.Failed)
	assert.ElementsMatch(t, []int{2, 3}, res.Replaced)

	for _, r := range validate.CheckCatalog(out) {
		assert.True(t, r.Valid, r.String())
	}
	assert.Empty(t, validate.Duplicates(out), "replacements must be novel")
	assert.Equal(t, []int{1, 2, 3}, out.IDs())
	for _, l := range out {
		assert.Equal(t, 1, l.Difficulty)
	}
}

func TestRun_RecordsFailures(t *testing.T) {
	triangles, err := tier.Parse([]byte(`
tier "1" {
  nodes    = [3, 3]
  edges    = [3, 3]
  grid     = [3, 3]
  patterns = ["polygon"]
}`), "t.hcl")
	require.NoError(t, err)

	gen := quietGen(triangles, generator.WithMaxAttempts(3), generator.WithSafeAttempts(3))
	p := repair.New(gen, repair.WithMaxRegenerations(2), repair.WithSafeRetries(1),
		repair.WithLogger(observability.Discard()))

	bad := house(3) // difficulty 2 has no tier here
	bad.Edges = bad.Edges[:7]
	cat := level.Catalog{triangle(1), claw(2), bad}

	out, res := run(t, p, cat)
	assert.False(t, res.Changed())
	require.Len(t, res.Failed, 2)
	assert.Equal(t, 2, res.Failed[0].LevelID, "only triangles exist and that fingerprint is taken")
	assert.Equal(t, 3, res.Failed[1].LevelID)
	assert.Contains(t, res.Failed[1].Reason, "unknown tier")
	assert.Empty(t, cmp.Diff(cat, out))
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := repair.New(quietGen(tier.Default()), repair.WithLogger(observability.Discard()))
	_, _, err := p.Run(ctx, level.Catalog{claw(1)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Span(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	p := repair.New(quietGen(tier.Default()), repair.WithTracer(tp.Tracer("test")),
		repair.WithLogger(observability.Discard()))

	run(t, p, level.Catalog{triangle(1)})
	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "repair.Run", spans[0].Name())
}

func TestFixOverlap(t *testing.T) {
	g := geometry.Guard{}

	_, ok := repair.FixOverlap(triangle(1), g, 10)
	assert.False(t, ok, "nothing to fix")

	fixed, ok := repair.FixOverlap(flat(1), g, 10)
	require.True(t, ok)
	assert.False(t, g.HasOverlap(fixed))
	assert.Len(t, flat(1).Edges, 3)

	// A lattice row where every pairing of 1 and 3 would cross 2 and the
	// only other node sits far off: removal plus reconnection still works.
	l := mk(4, 1,
		[]level.Node{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 1, Y: 0}, {ID: 3, X: 2, Y: 0}, {ID: 4, X: 1, Y: 2}},
		level.Edge{From: 1, To: 3}, level.Edge{From: 3, To: 4}, level.Edge{From: 4, To: 1},
		level.Edge{From: 2, To: 4},
	)
	fixed, ok = repair.FixOverlap(l, g, 10)
	require.True(t, ok)
	assert.True(t, validate.Check(fixed).Valid, validate.Check(fixed).String())
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { repair.WithMaxRegenerations(0) })
	assert.Panics(t, func() { repair.WithSafeRetries(0) })
	assert.Panics(t, func() { repair.WithStepLimit(-1) })
}
