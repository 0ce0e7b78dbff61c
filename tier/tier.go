package tier

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/onestroke/builder"
	"github.com/katalvlaran/onestroke/internal/rng"
	"github.com/katalvlaran/onestroke/level"
)

// Global bounds exposed to tier expressions.
const (
	MinNodes = 3
	MaxEdges = 25
)

var (
	// ErrUnknownTier indicates a lookup for a difficulty with no tier.
	ErrUnknownTier = errors.New("tier: unknown tier")

	// ErrBadTier indicates a tier block with unusable values.
	ErrBadTier = errors.New("tier: invalid tier")
)

//go:embed default.hcl
var defaultHCL []byte

// Range is an inclusive integer interval.
type Range struct {
	Min, Max int
}

// Pick returns a uniform value in [Min, Max].
func (r Range) Pick(src *rand.Rand) int { return rng.IntBetween(src, r.Min, r.Max) }

// Contains reports whether v lies in the range.
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Extent is the base layout size of a tier.
type Extent struct {
	Width, Height int
}

// Pick widens each side by 0 or 1, as every generation attempt does.
func (e Extent) Pick(src *rand.Rand) level.GridSize {
	return level.GridSize{
		Width:  float64(rng.IntBetween(src, e.Width, e.Width+1)),
		Height: float64(rng.IntBetween(src, e.Height, e.Height+1)),
	}
}

// Tier is the generation profile of one difficulty.
type Tier struct {
	Level    int
	Name     string
	Nodes    Range
	Edges    Range
	Grid     Extent
	Patterns []string
}

// Table maps difficulty to tier.
type Table struct {
	tiers map[int]Tier
}

// Get returns the tier for difficulty.
func (t Table) Get(difficulty int) (Tier, error) {
	tr, ok := t.tiers[difficulty]
	if !ok {
		return Tier{}, fmt.Errorf("tier %d: %w", difficulty, ErrUnknownTier)
	}
	return tr, nil
}

// Levels returns the configured difficulties in ascending order.
func (t Table) Levels() []int {
	out := make([]int, 0, len(t.tiers))
	for l := range t.tiers {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// Len is the number of tiers.
func (t Table) Len() int { return len(t.tiers) }

// hclFile is the decoding target for a tier file.
type hclFile struct {
	Tiers  []*hclTier `hcl:"tier,block"`
	Remain hcl.Body   `hcl:",remain"`
}

type hclTier struct {
	Label    string   `hcl:"level,label"`
	Name     string   `hcl:"name,optional"`
	Nodes    []int    `hcl:"nodes"`
	Edges    []int    `hcl:"edges"`
	Grid     []int    `hcl:"grid"`
	Patterns []string `hcl:"patterns,optional"`
}

// evalContext exposes the global bounds to tier expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"min_nodes": cty.NumberIntVal(MinNodes),
			"max_edges": cty.NumberIntVal(MaxEdges),
		},
	}
}

// Default decodes the embedded tier table. It panics only if the embedded
// file is broken, which the package tests guard against.
func Default() Table {
	t, err := Parse(defaultHCL, "default.hcl")
	if err != nil {
		panic(fmt.Sprintf("tier: embedded default.hcl: %v", err))
	}
	return t
}

// LoadFile reads and decodes a tier file.
func LoadFile(path string) (Table, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("tier: LoadFile: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source; filename is used in diagnostics.
//
// Steps:
//  1. Parse and decode with the global-bounds EvalContext.
//  2. Convert every block, validating label, ranges and pattern names.
//  3. Reject duplicate levels.
func Parse(src []byte, filename string) (Table, error) {
	// 1. Decode
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Table{}, fmt.Errorf("tier: parse %s: %w", filename, diags)
	}
	var root hclFile
	if diags = gohcl.DecodeBody(f.Body, evalContext(), &root); diags.HasErrors() {
		return Table{}, fmt.Errorf("tier: decode %s: %w", filename, diags)
	}

	// 2-3. Convert
	t := Table{tiers: make(map[int]Tier, len(root.Tiers))}
	for _, b := range root.Tiers {
		tr, err := b.convert()
		if err != nil {
			return Table{}, fmt.Errorf("tier: %s: %w", filename, err)
		}
		if _, dup := t.tiers[tr.Level]; dup {
			return Table{}, fmt.Errorf("tier: %s: tier %d declared twice: %w", filename, tr.Level, ErrBadTier)
		}
		t.tiers[tr.Level] = tr
	}
	return t, nil
}

// convert validates one block.
func (b *hclTier) convert() (Tier, error) {
	lvl, err := strconv.Atoi(b.Label)
	if err != nil || lvl < level.MinDifficulty || lvl > level.MaxDifficulty {
		return Tier{}, fmt.Errorf("tier %q: level must be %d..%d: %w",
			b.Label, level.MinDifficulty, level.MaxDifficulty, ErrBadTier)
	}

	nodes, err := pair("nodes", b.Nodes, MinNodes)
	if err != nil {
		return Tier{}, fmt.Errorf("tier %d: %w", lvl, err)
	}
	edges, err := pair("edges", b.Edges, 1)
	if err != nil {
		return Tier{}, fmt.Errorf("tier %d: %w", lvl, err)
	}
	if len(b.Grid) != 2 || b.Grid[0] <= 0 || b.Grid[1] <= 0 {
		return Tier{}, fmt.Errorf("tier %d: grid=%v must be two positive sides: %w", lvl, b.Grid, ErrBadTier)
	}

	patterns := b.Patterns
	if len(patterns) == 0 {
		patterns = templatePatterns()
	}
	for _, p := range patterns {
		if !builder.KnownPattern(p) {
			return Tier{}, fmt.Errorf("tier %d: pattern %q: %w", lvl, p, ErrBadTier)
		}
	}

	return Tier{
		Level:    lvl,
		Name:     b.Name,
		Nodes:    nodes,
		Edges:    edges,
		Grid:     Extent{Width: b.Grid[0], Height: b.Grid[1]},
		Patterns: append([]string(nil), patterns...),
	}, nil
}

// pair validates a two-element [min, max] list with min >= floor.
func pair(field string, v []int, floor int) (Range, error) {
	if len(v) != 2 {
		return Range{}, fmt.Errorf("%s=%v must have 2 elements: %w", field, v, ErrBadTier)
	}
	r := Range{Min: v[0], Max: v[1]}
	if r.Min < floor || r.Max < r.Min {
		return Range{}, fmt.Errorf("%s=[%d,%d] must satisfy %d <= min <= max: %w", field, r.Min, r.Max, floor, ErrBadTier)
	}
	return r, nil
}

// templatePatterns is the default pattern set: every template except the
// safe-random placement, which the safe generator uses on its own.
func templatePatterns() []string {
	var out []string
	for _, p := range builder.Patterns() {
		if p != builder.PatternSafeRandom {
			out = append(out, p)
		}
	}
	return out
}
