package validate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/onestroke/euler"
	"github.com/katalvlaran/onestroke/geometry"
	"github.com/katalvlaran/onestroke/level"
)

var (
	// ErrOddDegree indicates an odd-degree count other than 0 or 2.
	ErrOddDegree = errors.New("validate: odd-degree count is not 0 or 2")

	// ErrDisconnected indicates the edges do not connect every node.
	ErrDisconnected = errors.New("validate: graph is disconnected")

	// ErrUnsolvable indicates no complete walk was found.
	ErrUnsolvable = errors.New("validate: no complete walk")

	// ErrOverlap indicates an edge passing through a third node.
	ErrOverlap = errors.New("validate: edge passes through a node")
)

// Option configures Check.
type Option func(*checkConfig)

type checkConfig struct {
	guard     geometry.Guard
	stepLimit int
}

// WithGuard sets the overlap tolerance.
func WithGuard(g geometry.Guard) Option {
	return func(c *checkConfig) { c.guard = g }
}

// WithStepLimit bounds the solvability search. Panics if n <= 0.
func WithStepLimit(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("validate: WithStepLimit(%d): must be > 0", n))
	}
	return func(c *checkConfig) { c.stepLimit = n }
}

// Report is the verdict on one level.
type Report struct {
	LevelID   int
	Valid     bool
	Reason    string
	Err       error
	Nodes     int
	Edges     int
	OddDegree int
	Connected bool
	Solvable  bool
	Overlaps  []geometry.Overlap
	Walk      euler.Walk
}

// String renders a one-line summary.
func (r Report) String() string {
	if r.Valid {
		return fmt.Sprintf("level %d: ok (%d nodes, %d edges, %d odd)", r.LevelID, r.Nodes, r.Edges, r.OddDegree)
	}
	return fmt.Sprintf("level %d: invalid: %s", r.LevelID, r.Reason)
}

// Check evaluates l. Fields are filled as far as the checks get: structural
// failures stop early, the other checks all run so the report is complete.
// The search only runs when the degree and connectivity checks pass.
//
// Complexity: O(V·E) for overlaps plus the search.
func Check(l level.Level, opts ...Option) Report {
	var cfg checkConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := Report{LevelID: l.ID, Nodes: len(l.Nodes), Edges: len(l.Edges)}

	// 1. Structure
	if err := l.Validate(); err != nil {
		return r.fail(err)
	}

	// 2-3. Degree and connectivity
	r.OddDegree = len(euler.OddDegreeNodes(l.Nodes, l.Edges))
	r.Connected = euler.IsConnected(l.Nodes, l.Edges)
	r.Overlaps = cfg.guard.OverlappingEdges(l)

	if r.OddDegree != 0 && r.OddDegree != 2 {
		return r.fail(fmt.Errorf("level %d: %d odd nodes: %w", l.ID, r.OddDegree, ErrOddDegree))
	}
	if !r.Connected {
		return r.fail(fmt.Errorf("level %d: %w", l.ID, ErrDisconnected))
	}

	// 4. Solvability
	var sopts []euler.Option
	if cfg.stepLimit > 0 {
		sopts = append(sopts, euler.WithStepLimit(cfg.stepLimit))
	}
	r.Walk, r.Solvable = euler.Solve(l.Nodes, l.Edges, sopts...)
	if !r.Solvable {
		return r.fail(fmt.Errorf("level %d: %w", l.ID, ErrUnsolvable))
	}

	// 5. Overlaps
	if len(r.Overlaps) > 0 {
		return r.fail(fmt.Errorf("level %d: %d overlaps, first %s: %w", l.ID, len(r.Overlaps), r.Overlaps[0], ErrOverlap))
	}

	r.Valid = true
	return r
}

func (r Report) fail(err error) Report {
	r.Valid = false
	r.Err = err
	r.Reason = err.Error()
	return r
}

// Level is Check reduced to an error: nil when l is valid.
func Level(l level.Level, opts ...Option) error {
	return Check(l, opts...).Err
}

// CheckCatalog returns one report per level, in catalog order.
func CheckCatalog(cat level.Catalog, opts ...Option) []Report {
	out := make([]Report, 0, len(cat))
	for _, l := range cat {
		out = append(out, Check(l, opts...))
	}
	return out
}

// Invalid filters reports down to the failing ones.
func Invalid(reports []Report) []Report {
	var out []Report
	for _, r := range reports {
		if !r.Valid {
			out = append(out, r)
		}
	}
	return out
}

// Duplicates groups level IDs that share a fingerprint. Only groups with
// more than one member are returned, ordered by their smallest ID.
func Duplicates(cat level.Catalog) [][]int {
	byFP := make(map[string][]int)
	for _, l := range cat {
		fp := l.Fingerprint().String()
		byFP[fp] = append(byFP[fp], l.ID)
	}

	var out [][]int
	for _, ids := range byFP {
		if len(ids) > 1 {
			sort.Ints(ids)
			out = append(out, ids)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}
