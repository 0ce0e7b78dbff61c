package level_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/onestroke/level"
)

// triangle returns the canonical three-node closed trail used across tests.
func triangle() level.Level {
	return level.Level{
		ID:         1,
		Difficulty: 1,
		Grid:       level.GridSize{Width: 3, Height: 3},
		Nodes: []level.Node{
			{ID: 1, X: 1, Y: 0},
			{ID: 2, X: 0, Y: 2},
			{ID: 3, X: 2, Y: 2},
		},
		Edges: []level.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}},
	}
}

func TestKeyOf_Canonical(t *testing.T) {
	assert.Equal(t, level.KeyOf(1, 2), level.KeyOf(2, 1))
	assert.Equal(t, "1-2", level.KeyOf(2, 1).String())
	assert.Equal(t, level.EdgeKey{Lo: 3, Hi: 7}, level.Edge{From: 7, To: 3}.Key())
}

func TestEdge_Other(t *testing.T) {
	e := level.Edge{From: 4, To: 9}
	o, ok := e.Other(4)
	assert.True(t, ok)
	assert.Equal(t, 9, o)
	o, ok = e.Other(9)
	assert.True(t, ok)
	assert.Equal(t, 4, o)
	_, ok = e.Other(5)
	assert.False(t, ok)
}

func TestLevel_JSONShape(t *testing.T) {
	raw := `{"levelId":7,"difficulty":2,"gridSize":[4,5],
		"nodes":[{"id":1,"x":0.5,"y":1},{"id":2,"x":2,"y":3}],
		"edges":[{"from":1,"to":2}]}`
	var l level.Level
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	assert.Equal(t, 7, l.ID)
	assert.Equal(t, level.GridSize{Width: 4, Height: 5}, l.Grid)
	assert.Len(t, l.Nodes, 2)
	assert.True(t, l.HasEdge(2, 1))

	out, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"gridSize":[4,5]`)
	assert.Contains(t, string(out), `"levelId":7`)
}

func TestGridSize_WrongArity(t *testing.T) {
	var g level.GridSize
	err := json.Unmarshal([]byte(`[1,2,3]`), &g)
	assert.ErrorIs(t, err, level.ErrBadGridSize)
}

func TestLevel_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(l *level.Level)
		want   error
	}{
		{"ok", func(*level.Level) {}, nil},
		{"zero id", func(l *level.Level) { l.ID = 0 }, level.ErrBadLevelID},
		{"difficulty high", func(l *level.Level) { l.Difficulty = 6 }, level.ErrBadDifficulty},
		{"difficulty low", func(l *level.Level) { l.Difficulty = 0 }, level.ErrBadDifficulty},
		{"grid", func(l *level.Level) { l.Grid.Height = 0 }, level.ErrBadGridSize},
		{"node id", func(l *level.Level) { l.Nodes[0].ID = -1 }, level.ErrBadNodeID},
		{"dup node", func(l *level.Level) { l.Nodes[1].ID = 1 }, level.ErrDuplicateNode},
		{"dangling", func(l *level.Level) { l.Edges[0].To = 99 }, level.ErrDanglingEdge},
		{"self loop", func(l *level.Level) { l.Edges[0] = level.Edge{From: 2, To: 2} }, level.ErrSelfLoop},
		{"parallel", func(l *level.Level) { l.Edges = append(l.Edges, level.Edge{From: 2, To: 1}) }, level.ErrParallelEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := triangle()
			tc.mutate(&l)
			err := l.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClone_IsDeep(t *testing.T) {
	l := triangle()
	c := l.Clone()
	c.Nodes[0].X = 42
	c.Edges[0].To = 3
	assert.Equal(t, 1.0, l.Nodes[0].X)
	assert.Equal(t, 2, l.Edges[0].To)
}

func TestRemoveEdge_DoesNotMutate(t *testing.T) {
	l := triangle()
	out, ok := level.RemoveEdge(l.Edges, 3, 2)
	assert.True(t, ok)
	assert.Len(t, out, 2)
	assert.Len(t, l.Edges, 3)
	assert.False(t, level.HasEdge(out, 2, 3))

	same, ok := level.RemoveEdge(l.Edges, 1, 9)
	assert.False(t, ok)
	assert.Len(t, same, 3)
}

func TestDegrees_AndOdd(t *testing.T) {
	nodes := []level.Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	edges := []level.Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 4}}
	deg := level.Degrees(nodes, edges)
	assert.Equal(t, level.DegreeTable{1: 1, 2: 2, 3: 2, 4: 1, 5: 0}, deg)
	assert.Equal(t, []int{1, 4}, deg.Odd(nodes))
	assert.Equal(t, []int{0, 1, 1, 2, 2}, deg.Sorted())
}

func TestFingerprint_IgnoresCoordinates(t *testing.T) {
	a := triangle()
	b := triangle()
	for i := range b.Nodes {
		b.Nodes[i].X += 10
	}
	assert.Equal(t, "3-3-2,2,2", a.Fingerprint().String())
	assert.Equal(t, a.Fingerprint().String(), b.Fingerprint().String())

	b.Edges = b.Edges[:2]
	assert.Equal(t, "3-2-1,1,2", b.Fingerprint().String())
}

func TestCatalog_Lookup(t *testing.T) {
	cat := level.Catalog{triangle()}
	got, err := cat.Lookup(1)
	require.NoError(t, err)
	if diff := cmp.Diff(triangle(), got); diff != "" {
		t.Errorf("Lookup mismatch (-want +got):\n%s", diff)
	}

	_, err = cat.Lookup(404)
	assert.ErrorIs(t, err, level.ErrLevelNotFound)
	assert.Contains(t, err.Error(), "404")
}

func TestCatalog_ReplaceAppend(t *testing.T) {
	cat := level.Catalog{triangle()}
	l2 := triangle()
	l2.ID = 2
	require.NoError(t, cat.Append(l2))
	assert.ErrorIs(t, cat.Append(l2), level.ErrDuplicateLevel)
	assert.Equal(t, []int{1, 2}, cat.IDs())
	assert.Equal(t, 2, cat.MaxID())

	repl := triangle()
	repl.Difficulty = 3
	assert.True(t, cat.Replace(repl))
	assert.Equal(t, 3, cat[0].Difficulty)

	repl.ID = 99
	assert.False(t, cat.Replace(repl))
}

func TestCatalog_FingerprintsAndValidate(t *testing.T) {
	l2 := triangle()
	l2.ID = 2
	l2.Edges = l2.Edges[:2]
	cat := level.Catalog{triangle(), l2}

	assert.Equal(t, []string{"3-3-2,2,2", "3-2-1,1,2"}, cat.Fingerprints(0))
	assert.Equal(t, []string{"3-2-1,1,2"}, cat.Fingerprints(1))
	assert.NoError(t, cat.Validate())

	cat = append(cat, triangle())
	assert.ErrorIs(t, cat.Validate(), level.ErrDuplicateLevel)
	assert.ErrorIs(t, cat.UniqueIDs(), level.ErrDuplicateLevel)
}

func TestCatalog_UniqueIDsIgnoresMalformedLevels(t *testing.T) {
	bad := triangle()
	bad.ID = 2
	bad.Edges = append(bad.Edges, level.Edge{From: 2, To: 1})
	cat := level.Catalog{triangle(), bad}

	assert.NoError(t, cat.UniqueIDs())
	assert.ErrorIs(t, cat.Validate(), level.ErrParallelEdge)
}

func TestLevel_NodeByID(t *testing.T) {
	l := triangle()
	n, ok := l.NodeByID(2)
	require.True(t, ok)
	assert.Equal(t, level.Node{ID: 2, X: 0, Y: 2}, n)

	_, ok = l.NodeByID(9)
	assert.False(t, ok)
}

func TestCatalog_SortByID(t *testing.T) {
	a, b := triangle(), triangle()
	a.ID, b.ID = 5, 2
	cat := level.Catalog{a, b}
	cat.SortByID()
	assert.Equal(t, []int{2, 5}, cat.IDs())
}

func TestExtentOf(t *testing.T) {
	assert.Equal(t, level.GridSize{Width: 4, Height: 3}, level.ExtentOf([]level.Node{
		{ID: 1, X: 2.2, Y: 0.5},
		{ID: 2, X: 0.1, Y: 1.9},
	}))
	assert.Equal(t, level.GridSize{Width: 1, Height: 1}, level.ExtentOf(nil))
}
