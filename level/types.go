package level

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Difficulty bounds accepted by Validate.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Node is a puzzle vertex with logical (grid-relative) coordinates.
type Node struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Edge is an undirected connection between two node IDs.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// EdgeKey is the canonical, comparable identity of an undirected edge:
// its endpoints in ascending order.
type EdgeKey struct {
	Lo, Hi int
}

// KeyOf returns the canonical key of the unordered pair {a, b}.
func KeyOf(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{Lo: a, Hi: b}
}

// Key returns the canonical key of e.
func (e Edge) Key() EdgeKey { return KeyOf(e.From, e.To) }

// Other returns the endpoint of e opposite to id.
// For an id that is not an endpoint it returns (0, false).
func (e Edge) Other(id int) (int, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}
	return 0, false
}

// String renders the key as "lo-hi".
func (k EdgeKey) String() string {
	return strconv.Itoa(k.Lo) + "-" + strconv.Itoa(k.Hi)
}

// GridSize is the nominal layout extent. It is serialized as a two-element
// JSON array [width, height].
type GridSize struct {
	Width, Height float64
}

// MarshalJSON encodes g as [width, height].
func (g GridSize) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{g.Width, g.Height})
}

// UnmarshalJSON decodes [width, height].
func (g *GridSize) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("level: gridSize: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("level: gridSize has %d elements, want 2: %w", len(pair), ErrBadGridSize)
	}
	g.Width, g.Height = pair[0], pair[1]
	return nil
}

// ExtentOf derives the nominal grid extent of a layout: the ceiling of the
// largest coordinate on each axis plus one unit of margin. An empty layout
// yields {1, 1}.
func ExtentOf(nodes []Node) GridSize {
	var maxX, maxY float64
	for _, n := range nodes {
		maxX = math.Max(maxX, n.X)
		maxY = math.Max(maxY, n.Y)
	}
	return GridSize{Width: math.Ceil(maxX) + 1, Height: math.Ceil(maxY) + 1}
}

// Level is one catalog entry: a small planar graph plus layout metadata.
// Node and edge order carries no meaning for the game logic but is kept
// stable for display and for deterministic search order.
type Level struct {
	ID         int      `json:"levelId"`
	Difficulty int      `json:"difficulty"`
	Grid       GridSize `json:"gridSize"`
	Nodes      []Node   `json:"nodes"`
	Edges      []Edge   `json:"edges"`
}

// Clone returns a deep copy of l.
func (l Level) Clone() Level {
	out := l
	out.Nodes = append([]Node(nil), l.Nodes...)
	out.Edges = append([]Edge(nil), l.Edges...)
	return out
}

// NodeByID returns the node with the given ID.
func (l Level) NodeByID(id int) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NodeIDs returns node IDs in declaration order.
func (l Level) NodeIDs() []int {
	ids := make([]int, len(l.Nodes))
	for i, n := range l.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// HasEdge reports whether an edge joins a and b in either orientation.
func (l Level) HasEdge(a, b int) bool {
	return HasEdge(l.Edges, a, b)
}

// HasEdge reports whether edges contains the unordered pair {a, b}.
// Complexity: O(len(edges)).
func HasEdge(edges []Edge, a, b int) bool {
	k := KeyOf(a, b)
	for _, e := range edges {
		if e.Key() == k {
			return true
		}
	}
	return false
}

// RemoveEdge returns edges without the first edge matching {a, b}, and
// whether one was removed. The input slice is not modified.
func RemoveEdge(edges []Edge, a, b int) ([]Edge, bool) {
	k := KeyOf(a, b)
	for i, e := range edges {
		if e.Key() == k {
			out := make([]Edge, 0, len(edges)-1)
			out = append(out, edges[:i]...)
			return append(out, edges[i+1:]...), true
		}
	}
	return edges, false
}
