package flow

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id string, x, y float64) Node {
	return Node{ID: id, Type: NodeDefault, Position: Position{X: x, Y: y}}
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Position{X: 0, Y: 0}, Position{X: 3, Y: 4}))
	assert.Equal(t, 0.0, Distance(Position{X: 7, Y: -2}, Position{X: 7, Y: -2}))
}

func TestClosestEdgeScenario(t *testing.T) {
	nodes := []Node{node("A", 0, 0), node("B", 100, 0)}

	s, ok := ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 90, Y: 0}}, nodes, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "A-B", s.ID)
	assert.Equal(t, "A", s.Source)
	assert.Equal(t, "B", s.Target)
	assert.Equal(t, EdgeButton, s.Type)
	assert.True(t, s.Transient)

	_, ok = ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 300, Y: 0}}, nodes, DefaultThreshold)
	assert.False(t, ok)
}

func TestClosestEdgeSourceIsLeftmost(t *testing.T) {
	nodes := []Node{node("A", 0, 0), node("B", 100, 0)}

	// Dragging A to the right of B makes B the source.
	s, ok := ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 180, Y: 10}}, nodes, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "A-B", s.ID)
	assert.Equal(t, "B", s.Source)
	assert.Equal(t, "A", s.Target)

	// Dragging B to the left of A makes B the source as well.
	s, ok = ClosestEdge(DragEvent{NodeID: "B", Position: Position{X: -50, Y: 0}}, nodes, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "B-A", s.ID)
	assert.Equal(t, "B", s.Source)
	assert.Equal(t, "A", s.Target)
}

func TestClosestEdgeEqualXDraggedIsSource(t *testing.T) {
	nodes := []Node{node("A", 0, 0), node("B", 0, 100)}
	s, ok := ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 0, Y: 20}}, nodes, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "A", s.Source)
	assert.Equal(t, "B", s.Target)
}

func TestClosestEdgeCoincidentNodes(t *testing.T) {
	nodes := []Node{node("A", 0, 0), node("B", 40, 70), node("C", 500, 500)}
	s, ok := ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 40, Y: 70}}, nodes, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "A-B", s.ID)
}

func TestClosestEdgeExcludesSelf(t *testing.T) {
	// The stored position of the dragged node is exactly the live position.
	nodes := []Node{node("A", 10, 10)}
	_, ok := ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 10, Y: 10}}, nodes, DefaultThreshold)
	assert.False(t, ok)
}

func TestClosestEdgeThresholdIsStrict(t *testing.T) {
	nodes := []Node{node("A", 0, 0), node("B", 150, 0)}
	_, ok := ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 0, Y: 0}}, nodes, DefaultThreshold)
	assert.False(t, ok)

	_, ok = ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 0.5, Y: 0}}, nodes, DefaultThreshold)
	assert.True(t, ok)
}

func TestClosestEdgePicksNearest(t *testing.T) {
	nodes := []Node{node("A", 0, 0), node("far", 120, 0), node("near", 0, 30), node("C", 1000, 0)}
	s, ok := ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 0, Y: 0}}, nodes, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "A-near", s.ID)
}

func TestClosestEdgeTieGoesToFirst(t *testing.T) {
	nodes := []Node{node("A", 0, 0), node("L", -50, 100), node("R", 50, 100)}
	s, ok := ClosestEdge(DragEvent{NodeID: "A", Position: Position{X: 0, Y: 100}}, nodes, DefaultThreshold)
	require.True(t, ok)
	assert.Equal(t, "A-L", s.ID)
}

func TestClosestEdgeFarPairsNeverSuggest(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a := Position{X: r.Float64() * 1000, Y: r.Float64() * 1000}
		b := Position{X: r.Float64() * 1000, Y: r.Float64() * 1000}
		nodes := []Node{{ID: "A", Position: a}, {ID: "B", Position: b}}
		s, ok := ClosestEdge(DragEvent{NodeID: "A", Position: a}, nodes, DefaultThreshold)
		if Distance(a, b) >= DefaultThreshold {
			assert.False(t, ok, "pair %v %v", a, b)
			continue
		}
		require.True(t, ok)
		left := "A"
		if b.X < a.X {
			left = "B"
		}
		assert.Equal(t, left, s.Source)
	}
}

func TestApplySuggestion(t *testing.T) {
	committed := Edge{ID: "e1-3", Source: "1", Target: "3", Type: EdgeButton}
	old := Edge{ID: "2-1", Source: "1", Target: "2", Type: EdgeButton, Transient: true}
	edges := []Edge{committed, old}

	t.Run("replaces previous suggestion", func(t *testing.T) {
		s := &Edge{ID: "2-3", Source: "2", Target: "3", Type: EdgeButton, Transient: true}
		next := ApplySuggestion(edges, s)
		assert.Equal(t, []Edge{committed, *s}, next)
		// Input untouched.
		assert.Len(t, edges, 2)
		assert.Equal(t, old, edges[1])
	})

	t.Run("nil retracts", func(t *testing.T) {
		assert.Equal(t, []Edge{committed}, ApplySuggestion(edges, nil))
	})

	t.Run("duplicate of committed pair is dropped", func(t *testing.T) {
		s := &Edge{ID: "3-1", Source: "1", Target: "3", Type: EdgeButton, Transient: true}
		assert.Equal(t, []Edge{committed}, ApplySuggestion(edges, s))
	})

	t.Run("reverse pair is not a duplicate", func(t *testing.T) {
		s := &Edge{ID: "1-3", Source: "3", Target: "1", Type: EdgeButton, Transient: true}
		assert.Len(t, ApplySuggestion(edges, s), 2)
	})

	t.Run("id used by another committed pair gets a suffix", func(t *testing.T) {
		// Node "e1" dragged near "3" yields id "e1-3", which is also the id
		// of the hand-drawn 1 -> 3 edge.
		s := &Edge{ID: "e1-3", Source: "3", Target: "e1", Type: EdgeButton, Transient: true}
		next := ApplySuggestion(edges, s)
		require.Len(t, next, 2)
		assert.Equal(t, "e1-3~2", next[1].ID)
		assert.Equal(t, "3", next[1].Source)
		assert.Equal(t, "e1", next[1].Target)
	})

	t.Run("marks suggestion transient", func(t *testing.T) {
		s := &Edge{ID: "2-3", Source: "2", Target: "3"}
		next := ApplySuggestion(nil, s)
		require.Len(t, next, 1)
		assert.True(t, next[0].Transient)
		assert.False(t, s.Transient)
	})
}

func TestApplySuggestionIsIdempotent(t *testing.T) {
	nodes := []Node{node("A", 0, 0), node("B", 100, 0)}
	ev := DragEvent{NodeID: "A", Position: Position{X: 90, Y: 0}}
	s, ok := ClosestEdge(ev, nodes, DefaultThreshold)
	require.True(t, ok)

	once := ApplySuggestion(nil, &s)
	twice := ApplySuggestion(once, &s)
	assert.Equal(t, once, twice)
}

func TestAtMostOneTransientEdge(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	nodes := make([]Node, 12)
	for i := range nodes {
		nodes[i] = node(fmt.Sprintf("n%d", i), r.Float64()*600, r.Float64()*600)
	}
	edges := []Edge{{ID: "en0-n1", Source: "n0", Target: "n1", Type: EdgeButton}}

	for tick := 0; tick < 500; tick++ {
		dragged := &nodes[r.Intn(len(nodes))]
		dragged.Position = Position{X: r.Float64() * 600, Y: r.Float64() * 600}
		var sugg *Edge
		if s, ok := ClosestEdge(DragEvent{NodeID: dragged.ID, Position: dragged.Position}, nodes, DefaultThreshold); ok {
			sugg = &s
		}
		edges = ApplySuggestion(edges, sugg)

		transient := 0
		for _, e := range edges {
			if e.Transient {
				transient++
			}
		}
		require.LessOrEqual(t, transient, 1, "tick %d", tick)
		require.True(t, HasConnection(edges, "n0", "n1"))
	}
}

func TestCommitAndDiscardSuggestion(t *testing.T) {
	committed := Edge{ID: "e1-3", Source: "1", Target: "3", Type: EdgeButton}
	sugg := Edge{ID: "2-1", Source: "1", Target: "2", Type: EdgeButton, Transient: true}

	next, c := CommitSuggestion([]Edge{committed, sugg})
	require.NotNil(t, c)
	assert.Equal(t, "2-1", c.ID)
	assert.False(t, c.Transient)
	assert.Nil(t, Suggestion(next))
	assert.True(t, HasConnection(next, "1", "2"))

	next, c = CommitSuggestion([]Edge{committed})
	assert.Nil(t, c)
	assert.Equal(t, []Edge{committed}, next)

	// The pair was connected after the suggestion appeared.
	connected := Edge{ID: "e1-2", Source: "1", Target: "2", Type: EdgeButton}
	next, c = CommitSuggestion([]Edge{sugg, connected})
	assert.Nil(t, c)
	assert.Equal(t, []Edge{connected}, next)

	assert.Equal(t, []Edge{committed}, DiscardSuggestion([]Edge{sugg, committed}))
	assert.Equal(t, &sugg, Suggestion([]Edge{committed, sugg}))
}
