package flow

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SuggestionID returns the id of a proximity edge offered while dragged is
// near neighbour.
func SuggestionID(dragged, neighbour string) string {
	return dragged + "-" + neighbour
}

// ClosestEdge finds the node nearest to the dragged node's live position and
// returns the edge that would connect them. It returns false when no other
// node is closer than threshold.
//
// The node further left becomes the source. On equal x the dragged node is
// the source.
func ClosestEdge(ev DragEvent, nodes []Node, threshold float64) (Edge, bool) {
	var (
		closest *Node
		best    = math.MaxFloat64
	)
	for i := range nodes {
		n := &nodes[i]
		if n.ID == ev.NodeID {
			continue
		}
		d := Distance(n.Position, ev.Position)
		if d < best && d < threshold {
			best = d
			closest = n
		}
	}
	if closest == nil {
		return Edge{}, false
	}

	source, target := ev.NodeID, closest.ID
	if closest.Position.X < ev.Position.X {
		source, target = closest.ID, ev.NodeID
	}
	return Edge{
		ID:        SuggestionID(ev.NodeID, closest.ID),
		Source:    source,
		Target:    target,
		Type:      EdgeButton,
		Transient: true,
	}, true
}

// ApplySuggestion returns edges with every transient edge removed and, if s
// is non-nil and its pair is not already connected, s appended as the only
// transient edge. If a committed edge on another pair already uses s.ID the
// suggestion gets a suffixed id. The input slice is not modified.
func ApplySuggestion(edges []Edge, s *Edge) []Edge {
	next := DiscardSuggestion(edges)
	if s == nil || HasConnection(next, s.Source, s.Target) {
		return next
	}
	sugg := *s
	sugg.ID = UniqueEdgeID(next, s.ID)
	sugg.Transient = true
	return append(next, sugg)
}

// DiscardSuggestion returns a copy of edges without transient edges.
func DiscardSuggestion(edges []Edge) []Edge {
	next := make([]Edge, 0, len(edges)+1)
	for _, e := range edges {
		if !e.Transient {
			next = append(next, e)
		}
	}
	return next
}

// CommitSuggestion turns the current transient edge into a committed one.
// It returns the committed edge, or nil if there was nothing to commit. A
// suggestion whose pair was connected in the meantime is dropped instead.
func CommitSuggestion(edges []Edge) ([]Edge, *Edge) {
	s := Suggestion(edges)
	next := DiscardSuggestion(edges)
	if s == nil || HasConnection(next, s.Source, s.Target) {
		return next, nil
	}
	s.Transient = false
	s.ID = UniqueEdgeID(next, s.ID)
	return append(next, *s), s
}

// Suggestion returns the transient edge in edges, if any.
func Suggestion(edges []Edge) *Edge {
	for _, e := range edges {
		if e.Transient {
			s := e
			return &s
		}
	}
	return nil
}
