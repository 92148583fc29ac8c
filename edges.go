package flow

import "strconv"

// ConnectionEdgeID returns the id given to an edge the user drew by hand.
func ConnectionEdgeID(source, target string) string {
	return "e" + source + "-" + target
}

// HasConnection reports whether a committed edge from source to target exists.
func HasConnection(edges []Edge, source, target string) bool {
	for _, e := range edges {
		if !e.Transient && e.Source == source && e.Target == target {
			return true
		}
	}
	return false
}

// UniqueEdgeID returns base, or base with a "~n" suffix when a committed edge
// already uses it. Node ids may contain "-", so ids derived from two
// different pairs can collide.
func UniqueEdgeID(edges []Edge, base string) string {
	taken := make(map[string]bool, len(edges))
	for _, e := range edges {
		if !e.Transient {
			taken[e.ID] = true
		}
	}
	id := base
	for n := 2; taken[id]; n++ {
		id = base + "~" + strconv.Itoa(n)
	}
	return id
}

// ClearSuggestion returns a copy of edges without transient edges that sit on
// e's pair or share its id.
func ClearSuggestion(edges []Edge, e Edge) []Edge {
	next := make([]Edge, 0, len(edges)+1)
	for _, existing := range edges {
		if existing.Transient &&
			(existing.ID == e.ID || (existing.Source == e.Source && existing.Target == e.Target)) {
			continue
		}
		next = append(next, existing)
	}
	return next
}

// AddEdge commits a manual connection. The new edge is a buttonedge ending
// in an arrow. A transient suggestion on the same pair, or holding the same
// id, is replaced.
// Returns ErrDuplicateEdge if the pair is already connected.
func AddEdge(edges []Edge, ev ConnectEvent) ([]Edge, Edge, error) {
	if HasConnection(edges, ev.Source, ev.Target) {
		return edges, Edge{}, ErrDuplicateEdge
	}
	e := Edge{
		ID:        UniqueEdgeID(edges, ConnectionEdgeID(ev.Source, ev.Target)),
		Source:    ev.Source,
		Target:    ev.Target,
		Type:      EdgeButton,
		MarkerEnd: &Marker{Type: MarkerArrow},
	}
	return append(ClearSuggestion(edges, e), e), e, nil
}

// RemoveEdge returns edges without the edge with the given id, and whether
// it was present.
func RemoveEdge(edges []Edge, id string) ([]Edge, bool) {
	next := make([]Edge, 0, len(edges))
	found := false
	for _, e := range edges {
		if e.ID == id {
			found = true
			continue
		}
		next = append(next, e)
	}
	return next, found
}
