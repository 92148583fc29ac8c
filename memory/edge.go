package memory

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/flow"
)

// AddEdge appends a committed edge to a graph.
// Both endpoints must exist and the (source, target) pair must be new.
// A pending suggestion on the same pair or id is dropped.
// If edge.ID is empty a free id is derived from the pair.
func (s *Store) AddEdge(_ context.Context, graphID string, edge *flow.Edge) (string, error) {
	if edge.Type == "" {
		edge.Type = flow.EdgeDefault
	}
	if !edge.Type.Valid() {
		return "", fmt.Errorf("flow: add edge: unknown type %q", edge.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lookup(graphID)
	if err != nil {
		return "", err
	}
	for _, id := range []string{edge.Source, edge.Target} {
		if g.NodeByID(id) == nil {
			return "", fmt.Errorf("flow: add edge %s: %w", id, flow.ErrNodeNotFound)
		}
	}
	if flow.HasConnection(g.Edges, edge.Source, edge.Target) {
		return "", flow.ErrDuplicateEdge
	}
	if edge.ID == "" {
		edge.ID = flow.UniqueEdgeID(g.Edges, flow.ConnectionEdgeID(edge.Source, edge.Target))
	} else if flow.UniqueEdgeID(g.Edges, edge.ID) != edge.ID {
		return "", flow.ErrEdgeIDTaken
	}

	e := *edge
	if e.MarkerEnd != nil {
		m := *e.MarkerEnd
		e.MarkerEnd = &m
	}
	e.Transient = false
	g.Edges = append(flow.ClearSuggestion(g.Edges, e), e)
	return e.ID, nil
}

// GetEdge fetches a single edge.
// Returns nil, nil if not found.
func (s *Store) GetEdge(_ context.Context, graphID, edgeID string) (*flow.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, err := s.lookup(graphID)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges {
		if e.ID == edgeID {
			out := e
			return &out, nil
		}
	}
	return nil, nil
}

// DeleteEdge removes an edge.
// Returns ErrEdgeNotFound if the edge doesn't exist.
func (s *Store) DeleteEdge(_ context.Context, graphID, edgeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lookup(graphID)
	if err != nil {
		return err
	}
	next, ok := flow.RemoveEdge(g.Edges, edgeID)
	if !ok {
		return flow.ErrEdgeNotFound
	}
	g.Edges = next
	return nil
}

// ListEdges returns all edges of a graph in insertion order.
// Returns an empty slice (not nil) if none found.
func (s *Store) ListEdges(_ context.Context, graphID string) ([]flow.Edge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, err := s.lookup(graphID)
	if err != nil {
		return nil, err
	}
	return g.Clone().Edges, nil
}
