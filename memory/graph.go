package memory

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/flow"
)

// CreateGraph saves a full graph (nodes + edges).
// Returns ErrGraphExists if the id is taken.
func (s *Store) CreateGraph(_ context.Context, g *flow.Graph) (*flow.Graph, error) {
	if g.ID == "" {
		return nil, fmt.Errorf("flow: create graph: empty id")
	}
	if g.Nodes == nil {
		g.Nodes = []flow.Node{}
	}
	if g.Edges == nil {
		g.Edges = []flow.Edge{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[g.ID]; ok {
		return nil, flow.ErrGraphExists
	}
	s.graphs[g.ID] = g.Clone()
	s.order = append(s.order, g.ID)
	return g, nil
}

// GetGraph returns a copy of the graph.
// Returns nil, nil if no graph exists for the id.
func (s *Store) GetGraph(_ context.Context, graphID string) (*flow.Graph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.graphs[graphID]
	if !ok {
		return nil, nil
	}
	return g.Clone(), nil
}

// DeleteGraph removes a graph.
// No error if the graph doesn't exist.
func (s *Store) DeleteGraph(_ context.Context, graphID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graphs[graphID]; !ok {
		return nil
	}
	delete(s.graphs, graphID)
	for i, id := range s.order {
		if id == graphID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ListGraphs returns graph ids in creation order.
func (s *Store) ListGraphs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string{}, s.order...), nil
}

// Update runs fn on a working copy and swaps it in if fn succeeds.
func (s *Store) Update(ctx context.Context, graphID string, fn func(g *flow.Graph) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.graphs[graphID]
	if !ok {
		return flow.ErrGraphNotFound
	}
	work := g.Clone()
	if err := fn(work); err != nil {
		return err
	}
	s.graphs[graphID] = work
	return nil
}

// lookup returns the stored graph. Caller must hold s.mu.
func (s *Store) lookup(graphID string) (*flow.Graph, error) {
	g, ok := s.graphs[graphID]
	if !ok {
		return nil, flow.ErrGraphNotFound
	}
	return g, nil
}
