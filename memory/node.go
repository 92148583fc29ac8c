package memory

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/flow"
)

// AddNode appends a node to a graph.
// The node must carry an id; the editor generates them.
func (s *Store) AddNode(_ context.Context, graphID string, node *flow.Node) (string, error) {
	if node.ID == "" {
		return "", fmt.Errorf("flow: add node: empty id")
	}
	if node.Type == "" {
		node.Type = flow.NodeDefault
	}
	if !node.Type.Valid() {
		return "", fmt.Errorf("flow: add node: unknown type %q", node.Type)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.lookup(graphID)
	if err != nil {
		return "", err
	}
	if g.NodeByID(node.ID) != nil {
		return "", fmt.Errorf("flow: add node: duplicate id %q", node.ID)
	}
	g.Nodes = append(g.Nodes, *node)
	return node.ID, nil
}

// GetNode fetches a single node.
// Returns nil, nil if not found.
func (s *Store) GetNode(_ context.Context, graphID, nodeID string) (*flow.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, err := s.lookup(graphID)
	if err != nil {
		return nil, err
	}
	n := g.NodeByID(nodeID)
	if n == nil {
		return nil, nil
	}
	out := *n
	return &out, nil
}

// ListNodes returns all nodes of a graph in insertion order.
// Returns an empty slice (not nil) if none found.
func (s *Store) ListNodes(_ context.Context, graphID string) ([]flow.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, err := s.lookup(graphID)
	if err != nil {
		return nil, err
	}
	return append([]flow.Node{}, g.Nodes...), nil
}
