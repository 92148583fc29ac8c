package flow

import (
	"context"
	"errors"
)

var (
	ErrGraphNotFound    = errors.New("flow: graph not found")
	ErrGraphExists      = errors.New("flow: graph already exists")
	ErrNodeNotFound     = errors.New("flow: node not found")
	ErrEdgeNotFound     = errors.New("flow: edge not found")
	ErrDuplicateEdge    = errors.New("flow: edge between these nodes already exists")
	ErrEdgeIDTaken      = errors.New("flow: edge id already in use")
	ErrInvalidThreshold = errors.New("flow: threshold must be positive")
)

// Store defines the contract for holding the live node and edge collections
// of every open canvas.
type Store interface {
	// Graphs
	CreateGraph(ctx context.Context, g *Graph) (*Graph, error)
	GetGraph(ctx context.Context, graphID string) (*Graph, error)
	DeleteGraph(ctx context.Context, graphID string) error
	ListGraphs(ctx context.Context) ([]string, error)

	// Nodes
	AddNode(ctx context.Context, graphID string, node *Node) (string, error)
	GetNode(ctx context.Context, graphID, nodeID string) (*Node, error)
	ListNodes(ctx context.Context, graphID string) ([]Node, error)

	// Edges
	AddEdge(ctx context.Context, graphID string, edge *Edge) (string, error)
	GetEdge(ctx context.Context, graphID, edgeID string) (*Edge, error)
	DeleteEdge(ctx context.Context, graphID, edgeID string) error
	ListEdges(ctx context.Context, graphID string) ([]Edge, error)

	// Update runs fn against the graph while holding it exclusively.
	// Changes fn makes are kept only if it returns nil.
	Update(ctx context.Context, graphID string, fn func(g *Graph) error) error
}
