package flow

import (
	"context"
	"fmt"
	"log/slog"
)

// Editor applies canvas events to the graphs held in a Store.
type Editor struct {
	store     Store
	ids       IDGenerator
	logger    *slog.Logger
	threshold float64
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator sets the generator used for new graph and node ids.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Editor) { e.ids = g }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// WithThreshold sets the connection range used for drag suggestions.
func WithThreshold(t float64) Option {
	return func(e *Editor) { e.threshold = t }
}

// NewEditor creates an Editor backed by store.
func NewEditor(store Store, opts ...Option) (*Editor, error) {
	e := &Editor{
		store:     store,
		ids:       UUIDGenerator{},
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.threshold <= 0 {
		return nil, ErrInvalidThreshold
	}
	return e, nil
}

// Threshold returns the connection range in canvas units.
func (e *Editor) Threshold() float64 { return e.threshold }

// NewGraph creates a graph holding the seed nodes. If id is empty one is
// generated.
func (e *Editor) NewGraph(ctx context.Context, id string) (*Graph, error) {
	if id == "" {
		id = e.ids.NewID()
	}
	g, err := e.store.CreateGraph(ctx, &Graph{ID: id, Nodes: SeedNodes(), Edges: []Edge{}})
	if err != nil {
		return nil, err
	}
	e.logger.Info("graph created", "graph_id", g.ID, "nodes", len(g.Nodes))
	return g, nil
}

// Graph returns a snapshot of the graph.
func (e *Editor) Graph(ctx context.Context, graphID string) (*Graph, error) {
	g, err := e.store.GetGraph(ctx, graphID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNotFound
	}
	return g, nil
}

// AddNode appends a placeholder node with a fresh id.
func (e *Editor) AddNode(ctx context.Context, graphID string) (*Node, error) {
	n := NewPlaceholderNode(e.ids.NewID())
	if _, err := e.store.AddNode(ctx, graphID, &n); err != nil {
		return nil, err
	}
	e.logger.Debug("node added", "graph_id", graphID, "node_id", n.ID)
	return &n, nil
}

// Drag records the dragged node's new position and recomputes the proximity
// suggestion. It returns the suggestion now shown on the canvas, or nil.
func (e *Editor) Drag(ctx context.Context, graphID string, ev DragEvent) (*Edge, error) {
	var shown *Edge
	err := e.store.Update(ctx, graphID, func(g *Graph) error {
		n := g.NodeByID(ev.NodeID)
		if n == nil {
			return fmt.Errorf("flow: drag %s: %w", ev.NodeID, ErrNodeNotFound)
		}
		n.Position = ev.Position

		var sugg *Edge
		if s, ok := ClosestEdge(ev, g.Nodes, e.threshold); ok {
			sugg = &s
		}
		g.Edges = ApplySuggestion(g.Edges, sugg)
		shown = Suggestion(g.Edges)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if shown != nil {
		e.logger.Debug("edge suggested", "graph_id", graphID, "edge_id", shown.ID,
			"source", shown.Source, "target", shown.Target)
	}
	return shown, nil
}

// DragStop ends the drag of nodeID. With confirm the pending suggestion
// becomes a committed edge and is returned; otherwise it is discarded.
// A suggestion that does not involve nodeID is left alone.
func (e *Editor) DragStop(ctx context.Context, graphID, nodeID string, confirm bool) (*Edge, error) {
	var committed *Edge
	err := e.store.Update(ctx, graphID, func(g *Graph) error {
		if g.NodeByID(nodeID) == nil {
			return fmt.Errorf("flow: drag stop %s: %w", nodeID, ErrNodeNotFound)
		}
		s := Suggestion(g.Edges)
		if s == nil || (s.Source != nodeID && s.Target != nodeID) {
			return nil
		}
		if confirm {
			g.Edges, committed = CommitSuggestion(g.Edges)
		} else {
			g.Edges = DiscardSuggestion(g.Edges)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if committed != nil {
		e.logger.Info("suggestion committed", "graph_id", graphID, "edge_id", committed.ID)
	}
	return committed, nil
}

// Connect commits an edge the user drew between two nodes.
func (e *Editor) Connect(ctx context.Context, graphID string, ev ConnectEvent) (*Edge, error) {
	var added Edge
	err := e.store.Update(ctx, graphID, func(g *Graph) error {
		for _, id := range []string{ev.Source, ev.Target} {
			if g.NodeByID(id) == nil {
				return fmt.Errorf("flow: connect %s: %w", id, ErrNodeNotFound)
			}
		}
		edges, edge, err := AddEdge(g.Edges, ev)
		if err != nil {
			return err
		}
		g.Edges, added = edges, edge
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.logger.Info("edge connected", "graph_id", graphID, "edge_id", added.ID)
	return &added, nil
}

// DeleteEdge removes an edge from the graph.
func (e *Editor) DeleteEdge(ctx context.Context, graphID, edgeID string) error {
	if err := e.store.DeleteEdge(ctx, graphID, edgeID); err != nil {
		return err
	}
	e.logger.Info("edge deleted", "graph_id", graphID, "edge_id", edgeID)
	return nil
}
