package render

import (
	"strings"

	"github.com/meikuraledutech/flow"
)

// NodeRenderer draws one node type.
type NodeRenderer interface {
	RenderNode(b *strings.Builder, n flow.Node)
	// Handles reports which handles the node exposes.
	Handles() (source, target bool)
}

// EdgeRenderer draws one edge type.
type EdgeRenderer interface {
	RenderEdge(b *strings.Builder, e flow.Edge, geo EdgeGeometry)
}

// Registry maps type tags to renderers.
type Registry struct {
	nodes map[flow.NodeType]NodeRenderer
	edges map[flow.EdgeType]EdgeRenderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[flow.NodeType]NodeRenderer),
		edges: make(map[flow.EdgeType]EdgeRenderer),
	}
}

// DefaultRegistry registers the built-in node and edge renderers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterNode(flow.NodeInput, BoxNode{Source: true})
	r.RegisterNode(flow.NodeOutput, BoxNode{Target: true})
	r.RegisterNode(flow.NodeDefault, BoxNode{Source: true, Target: true})
	r.RegisterEdge(flow.EdgeDefault, DefaultEdge{})
	r.RegisterEdge(flow.EdgeButton, ButtonEdge{})
	return r
}

func (r *Registry) RegisterNode(t flow.NodeType, nr NodeRenderer) { r.nodes[t] = nr }

func (r *Registry) RegisterEdge(t flow.EdgeType, er EdgeRenderer) { r.edges[t] = er }

// Node returns the renderer for t, falling back to the default node.
func (r *Registry) Node(t flow.NodeType) NodeRenderer {
	if nr, ok := r.nodes[t]; ok {
		return nr
	}
	if nr, ok := r.nodes[flow.NodeDefault]; ok {
		return nr
	}
	return BoxNode{Source: true, Target: true}
}

// Edge returns the renderer for t, falling back to the default edge.
func (r *Registry) Edge(t flow.EdgeType) EdgeRenderer {
	if er, ok := r.edges[t]; ok {
		return er
	}
	if er, ok := r.edges[flow.EdgeDefault]; ok {
		return er
	}
	return DefaultEdge{}
}
