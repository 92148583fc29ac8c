package flow

// DefaultThreshold is the distance below which a dragged node is offered a
// connection to its nearest neighbour.
const DefaultThreshold = 150.0

// NodeType tags how a node is rendered and which handles it exposes.
type NodeType string

const (
	NodeInput   NodeType = "input"
	NodeOutput  NodeType = "output"
	NodeDefault NodeType = "default"
)

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeInput, NodeOutput, NodeDefault:
		return true
	}
	return false
}

// EdgeType tags how an edge is rendered.
type EdgeType string

const (
	EdgeDefault EdgeType = "default"
	EdgeButton  EdgeType = "buttonedge"
)

// Valid reports whether t is one of the known edge types.
func (t EdgeType) Valid() bool {
	return t == EdgeDefault || t == EdgeButton
}

// MarkerType is the terminator drawn at the end of an edge.
type MarkerType string

const (
	MarkerArrow       MarkerType = "arrow"
	MarkerArrowClosed MarkerType = "arrowclosed"
)

// Graph is one editor canvas: its nodes and edges.
type Graph struct {
	ID    string `json:"id"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Position is a point in canvas coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData is the display payload of a node.
type NodeData struct {
	Label string `json:"label"`
}

// Node represents a vertex on the canvas.
type Node struct {
	ID       string   `json:"id"`
	Type     NodeType `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// Marker decorates the end of an edge.
type Marker struct {
	Type MarkerType `json:"type"`
}

// Edge represents a directed connection between two nodes.
// Transient edges are proximity suggestions that have not been confirmed.
type Edge struct {
	ID        string   `json:"id"`
	Source    string   `json:"source"`
	Target    string   `json:"target"`
	Type      EdgeType `json:"type"`
	MarkerEnd *Marker  `json:"markerEnd,omitempty"`
	Transient bool     `json:"transient,omitempty"`
}

// DragEvent is reported by the canvas on every drag movement.
type DragEvent struct {
	NodeID   string   `json:"nodeId"`
	Position Position `json:"position"`
}

// ConnectEvent is reported by the canvas when the user draws a connection
// between two handles.
type ConnectEvent struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	out := &Graph{
		ID:    g.ID,
		Nodes: append([]Node{}, g.Nodes...),
		Edges: cloneEdges(g.Edges),
	}
	return out
}

// NodeByID returns a pointer into g.Nodes, or nil.
func (g *Graph) NodeByID(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

func cloneEdges(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		if e.MarkerEnd != nil {
			m := *e.MarkerEnd
			e.MarkerEnd = &m
		}
		out[i] = e
	}
	return out
}
