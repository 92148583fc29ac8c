package render

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/meikuraledutech/flow"
)

const (
	NodeWidth  = 150.0
	NodeHeight = 40.0

	// ButtonSize is the side of the delete control on a buttonedge.
	ButtonSize = 40.0

	padding   = 20.0
	arrowID   = "flow-arrow"
	handleRad = 4.0
)

// BoxNode draws a labelled rectangle with optional handles.
type BoxNode struct {
	Source bool
	Target bool
}

func (n BoxNode) Handles() (bool, bool) { return n.Source, n.Target }

func (n BoxNode) RenderNode(b *strings.Builder, node flow.Node) {
	x, y := node.Position.X, node.Position.Y
	fmt.Fprintf(b, `<g class="flow-node flow-node-%s" data-node-id="%s">`, esc(string(node.Type)), esc(node.ID))
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="3" fill="#fff" stroke="#1a192b"/>`,
		num(x), num(y), num(NodeWidth), num(NodeHeight))
	fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="middle" dominant-baseline="middle" font-size="12">%s</text>`,
		num(x+NodeWidth/2), num(y+NodeHeight/2), esc(node.Data.Label))
	if n.Target {
		fmt.Fprintf(b, `<circle class="flow-handle target" cx="%s" cy="%s" r="%s"/>`,
			num(x+NodeWidth/2), num(y), num(handleRad))
	}
	if n.Source {
		fmt.Fprintf(b, `<circle class="flow-handle source" cx="%s" cy="%s" r="%s"/>`,
			num(x+NodeWidth/2), num(y+NodeHeight), num(handleRad))
	}
	b.WriteString("</g>\n")
}

// DefaultEdge draws a plain bezier path.
type DefaultEdge struct{}

func (DefaultEdge) RenderEdge(b *strings.Builder, e flow.Edge, geo EdgeGeometry) {
	writePath(b, e, BezierPath(geo))
}

// ButtonEdge draws a bezier path with a delete control at its midpoint.
type ButtonEdge struct{}

func (ButtonEdge) RenderEdge(b *strings.Builder, e flow.Edge, geo EdgeGeometry) {
	bz := BezierPath(geo)
	writePath(b, e, bz)
	fmt.Fprintf(b, `<foreignObject width="%s" height="%s" x="%s" y="%s" class="edgebutton-foreignobject" requiredExtensions="http://www.w3.org/1999/xhtml">`,
		num(ButtonSize), num(ButtonSize), num(bz.LabelX-ButtonSize/2), num(bz.LabelY-ButtonSize/2))
	fmt.Fprintf(b, `<div xmlns="http://www.w3.org/1999/xhtml"><button class="edgebutton" data-edge-id="%s">×</button></div>`, esc(e.ID))
	b.WriteString("</foreignObject>\n")
}

func writePath(b *strings.Builder, e flow.Edge, bz Bezier) {
	class := "flow-edge-path"
	if e.Transient {
		class += " temp"
	}
	fmt.Fprintf(b, `<path id="%s" class="%s" d="%s" fill="none" stroke="#b1b1b7"`, esc(e.ID), class, bz.Path)
	if e.MarkerEnd != nil {
		fmt.Fprintf(b, ` marker-end="url(#%s)"`, arrowID)
	}
	b.WriteString("/>\n")
}

// Geometry returns the endpoints of an edge from the source's bottom handle
// to the target's top handle.
func Geometry(source, target flow.Node) EdgeGeometry {
	return EdgeGeometry{
		SourceX:   source.Position.X + NodeWidth/2,
		SourceY:   source.Position.Y + NodeHeight,
		SourcePos: Bottom,
		TargetX:   target.Position.X + NodeWidth/2,
		TargetY:   target.Position.Y,
		TargetPos: Top,
	}
}

// SVG renders the whole graph. Edges whose endpoints are missing are skipped.
func SVG(g *flow.Graph, reg *Registry) string {
	if reg == nil {
		reg = DefaultRegistry()
	}
	minX, minY, maxX, maxY := bounds(g.Nodes)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(minX-padding), num(minY-padding), num(maxX-minX+2*padding), num(maxY-minY+2*padding))

	if hasMarker(g.Edges) {
		fmt.Fprintf(&b, `<defs><marker id="%s" viewBox="-10 -10 20 20" markerWidth="12.5" markerHeight="12.5" orient="auto-start-reverse" refX="0" refY="0">`, arrowID)
		b.WriteString(`<polyline stroke="#b1b1b7" fill="none" stroke-linecap="round" stroke-linejoin="round" points="-5,-4 0,0 -5,4"/></marker></defs>` + "\n")
	}

	nodes := make(map[string]flow.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes[n.ID] = n
	}

	b.WriteString(`<g class="flow-edges">` + "\n")
	for _, e := range g.Edges {
		src, ok1 := nodes[e.Source]
		tgt, ok2 := nodes[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		reg.Edge(e.Type).RenderEdge(&b, e, Geometry(src, tgt))
	}
	b.WriteString("</g>\n")

	b.WriteString(`<g class="flow-nodes">` + "\n")
	for _, n := range g.Nodes {
		reg.Node(n.Type).RenderNode(&b, n)
	}
	b.WriteString("</g>\n</svg>\n")
	return b.String()
}

func bounds(nodes []flow.Node) (minX, minY, maxX, maxY float64) {
	if len(nodes) == 0 {
		return 0, 0, NodeWidth, NodeHeight
	}
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, n := range nodes {
		minX = math.Min(minX, n.Position.X)
		minY = math.Min(minY, n.Position.Y)
		maxX = math.Max(maxX, n.Position.X+NodeWidth)
		maxY = math.Max(maxY, n.Position.Y+NodeHeight)
	}
	return minX, minY, maxX, maxY
}

func hasMarker(edges []flow.Edge) bool {
	for _, e := range edges {
		if e.MarkerEnd != nil {
			return true
		}
	}
	return false
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func esc(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
