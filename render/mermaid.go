package render

import (
	"fmt"
	"strings"

	"github.com/meikuraledutech/flow"
)

// Mermaid renders the graph as a Mermaid flowchart.
func Mermaid(g *flow.Graph) string {
	var b strings.Builder

	b.WriteString("graph TD\n")
	if g.ID != "" {
		b.WriteString(fmt.Sprintf("    %%%% %s\n", g.ID))
	}

	ids := mermaidIDs(g.Nodes)
	for i, n := range g.Nodes {
		id := mermaidNodeID(i)
		if ids[n.ID] != id {
			continue
		}
		b.WriteString(fmt.Sprintf("    %s\n", mermaidNodeDef(id, n)))
	}

	for _, e := range g.Edges {
		src, tgt := ids[e.Source], ids[e.Target]
		if src == "" || tgt == "" {
			continue
		}
		arrow := "-->"
		if e.Transient {
			arrow = "-.->"
		}
		b.WriteString(fmt.Sprintf("    %s %s %s\n", src, arrow, tgt))
	}

	return b.String()
}

// mermaidNodeDef returns a Mermaid node definition shaped by node type.
func mermaidNodeDef(id string, n flow.Node) string {
	switch n.Type {
	case flow.NodeInput:
		return fmt.Sprintf("%s([%q])", id, n.Data.Label)
	case flow.NodeOutput:
		return fmt.Sprintf("%s(((%q)))", id, n.Data.Label)
	default:
		return fmt.Sprintf("%s[%q]", id, n.Data.Label)
	}
}

// mermaidIDs names nodes by their position, n0, n1, ... Node ids may hold
// characters Mermaid rejects, and rewriting them could merge distinct nodes.
// A repeated node id keeps its first name.
func mermaidIDs(nodes []flow.Node) map[string]string {
	ids := make(map[string]string, len(nodes))
	for i, n := range nodes {
		if _, ok := ids[n.ID]; !ok {
			ids[n.ID] = mermaidNodeID(i)
		}
	}
	return ids
}

func mermaidNodeID(i int) string {
	return fmt.Sprintf("n%d", i)
}
