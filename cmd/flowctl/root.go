package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meikuraledutech/flow"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flowctl",
		Short: "Inspect and render conversation flow graphs",
		Long: `flowctl works on graph files in the editor's JSON format.

It renders them to SVG or Mermaid, and previews which edge the editor
would suggest when a node is dragged to a given position.`,
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newSuggestCmd())
	return root
}

// loadGraph reads a graph file. An empty path yields the seed graph.
func loadGraph(path string) (*flow.Graph, error) {
	if path == "" {
		return &flow.Graph{ID: "seed", Nodes: flow.SeedNodes(), Edges: []flow.Edge{}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph: %w", err)
	}
	var g flow.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", path, err)
	}
	return &g, nil
}
