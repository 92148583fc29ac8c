package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/meikuraledutech/flow"
)

func newSuggestCmd() *cobra.Command {
	var (
		file      string
		nodeID    string
		x, y      float64
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show the edge suggested when a node is dragged to a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold <= 0 {
				return flow.ErrInvalidThreshold
			}
			g, err := loadGraph(file)
			if err != nil {
				return err
			}
			if g.NodeByID(nodeID) == nil {
				return fmt.Errorf("node %q: %w", nodeID, flow.ErrNodeNotFound)
			}

			out := cmd.OutOrStdout()
			ev := flow.DragEvent{NodeID: nodeID, Position: flow.Position{X: x, Y: y}}
			s, ok := flow.ClosestEdge(ev, g.Nodes, threshold)
			if !ok {
				fmt.Fprintln(out, color.YellowString("no suggestion"))
				return nil
			}
			if flow.HasConnection(g.Edges, s.Source, s.Target) {
				fmt.Fprintf(out, "%s %s -> %s\n", color.YellowString("already connected:"), s.Source, s.Target)
				return nil
			}
			fmt.Fprintf(out, "%s %s (%s -> %s)\n", color.GreenString("suggest"), color.CyanString(s.ID), s.Source, s.Target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "graph JSON file (default: seed graph)")
	cmd.Flags().StringVar(&nodeID, "node", "", "id of the dragged node")
	cmd.Flags().Float64Var(&x, "x", 0, "x position of the dragged node")
	cmd.Flags().Float64Var(&y, "y", 0, "y position of the dragged node")
	cmd.Flags().Float64Var(&threshold, "threshold", flow.DefaultThreshold, "connection range")
	_ = cmd.MarkFlagRequired("node")
	return cmd
}
