package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meikuraledutech/flow/render"
)

func newRenderCmd() *cobra.Command {
	var file, format string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a graph as SVG or Mermaid",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(file)
			if err != nil {
				return err
			}
			switch format {
			case "svg":
				fmt.Fprint(cmd.OutOrStdout(), render.SVG(g, render.DefaultRegistry()))
			case "mermaid":
				fmt.Fprint(cmd.OutOrStdout(), render.Mermaid(g))
			default:
				return fmt.Errorf("unknown format %q (want svg or mermaid)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "graph JSON file (default: seed graph)")
	cmd.Flags().StringVar(&format, "format", "svg", "output format: svg or mermaid")
	return cmd
}
