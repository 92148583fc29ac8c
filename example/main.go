package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/meikuraledutech/flow"
	"github.com/meikuraledutech/flow/memory"
	"github.com/meikuraledutech/flow/render"
)

func main() {
	ctx := context.Background()

	// Wire up the in-memory implementation behind the Store interface.
	var store flow.Store = memory.New()

	editor, err := flow.NewEditor(store, flow.WithIDGenerator(&flow.SequenceGenerator{Prefix: "intent-"}))
	if err != nil {
		log.Fatalf("editor: %v", err)
	}

	// ── Seeded canvas ─────────────────────────────────────────────────
	g, err := editor.NewGraph(ctx, "onboarding")
	if err != nil {
		log.Fatalf("new graph: %v", err)
	}
	fmt.Println("graph created")
	printJSON(g)

	// ── Toolbar: add a node ───────────────────────────────────────────
	n, err := editor.AddNode(ctx, "onboarding")
	if err != nil {
		log.Fatalf("add node: %v", err)
	}
	fmt.Printf("\nadded node: %s\n", n.ID)

	// ── Manual connection 1 → 3 ───────────────────────────────────────
	e, err := editor.Connect(ctx, "onboarding", flow.ConnectEvent{Source: "1", Target: "3"})
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	fmt.Printf("connected: %s\n", e.ID)

	// ── Drag the new node next to the input node ──────────────────────
	sugg, err := editor.Drag(ctx, "onboarding", flow.DragEvent{
		NodeID:   n.ID,
		Position: flow.Position{X: 60, Y: 80},
	})
	if err != nil {
		log.Fatalf("drag: %v", err)
	}
	if sugg != nil {
		fmt.Printf("\nsuggested: %s (%s -> %s)\n", sugg.ID, sugg.Source, sugg.Target)
	}

	committed, err := editor.DragStop(ctx, "onboarding", n.ID, true)
	if err != nil {
		log.Fatalf("drag stop: %v", err)
	}
	if committed != nil {
		fmt.Printf("committed: %s\n", committed.ID)
	}

	// ── Delete the manual edge ────────────────────────────────────────
	if err := editor.DeleteEdge(ctx, "onboarding", e.ID); err != nil {
		log.Fatalf("delete edge: %v", err)
	}
	fmt.Printf("deleted: %s\n", e.ID)

	final, err := editor.Graph(ctx, "onboarding")
	if err != nil {
		log.Fatalf("get graph: %v", err)
	}
	fmt.Println("\nmermaid:")
	fmt.Print(render.Mermaid(final))
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
