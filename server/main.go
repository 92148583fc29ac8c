package main

import (
	"log"
	"os"

	"github.com/meikuraledutech/flow"
	"github.com/meikuraledutech/flow/internal/config"
	"github.com/meikuraledutech/flow/memory"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	var store flow.Store = memory.New()

	editor, err := flow.NewEditor(store,
		flow.WithLogger(logger),
		flow.WithThreshold(cfg.Editor.Threshold),
	)
	if err != nil {
		log.Fatalf("editor: %v", err)
	}

	app := newApp(editor, store, logger)

	logger.Info("listening", "addr", cfg.Server.Addr, "threshold", cfg.Editor.Threshold)
	log.Fatal(app.Listen(cfg.Server.Addr))
}
