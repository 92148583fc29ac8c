package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/meikuraledutech/flow"
	"github.com/meikuraledutech/flow/render"
)

type createGraphRequest struct {
	ID string `json:"id"`
}

type dragStopRequest struct {
	NodeID  string `json:"nodeId"`
	Confirm bool   `json:"confirm"`
}

type dragResponse struct {
	Suggestion *flow.Edge  `json:"suggestion"`
	Edges      []flow.Edge `json:"edges"`
}

type dragStopResponse struct {
	Committed *flow.Edge  `json:"committed"`
	Edges     []flow.Edge `json:"edges"`
}

func newApp(editor *flow.Editor, store flow.Store, logger *slog.Logger) *fiber.App {
	app := fiber.New()
	app.Use(recoverer.New())
	app.Use(requestLogger(logger))

	registry := render.DefaultRegistry()

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// ── Graphs ────────────────────────────────────────────────────────
	app.Post("/graphs", func(c fiber.Ctx) error {
		var req createGraphRequest
		if len(c.Body()) > 0 {
			if err := c.Bind().JSON(&req); err != nil {
				return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
			}
		}
		g, err := editor.NewGraph(c.Context(), req.ID)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(201).JSON(g)
	})

	app.Get("/graphs", func(c fiber.Ctx) error {
		ids, err := store.ListGraphs(c.Context())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(ids)
	})

	app.Get("/graphs/:id", func(c fiber.Ctx) error {
		g, err := editor.Graph(c.Context(), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(g)
	})

	app.Delete("/graphs/:id", func(c fiber.Ctx) error {
		if err := store.DeleteGraph(c.Context(), c.Params("id")); err != nil {
			return writeError(c, err)
		}
		return c.SendStatus(204)
	})

	// ── Nodes ─────────────────────────────────────────────────────────
	app.Post("/graphs/:id/nodes", func(c fiber.Ctx) error {
		n, err := editor.AddNode(c.Context(), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(201).JSON(n)
	})

	app.Get("/graphs/:id/nodes", func(c fiber.Ctx) error {
		nodes, err := store.ListNodes(c.Context(), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(nodes)
	})

	// ── Drag ──────────────────────────────────────────────────────────
	app.Post("/graphs/:id/drag", func(c fiber.Ctx) error {
		var ev flow.DragEvent
		if err := c.Bind().JSON(&ev); err != nil || ev.NodeID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		sugg, err := editor.Drag(c.Context(), c.Params("id"), ev)
		if err != nil {
			return writeError(c, err)
		}
		edges, err := store.ListEdges(c.Context(), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dragResponse{Suggestion: sugg, Edges: edges})
	})

	app.Post("/graphs/:id/drag/stop", func(c fiber.Ctx) error {
		var req dragStopRequest
		if err := c.Bind().JSON(&req); err != nil || req.NodeID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		committed, err := editor.DragStop(c.Context(), c.Params("id"), req.NodeID, req.Confirm)
		if err != nil {
			return writeError(c, err)
		}
		edges, err := store.ListEdges(c.Context(), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(dragStopResponse{Committed: committed, Edges: edges})
	})

	// ── Edges ─────────────────────────────────────────────────────────
	app.Post("/graphs/:id/connections", func(c fiber.Ctx) error {
		var ev flow.ConnectEvent
		if err := c.Bind().JSON(&ev); err != nil || ev.Source == "" || ev.Target == "" {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		e, err := editor.Connect(c.Context(), c.Params("id"), ev)
		if err != nil {
			return writeError(c, err)
		}
		return c.Status(201).JSON(e)
	})

	app.Get("/graphs/:id/edges", func(c fiber.Ctx) error {
		edges, err := store.ListEdges(c.Context(), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(edges)
	})

	app.Delete("/graphs/:id/edges/:edgeId", func(c fiber.Ctx) error {
		if err := editor.DeleteEdge(c.Context(), c.Params("id"), c.Params("edgeId")); err != nil {
			return writeError(c, err)
		}
		return c.SendStatus(204)
	})

	// ── Export ────────────────────────────────────────────────────────
	app.Get("/graphs/:id/svg", func(c fiber.Ctx) error {
		g, err := editor.Graph(c.Context(), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml")
		return c.SendString(render.SVG(g, registry))
	})

	app.Get("/graphs/:id/mermaid", func(c fiber.Ctx) error {
		g, err := editor.Graph(c.Context(), c.Params("id"))
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(render.Mermaid(g))
	})

	return app
}

func writeError(c fiber.Ctx, err error) error {
	status := 500
	switch {
	case errors.Is(err, flow.ErrGraphNotFound),
		errors.Is(err, flow.ErrNodeNotFound),
		errors.Is(err, flow.ErrEdgeNotFound):
		status = 404
	case errors.Is(err, flow.ErrGraphExists),
		errors.Is(err, flow.ErrDuplicateEdge),
		errors.Is(err, flow.ErrEdgeIDTaken):
		status = 409
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debug("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return err
	}
}
