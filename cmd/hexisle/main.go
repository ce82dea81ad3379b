// Command hexisle opens a window showing a freshly grown hex island.
// Settings come from HEXISLE_* environment variables and, when
// HEXISLE_CONFIG names a YAML file, from that file.
package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/talgya/hexisle/internal/config"
	"github.com/talgya/hexisle/internal/render"
	"github.com/talgya/hexisle/internal/world"
)

func main() {
	cfg, err := config.Load(os.Getenv("HEXISLE_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// ── Island ───────────────────────────────────────────────────────
	slog.Info("generating island...", "width", cfg.Width, "height", cfg.Height)
	m, err := world.Generate(cfg.GenConfig())
	if err != nil {
		slog.Error("failed to generate island", "error", err)
		os.Exit(1)
	}
	slog.Info("island ready",
		"seed", m.Seed,
		"land", m.Land.Committed,
		"exhausted", m.Land.Exhausted,
		"villages", len(m.Villages),
	)

	// ── Window ───────────────────────────────────────────────────────
	game := render.NewGame(m, render.Options{
		Gen:         cfg.GenConfig(),
		View:        cfg.ViewConfig(),
		Units:       cfg.Units,
		UnitSpacing: cfg.UnitSpacing,
	})

	w, h := game.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("hexisle")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil {
		slog.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
