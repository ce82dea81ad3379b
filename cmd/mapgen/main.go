// Command mapgen grows an island without opening a window. It prints a
// text sketch and terrain statistics, and with HEXISLE_SERVE=true keeps
// serving the island over the HTTP API until interrupted.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/talgya/hexisle/internal/api"
	"github.com/talgya/hexisle/internal/config"
	"github.com/talgya/hexisle/internal/world"
)

func main() {
	cfg, err := config.Load(os.Getenv("HEXISLE_CONFIG"))
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	m, err := world.Generate(cfg.GenConfig())
	if err != nil {
		slog.Error("failed to generate island", "error", err)
		os.Exit(1)
	}

	fmt.Print(m.Grid.Sketch())
	fmt.Println()
	printStats(m)

	if !cfg.Serve {
		return
	}

	server := &api.Server{Map: m, Port: cfg.APIPort}
	server.Start()
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.APIPort)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}

func printStats(m *world.Map) {
	g := m.Grid
	total := g.Size()
	counts := g.Counts()

	fmt.Printf("Seed %d, %s cells (%d×%d), centre (%d,%d)\n",
		m.Seed, humanize.Comma(int64(total)), g.Width(), g.Height(), m.Center.Col, m.Center.Row)

	for _, t := range []world.Terrain{world.TerrainWater, world.TerrainEarth, world.TerrainVillage} {
		c := counts[t]
		fmt.Printf("  %-8s %6s  %5.1f%%\n", t, humanize.Comma(int64(c)), 100*float64(c)/float64(total))
	}

	growth := "ran full budget"
	if m.Land.Exhausted {
		growth = "frontier exhausted early"
	}
	fmt.Printf("Land growth: %s steps, %s\n", humanize.Comma(int64(m.Land.Iterations)), growth)

	if len(m.Villages) == 0 {
		return
	}
	villages := append([]world.Village(nil), m.Villages...)
	sort.Slice(villages, func(i, j int) bool {
		return world.Distance(m.Center, villages[i].Coord) < world.Distance(m.Center, villages[j].Coord)
	})
	fmt.Printf("%s villages:\n", humanize.Comma(int64(len(villages))))
	for _, v := range villages {
		fmt.Printf("  %-16s (%d,%d)  %s from centre\n",
			v.Name, v.Coord.Col, v.Coord.Row, hexes(world.Distance(m.Center, v.Coord)))
	}
}

func hexes(n int) string {
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), english.PluralWord(n, "hex", "hexes"))
}
