// Island generation by randomized frontier growth.
// A seed cell in the middle of the grid is committed as land; its
// neighbours form the frontier. Each step commits a random frontier cell and
// may promote its unvisited neighbours, so land is always contiguous.
package world

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/talgya/hexisle/internal/entropy"
)

// GenConfig holds island generation parameters.
type GenConfig struct {
	Width          int   // Columns
	Height         int   // Rows
	Seed           int64 // Random seed (0 = random)
	LandChance     int   // Percent chance (0–100) a neighbour joins the frontier
	VillageDivisor int   // One village per this many grid cells
}

// DefaultGenConfig returns the standard 30×30 island.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:          30,
		Height:         30,
		Seed:           0,
		LandChance:     40,
		VillageDivisor: 100,
	}
}

// SmallTestConfig returns a tiny deterministic island for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Width:          12,
		Height:         10,
		Seed:           42,
		LandChance:     40,
		VillageDivisor: 30,
	}
}

// Validate reports configuration values generation cannot work with.
func (c GenConfig) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, ErrInvalidSize)
	}
	if c.LandChance < 0 || c.LandChance > 100 {
		return fmt.Errorf("land chance %d outside 0..100", c.LandChance)
	}
	if c.VillageDivisor < 1 {
		return fmt.Errorf("village divisor %d must be positive", c.VillageDivisor)
	}
	return nil
}

// Map is a generated island.
type Map struct {
	Grid     *Grid     `json:"-"`
	Seed     int64     `json:"seed"`
	Center   Offset    `json:"center"`
	Land     LandStats `json:"land"`
	Villages []Village `json:"villages"`
}

// LandStats describes how the growth phase went.
type LandStats struct {
	Committed  int  `json:"committed"`  // Cells turned to earth, seed included
	Iterations int  `json:"iterations"` // Growth steps actually taken
	Exhausted  bool `json:"exhausted"`  // Frontier ran dry before the step budget
}

// Generate creates an island: land growth, then village placement, both
// drawing from a single random source.
func Generate(cfg GenConfig) (*Map, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	rng, seed := entropy.NewRand(cfg.Seed)

	land := GrowLand(grid, rng, cfg.LandChance)
	sites := PlaceVillages(grid, rng, cfg.VillageDivisor)
	names := NameVillages(rng, len(sites))

	villages := make([]Village, len(sites))
	for i, o := range sites {
		villages[i] = Village{Coord: o, Name: names[i]}
	}

	return &Map{
		Grid:     grid,
		Seed:     seed,
		Center:   grid.Center(),
		Land:     land,
		Villages: villages,
	}, nil
}

// Regenerate builds a new island with the same dimensions and tuning but a
// fresh random seed.
func Regenerate(cfg GenConfig) (*Map, error) {
	cfg.Seed = 0
	return Generate(cfg)
}

// marker tracks a cell's state during growth.
type marker uint8

const (
	unvisited marker = iota
	frontier
	committed
)

// frontierSet is a set of cell indices supporting uniform random removal.
type frontierSet struct {
	items []int
	pos   map[int]int
}

func newFrontierSet() *frontierSet {
	return &frontierSet{pos: make(map[int]int)}
}

func (f *frontierSet) add(i int) {
	if _, ok := f.pos[i]; ok {
		return
	}
	f.pos[i] = len(f.items)
	f.items = append(f.items, i)
}

func (f *frontierSet) remove(i int) {
	p, ok := f.pos[i]
	if !ok {
		return
	}
	last := f.items[len(f.items)-1]
	f.items[p] = last
	f.pos[last] = p
	f.items = f.items[:len(f.items)-1]
	delete(f.pos, i)
}

// take removes and returns a uniformly chosen element.
func (f *frontierSet) take(rng *rand.Rand) int {
	i := f.items[rng.Intn(len(f.items))]
	f.remove(i)
	return i
}

func (f *frontierSet) len() int {
	return len(f.items)
}

// GrowLand turns a connected blob of roughly half the grid into earth.
// Every step commits one frontier cell; each of its unvisited in-grid
// neighbours is promoted to frontier when rng.Intn(100) < chance.
func GrowLand(g *Grid, rng *rand.Rand, chance int) LandStats {
	markers := make([]marker, g.Size())
	open := newFrontierSet()

	promote := func(o Offset) {
		i := g.index(o.Col, o.Row)
		if markers[i] == unvisited {
			markers[i] = frontier
			open.add(i)
		}
	}

	center := g.Center()
	markers[g.index(center.Col, center.Row)] = committed
	stats := LandStats{Committed: 1}

	for dir := DirEast; dir <= DirSouthEast; dir++ {
		if n, ok := g.Neighbor(center, dir); ok {
			promote(n)
		}
	}

	steps := g.Size() / 2
	for step := 0; step < steps; step++ {
		if open.len() == 0 {
			stats.Exhausted = true
			slog.Debug("land growth exhausted", "step", step, "of", steps)
			break
		}

		i := open.take(rng)
		markers[i] = committed
		stats.Committed++
		stats.Iterations++

		cell := g.cells[i].Coord
		for dir := DirEast; dir <= DirSouthEast; dir++ {
			n, ok := g.Neighbor(cell, dir)
			if !ok {
				continue
			}
			if markers[g.index(n.Col, n.Row)] == unvisited && rng.Intn(100) < chance {
				promote(n)
			}
		}
	}

	for i, m := range markers {
		if m == committed {
			g.cells[i].Terrain = TerrainEarth
		}
	}

	return stats
}
