package world

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a coordinate lies outside the grid.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidSize is returned for grids with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid grid size")
)

// Terrain types for hex cells.
type Terrain uint8

const (
	TerrainWater   Terrain = iota // Everything starts as water
	TerrainEarth                  // Land committed by island growth
	TerrainVillage                // Land picked by the village pass
)

// String returns a human-readable name for a terrain type.
func (t Terrain) String() string {
	switch t {
	case TerrainWater:
		return "water"
	case TerrainEarth:
		return "earth"
	case TerrainVillage:
		return "village"
	default:
		return "unknown"
	}
}

// IsLand reports whether the terrain is walkable ground.
func (t Terrain) IsLand() bool {
	return t == TerrainEarth || t == TerrainVillage
}

// Cell is a single tile of the grid.
type Cell struct {
	Coord   Offset  `json:"coord"`
	Cube    Cube    `json:"cube"`
	Terrain Terrain `json:"terrain"`
}

// Grid is a fixed-size width×height array of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an all-water grid.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new grid %dx%d: %w", width, height, ErrInvalidSize)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			o := Offset{Col: col, Row: row}
			g.cells[g.index(col, row)] = Cell{Coord: o, Cube: OffsetToCube(o)}
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the total number of cells.
func (g *Grid) Size() int { return len(g.cells) }

func (g *Grid) index(col, row int) int {
	return row*g.width + col
}

// InBounds reports whether (col, row) addresses a cell of the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// Contains is InBounds for an Offset.
func (g *Grid) Contains(o Offset) bool {
	return g.InBounds(o.Col, o.Row)
}

// CellAt returns a copy of the cell at (col, row).
func (g *Grid) CellAt(col, row int) (Cell, error) {
	if !g.InBounds(col, row) {
		return Cell{}, fmt.Errorf("cell (%d,%d) in %dx%d grid: %w", col, row, g.width, g.height, ErrOutOfRange)
	}
	return g.cells[g.index(col, row)], nil
}

// TerrainAt returns the terrain at o, or false when o is outside the grid.
func (g *Grid) TerrainAt(o Offset) (Terrain, bool) {
	if !g.Contains(o) {
		return TerrainWater, false
	}
	return g.cells[g.index(o.Col, o.Row)].Terrain, true
}

// SetType changes the terrain of the cell at (col, row).
func (g *Grid) SetType(col, row int, t Terrain) error {
	if !g.InBounds(col, row) {
		return fmt.Errorf("set type (%d,%d): %w", col, row, ErrOutOfRange)
	}
	g.cells[g.index(col, row)].Terrain = t
	return nil
}

// ForEachCell calls fn for every cell in row-major order.
func (g *Grid) ForEachCell(fn func(Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Neighbor returns the neighbour of o in direction dir, or false when it
// falls outside the grid.
func (g *Grid) Neighbor(o Offset, dir Direction) (Offset, bool) {
	n := Neighbor(o, dir)
	return n, g.Contains(n)
}

// Center returns the cell island growth starts from.
func (g *Grid) Center() Offset {
	col := g.width/2 - 1
	row := g.height/2 - 1
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return Offset{Col: col, Row: row}
}

// Counts returns a summary of terrain type distribution.
func (g *Grid) Counts() map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, c := range g.cells {
		counts[c.Terrain]++
	}
	return counts
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, cells=%d)", g.width, g.height, len(g.cells))
}
