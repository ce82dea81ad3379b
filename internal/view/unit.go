package view

import (
	"github.com/google/uuid"

	"github.com/talgya/hexisle/internal/world"
)

// Unit is a selectable piece standing on a cell.
type Unit struct {
	ID     uuid.UUID
	HP     int
	Speed  int
	Melee  int
	Ranged int
	Sprite string // Asset name; the renderer falls back to a marker
	Coord  world.Offset
}

// NewUnit creates a unit with a fresh ID.
func NewUnit(coord world.Offset, hp, speed int) *Unit {
	return &Unit{
		ID:     uuid.New(),
		HP:     hp,
		Speed:  speed,
		Sprite: "default",
		Coord:  coord,
	}
}

// SpawnUnits places up to n units on land nearest the island centre, no
// two closer than spacing hexes.
func SpawnUnits(m *world.Map, n, spacing int) []*Unit {
	sites := world.LandSites(m.Grid, m.Center, n, spacing)
	units := make([]*Unit, 0, len(sites))
	for _, o := range sites {
		units = append(units, NewUnit(o, 10, 5))
	}
	return units
}

// Sprite is where and how large a unit is drawn this frame.
type Sprite struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Center returns the middle of the sprite.
func (s Sprite) Center() (float64, float64) {
	return s.X + s.W/2, s.Y + s.H/2
}

// SpriteTransform computes a unit's on-screen rectangle from the current
// view. It is recomputed every frame instead of being patched on zoom or pan.
func SpriteTransform(u *Unit, v *ViewState) Sprite {
	p := v.Layout().CellOrigin(u.Coord)
	size := v.CellSize * 2
	return Sprite{X: p.X, Y: p.Y, W: size, H: size}
}
