// Package palette decides what colour each cell is drawn in.
// Land gets a faint per-cell tint from simplex noise so the island does not
// look like a flat decal; water stays flat.
package palette

import (
	"image/color"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexisle/internal/world"
)

// Palette holds the base colours for each terrain and interaction state.
type Palette struct {
	Water              color.RGBA
	Earth              color.RGBA
	EarthClicked       color.RGBA
	EarthHighlighted   color.RGBA
	Village            color.RGBA
	VillageClicked     color.RGBA
	VillageHighlighted color.RGBA
	Outline            color.RGBA
	Unit               color.RGBA
	UnitSelected       color.RGBA
	Label              color.RGBA
}

// Default returns the standard green island palette.
func Default() Palette {
	return Palette{
		Water:              color.RGBA{175, 217, 216, 255},
		Earth:              color.RGBA{61, 152, 72, 255},
		EarthClicked:       color.RGBA{38, 124, 48, 255},
		EarthHighlighted:   color.RGBA{92, 172, 101, 255},
		Village:            color.RGBA{166, 127, 67, 255},
		VillageClicked:     color.RGBA{139, 101, 43, 255},
		VillageHighlighted: color.RGBA{179, 149, 105, 255},
		Outline:            color.RGBA{38, 124, 48, 255},
		Unit:               color.RGBA{230, 230, 240, 255},
		UnitSelected:       color.RGBA{250, 210, 60, 255},
		Label:              color.RGBA{40, 30, 20, 255},
	}
}

// State is how the cursor relates to a cell.
type State uint8

const (
	StateNormal State = iota
	StateHighlighted
	StateClicked
)

// Fill returns the base colour of a cell. The second result is false for
// water, which is left to the background.
func (p Palette) Fill(t world.Terrain, s State) (color.RGBA, bool) {
	switch t {
	case world.TerrainEarth:
		switch s {
		case StateClicked:
			return p.EarthClicked, true
		case StateHighlighted:
			return p.EarthHighlighted, true
		}
		return p.Earth, true
	case world.TerrainVillage:
		switch s {
		case StateClicked:
			return p.VillageClicked, true
		case StateHighlighted:
			return p.VillageHighlighted, true
		}
		return p.Village, true
	default:
		return p.Water, false
	}
}

// Shader tints cells with low-frequency simplex noise.
type Shader struct {
	noise     opensimplex.Noise
	Frequency float64 // Noise samples per cell
	Strength  float64 // Maximum brightness change, 0–1
}

// NewShader returns a shader seeded from the map seed, so the same island
// always gets the same tint.
func NewShader(seed int64) *Shader {
	return &Shader{
		noise:     opensimplex.NewNormalized(seed),
		Frequency: 0.15,
		Strength:  0.12,
	}
}

// Factor returns the brightness multiplier for a cell, in
// [1-Strength, 1+Strength].
func (s *Shader) Factor(o world.Offset) float64 {
	// Sample at the cell centre in grid units so rows interleave properly.
	x := float64(o.Col) + 0.5*float64(o.Row&1)
	y := float64(o.Row) * 0.866
	n := s.noise.Eval2(x*s.Frequency, y*s.Frequency) // 0..1
	return 1 + (n*2-1)*s.Strength
}

// Tint applies the shader's factor for o to c.
func (s *Shader) Tint(c color.RGBA, o world.Offset) color.RGBA {
	return Scale(c, s.Factor(o))
}

// Scale multiplies the RGB channels by f, clamping to 0..255.
func Scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: clampByte(float64(c.R) * f),
		G: clampByte(float64(c.G) * f),
		B: clampByte(float64(c.B) * f),
		A: c.A,
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
