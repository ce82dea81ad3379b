package world

import "strings"

// Sketch returns a text picture of the grid: '~' water, '#' earth,
// 'V' village. Odd rows are indented one column to mimic the hex stagger.
func (g *Grid) Sketch() string {
	var b strings.Builder
	b.Grow(g.height * (2*g.width + 2))
	for row := 0; row < g.height; row++ {
		if row&1 == 1 {
			b.WriteByte(' ')
		}
		for col := 0; col < g.width; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(sketchGlyph(g.cells[g.index(col, row)].Terrain))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func sketchGlyph(t Terrain) byte {
	switch t {
	case TerrainEarth:
		return '#'
	case TerrainVillage:
		return 'V'
	default:
		return '~'
	}
}
