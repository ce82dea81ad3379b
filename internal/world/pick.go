package world

import "math"

// Pick returns the offset coordinate of the hexagon containing p.
// The rows are sliced into rectangles of height 1.5*Size; points in the
// two slanted triangles at the top of a rectangle belong to the row above.
// The result is not bounds-checked; see Grid.Pick.
func (l Layout) Pick(p Point) Offset {
	if l.Size <= 0 {
		return Offset{Col: -1, Row: -1}
	}
	local := p.Sub(l.Origin)
	x, y := local.X, local.Y

	rowHeight := l.RowHeight()
	cellWidth := l.CellWidth()
	halfWidth := cellWidth / 2
	c := 0.5 * l.Size
	m := c / halfWidth

	row := math.Floor(y / rowHeight)
	odd := parity(int(row)) == 1

	var column, relX float64
	if odd {
		column = math.Floor((x - halfWidth) / cellWidth)
		relX = x - column*cellWidth - halfWidth
	} else {
		column = math.Floor(x / cellWidth)
		relX = x - column*cellWidth
	}
	relY := y - row*rowHeight

	if relY < -m*relX+c {
		row--
		if !odd {
			column--
		}
	} else if relY < m*relX-c {
		row--
		if odd {
			column++
		}
	}

	return Offset{Col: int(column), Row: int(row)}
}

// Pick resolves p to a cell of g. The second result is false when the
// point lies outside the grid.
func (g *Grid) Pick(l Layout, p Point) (Offset, bool) {
	o := l.Pick(p)
	return o, g.Contains(o)
}
