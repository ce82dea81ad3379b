package world

import "math"

var sqrt3 = math.Sqrt(3.0)

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Layout maps grid coordinates to pixels. Size is the hex edge length in
// pixels and Origin the screen position of cell (0,0)'s bounding box; the
// caller folds camera offset and margins into Origin.
type Layout struct {
	Size   float64 `json:"size"`
	Origin Point   `json:"origin"`
}

// CellWidth is the horizontal distance between neighbouring cell centres.
func (l Layout) CellWidth() float64 {
	return l.Size * sqrt3
}

// RowHeight is the vertical distance between rows.
func (l Layout) RowHeight() float64 {
	return l.Size * 1.5
}

// CellOrigin returns the top-left corner of the cell's bounding box.
func (l Layout) CellOrigin(o Offset) Point {
	x := l.Size * sqrt3 * (float64(o.Col) + 0.5*float64(parity(o.Row)))
	y := l.Size * 1.5 * float64(o.Row)
	return Point{X: x + l.Origin.X, Y: y + l.Origin.Y}
}

// CellCenter returns the geometric centre of the hexagon.
func (l Layout) CellCenter(o Offset) Point {
	p := l.CellOrigin(o)
	return Point{X: p.X + l.Size*sqrt3/2, Y: p.Y + l.Size}
}

// HexagonVertices returns the six corners clockwise from the top vertex.
func (l Layout) HexagonVertices(o Offset) [6]Point {
	p := l.CellOrigin(o)
	s := l.Size
	half := sqrt3 * s / 2
	return [6]Point{
		{X: p.X + half, Y: p.Y},
		{X: p.X + sqrt3*s, Y: p.Y + 0.5*s},
		{X: p.X + sqrt3*s, Y: p.Y + 1.5*s},
		{X: p.X + half, Y: p.Y + 2*s},
		{X: p.X, Y: p.Y + 1.5*s},
		{X: p.X, Y: p.Y + 0.5*s},
	}
}

// Bounds returns the pixel size of a width×height grid drawn with l,
// excluding Origin.
func (l Layout) Bounds(width, height int) (w, h float64) {
	return float64(width) * l.CellWidth(), float64(height) * l.RowHeight()
}
