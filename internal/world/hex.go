// Package world provides the hex grid, terrain, and island generation.
// The grid is addressed with odd-row offset coordinates (col, row); cube
// coordinates (x, y, z) are derived for distance math.
package world

// Offset is a grid address in the odd-row offset layout: odd rows are
// shifted half a cell to the right.
type Offset struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Cube is a cube coordinate. X+Y+Z is always 0.
type Cube struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Direction indexes the six hex neighbours, counter-clockwise from east.
type Direction uint8

const (
	DirEast Direction = iota
	DirNorthEast
	DirNorthWest
	DirWest
	DirSouthWest
	DirSouthEast
)

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % 6
}

// offsetDirections holds the (dcol, drow) deltas for even and odd rows.
var offsetDirections = [2][6]Offset{
	{
		{Col: +1, Row: 0}, {Col: 0, Row: -1}, {Col: -1, Row: -1},
		{Col: -1, Row: 0}, {Col: -1, Row: +1}, {Col: 0, Row: +1},
	},
	{
		{Col: +1, Row: 0}, {Col: +1, Row: -1}, {Col: 0, Row: -1},
		{Col: -1, Row: 0}, {Col: 0, Row: +1}, {Col: +1, Row: +1},
	},
}

// parity returns 0 for even and 1 for odd values, negatives included.
func parity(n int) int {
	return n & 1
}

// OffsetToCube converts an offset coordinate to cube coordinates.
func OffsetToCube(o Offset) Cube {
	x := o.Col - (o.Row-parity(o.Row))/2
	z := o.Row
	return Cube{X: x, Y: -x - z, Z: z}
}

// CubeToOffset is the inverse of OffsetToCube.
func CubeToOffset(c Cube) Offset {
	return Offset{
		Col: c.X + (c.Z-parity(c.Z))/2,
		Row: c.Z,
	}
}

// Neighbor returns the adjacent coordinate in the given direction.
// The result may lie outside any particular grid; see Grid.Neighbor.
func Neighbor(o Offset, dir Direction) Offset {
	d := offsetDirections[parity(o.Row)][dir%6]
	return Offset{Col: o.Col + d.Col, Row: o.Row + d.Row}
}

// Neighbors returns all six adjacent coordinates in direction order.
func (o Offset) Neighbors() [6]Offset {
	var result [6]Offset
	for dir := DirEast; dir <= DirSouthEast; dir++ {
		result[dir] = Neighbor(o, dir)
	}
	return result
}

// Cube returns the cube form of o.
func (o Offset) Cube() Cube {
	return OffsetToCube(o)
}

// CubeDistance returns the hex distance between two cube coordinates.
func CubeDistance(a, b Cube) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	dz := abs(a.Z - b.Z)
	max := dx
	if dy > max {
		max = dy
	}
	if dz > max {
		max = dz
	}
	return max
}

// Distance returns the hex distance between two offset coordinates.
func Distance(a, b Offset) int {
	return CubeDistance(OffsetToCube(a), OffsetToCube(b))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
