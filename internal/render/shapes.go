package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/talgya/hexisle/internal/view"
	"github.com/talgya/hexisle/internal/world"
)

// labelMinSize is the smallest cell size at which village names fit.
const labelMinSize = 22

// whiteImage is a solid source texture for DrawTriangles fills.
var whiteImage *ebiten.Image

func solidImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// drawHexagon fills a polygon given its corners in winding order.
func drawHexagon(screen *ebiten.Image, verts [6]world.Point, c color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(verts[0].X), float32(verts[0].Y))
	for _, p := range verts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255.0
		vs[i].ColorG = float32(c.G) / 255.0
		vs[i].ColorB = float32(c.B) / 255.0
		vs[i].ColorA = float32(c.A) / 255.0
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillAll
	screen.DrawTriangles(vs, is, solidImage(), op)
}

// strokeHexagon draws a one pixel outline.
func strokeHexagon(screen *ebiten.Image, verts [6]world.Point, c color.RGBA) {
	for i, p := range verts {
		q := verts[(i+1)%len(verts)]
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), 1, c, false)
	}
}

// drawUnits draws each unit as a disc filling its sprite box.
func (g *Game) drawUnits(screen *ebiten.Image) {
	s := g.session
	for _, u := range s.Units {
		sp := view.SpriteTransform(u, s.View)
		cx, cy := sp.Center()
		r := float32(sp.W) / 4

		fill := g.palette.Unit
		if s.Selected == u {
			fill = g.palette.UnitSelected
		}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, fill, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), r, 1.5, g.palette.Outline, true)
	}
}

// drawVillageLabels writes village names under their hexes once zoomed in
// far enough for the text to fit.
func (g *Game) drawVillageLabels(screen *ebiten.Image, layout world.Layout) {
	if layout.Size < labelMinSize {
		return
	}
	face := basicfont.Face7x13
	for _, v := range g.session.Map.Villages {
		c := layout.CellCenter(v.Coord)
		w := len(v.Name) * 7
		x := int(c.X) - w/2
		y := int(c.Y+layout.Size) + 13
		text.Draw(screen, v.Name, face, x, y, g.palette.Label)
	}
}
