// Package render draws an island with ebiten and feeds mouse and keyboard
// input into the view session.
package render

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/talgya/hexisle/internal/palette"
	"github.com/talgya/hexisle/internal/view"
	"github.com/talgya/hexisle/internal/world"
)

// Options configures a Game.
type Options struct {
	Gen         world.GenConfig
	View        view.Config
	Units       int
	UnitSpacing int
}

// Game implements ebiten.Game for one island.
type Game struct {
	opts    Options
	session *view.Session
	palette palette.Palette
	shader  *palette.Shader

	screenW int
	screenH int
}

// NewGame wraps an already generated map.
func NewGame(m *world.Map, opts Options) *Game {
	v := view.New(opts.View)
	units := view.SpawnUnits(m, opts.Units, opts.UnitSpacing)
	w, h := view.ScreenSize(opts.View, m.Grid.Width(), m.Grid.Height())

	return &Game{
		opts:    opts,
		session: view.NewSession(m, v, units),
		palette: palette.Default(),
		shader:  palette.NewShader(m.Seed),
		screenW: w,
		screenH: h,
	}
}

// ScreenSize returns the window size for this island.
func (g *Game) ScreenSize() (int, int) {
	return g.screenW, g.screenH
}

// Update handles input once per tick.
func (g *Game) Update() error {
	s := g.session
	v := s.View

	mx, my := ebiten.CursorPosition()
	cursor := world.Point{X: float64(mx), Y: float64(my)}
	s.Hover(cursor)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.Click(cursor)
	}

	_, dy := ebiten.Wheel()
	switch {
	case dy > 0:
		v.ZoomIn()
	case dy < 0:
		v.ZoomOut()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v.Pan(view.PanUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v.Pan(view.PanDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v.Pan(view.PanLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v.Pan(view.PanRight)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.FocusSelection(float64(g.screenW), float64(g.screenH))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.regenerate(); err != nil {
			slog.Error("regenerate failed", "error", err)
		}
	}

	return nil
}

func (g *Game) regenerate() error {
	m, err := world.Regenerate(g.opts.Gen)
	if err != nil {
		return err
	}
	g.session.Reset(m, view.SpawnUnits(m, g.opts.Units, g.opts.UnitSpacing))
	g.shader = palette.NewShader(m.Seed)
	slog.Info("island regenerated", "seed", m.Seed, "land", m.Land.Committed, "villages", len(m.Villages))
	return nil
}

// Draw renders the water background, land hexes, villages and units.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Water)

	s := g.session
	layout := s.View.Layout()

	s.Map.Grid.ForEachCell(func(c world.Cell) {
		state := palette.StateNormal
		switch {
		case s.IsClicked(c.Coord):
			state = palette.StateClicked
		case s.IsHovered(c.Coord):
			state = palette.StateHighlighted
		}

		fill, ok := g.palette.Fill(c.Terrain, state)
		if !ok {
			return
		}
		verts := layout.HexagonVertices(c.Coord)
		drawHexagon(screen, verts, g.shader.Tint(fill, c.Coord))
		strokeHexagon(screen, verts, g.palette.Outline)
	})

	g.drawVillageLabels(screen, layout)
	g.drawUnits(screen)
	g.drawDebugInfo(screen)
}

func (g *Game) drawDebugInfo(screen *ebiten.Image) {
	s := g.session
	info := fmt.Sprintf("Seed: %d  Size: %.0f  Land: %d  Villages: %d\n",
		s.Map.Seed, s.View.CellSize, s.Map.Land.Committed, len(s.Map.Villages))
	if s.Hovered != nil {
		if c, err := s.Map.Grid.CellAt(s.Hovered.Col, s.Hovered.Row); err == nil {
			info += fmt.Sprintf("Cell (%d,%d) cube (%d,%d,%d) %s\n",
				c.Coord.Col, c.Coord.Row, c.Cube.X, c.Cube.Y, c.Cube.Z, c.Terrain)
		}
	}
	info += "Arrows: pan  Wheel: zoom  C: centre  R: regenerate"
	ebitenutil.DebugPrint(screen, info)
}

// Layout keeps the logical screen at the size the island was opened with.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
