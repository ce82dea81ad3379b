// Package view holds the viewer state that sits between the input layer and
// the world geometry: cell size, margins, camera offset, zoom and pan.
// Nothing here is global; the renderer owns one ViewState and passes it on.
package view

import (
	"math"

	"github.com/talgya/hexisle/internal/world"
)

// Config holds zoom and pan tuning.
type Config struct {
	CellSize    float64 // Starting hex edge length in pixels
	MinCellSize float64
	MaxCellSize float64
	ZoomFactor  float64 // Multiplier applied per wheel notch
	Indent      float64 // Margin around the grid in pixels
	PanStep     float64 // Pixels moved per arrow key press
}

// DefaultConfig returns the standard viewer tuning.
func DefaultConfig() Config {
	return Config{
		CellSize:    15,
		MinCellSize: 10,
		MaxCellSize: 50,
		ZoomFactor:  1.1,
		Indent:      50,
		PanStep:     25,
	}
}

// Camera is a translation applied to everything drawn.
type Camera struct {
	DX float64
	DY float64
}

// CenterOn moves the camera so the rectangle (x, y, w, h), given in
// camera-free screen space, sits in the middle of a screenW×screenH window.
func (c *Camera) CenterOn(x, y, w, h, screenW, screenH float64) {
	c.DX = -(x + w/2 - screenW/2)
	c.DY = -(y + h/2 - screenH/2)
}

// ViewState is the current zoom level and camera position.
type ViewState struct {
	CellSize float64
	Indent   float64
	PanStep  float64
	Camera   Camera

	cfg Config
}

// New returns a view at the configured starting zoom.
func New(cfg Config) *ViewState {
	return &ViewState{
		CellSize: cfg.CellSize,
		Indent:   cfg.Indent,
		PanStep:  cfg.PanStep,
		cfg:      cfg,
	}
}

// Layout returns the grid geometry for the current zoom and camera.
func (v *ViewState) Layout() world.Layout {
	return world.Layout{
		Size: v.CellSize,
		Origin: world.Point{
			X: v.Indent + v.Camera.DX,
			Y: v.Indent + v.Camera.DY,
		},
	}
}

// Focus points the camera at cell o so its bounding box sits in the middle
// of a screenW×screenH window.
func (v *ViewState) Focus(o world.Offset, screenW, screenH float64) {
	l := world.Layout{Size: v.CellSize, Origin: world.Point{X: v.Indent, Y: v.Indent}}
	p := l.CellOrigin(o)
	v.Camera.CenterOn(p.X, p.Y, l.CellWidth(), 2*l.Size, screenW, screenH)
}

// ZoomIn grows the cells by one zoom step. At the maximum size the cell
// size is clamped and the camera stays put; otherwise the camera offset is
// scaled too so the view zooms about the window origin.
func (v *ViewState) ZoomIn() {
	v.zoom(v.cfg.ZoomFactor)
}

// ZoomOut is the inverse of ZoomIn, clamped at the minimum size.
func (v *ViewState) ZoomOut() {
	v.zoom(1 / v.cfg.ZoomFactor)
}

func (v *ViewState) zoom(factor float64) {
	v.CellSize = math.Round(v.CellSize * factor)
	v.PanStep = math.Round(v.PanStep * factor)

	switch {
	case v.CellSize > v.cfg.MaxCellSize:
		v.CellSize = v.cfg.MaxCellSize
	case v.CellSize < v.cfg.MinCellSize:
		v.CellSize = v.cfg.MinCellSize
	default:
		v.Camera.DX = math.Round(v.Camera.DX * factor)
		v.Camera.DY = math.Round(v.Camera.DY * factor)
	}
}

// PanDirection is an arrow key.
type PanDirection uint8

const (
	PanUp PanDirection = iota
	PanDown
	PanLeft
	PanRight
)

// Pan scrolls the map. Up reveals what is above, so the map moves down.
func (v *ViewState) Pan(dir PanDirection) {
	switch dir {
	case PanUp:
		v.Camera.DY += v.PanStep
	case PanDown:
		v.Camera.DY -= v.PanStep
	case PanLeft:
		v.Camera.DX += v.PanStep
	case PanRight:
		v.Camera.DX -= v.PanStep
	}
}

// ScreenSize returns the window size that fits a width×height grid at the
// starting zoom, margins included.
func ScreenSize(cfg Config, width, height int) (int, int) {
	l := world.Layout{Size: cfg.CellSize}
	w, h := l.Bounds(width, height)
	return int(w + cfg.Indent*2), int(h + cfg.Indent*2)
}
