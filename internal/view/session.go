package view

import (
	"log/slog"

	"github.com/talgya/hexisle/internal/world"
)

// Session is the interactive state of one open map: which cell was
// clicked, which is hovered, and which unit is selected.
type Session struct {
	Map   *world.Map
	View  *ViewState
	Units []*Unit

	Clicked  *world.Offset
	Hovered  *world.Offset
	Selected *Unit
}

// NewSession wraps a generated map for interaction.
func NewSession(m *world.Map, v *ViewState, units []*Unit) *Session {
	return &Session{Map: m, View: v, Units: units}
}

// UnitAt returns the unit standing on o, if any.
func (s *Session) UnitAt(o world.Offset) *Unit {
	for _, u := range s.Units {
		if u.Coord == o {
			return u
		}
	}
	return nil
}

// Click handles a left click at screen position p. Clicking outside the
// grid does nothing. Clicking a unit selects it; clicking elsewhere with a
// unit selected moves that unit there and clears the selection.
// It reports whether the click hit a cell.
func (s *Session) Click(p world.Point) bool {
	o, ok := s.Map.Grid.Pick(s.View.Layout(), p)
	if !ok {
		return false
	}
	s.Clicked = &o

	if u := s.UnitAt(o); u != nil {
		s.Selected = u
		slog.Debug("unit selected", "unit", u.ID, "col", o.Col, "row", o.Row)
		return true
	}

	if s.Selected != nil {
		slog.Debug("unit moved", "unit", s.Selected.ID,
			"from_col", s.Selected.Coord.Col, "from_row", s.Selected.Coord.Row,
			"to_col", o.Col, "to_row", o.Row)
		s.Selected.Coord = o
		s.Selected = nil
	}
	return true
}

// FocusSelection centres the view on the selected unit, or failing that
// on the last clicked cell. It reports whether there was anything to focus.
func (s *Session) FocusSelection(screenW, screenH float64) bool {
	switch {
	case s.Selected != nil:
		s.View.Focus(s.Selected.Coord, screenW, screenH)
	case s.Clicked != nil:
		s.View.Focus(*s.Clicked, screenW, screenH)
	default:
		return false
	}
	return true
}

// Hover records the cell under the cursor, or clears it.
func (s *Session) Hover(p world.Point) {
	o, ok := s.Map.Grid.Pick(s.View.Layout(), p)
	if !ok {
		s.Hovered = nil
		return
	}
	s.Hovered = &o
}

// IsClicked reports whether o is the last clicked cell.
func (s *Session) IsClicked(o world.Offset) bool {
	return s.Clicked != nil && *s.Clicked == o
}

// IsHovered reports whether o is under the cursor.
func (s *Session) IsHovered(o world.Offset) bool {
	return s.Hovered != nil && *s.Hovered == o
}

// Reset swaps in a new map, dropping clicks and selection.
func (s *Session) Reset(m *world.Map, units []*Unit) {
	s.Map = m
	s.Units = units
	s.Clicked = nil
	s.Hovered = nil
	s.Selected = nil
}
