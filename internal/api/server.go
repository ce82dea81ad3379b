// Package api serves a generated island over HTTP as JSON so renderers
// outside this process can query cells, geometry and picks.
// All endpoints are GET and read-only.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/talgya/hexisle/internal/world"
)

// DefaultCellSize is used for geometry when a request gives no size.
const DefaultCellSize = 15.0

// Server serves one generated map.
type Server struct {
	Map  *world.Map
	Port int
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", getOnly(s.handleStatus))
	mux.HandleFunc("/api/v1/map", getOnly(s.handleMap))
	mux.HandleFunc("/api/v1/cell", getOnly(s.handleCell))
	mux.HandleFunc("/api/v1/pick", getOnly(s.handlePick))
	return mux
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, s.Handler()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	g := s.Map.Grid
	counts := g.Counts()
	terrain := make(map[string]int, len(counts))
	for t, c := range counts {
		terrain[t.String()] = c
	}

	writeJSON(w, map[string]any{
		"width":    g.Width(),
		"height":   g.Height(),
		"seed":     s.Map.Seed,
		"center":   s.Map.Center,
		"land":     s.Map.Land,
		"terrain":  terrain,
		"villages": len(s.Map.Villages),
	})
}

type cellEntry struct {
	Col     int        `json:"col"`
	Row     int        `json:"row"`
	Cube    world.Cube `json:"cube"`
	Terrain string     `json:"terrain"`
}

func newCellEntry(c world.Cell) cellEntry {
	return cellEntry{
		Col:     c.Coord.Col,
		Row:     c.Coord.Row,
		Cube:    c.Cube,
		Terrain: c.Terrain.String(),
	}
}

// handleMap returns every cell in row-major order plus the villages.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	g := s.Map.Grid
	cells := make([]cellEntry, 0, g.Size())
	g.ForEachCell(func(c world.Cell) {
		cells = append(cells, newCellEntry(c))
	})

	writeJSON(w, map[string]any{
		"width":    g.Width(),
		"height":   g.Height(),
		"seed":     s.Map.Seed,
		"cells":    cells,
		"villages": s.Map.Villages,
	})
}

// handleCell returns one cell with its geometry at the requested size.
func (s *Server) handleCell(w http.ResponseWriter, r *http.Request) {
	col, err := intParam(r, "col")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	row, err := intParam(r, "row")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	layout, err := layoutParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cell, err := s.Map.Grid.CellAt(col, row)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	resp := map[string]any{
		"cell":     newCellEntry(cell),
		"center":   layout.CellCenter(cell.Coord),
		"vertices": layout.HexagonVertices(cell.Coord),
	}
	if v, ok := s.Map.VillageAt(cell.Coord); ok {
		resp["village"] = v.Name
	}
	writeJSON(w, resp)
}

// handlePick resolves a pixel to a cell.
func (s *Server) handlePick(w http.ResponseWriter, r *http.Request) {
	x, err := floatParam(r, "x", 0, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	y, err := floatParam(r, "y", 0, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	layout, err := layoutParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, ok := s.Map.Grid.Pick(layout, world.Point{X: x, Y: y})
	if !ok {
		writeJSON(w, map[string]any{"hit": false})
		return
	}
	cell, _ := s.Map.Grid.CellAt(o.Col, o.Row)
	writeJSON(w, map[string]any{
		"hit":  true,
		"cell": newCellEntry(cell),
	})
}

// layoutParams reads size, ox and oy into a Layout.
func layoutParams(r *http.Request) (world.Layout, error) {
	size, err := floatParam(r, "size", DefaultCellSize, false)
	if err != nil {
		return world.Layout{}, err
	}
	if size <= 0 {
		return world.Layout{}, fmt.Errorf("size must be positive")
	}
	ox, err := floatParam(r, "ox", 0, false)
	if err != nil {
		return world.Layout{}, err
	}
	oy, err := floatParam(r, "oy", 0, false)
	if err != nil {
		return world.Layout{}, err
	}
	return world.Layout{Size: size, Origin: world.Point{X: ox, Y: oy}}, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return n, nil
}

func floatParam(r *http.Request, name string, def float64, required bool) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		if required {
			return 0, fmt.Errorf("missing %s", name)
		}
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("api: encode response", "error", err)
	}
}
