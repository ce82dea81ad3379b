package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/talgya/hexisle/internal/world"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	m, err := world.Generate(world.SmallTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	s := &Server{Map: m}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func getJSON(t *testing.T, url string, want int) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != want {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, want)
	}
	if want != http.StatusOK {
		return nil
	}
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return body
}

func TestStatus(t *testing.T) {
	s, ts := newTestServer(t)
	body := getJSON(t, ts.URL+"/api/v1/status", http.StatusOK)
	if int(body["width"].(float64)) != 12 || int(body["height"].(float64)) != 10 {
		t.Errorf("dims = %v×%v", body["width"], body["height"])
	}
	if int64(body["seed"].(float64)) != s.Map.Seed {
		t.Errorf("seed = %v, want %d", body["seed"], s.Map.Seed)
	}
	if int(body["villages"].(float64)) != len(s.Map.Villages) {
		t.Errorf("villages = %v, want %d", body["villages"], len(s.Map.Villages))
	}
}

func TestMapListsEveryCell(t *testing.T) {
	_, ts := newTestServer(t)
	body := getJSON(t, ts.URL+"/api/v1/map", http.StatusOK)
	cells := body["cells"].([]any)
	if len(cells) != 120 {
		t.Fatalf("cells = %d, want 120", len(cells))
	}
	first := cells[0].(map[string]any)
	last := cells[len(cells)-1].(map[string]any)
	if first["col"].(float64) != 0 || first["row"].(float64) != 0 {
		t.Errorf("first cell = %v", first)
	}
	if last["col"].(float64) != 11 || last["row"].(float64) != 9 {
		t.Errorf("last cell = %v", last)
	}
}

func TestCell(t *testing.T) {
	s, ts := newTestServer(t)
	c := s.Map.Center
	body := getJSON(t, fmt.Sprintf("%s/api/v1/cell?col=%d&row=%d&size=20", ts.URL, c.Col, c.Row), http.StatusOK)

	cell := body["cell"].(map[string]any)
	if cell["terrain"] == "water" {
		t.Errorf("centre cell terrain = %v", cell["terrain"])
	}
	if verts := body["vertices"].([]any); len(verts) != 6 {
		t.Errorf("vertices = %d, want 6", len(verts))
	}

	getJSON(t, ts.URL+"/api/v1/cell?col=99&row=0", http.StatusNotFound)
	getJSON(t, ts.URL+"/api/v1/cell?col=x&row=0", http.StatusBadRequest)
	getJSON(t, ts.URL+"/api/v1/cell?row=0", http.StatusBadRequest)
	getJSON(t, ts.URL+"/api/v1/cell?col=1&row=1&size=-3", http.StatusBadRequest)
}

func TestPick(t *testing.T) {
	_, ts := newTestServer(t)
	l := world.Layout{Size: 20, Origin: world.Point{X: 50, Y: 40}}
	o := world.Offset{Col: 4, Row: 3}
	p := l.CellCenter(o)

	url := fmt.Sprintf("%s/api/v1/pick?x=%f&y=%f&size=20&ox=50&oy=40", ts.URL, p.X, p.Y)
	body := getJSON(t, url, http.StatusOK)
	if body["hit"] != true {
		t.Fatalf("hit = %v, want true", body["hit"])
	}
	cell := body["cell"].(map[string]any)
	if int(cell["col"].(float64)) != 4 || int(cell["row"].(float64)) != 3 {
		t.Errorf("picked %v, want (4,3)", cell)
	}

	miss := getJSON(t, ts.URL+"/api/v1/pick?x=-100&y=-100", http.StatusOK)
	if miss["hit"] != false {
		t.Errorf("hit = %v, want false", miss["hit"])
	}
	getJSON(t, ts.URL+"/api/v1/pick?x=1", http.StatusBadRequest)
}

func TestMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/v1/map", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", resp.StatusCode)
	}
}

func TestNonFiniteParamsRejected(t *testing.T) {
	_, ts := newTestServer(t)
	for _, path := range []string{
		"/api/v1/cell?col=0&row=0&size=NaN",
		"/api/v1/cell?col=0&row=0&ox=Inf",
		"/api/v1/cell?col=0&row=0&oy=-Inf",
		"/api/v1/cell?col=0&row=0&size=1e400",
		"/api/v1/pick?x=NaN&y=1",
		"/api/v1/pick?x=1&y=+Inf",
		"/api/v1/pick?x=1&y=1&size=nan",
	} {
		getJSON(t, ts.URL+path, http.StatusBadRequest)
	}
}
