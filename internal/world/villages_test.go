package world

import (
	"math/rand"
	"testing"
)

func TestNameVillagesUnique(t *testing.T) {
	// More names than syllable pairs forces the numbered fallback.
	for _, n := range []int{0, 1, 30, 900} {
		names := NameVillages(rand.New(rand.NewSource(8)), n)
		if len(names) != n {
			t.Fatalf("NameVillages(%d) returned %d names", n, len(names))
		}
		seen := make(map[string]bool)
		for _, name := range names {
			if name == "" || seen[name] {
				t.Fatalf("NameVillages(%d): empty or duplicate name %q", n, name)
			}
			seen[name] = true
		}
	}
}

func TestGeneratedVillagesNamed(t *testing.T) {
	m, err := Generate(SmallTestConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range m.Villages {
		if v.Name == "" {
			t.Errorf("village at %v has no name", v.Coord)
		}
		if tr, _ := m.Grid.TerrainAt(v.Coord); tr != TerrainVillage {
			t.Errorf("village %s at %v is %v", v.Name, v.Coord, tr)
		}
		if got, ok := m.VillageAt(v.Coord); !ok || got != v {
			t.Errorf("VillageAt(%v) = %v, %v", v.Coord, got, ok)
		}
	}
	if _, ok := m.VillageAt(Offset{Col: -1, Row: -1}); ok {
		t.Error("VillageAt off-grid reported a village")
	}
}

func TestLandSitesSpacing(t *testing.T) {
	g, _ := NewGrid(10, 10)
	for row := 2; row < 8; row++ {
		for col := 2; col < 8; col++ {
			_ = g.SetType(col, row, TerrainEarth)
		}
	}
	_ = g.SetType(4, 4, TerrainVillage)

	origin := Offset{Col: 4, Row: 4}
	sites := LandSites(g, origin, 4, 2)
	if len(sites) != 4 {
		t.Fatalf("got %d sites, want 4", len(sites))
	}
	if sites[0] != origin {
		t.Errorf("first site = %v, want origin %v", sites[0], origin)
	}
	for i, a := range sites {
		if tr, _ := g.TerrainAt(a); !tr.IsLand() {
			t.Errorf("site %v is %v", a, tr)
		}
		for _, b := range sites[i+1:] {
			if Distance(a, b) < 2 {
				t.Errorf("sites %v and %v only %d apart", a, b, Distance(a, b))
			}
		}
	}
}

func TestLandSitesNoLand(t *testing.T) {
	g, _ := NewGrid(4, 4)
	if sites := LandSites(g, Offset{}, 3, 1); len(sites) != 0 {
		t.Errorf("got %v on an all-water grid", sites)
	}
}
