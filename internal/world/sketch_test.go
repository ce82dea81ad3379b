package world

import "testing"

func TestSketch(t *testing.T) {
	g, _ := NewGrid(3, 2)
	_ = g.SetType(1, 0, TerrainEarth)
	_ = g.SetType(2, 1, TerrainVillage)

	want := "~ # ~\n ~ ~ V\n"
	if got := g.Sketch(); got != want {
		t.Errorf("Sketch() = %q, want %q", got, want)
	}
}
