// Village placement: samples land cells without replacement and names the
// resulting villages.
package world

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
)

// Village is a named village cell.
type Village struct {
	Coord Offset `json:"coord"`
	Name  string `json:"name"`
}

// PlaceVillages converts width*height/divisor earth cells into villages.
// Cells are drawn uniformly from the remaining earth pool so no cell is
// picked twice; the loop stops early if the pool runs out.
func PlaceVillages(g *Grid, rng *rand.Rand, divisor int) []Offset {
	if divisor < 1 {
		return nil
	}

	var pool []int
	for i, c := range g.cells {
		if c.Terrain == TerrainEarth {
			pool = append(pool, i)
		}
	}

	want := g.Size() / divisor
	sites := make([]Offset, 0, want)
	for n := 0; n < want; n++ {
		if len(pool) == 0 {
			slog.Debug("village pool exhausted", "placed", n, "wanted", want)
			break
		}
		k := rng.Intn(len(pool))
		i := pool[k]
		pool[k] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		g.cells[i].Terrain = TerrainVillage
		sites = append(sites, g.cells[i].Coord)
	}

	return sites
}

// Village names pair a shore word with a landform ending.
var (
	nameHeads = []string{
		"Gull", "Salt", "Kelp", "Reef", "Tide", "Shell", "Drift",
		"Cove", "Spray", "Brine", "Sand", "Wreck", "Pearl", "Heron",
		"Surf", "Mist", "Gale", "Coral", "Skerry", "Puffin", "Crab",
	}
	nameTails = []string{
		"bay", "ness", "holm", "strand", "wick", "haven", "shoal",
		"combe", "mouth", "point", "sound", "rock", "sands", "firth",
		"quay", "neck", "stack", "voe",
	}
)

// NameVillages returns count distinct village names. Head/tail pairs are
// dealt from a shuffled deck; once the deck runs out the names repeat with
// a number appended.
func NameVillages(rng *rand.Rand, count int) []string {
	deck := rng.Perm(len(nameHeads) * len(nameTails))
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		k := deck[i%len(deck)]
		name := nameHeads[k/len(nameTails)] + nameTails[k%len(nameTails)]
		if round := i / len(deck); round > 0 {
			name = fmt.Sprintf("%s %d", name, round+1)
		}
		names = append(names, name)
	}
	return names
}

// LandSites returns up to n land cells ordered by distance from origin,
// keeping every pick at least spacing hexes from the ones before it.
func LandSites(g *Grid, origin Offset, n, spacing int) []Offset {
	type scored struct {
		coord Offset
		dist  int
	}
	var candidates []scored
	g.ForEachCell(func(c Cell) {
		if c.Terrain.IsLand() {
			candidates = append(candidates, scored{c.Coord, Distance(origin, c.Coord)})
		}
	})

	// Stable so ties keep row-major order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	var picked []Offset
	for _, c := range candidates {
		if len(picked) >= n {
			break
		}
		if tooClose(c.coord, picked, spacing) {
			continue
		}
		picked = append(picked, c.coord)
	}
	return picked
}

func tooClose(coord Offset, existing []Offset, minDist int) bool {
	for _, o := range existing {
		if Distance(coord, o) < minDist {
			return true
		}
	}
	return false
}

// VillageAt returns the village at o, if any.
func (m *Map) VillageAt(o Offset) (Village, bool) {
	for _, v := range m.Villages {
		if v.Coord == o {
			return v, true
		}
	}
	return Village{}, false
}
