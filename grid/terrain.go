package grid

import "math/rand"

// RandomizeTerrain assigns every open cell a cosmetic value in
// [0, MaxTerrain] drawn from r. Obstacles are left in place. Terrain is for
// display only and never changes a search result.
func (g *Grid) RandomizeTerrain(r *rand.Rand) {
	for i, v := range g.cells {
		if v == obstacle {
			continue
		}
		g.cells[i] = int8(r.Intn(MaxTerrain + 1))
	}
}
