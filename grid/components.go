package grid

// Components finds all 4-connected regions of accessible cells.
// Components are listed in row-major order of their first cell; cells inside
// a component appear in BFS discovery order.
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for seen flags and output.
func (g *Grid) Components() [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i0, v := range g.cells {
		if v == obstacle || seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []Coord{g.coord(i0)}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Neighbors(queue[qi]) {
				ni := g.index(n)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether an accessible path links a and b. It is false
// when either endpoint is invalid or blocked.
// Time: O(rows·cols) worst case; stops as soon as b is reached.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.IsAccessible(a) || !g.IsAccessible(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(a)] = true
	queue := []Coord{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(queue[qi]) {
			if n == b {
				return true
			}
			ni := g.index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
