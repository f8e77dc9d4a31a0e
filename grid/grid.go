package grid

import (
	"fmt"
	"math"
)

// New constructs an all-open rows×cols grid with terrain 0 everywhere.
// Returns ErrInvalidDimensions if rows ≤ 0, cols ≤ 0, or rows×cols does not
// fit in an int.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrInvalidDimensions, rows, cols)
	}
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d×%d cells overflow int", ErrInvalidDimensions, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]int8, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// IsValid reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) IsValid(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsAccessible reports whether c is valid and not an obstacle.
// Complexity: O(1).
func (g *Grid) IsAccessible(c Coord) bool {
	return g.IsValid(c) && g.cells[g.index(c)] != obstacle
}

// IsObstacle reports whether c is valid and blocked.
func (g *Grid) IsObstacle(c Coord) bool {
	return g.IsValid(c) && g.cells[g.index(c)] == obstacle
}

// AddObstacle blocks c. It returns false and leaves the grid untouched when
// c is out of range.
func (g *Grid) AddObstacle(c Coord) bool {
	if !g.IsValid(c) {
		return false
	}
	g.cells[g.index(c)] = obstacle

	return true
}

// RemoveObstacle reopens c with terrain 0. It returns false when c is out of
// range and true otherwise, including when c was already open.
func (g *Grid) RemoveObstacle(c Coord) bool {
	if !g.IsValid(c) {
		return false
	}
	g.cells[g.index(c)] = 0

	return true
}

// Terrain returns the cosmetic terrain value of an open cell.
// ok is false for invalid coordinates and obstacles.
func (g *Grid) Terrain(c Coord) (value int, ok bool) {
	if !g.IsAccessible(c) {
		return 0, false
	}

	return int(g.cells[g.index(c)]), true
}

// Obstacles returns every blocked coordinate in row-major order.
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for i, v := range g.cells {
		if v == obstacle {
			out = append(out, g.coord(i))
		}
	}

	return out
}

// Neighbors returns the accessible orthogonal neighbours of c in the fixed
// order up, down, left, right. No diagonals.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.IsAccessible(n) {
			out = append(out, n)
		}
	}

	return out
}

// Clone returns a deep copy of g that can be mutated independently.
func (g *Grid) Clone() *Grid {
	cells := make([]int8, len(g.cells))
	copy(cells, g.cells)

	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// index maps c to its row-major offset: Row*cols + Col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// coord converts a row-major offset back to a Coord.
func (g *Grid) coord(i int) Coord {
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
