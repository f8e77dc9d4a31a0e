package grid_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/grid"
)

//----------------------------------------------------------------------------//
// New and bounds
//----------------------------------------------------------------------------//

// TestNew_InvalidDimensions verifies that New rejects non-positive sizes.
func TestNew_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 3},
		{"NegativeBoth", -2, -2},
		{"ProductOverflows", math.MaxInt, math.MaxInt},
		{"ProductOverflowsByOne", math.MaxInt/2 + 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows, tc.cols)
			require.ErrorIs(t, err, grid.ErrInvalidDimensions)
			assert.Nil(t, g)
		})
	}
}

// TestIsValid checks the bounds predicate exhaustively around a 3×4 grid.
func TestIsValid(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())

	for r := -2; r < 5; r++ {
		for c := -2; c < 6; c++ {
			want := r >= 0 && r < 3 && c >= 0 && c < 4
			assert.Equalf(t, want, g.IsValid(grid.Coord{Row: r, Col: c}), "IsValid(%d,%d)", r, c)
		}
	}
}

//----------------------------------------------------------------------------//
// Obstacle mutation
//----------------------------------------------------------------------------//

// TestObstacles_AddRemove checks accessibility after each mutation.
func TestObstacles_AddRemove(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p := grid.Coord{Row: r, Col: c}
			require.True(t, g.IsAccessible(p))

			require.True(t, g.AddObstacle(p))
			assert.False(t, g.IsAccessible(p))
			assert.True(t, g.IsObstacle(p))

			require.True(t, g.RemoveObstacle(p))
			assert.Equal(t, g.IsValid(p), g.IsAccessible(p))
			assert.False(t, g.IsObstacle(p))
		}
	}
}

// TestObstacles_OutOfRange verifies invalid coordinates are rejected without mutation.
func TestObstacles_OutOfRange(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	for _, p := range []grid.Coord{{Row: -1, Col: 0}, {Row: 0, Col: -1}, {Row: 2, Col: 0}, {Row: 0, Col: 2}, {Row: 5, Col: 5}} {
		assert.False(t, g.AddObstacle(p), "AddObstacle%v", p)
		assert.False(t, g.RemoveObstacle(p), "RemoveObstacle%v", p)
		assert.False(t, g.IsAccessible(p))
	}
	assert.Empty(t, g.Obstacles())
}

// TestRemoveObstacle_Idempotent checks removal from an open cell still succeeds.
func TestRemoveObstacle_Idempotent(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	p := grid.Coord{}

	assert.True(t, g.RemoveObstacle(p))
	assert.True(t, g.RemoveObstacle(p))
	assert.True(t, g.IsAccessible(p))
}

// TestObstacles_Listing checks Obstacles returns row-major order.
func TestObstacles_Listing(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	g.AddObstacle(grid.Coord{Row: 2, Col: 0})
	g.AddObstacle(grid.Coord{Row: 0, Col: 2})
	g.AddObstacle(grid.Coord{Row: 1, Col: 1})

	assert.Equal(t, []grid.Coord{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}, g.Obstacles())
}

//----------------------------------------------------------------------------//
// Neighbors, Manhattan, Clone
//----------------------------------------------------------------------------//

// TestNeighbors_OrderAndFiltering checks up, down, left, right order and that
// obstacles and borders are skipped.
func TestNeighbors_OrderAndFiltering(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	center := grid.Coord{Row: 1, Col: 1}

	assert.Equal(t, []grid.Coord{{Row: 0, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, g.Neighbors(center))

	g.AddObstacle(grid.Coord{Row: 2, Col: 1})
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 2}}, g.Neighbors(center))

	assert.Equal(t, []grid.Coord{{Row: 1, Col: 0}, {Row: 0, Col: 1}}, g.Neighbors(grid.Coord{}))
}

// TestManhattan checks the distance is symmetric and sign-independent.
func TestManhattan(t *testing.T) {
	a, b := grid.Coord{Row: 1, Col: 5}, grid.Coord{Row: 4, Col: 2}
	assert.Equal(t, 6, grid.Manhattan(a, b))
	assert.Equal(t, 6, grid.Manhattan(b, a))
	assert.Equal(t, 0, grid.Manhattan(a, a))
}

// TestClone verifies a clone does not share cell storage.
func TestClone(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.AddObstacle(grid.Coord{Row: 0, Col: 1})

	c := g.Clone()
	c.AddObstacle(grid.Coord{Row: 1, Col: 1})
	c.RemoveObstacle(grid.Coord{Row: 0, Col: 1})

	assert.True(t, g.IsObstacle(grid.Coord{Row: 0, Col: 1}))
	assert.False(t, g.IsObstacle(grid.Coord{Row: 1, Col: 1}))
	assert.Equal(t, g.Rows(), c.Rows())
	assert.Equal(t, g.Cols(), c.Cols())
}

//----------------------------------------------------------------------------//
// Terrain
//----------------------------------------------------------------------------//

// TestRandomizeTerrain checks values stay in range and obstacles survive.
func TestRandomizeTerrain(t *testing.T) {
	g, err := grid.New(10, 10)
	require.NoError(t, err)
	wall := grid.Coord{Row: 4, Col: 4}
	g.AddObstacle(wall)

	g.RandomizeTerrain(rand.New(rand.NewSource(7)))

	seen := map[int]bool{}
	for r := 0; r < 10; r++ {
		for c := 0; c < 10; c++ {
			p := grid.Coord{Row: r, Col: c}
			v, ok := g.Terrain(p)
			if p == wall {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok)
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, grid.MaxTerrain)
			seen[v] = true
		}
	}
	assert.True(t, g.IsObstacle(wall))
	assert.Len(t, seen, grid.MaxTerrain+1, "99 draws should hit every terrain value")
}

// TestTerrain_Invalid checks out-of-range lookups report ok=false.
func TestTerrain_Invalid(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	_, ok := g.Terrain(grid.Coord{Row: 1})
	assert.False(t, ok)
}

// TestCoord_String checks the display form.
func TestCoord_String(t *testing.T) {
	assert.Equal(t, "(2,-1)", grid.Coord{Row: 2, Col: -1}.String())
}
