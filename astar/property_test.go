package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// PropertySuite checks FindPath against a breadth-first oracle on seeded
// random grids.
type PropertySuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *PropertySuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(2024))
}

// randomGrid returns a rows×cols grid where each cell is blocked with the
// given probability.
func (s *PropertySuite) randomGrid(rows, cols int, density float64) *grid.Grid {
	g, err := grid.New(rows, cols)
	require.NoError(s.T(), err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s.rng.Float64() < density {
				g.AddObstacle(grid.Coord{Row: r, Col: c})
			}
		}
	}

	return g
}

func (s *PropertySuite) randomCoord(g *grid.Grid) grid.Coord {
	return grid.Coord{Row: s.rng.Intn(g.Rows()), Col: s.rng.Intn(g.Cols())}
}

// bfsDistance returns the unit-cost shortest distance, or -1 if unreachable.
func bfsDistance(g *grid.Grid, start, goal grid.Coord) int {
	if !g.IsAccessible(start) || !g.IsAccessible(goal) {
		return -1
	}
	dist := map[grid.Coord]int{start: 0}
	queue := []grid.Coord{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == goal {
			return dist[u]
		}
		for _, v := range g.Neighbors(u) {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return -1
}

// TestOpenGridIsManhattanOptimal: with no obstacles the route length is
// |Δrow| + |Δcol| + 1 for every pair.
func (s *PropertySuite) TestOpenGridIsManhattanOptimal() {
	g := s.randomGrid(9, 13, 0)
	for i := 0; i < 200; i++ {
		start, goal := s.randomCoord(g), s.randomCoord(g)
		res, err := astar.FindPath(g, start, goal)
		require.NoError(s.T(), err)
		require.Len(s.T(), res.Route, grid.Manhattan(start, goal)+1)
		assertValidRoute(s.T(), g, res.Route, start, goal)
	}
}

// TestMatchesBFS: a route exists iff BFS reaches the goal, and its cost
// equals the BFS distance.
func (s *PropertySuite) TestMatchesBFS() {
	for round := 0; round < 40; round++ {
		g := s.randomGrid(5+s.rng.Intn(15), 5+s.rng.Intn(15), 0.3)
		for i := 0; i < 25; i++ {
			start, goal := s.randomCoord(g), s.randomCoord(g)
			want := bfsDistance(g, start, goal)
			res, err := astar.FindPath(g, start, goal)
			if want < 0 {
				require.ErrorIs(s.T(), err, astar.ErrNoRoute, "start=%v goal=%v", start, goal)
				require.False(s.T(), g.Connected(start, goal))
				continue
			}
			require.NoError(s.T(), err, "start=%v goal=%v", start, goal)
			require.Equal(s.T(), want, res.Cost)
			require.Equal(s.T(), res.Cost, res.Route.Cost())
			require.True(s.T(), g.Connected(start, goal))
			assertValidRoute(s.T(), g, res.Route, start, goal)
		}
	}
}

// TestDeterministic: identical inputs yield identical routes and counters.
func (s *PropertySuite) TestDeterministic() {
	g := s.randomGrid(30, 30, 0.25)
	for i := 0; i < 30; i++ {
		start, goal := s.randomCoord(g), s.randomCoord(g)
		a, errA := astar.FindPath(g, start, goal)
		b, errB := astar.FindPath(g.Clone(), start, goal)
		require.Equal(s.T(), errA == nil, errB == nil)
		if errA == nil {
			require.Equal(s.T(), a, b)
		}
	}
}

// TestTerrainIsCosmetic: randomising terrain never changes a result.
func (s *PropertySuite) TestTerrainIsCosmetic() {
	g := s.randomGrid(20, 20, 0.2)
	painted := g.Clone()
	painted.RandomizeTerrain(s.rng)
	for i := 0; i < 30; i++ {
		start, goal := s.randomCoord(g), s.randomCoord(g)
		a, errA := astar.FindPath(g, start, goal)
		b, errB := astar.FindPath(painted, start, goal)
		require.Equal(s.T(), errA == nil, errB == nil)
		require.Equal(s.T(), a, b)
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
