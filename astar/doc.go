// Package astar finds a shortest route between two cells of a grid.Grid with
// an A* search: uniform step cost, 4-directional moves and the Manhattan
// distance as heuristic.
//
// Overview:
//
//   - FindPath expands cells in ascending f = g + h, where g is the number of
//     steps taken from the start and h the Manhattan distance to the goal.
//   - Manhattan distance is admissible and consistent for unit-cost
//     orthogonal moves, so the first time the goal is popped its route is
//     optimal.
//   - Ties on f are broken by insertion order (FIFO), which makes the
//     returned route fully reproducible for identical inputs.
//
// Implementation notes:
//
//   - Search nodes live in a per-call append-only arena; predecessors are
//     arena indices, so reconstruction walks indices instead of pointers.
//   - Lazy decrease-key: a cheaper path to a cell pushes a new frontier entry;
//     stale entries are discarded at pop time via the visited set.
//   - A neighbour is (re)pushed only when its new g is strictly better than
//     the best g recorded so far.
//
// Complexity (N = rows·cols):
//
//   - Time:  O(N log N) worst case.
//   - Space: O(N) for the arena, the visited set and the frontier.
//
// Options:
//
//   - WithMaxExpansions(n): give up after n expanded cells (0 = unlimited).
//   - WithContext(ctx):     give up once ctx is done.
//   - WithOnExpand(fn):     observe every expanded cell.
//
// An early stop is reported as ErrNoRoute wrapped with the cause
// (ErrBudgetExceeded or the context error).
//
// Errors (sentinel):
//
//   - ErrNilGrid:         FindPath received a nil grid.
//   - ErrNoRoute:         the goal is unreachable, or start/goal is invalid or blocked.
//   - ErrOptionViolation: an Option received an invalid value.
//   - ErrBudgetExceeded:  wrapped in ErrNoRoute when WithMaxExpansions stops the search.
//
// Thread safety:
//
//   - FindPath only reads the grid. The caller must not mutate the grid while
//     a search runs; grid.Clone provides a snapshot when that is needed.
//
// Example usage:
//
//	g, _ := grid.New(3, 3)
//	g.AddObstacle(grid.Coord{Row: 1, Col: 1})
//	res, err := astar.FindPath(g, grid.Coord{}, grid.Coord{Row: 2, Col: 2})
//	if errors.Is(err, astar.ErrNoRoute) {
//	    // unreachable
//	}
//	fmt.Println(res.Route)
package astar
