package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// FindPath searches g for a shortest route from start to goal.
//
// Validation order:
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and goal must be accessible, otherwise ErrNoRoute.
//
// If start == goal the route is the single cell [start]. If the frontier
// empties, or the search is stopped by WithMaxExpansions or WithContext,
// FindPath returns ErrNoRoute (wrapped with the stop cause when there is
// one). There are no partial results.
//
// Complexity: O(N log N) time, O(N) space, N = rows·cols.
func FindPath(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.IsAccessible(start) {
		return nil, fmt.Errorf("%w: start %v is out of range or blocked", ErrNoRoute, start)
	}
	if !g.IsAccessible(goal) {
		return nil, fmt.Errorf("%w: goal %v is out of range or blocked", ErrNoRoute, goal)
	}

	r := &runner{
		grid:    g,
		goal:    goal,
		options: cfg,
		visited: make(map[grid.Coord]bool),
		best:    make(map[grid.Coord]int),
	}
	r.init(start)

	return r.process()
}

// node is one arena record. parent is the arena index of the predecessor,
// -1 for the seed.
type node struct {
	at     grid.Coord
	g, h   int
	parent int
}

// runner holds the mutable state of a single FindPath call.
type runner struct {
	grid     *grid.Grid
	goal     grid.Coord
	options  Options
	nodes    []node              // append-only arena
	open     frontier            // min-heap over arena indices
	visited  map[grid.Coord]bool // expanded (finalised) cells
	best     map[grid.Coord]int  // lowest g recorded per cell
	seq      uint64
	expanded int
}

// init seeds the frontier with the start cell at g=0.
func (r *runner) init(start grid.Coord) {
	heap.Init(&r.open)
	r.best[start] = 0
	r.push(node{at: start, g: 0, h: grid.Manhattan(start, r.goal), parent: -1})
}

// push appends n to the arena and schedules it on the frontier.
func (r *runner) push(n node) {
	r.nodes = append(r.nodes, n)
	heap.Push(&r.open, entry{f: n.g + n.h, seq: r.seq, node: len(r.nodes) - 1})
	r.seq++
}

// process pops entries until the goal is reached or the frontier is empty.
func (r *runner) process() (*Result, error) {
	ctx := r.options.Ctx
	for r.open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoRoute, err)
		}

		idx := heap.Pop(&r.open).(entry).node
		cur := r.nodes[idx]

		if cur.at == r.goal {
			return r.result(idx), nil
		}
		// stale duplicate
		if r.visited[cur.at] {
			continue
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %w after %d expansions", ErrNoRoute, ErrBudgetExceeded, r.expanded)
		}

		r.visited[cur.at] = true
		r.expanded++
		r.options.OnExpand(cur.at, cur.g, cur.h)

		r.relax(idx)
	}

	return nil, ErrNoRoute
}

// relax pushes every accessible, unexpanded neighbour of arena node idx
// whose tentative g improves on the best recorded one.
func (r *runner) relax(idx int) {
	cur := r.nodes[idx]
	for _, nb := range r.grid.Neighbors(cur.at) {
		if r.visited[nb] {
			continue
		}
		g := cur.g + 1
		if old, ok := r.best[nb]; ok && g >= old {
			continue
		}
		r.best[nb] = g
		r.push(node{at: nb, g: g, h: grid.Manhattan(nb, r.goal), parent: idx})
	}
}

// result walks parent indices back from the goal node and reverses them.
func (r *runner) result(idx int) *Result {
	var route Route
	for i := idx; i >= 0; i = r.nodes[i].parent {
		route = append(route, r.nodes[i].at)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return &Result{
		Route:    route,
		Cost:     r.nodes[idx].g,
		Expanded: r.expanded,
		Pushed:   int(r.seq),
	}
}
