package astar

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNoRoute indicates that no route connects start and goal. This is a
	// normal outcome: the goal may be walled off, or an endpoint may be out of
	// range or blocked.
	ErrNoRoute = errors.New("astar: no route found")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded is wrapped in ErrNoRoute when the expansion limit set by
	// WithMaxExpansions is reached before the goal.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// Route is an ordered sequence of cells from start to goal inclusive.
// Consecutive cells differ by exactly one orthogonal step.
type Route []grid.Coord

// Cost returns the number of steps along the route.
func (r Route) Cost() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// Contains reports whether c lies on the route.
func (r Route) Contains(c grid.Coord) bool {
	for _, p := range r {
		if p == c {
			return true
		}
	}

	return false
}

// Result is the outcome of a successful search.
//
// Route    – start..goal inclusive.
// Cost     – accumulated g of the goal (len(Route)-1).
// Expanded – number of cells finalised before the goal was popped.
// Pushed   – number of frontier pushes, seed and duplicates included.
type Result struct {
	Route    Route
	Cost     int
	Expanded int
	Pushed   int
}

// Options configures FindPath.
type Options struct {
	// Ctx stops the search once done. Checked once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of expanded cells.
	// Zero disables the cap.
	MaxExpansions int

	// OnExpand is called for every cell as it is finalised, with its g and h.
	OnExpand func(c grid.Coord, g, h int)

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for FindPath.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no expansion
// cap and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnExpand:      func(grid.Coord, int, int) {},
	}
}

// WithContext sets a context whose cancellation or deadline stops the
// search. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search after n expanded cells.
//
//	n > 0:  cap at n
//	n == 0: no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a hook called for each finalised cell.
func WithOnExpand(fn func(c grid.Coord, g, h int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
