package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for rendering.
var (
	// ErrNilGrid indicates a nil grid was passed to a renderer.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrBadCellSize indicates a non-positive PNG cell size.
	ErrBadCellSize = errors.New("render: cell size must be positive")
)

// Glyphs used by Text.
const (
	GlyphStart    = 'I'
	GlyphGoal     = 'O'
	GlyphRoute    = '*'
	GlyphObstacle = 'X'
	GlyphOpen     = '.'
)

// DefaultCellSize is the PNG edge length of one cell in pixels.
const DefaultCellSize = 24

// Options controls what is drawn on top of the grid.
type Options struct {
	Route       astar.Route
	Start, Goal *grid.Coord
	ShowTerrain bool
	CellSize    int

	err error
}

// Option configures a renderer.
type Option func(*Options)

// DefaultOptions returns Options with no overlay and DefaultCellSize.
func DefaultOptions() Options {
	return Options{CellSize: DefaultCellSize}
}

// WithRoute overlays route.
func WithRoute(route astar.Route) Option {
	return func(o *Options) { o.Route = route }
}

// WithStart marks c as the start cell.
func WithStart(c grid.Coord) Option {
	return func(o *Options) { o.Start = &c }
}

// WithGoal marks c as the goal cell.
func WithGoal(c grid.Coord) Option {
	return func(o *Options) { o.Goal = &c }
}

// WithTerrain prints terrain digits instead of '.' for open cells.
func WithTerrain() Option {
	return func(o *Options) { o.ShowTerrain = true }
}

// WithCellSize sets the PNG cell edge in pixels; n ≤ 0 is rejected with
// ErrBadCellSize.
func WithCellSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadCellSize, n)
			return
		}
		o.CellSize = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
