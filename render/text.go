package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/gridroute/grid"
)

// Text writes g to w, one line per row with cells separated by a space.
func Text(w io.Writer, g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return err
	}

	onRoute := make(map[grid.Coord]bool, len(cfg.Route))
	for _, c := range cfg.Route {
		onRoute[c] = true
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteByte(glyph(g, grid.Coord{Row: r, Col: c}, &cfg, onRoute))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func glyph(g *grid.Grid, at grid.Coord, cfg *Options, onRoute map[grid.Coord]bool) byte {
	switch {
	case cfg.Start != nil && *cfg.Start == at:
		return GlyphStart
	case cfg.Goal != nil && *cfg.Goal == at:
		return GlyphGoal
	case onRoute[at]:
		return GlyphRoute
	case g.IsObstacle(at):
		return GlyphObstacle
	}
	if cfg.ShowTerrain {
		v, _ := g.Terrain(at)
		return byte('0' + v)
	}

	return GlyphOpen
}
