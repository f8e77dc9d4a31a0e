package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridroute/grid"
)

// terrainShades maps terrain 0..3 to progressively darker greens.
var terrainShades = [grid.MaxTerrain + 1][3]float64{
	{0.93, 0.96, 0.90},
	{0.82, 0.90, 0.76},
	{0.70, 0.83, 0.62},
	{0.58, 0.75, 0.50},
}

// PNG writes g to w as a PNG image of CellSize-pixel square cells.
func PNG(w io.Writer, g *grid.Grid, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return err
	}

	cs := float64(cfg.CellSize)
	dc := gg.NewContext(g.Cols()*cfg.CellSize, g.Rows()*cfg.CellSize)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := grid.Coord{Row: r, Col: c}
			if g.IsObstacle(at) {
				dc.SetRGB(0.15, 0.15, 0.18)
			} else {
				v, _ := g.Terrain(at)
				s := terrainShades[v]
				dc.SetRGB(s[0], s[1], s[2])
			}
			dc.DrawRectangle(float64(c)*cs, float64(r)*cs, cs, cs)
			dc.Fill()
		}
	}

	// cell borders
	dc.SetRGBA(0, 0, 0, 0.15)
	dc.SetLineWidth(1)
	for r := 0; r <= g.Rows(); r++ {
		dc.DrawLine(0, float64(r)*cs, float64(g.Cols())*cs, float64(r)*cs)
	}
	for c := 0; c <= g.Cols(); c++ {
		dc.DrawLine(float64(c)*cs, 0, float64(c)*cs, float64(g.Rows())*cs)
	}
	dc.Stroke()

	if len(cfg.Route) > 1 {
		dc.SetRGB(0.95, 0.55, 0.10)
		dc.SetLineWidth(cs / 4)
		for i, p := range cfg.Route {
			x, y := center(p, cs)
			if i == 0 {
				dc.MoveTo(x, y)
				continue
			}
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	if cfg.Start != nil {
		marker(dc, *cfg.Start, cs, 0.10, 0.65, 0.25)
	}
	if cfg.Goal != nil {
		marker(dc, *cfg.Goal, cs, 0.85, 0.15, 0.15)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}

	return nil
}

func center(p grid.Coord, cs float64) (x, y float64) {
	return (float64(p.Col) + 0.5) * cs, (float64(p.Row) + 0.5) * cs
}

func marker(dc *gg.Context, p grid.Coord, cs, r, g, b float64) {
	x, y := center(p, cs)
	dc.SetRGB(r, g, b)
	dc.DrawCircle(x, y, cs/3)
	dc.Fill()
}
