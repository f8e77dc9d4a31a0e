package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/render"
)

// run drives one interactive session: grid setup, endpoint prompts, the
// obstacle editing loop, then a single search and its rendering.
func run(cfg config, in io.Reader, out io.Writer, log *logrus.Logger) error {
	g, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	// a loaded map keeps its own terrain digits
	if cfg.mapPath == "" {
		g.RandomizeTerrain(rand.New(rand.NewSource(cfg.seed)))
	}
	log.WithFields(logrus.Fields{
		"rows": g.Rows(), "cols": g.Cols(), "seed": cfg.seed,
	}).Debug("grid ready")

	s := newSession(in, out, g)
	start, err := s.askCoord("Start point")
	if err != nil {
		return err
	}
	goal, err := s.askCoord("Goal point")
	if err != nil {
		return err
	}

	view := []render.Option{render.WithStart(start), render.WithGoal(goal)}
	if cfg.showTerrain {
		view = append(view, render.WithTerrain())
	}

	if err := s.editObstacles(view, log); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nMap with obstacles:")
	if err := render.Text(out, g, view...); err != nil {
		return err
	}

	if !g.Connected(start, goal) {
		log.WithFields(logrus.Fields{"start": start, "goal": goal}).Debug("endpoints are not connected")
	}
	res, err := astar.FindPath(g, start, goal,
		astar.WithMaxExpansions(cfg.maxExpansions),
		astar.WithOnExpand(func(c grid.Coord, gc, h int) {
			log.WithFields(logrus.Fields{"cell": c, "g": gc, "h": h}).Debug("expand")
		}),
	)
	if errors.Is(err, astar.ErrNoRoute) {
		log.WithError(err).Info("search finished without a route")
		fmt.Fprintln(out, "\nNo valid route could be found.")
		return writePNG(cfg, g, view)
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"cost": res.Cost, "expanded": res.Expanded}).Info("route found")

	view = append(view, render.WithRoute(res.Route))
	fmt.Fprintf(out, "\nMap with the route found (%d steps):\n", res.Cost)
	if err := render.Text(out, g, view...); err != nil {
		return err
	}

	return writePNG(cfg, g, view)
}

func loadGrid(cfg config) (*grid.Grid, error) {
	if cfg.mapPath == "" {
		return grid.New(cfg.rows, cfg.cols)
	}
	f, err := os.Open(cfg.mapPath)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	return grid.Parse(f)
}

func writePNG(cfg config, g *grid.Grid, view []render.Option) error {
	if cfg.pngPath == "" {
		return nil
	}
	f, err := os.Create(cfg.pngPath)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := render.PNG(f, g, view...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
