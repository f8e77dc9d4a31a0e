// Command gridroute is an interactive console front end for the A* router:
// it asks for start and goal cells, lets the user place or remove obstacles,
// then prints the map with the route found.
//
// Usage:
//
//	gridroute [-rows 7] [-cols 7] [-seed 0] [-map file] [-png out.png]
//	          [-terrain] [-max-expansions 0] [-v]
package main

import (
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// config holds the command-line settings.
type config struct {
	rows, cols    int
	seed          int64
	mapPath       string
	pngPath       string
	showTerrain   bool
	maxExpansions int
	verbose       bool
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridroute", flag.ContinueOnError)
	fs.IntVar(&cfg.rows, "rows", 7, "grid rows (ignored with -map)")
	fs.IntVar(&cfg.cols, "cols", 7, "grid columns (ignored with -map)")
	fs.Int64Var(&cfg.seed, "seed", 0, "terrain seed; 0 picks one from the clock")
	fs.StringVar(&cfg.mapPath, "map", "", "load the grid from a text file ('.', 'X', '0'-'3')")
	fs.StringVar(&cfg.pngPath, "png", "", "also write the final map as a PNG image")
	fs.BoolVar(&cfg.showTerrain, "terrain", false, "print terrain digits for open cells")
	fs.IntVar(&cfg.maxExpansions, "max-expansions", 0, "give up after this many expanded cells (0 = unlimited)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}

	return cfg, nil
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(cfg, os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("gridroute failed")
	}
}
