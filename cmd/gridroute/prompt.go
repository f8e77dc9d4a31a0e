package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/render"
)

// session reads answers line by line from in and writes prompts to out.
type session struct {
	in  *bufio.Scanner
	out io.Writer
	g   *grid.Grid
}

func newSession(in io.Reader, out io.Writer, g *grid.Grid) *session {
	return &session{in: bufio.NewScanner(in), out: out, g: g}
}

// line prints prompt and returns the next trimmed input line.
// Running out of input is io.ErrUnexpectedEOF.
func (s *session) line(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// askInt repeats prompt until an integer is entered.
func (s *session) askInt(prompt string) (int, error) {
	for {
		text, err := s.line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(s.out, "Please enter a whole number.")
	}
}

// askCoord repeats until a coordinate inside the grid is entered.
func (s *session) askCoord(label string) (grid.Coord, error) {
	for {
		row, err := s.askInt(label + " - row: ")
		if err != nil {
			return grid.Coord{}, err
		}
		col, err := s.askInt(label + " - column: ")
		if err != nil {
			return grid.Coord{}, err
		}
		c := grid.Coord{Row: row, Col: col}
		if s.g.IsValid(c) {
			return c, nil
		}
		fmt.Fprintf(s.out, "%v is outside the %d×%d map. Try again.\n", c, s.g.Rows(), s.g.Cols())
	}
}

// askYes reports whether the answer starts with y or s.
func (s *session) askYes(prompt string) (bool, error) {
	text, err := s.line(prompt)
	if err != nil {
		return false, err
	}
	text = strings.ToLower(text)

	return strings.HasPrefix(text, "y") || strings.HasPrefix(text, "s"), nil
}

// editObstacles shows the map and lets the user add or remove obstacles
// until both questions are answered no.
func (s *session) editObstacles(view []render.Option, log *logrus.Logger) error {
	for {
		fmt.Fprintln(s.out, "\nCurrent map:")
		if err := render.Text(s.out, s.g, view...); err != nil {
			return err
		}

		add, err := s.askYes("Add an obstacle? (y/n): ")
		if err != nil {
			return err
		}
		if add {
			c, err := s.askCoord("Obstacle position")
			if err != nil {
				return err
			}
			s.g.AddObstacle(c)
			log.WithField("cell", c).Debug("obstacle added")
			continue
		}

		remove, err := s.askYes("Remove an obstacle? (y/n): ")
		if err != nil {
			return err
		}
		if !remove {
			return nil
		}
		c, err := s.askCoord("Obstacle to remove")
		if err != nil {
			return err
		}
		s.g.RemoveObstacle(c)
		log.WithField("cell", c).Debug("obstacle removed")
	}
}
