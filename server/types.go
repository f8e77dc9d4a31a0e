package server

import (
	"errors"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for request validation.
var (
	// ErrTooManyCells indicates a requested grid larger than the configured cap.
	ErrTooManyCells = errors.New("server: grid exceeds cell limit")
	// ErrMissingGrid indicates neither dimensions nor a map were supplied.
	ErrMissingGrid = errors.New("server: rows/cols or map required")
)

// Point is a [row, col] pair on the wire.
type Point [2]int

// Coord converts p to a grid.Coord.
func (p Point) Coord() grid.Coord { return grid.Coord{Row: p[0], Col: p[1]} }

// pointOf converts c to its wire form.
func pointOf(c grid.Coord) Point { return Point{c.Row, c.Col} }

// RouteRequest describes one search. Either Rows/Cols (all-open grid plus
// Obstacles) or Map (textual grid as accepted by grid.Parse, optionally plus
// Obstacles) must be given.
type RouteRequest struct {
	Rows      int     `json:"rows,omitempty"`
	Cols      int     `json:"cols,omitempty"`
	Map       string  `json:"map,omitempty"`
	Obstacles []Point `json:"obstacles,omitempty"`
	Start     Point   `json:"start"`
	Goal      Point   `json:"goal"`
}

// RouteResponse is the search outcome. Rejected counts obstacles that fell
// outside the grid and were ignored.
type RouteResponse struct {
	Found    bool    `json:"found"`
	Route    []Point `json:"route,omitempty"`
	Cost     int     `json:"cost"`
	Expanded int     `json:"expanded"`
	Rejected int     `json:"rejected,omitempty"`
	Message  string  `json:"message,omitempty"`
}
