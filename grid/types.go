// Package grid defines the coordinate type, cell encoding and sentinel
// errors of the grid subpackage of github.com/katalvlaran/gridroute.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrInvalidDimensions indicates New was called with a non-positive size.
	ErrInvalidDimensions = errors.New("grid: rows and cols must be positive")
	// ErrEmptyGrid indicates textual input with no rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates textual rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCell indicates an unknown glyph in textual input.
	ErrBadCell = errors.New("grid: unknown cell glyph")
)

// Cell glyphs understood by Parse.
const (
	GlyphOpen     = '.'
	GlyphObstacle = 'X'
	GlyphWall     = '#'
)

// MaxTerrain is the largest cosmetic terrain value of an open cell.
const MaxTerrain = 3

// obstacle is the stored state of a blocked cell; open cells store their
// terrain value in [0, MaxTerrain].
const obstacle int8 = -1

// Coord identifies a cell by row and column. It is comparable and is used
// directly as a map key and as the vertex identity of a search.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a fixed rows×cols map of cells. Dimensions never change after
// construction; cells[r*cols+c] holds either obstacle or a terrain value.
type Grid struct {
	rows, cols int
	cells      []int8
}

// offsets lists orthogonal moves in expansion order: up, down, left, right.
var offsets = [4]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}
