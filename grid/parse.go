package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse reads a grid from text, one row per line. Recognised glyphs:
//
//	'.'            open cell, terrain 0
//	'0'..'3'       open cell with that terrain value
//	'X', 'x', '#'  obstacle
//
// Whitespace inside a line is ignored and blank lines are skipped, so both
// "X . ." and "X.." describe the same row.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadCell (wrapped with the
// line number) on malformed input.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)

	var rows [][]int8
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		row := make([]int8, 0, len(text))
		for _, ch := range text {
			if unicode.IsSpace(ch) {
				continue
			}
			v, err := decodeGlyph(ch)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d", err, ch, line)
			}
			row = append(row, v)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d",
				ErrNonRectangular, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	g, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(g.cells[r*g.cols:], row)
	}

	return g, nil
}

func decodeGlyph(ch rune) (int8, error) {
	switch {
	case ch == GlyphOpen:
		return 0, nil
	case ch == GlyphObstacle || ch == 'x' || ch == GlyphWall:
		return obstacle, nil
	case ch >= '0' && ch <= '0'+MaxTerrain:
		return int8(ch - '0'), nil
	default:
		return 0, ErrBadCell
	}
}
