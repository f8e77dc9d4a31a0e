// Package render draws a grid.Grid, optionally overlaid with an astar.Route
// and its endpoints, either as console text or as a PNG image.
//
// Text glyphs, in priority order:
//
//	I  start
//	O  goal
//	*  route cell
//	X  obstacle
//	.  open cell (or its terrain digit with WithTerrain)
//
// PNG output shades open cells by terrain, paints obstacles dark, strokes the
// route through cell centres and marks start (green) and goal (red).
//
// Rendering never mutates the grid.
package render
