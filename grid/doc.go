// Package grid models a fixed-size rectangular map of cells that are either
// open or blocked by an obstacle. It is the read-mostly substrate consumed by
// package astar.
//
// What:
//
//   - Grid owns rows×cols cell states stored row-major.
//   - Open cells carry a cosmetic terrain value in [0, 3]; it never affects
//     traversal cost.
//   - Obstacles may be added or removed at any valid coordinate; this (and
//     cosmetic terrain) is the only mutation a Grid supports.
//   - Components / Connected expose 4-connected reachability via flood fill.
//
// Validity and accessibility:
//
//   - A Coord is valid iff 0 ≤ Row < rows and 0 ≤ Col < cols.
//   - A Coord is accessible iff it is valid and not an obstacle.
//   - Mutations on invalid coordinates are rejected with a false return,
//     never a panic.
//
// Complexity:
//
//   - IsValid, IsAccessible, AddObstacle, RemoveObstacle: O(1).
//   - Neighbors: O(1) (at most four results).
//   - Components: O(rows×cols), Memory: O(rows×cols).
//   - Parse: O(input size).
//
// Errors:
//
//   - ErrInvalidDimensions: New called with rows ≤ 0 or cols ≤ 0.
//   - ErrEmptyGrid: Parse input has no rows.
//   - ErrNonRectangular: Parse rows have differing lengths.
//   - ErrBadCell: Parse met an unknown cell glyph.
//
// Thread safety:
//
//	A Grid is single-owner. Searches assume the grid is not mutated while
//	they run; use Clone to hand a stable snapshot to a search.
package grid
