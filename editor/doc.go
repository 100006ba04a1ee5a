// SPDX-License-Identifier: MIT

// Package editor holds an in-memory 2D character grid and the drawing
// primitives that mutate it.
//
// What:
//
//   - Editor wraps a rectangular grid of single-rune cells, Width × Height,
//     every cell starting as the Background rune '0'.
//   - ColorPoint, DrawLine, DrawRect paint cells; ColorRegion flood-fills the
//     8-connected region around a seed.
//   - ToText/Lines export the grid row by row; FromText parses it back.
//
// Addressing:
//
//   - All coordinates are 0-based: X selects the column in [0, Width),
//     Y selects the row in [0, Height).
//   - Cells are stored row-major, cells[y][x], and exported top row first.
//
// Validation:
//
//   - Every operation validates all of its inputs before writing a cell, so a
//     failed call leaves the grid exactly as it was.
//   - Coordinate errors are reported before color errors.
//
// Complexity:
//
//   - ColorPoint:  O(1).
//   - DrawLine:    O(L), L = line length.
//   - DrawRect:    O(W + H).
//   - ColorRegion: O(W×H×8), Memory: O(W×H) for the worklist.
//   - ToText:      O(W×H).
//
// Errors:
//
//   - ErrInvalidDimension: width or height is not positive.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrMalformedCoordinate: coordinate slice is not exactly two integers.
//   - ErrInvalidColor: color is not exactly one rune.
//   - ErrInvalidDirection: unknown line direction.
//   - ErrAxisMismatch: line endpoints do not share the fixed axis.
//   - ErrEmptyGrid, ErrNonRectangular: text passed to FromText is not a grid.
//
// An Editor is not safe for concurrent use; callers serialize access.
package editor
