// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"strings"
)

// Background is the rune every cell holds after New and Clear.
// It carries no special meaning for drawing: it may be painted over and painted with.
const Background = '0'

// Point addresses one cell: X is the column, Y is the row, both 0-based.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction selects the fixed axis of a line.
type Direction int

const (
	// Horizontal lines keep Y fixed and walk X.
	Horizontal Direction = iota
	// Vertical lines keep X fixed and walk Y.
	Vertical
)

// String returns "horizontal", "vertical" or "Direction(n)" for unknown values.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps "h"/"horizontal" and "v"/"vertical" (any case) to a Direction.
// Returns ErrInvalidDirection for anything else.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	}

	return 0, fmt.Errorf("%w: got %q", ErrInvalidDirection, s)
}

// PointFromSlice builds a Point from a loosely-typed pair such as decoded
// JSON or split tokens. Returns ErrMalformedCoordinate unless len(v) == 2.
// Bounds are not checked here; see Editor.ValidateCoordinate.
func PointFromSlice(v []int) (Point, error) {
	if len(v) != 2 {
		return Point{}, fmt.Errorf("%w: got %d components", ErrMalformedCoordinate, len(v))
	}

	return Point{X: v[0], Y: v[1]}, nil
}

// moore lists the 8 neighbor offsets (N, NE, E, SE, S, SW, W, NW) used by ColorRegion.
var moore = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// Editor owns a Width × Height grid of runes.
// cells[y][x] holds the cell at column x, row y. The shape never changes
// after New; only cell values are mutated.
type Editor struct {
	width, height int
	cells         [][]rune
}
