// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"math"
)

// New constructs a width × height Editor with every cell set to Background.
// Returns ErrInvalidDimension (naming both values) if either is ≤ 0 or
// width×height does not fit in an int; no Editor is created in that case.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Editor, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimension, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: width=%d height=%d overflows the cell count", ErrInvalidDimension, width, height)
	}
	// One backing array keeps rows contiguous; each row is a fixed window into it.
	backing := make([]rune, width*height)
	cells := make([][]rune, height)
	for y := 0; y < height; y++ {
		cells[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}
	e := &Editor{width: width, height: height, cells: cells}
	e.Clear()

	return e, nil
}

// Width returns the number of columns.
func (e *Editor) Width() int { return e.width }

// Height returns the number of rows.
func (e *Editor) Height() int { return e.height }

// Clear resets every cell to Background. Dimensions are preserved.
func (e *Editor) Clear() {
	for _, row := range e.cells {
		for x := range row {
			row[x] = Background
		}
	}
}

// At returns the color stored at (x,y), or ErrOutOfBounds.
func (e *Editor) At(x, y int) (string, error) {
	if err := e.ValidateCoordinate(x, y); err != nil {
		return "", err
	}

	return string(e.cells[y][x]), nil
}

// Rows returns a deep copy of the grid, indexed [y][x].
func (e *Editor) Rows() [][]rune {
	out := make([][]rune, e.height)
	for y, row := range e.cells {
		out[y] = append([]rune(nil), row...)
	}

	return out
}

// index maps (x,y) to a row-major index: y*width + x.
func (e *Editor) index(x, y int) int {
	return y*e.width + x
}

// coordinate converts a row-major index back to (x,y).
func (e *Editor) coordinate(idx int) (x, y int) {
	return idx % e.width, idx / e.width
}
