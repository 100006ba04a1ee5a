// SPDX-License-Identifier: MIT

package editor

import "fmt"

// ColorPoint paints the cell at (x,y).
// Validation order: coordinate (ErrOutOfBounds), then color (ErrInvalidColor).
func (e *Editor) ColorPoint(x, y int, color string) error {
	if err := e.ValidateCoordinate(x, y); err != nil {
		return err
	}
	r, err := colorRune(color)
	if err != nil {
		return err
	}
	e.cells[y][x] = r

	return nil
}

// DrawLine paints every cell between a and b inclusive along dir.
// Endpoint order does not matter and a == b paints a single cell.
//
// Validation order, all before any write:
//  1. dir is Horizontal or Vertical  (ErrInvalidDirection)
//  2. a, then b, inside the grid     (ErrOutOfBounds)
//  3. color is one rune              (ErrInvalidColor)
//  4. a and b share the fixed axis   (ErrAxisMismatch)
//
// Complexity: O(|delta|+1).
func (e *Editor) DrawLine(dir Direction, a, b Point, color string) error {
	if dir != Horizontal && dir != Vertical {
		return fmt.Errorf("%w: got %v", ErrInvalidDirection, dir)
	}
	if err := e.validatePoints(a, b); err != nil {
		return err
	}
	r, err := colorRune(color)
	if err != nil {
		return err
	}

	if dir == Horizontal {
		if a.Y != b.Y {
			return fmt.Errorf("%w: horizontal line needs equal y, got %v and %v", ErrAxisMismatch, a, b)
		}
		lo, hi := minMax(a.X, b.X)
		for x := lo; x <= hi; x++ {
			e.cells[a.Y][x] = r
		}
		return nil
	}

	if a.X != b.X {
		return fmt.Errorf("%w: vertical line needs equal x, got %v and %v", ErrAxisMismatch, a, b)
	}
	lo, hi := minMax(a.Y, b.Y)
	for y := lo; y <= hi; y++ {
		e.cells[y][a.X] = r
	}

	return nil
}

// DrawRect paints the border of the rectangle with opposite corners
// upperLeft and lowerRight. Interior cells are left untouched.
//
// The remaining corners are derived as upperRight = (lowerRight.X, upperLeft.Y)
// and lowerLeft = (upperLeft.X, lowerRight.Y); all four are validated, then the
// color, before the edges are drawn top, right, bottom, left. Corner cells are
// written twice. Orientation is not checked: swapped corners describe the same border.
func (e *Editor) DrawRect(upperLeft, lowerRight Point, color string) error {
	upperRight := Point{X: lowerRight.X, Y: upperLeft.Y}
	lowerLeft := Point{X: upperLeft.X, Y: lowerRight.Y}
	if err := e.validatePoints(upperLeft, upperRight, lowerRight, lowerLeft); err != nil {
		return err
	}
	if err := ValidateColor(color); err != nil {
		return err
	}

	edges := [4]struct {
		dir  Direction
		a, b Point
	}{
		{Horizontal, upperLeft, upperRight},
		{Vertical, upperRight, lowerRight},
		{Horizontal, lowerRight, lowerLeft},
		{Vertical, lowerLeft, upperLeft},
	}
	for _, edge := range edges {
		if err := e.DrawLine(edge.dir, edge.a, edge.b, color); err != nil {
			return err
		}
	}

	return nil
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
