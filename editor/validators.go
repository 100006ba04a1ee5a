// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"unicode/utf8"
)

// IsValidCoordinate reports whether (x,y) lies inside the grid.
// The upper bounds are strict: x == Width or y == Height is outside.
// Complexity: O(1).
func (e *Editor) IsValidCoordinate(x, y int) bool {
	return x >= 0 && x < e.width && y >= 0 && y < e.height
}

// ValidateCoordinate returns ErrOutOfBounds, naming the coordinate and the
// grid size, when (x,y) is outside the grid.
func (e *Editor) ValidateCoordinate(x, y int) error {
	if !e.IsValidCoordinate(x, y) {
		return fmt.Errorf("%w: (%d,%d) not within %dx%d", ErrOutOfBounds, x, y, e.width, e.height)
	}

	return nil
}

// validatePoints checks each point in order and stops at the first failure.
func (e *Editor) validatePoints(pts ...Point) error {
	for _, p := range pts {
		if err := e.ValidateCoordinate(p.X, p.Y); err != nil {
			return err
		}
	}

	return nil
}

// ValidateColor returns ErrInvalidColor unless c is valid UTF-8 holding
// exactly one rune.
func ValidateColor(c string) error {
	_, err := colorRune(c)
	return err
}

// colorRune validates c and returns its single rune.
func colorRune(c string) (rune, error) {
	if !utf8.ValidString(c) || utf8.RuneCountInString(c) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidColor, c)
	}
	r, _ := utf8.DecodeRuneInString(c)

	return r, nil
}
