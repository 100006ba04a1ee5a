// SPDX-License-Identifier: MIT

package editor

import "errors"

// Every message is prefixed with "editor: ". Operations attach context with
// fmt.Errorf("%w: ...", ErrX); match with errors.Is.
var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("editor: width and height must be positive integers")

	// ErrOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrOutOfBounds = errors.New("editor: coordinate out of bounds")

	// ErrMalformedCoordinate indicates a coordinate that is not exactly (x, y).
	ErrMalformedCoordinate = errors.New("editor: coordinate must have exactly two components")

	// ErrInvalidColor indicates a color that is not exactly one character.
	ErrInvalidColor = errors.New("editor: color must be a single character")

	// ErrInvalidDirection indicates a line direction other than Horizontal or Vertical.
	ErrInvalidDirection = errors.New("editor: direction must be horizontal or vertical")

	// ErrAxisMismatch indicates line endpoints that do not share the fixed axis.
	ErrAxisMismatch = errors.New("editor: line endpoints are not aligned")

	// ErrEmptyGrid indicates text with no rows or an empty first row.
	ErrEmptyGrid = errors.New("editor: grid must have at least one row and one column")

	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("editor: all rows must have the same length")
)
