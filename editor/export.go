// SPDX-License-Identifier: MIT

package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Lines returns one string per row, top to bottom, cells left to right.
func (e *Editor) Lines() []string {
	lines := make([]string, e.height)
	for y, row := range e.cells {
		lines[y] = string(row)
	}

	return lines
}

// ToText joins Lines with "\n". There is no trailing newline.
// Output is deterministic for a given grid state.
func (e *Editor) ToText() string {
	var sb strings.Builder
	sb.Grow(e.height * (e.width + 1))
	for y, row := range e.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range row {
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// String implements fmt.Stringer via ToText.
func (e *Editor) String() string {
	return e.ToText()
}

// FromText parses text produced by ToText (or a snapshot file) back into an
// Editor. One trailing newline and "\r\n" line endings are accepted.
// Returns ErrEmptyGrid when there is no row or the first row is empty,
// ErrNonRectangular when rows differ in rune length.
func FromText(s string) (*Editor, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(s, "\n")
	w := utf8.RuneCountInString(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, n, w)
		}
	}

	e, err := New(w, len(lines))
	if err != nil {
		return nil, err
	}
	for y, line := range lines {
		copy(e.cells[y], []rune(line))
	}

	return e, nil
}
