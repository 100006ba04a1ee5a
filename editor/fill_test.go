// SPDX-License-Identifier: MIT
package editor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixeditor/editor"
)

// mustFromText parses rows joined by "\n" or fails the test.
func mustFromText(t testing.TB, s string) *editor.Editor {
	t.Helper()
	e, err := editor.FromText(s)
	if err != nil {
		t.Fatalf("FromText error: %v", err)
	}
	return e
}

// TestColorRegion_Mixed fills from (2,3) on a 5×6 board of 0/1 cells.
//
//	0 0 1 0 1        0 0 . 0 .
//	1 1 1 1 1        . . . . .
//	0 1 1 1 1   →    0 . . . .
//	1 1 1 0 1        . . . 0 .
//	0 0 1 0 0        0 0 . 0 0
//	1 1 1 0 1        . . . 0 1
//
// The bottom-right '1' touches no other '1', not even diagonally.
func TestColorRegion_Mixed(t *testing.T) {
	e := mustFromText(t, "00101\n11111\n01111\n11101\n00100\n11101")
	n, err := e.FillCount(editor.Point{X: 2, Y: 3}, ".")
	require.NoError(t, err)

	want := []string{
		"00.0.",
		".....",
		"0....",
		"...0.",
		"00.00",
		"...01",
	}
	require.Equal(t, want, e.Lines())
	assert.Equal(t, 19, n)
}

// TestColorRegion_Diagonal8 checks that a diagonal-only chain is one region.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestColorRegion_Diagonal8(t *testing.T) {
	e := mustFromText(t, "10001\n01010\n00100\n01010\n10001")
	n, err := e.FillCount(editor.Point{X: 0, Y: 0}, "X")
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, []string{"X000X", "0X0X0", "00X00", "0X0X0", "X000X"}, e.Lines())
}

// TestColorRegion_Bounded stops at a closed one-cell border of another color.
func TestColorRegion_Bounded(t *testing.T) {
	e := mustNew(t, 6, 6)
	require.NoError(t, e.DrawRect(editor.Point{X: 1, Y: 1}, editor.Point{X: 4, Y: 4}, "#"))
	require.NoError(t, e.ColorRegion(editor.Point{X: 2, Y: 2}, "i"))
	assert.Equal(t, []string{
		"000000",
		"0####0",
		"0#ii#0",
		"0#ii#0",
		"0####0",
		"000000",
	}, e.Lines())

	require.NoError(t, e.ColorRegion(editor.Point{X: 0, Y: 0}, "o"))
	assert.Equal(t, "oooooo", e.Lines()[0])
	assert.Equal(t, "o#ii#o", e.Lines()[2])
}

// TestColorRegion_DiagonalLeak shows that a diagonal wall does not separate
// regions: (1,0) and (2,1) touch corner to corner across the '1' line.
func TestColorRegion_DiagonalLeak(t *testing.T) {
	e := mustFromText(t, "001\n010\n100")
	require.NoError(t, e.ColorRegion(editor.Point{X: 0, Y: 0}, "w"))
	assert.Equal(t, []string{"ww1", "w1w", "1ww"}, e.Lines())

	e = mustFromText(t, "010\n101\n010")
	require.NoError(t, e.ColorRegion(editor.Point{X: 0, Y: 0}, "w"))
	assert.Equal(t, []string{"w1w", "1w1", "w1w"}, e.Lines())
}

// TestColorRegion_NoOp leaves the grid unchanged when the seed already has the color.
func TestColorRegion_NoOp(t *testing.T) {
	e := mustFromText(t, "AAB\nABB\nBBA")
	before := e.ToText()
	n, err := e.FillCount(editor.Point{X: 0, Y: 0}, "A")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, before, e.ToText())
}

// TestColorRegion_SingleCell repaints an isolated cell only.
func TestColorRegion_SingleCell(t *testing.T) {
	e := mustFromText(t, "000\n0Q0\n000")
	n, err := e.FillCount(editor.Point{X: 1, Y: 1}, "R")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "000\n0R0\n000", e.ToText())
}

// TestColorRegion_Errors validates seed before color and never mutates on failure.
func TestColorRegion_Errors(t *testing.T) {
	e := mustNew(t, 3, 3)
	before := e.ToText()

	cases := []struct {
		name  string
		seed  editor.Point
		color string
		err   error
	}{
		{"SeedPastWidth", editor.Point{X: 3, Y: 0}, "x", editor.ErrOutOfBounds},
		{"SeedPastHeight", editor.Point{X: 0, Y: 3}, "x", editor.ErrOutOfBounds},
		{"BadColor", editor.Point{X: 1, Y: 1}, "xx", editor.ErrInvalidColor},
		{"BothBad", editor.Point{X: -1, Y: 0}, "", editor.ErrOutOfBounds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := e.ColorRegion(tc.seed, tc.color)
			if !errors.Is(err, tc.err) {
				t.Errorf("ColorRegion error = %v; want %v", err, tc.err)
			}
			if got := e.ToText(); got != before {
				t.Errorf("grid changed after failed call:\n%s", got)
			}
		})
	}
}

// TestColorRegion_Large fills a grid big enough that recursion would be a problem.
func TestColorRegion_Large(t *testing.T) {
	const w, h = 1000, 1000
	e := mustNew(t, w, h)
	// vertical wall splits the grid in two halves
	require.NoError(t, e.DrawLine(editor.Vertical, editor.Point{X: 500, Y: 0}, editor.Point{X: 500, Y: h - 1}, "|"))

	n, err := e.FillCount(editor.Point{X: 0, Y: 0}, "L")
	require.NoError(t, err)
	assert.Equal(t, 500*h, n)

	got, err := e.At(501, 0)
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}
