// SPDX-License-Identifier: MIT

// Package matrixeditor is a small in-memory character grid editor driven by
// single-letter text commands.
//
// A grid is a rectangle of one-character cells, all '0' to begin with.
// Cells are painted one at a time, along horizontal or vertical lines, around
// a rectangle border, or by flood-filling an 8-connected region, and the whole
// grid can be saved as plain text, one line per row.
//
// Quick example:
//
//	I 5 3        create a 5×3 grid
//	K 1 1 5 3 #  draw its border
//	F 3 2 .      fill the inside
//	S grid.txt   save it
//	X            quit
//
// produces
//
//	#####
//	#...#
//	#####
//
// Under the hood:
//
//	editor/           the grid, drawing primitives, flood fill, text export/import
//	command/          command parsing, 1-based → 0-based conversion, read loop
//	snapshot/         flat text files on disk
//	cmd/matrixeditor/ the executable
//
//	go install github.com/katalvlaran/matrixeditor/cmd/matrixeditor@latest
package matrixeditor
