// SPDX-License-Identifier: MIT

// Package command turns single-letter text commands into editor calls.
//
// What
//
//   - Parse splits a line on whitespace into a Command (Name + Args).
//   - Session owns an optional *editor.Editor, converts the 1-based
//     coordinates users type into the editor's 0-based ones, and dispatches.
//   - Session.Run drives the read loop over an io.Reader: each failure is
//     written to the output as one line and reading continues.
//
// Commands
//
//	I W H            new W×H editor, replacing the current one
//	C                clear to '0'
//	L X Y C          color one cell
//	V X Y1 Y2 C      vertical line in column X
//	H X1 X2 Y C      horizontal line in row Y
//	K X1 Y1 X2 Y2 C  rectangle border, upper-left to lower-right
//	F X Y C          8-connected flood fill from (X,Y)
//	S NAME           save a snapshot through the configured Saver
//	X                end the session
//
// Any other leading token is rejected with ErrUnknownCommand before the
// editor is touched. A failed I keeps the previous editor.
//
// Options
//
//	WithSaver, WithLogger, WithPrompt, WithNormalization, WithMaxArea.
//
// A Session is not safe for concurrent use.
package command
