// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixeditor/editor"
)

// Parse splits line on whitespace. The first field is the command name,
// the rest are its arguments. Returns ErrEmptyLine for a blank line.
// The name is not checked here; see Session.Execute.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmptyLine
	}

	return Command{Name: fields[0], Args: fields[1:]}, nil
}

// String re-joins the command as it would be typed.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	return c.Name + " " + strings.Join(c.Args, " ")
}

// integer parses a base-10 int argument.
func integer(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, tok)
	}

	return n, nil
}

// integers parses every token in toks.
func integers(toks ...string) ([]int, error) {
	out := make([]int, len(toks))
	for i, tok := range toks {
		n, err := integer(tok)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}

	return out, nil
}

// point converts a 1-based (x, y) pair typed by the user into a 0-based editor.Point.
func point(x, y int) editor.Point {
	return editor.Point{X: x - 1, Y: y - 1}
}
