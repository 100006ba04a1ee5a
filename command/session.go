// SPDX-License-Identifier: MIT

package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/matrixeditor/editor"
)

// handler runs one command with already arity-checked arguments.
type handler struct {
	arity      int
	needEditor bool
	run        func(s *Session, args []string) error
}

// quitName ends the session; it takes no arguments and never touches the editor.
const quitName = "X"

var handlers = map[string]handler{
	"I": {arity: 2, run: (*Session).initialize},
	"C": {arity: 0, needEditor: true, run: (*Session).clear},
	"L": {arity: 3, needEditor: true, run: (*Session).colorPoint},
	"V": {arity: 4, needEditor: true, run: (*Session).verticalLine},
	"H": {arity: 4, needEditor: true, run: (*Session).horizontalLine},
	"K": {arity: 5, needEditor: true, run: (*Session).rect},
	"F": {arity: 3, needEditor: true, run: (*Session).fill},
	"S": {arity: 1, needEditor: true, run: (*Session).save},
}

// Session holds the current editor, if any, and dispatches commands to it.
type Session struct {
	opts Options
	cur  *editor.Editor
}

// NewSession builds a Session from DefaultOptions plus opts.
// Returns ErrOptionViolation if any option is invalid.
func NewSession(opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Session{opts: o}, nil
}

// Editor returns the current editor, or nil before the first successful I.
func (s *Session) Editor() *editor.Editor {
	return s.cur
}

// SetEditor replaces the current editor, e.g. with one loaded from a snapshot.
func (s *Session) SetEditor(e *editor.Editor) {
	s.cur = e
}

// Execute parses and runs one line. quit is true only for X.
// Errors from the editor are wrapped with the command as typed, so
// coordinates in the message read the way the user wrote them.
func (s *Session) Execute(line string) (quit bool, err error) {
	cmd, err := Parse(line)
	if err != nil {
		return false, err
	}
	if cmd.Name == quitName {
		if len(cmd.Args) != 0 {
			return false, fmt.Errorf("%w: %s takes 0, got %d", ErrArgCount, cmd.Name, len(cmd.Args))
		}
		return true, nil
	}

	h, ok := handlers[cmd.Name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}
	if len(cmd.Args) != h.arity {
		return false, fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, cmd.Name, h.arity, len(cmd.Args))
	}
	if h.needEditor && s.cur == nil {
		return false, ErrNoEditor
	}
	if err := h.run(s, cmd.Args); err != nil {
		return false, fmt.Errorf("%s: %w", cmd, err)
	}
	s.opts.Logger.Printf("%s: ok", cmd)

	return false, nil
}

// Run reads lines from in until X, EOF or ctx cancellation. Each failing
// line writes its error to out and the loop continues; the current editor
// is left as it was. Blank lines are ignored and there is no line length
// limit, so an oversized line is reported like any other bad command.
// Returns ctx.Err() on cancellation and the read error on a read failure,
// nil otherwise.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	rd := bufio.NewReader(in)
	for lineNo := 1; ; lineNo++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.opts.Prompt != "" {
			fmt.Fprint(out, s.opts.Prompt)
		}
		line, err := rd.ReadString('\n')
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return fmt.Errorf("command: read line %d: %w", lineNo, err)
		}
		if eof && line == "" {
			return nil
		}

		if s.step(lineNo, strings.TrimRight(line, "\r\n"), out) || eof {
			return nil
		}
	}
}

// step executes one line read by Run and reports whether the session ended.
func (s *Session) step(lineNo int, line string, out io.Writer) bool {
	quit, err := s.Execute(line)
	switch {
	case errors.Is(err, ErrEmptyLine):
		return false
	case err != nil:
		fmt.Fprintln(out, err)
		s.opts.Logger.Printf("line %d: %v", lineNo, err)
		return false
	case quit:
		s.opts.Logger.Printf("line %d: session ended", lineNo)
	}

	return quit
}

// color prepares a color token for the editor.
func (s *Session) color(tok string) string {
	if s.opts.Normalize {
		return norm.NFC.String(tok)
	}

	return tok
}

func (s *Session) initialize(args []string) error {
	n, err := integers(args...)
	if err != nil {
		return err
	}
	w, h := n[0], n[1]
	if limit := s.opts.MaxArea; limit > 0 && w > 0 && h > 0 && w > limit/h {
		return fmt.Errorf("%w: %dx%d > %d cells", ErrAreaLimit, w, h, limit)
	}
	e, err := editor.New(w, h)
	if err != nil {
		return err
	}
	s.cur = e

	return nil
}

func (s *Session) clear(_ []string) error {
	s.cur.Clear()
	return nil
}

// L X Y C
func (s *Session) colorPoint(args []string) error {
	n, err := integers(args[0], args[1])
	if err != nil {
		return err
	}
	p := point(n[0], n[1])

	return s.cur.ColorPoint(p.X, p.Y, s.color(args[2]))
}

// V X Y1 Y2 C
func (s *Session) verticalLine(args []string) error {
	n, err := integers(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	return s.cur.DrawLine(editor.Vertical, point(n[0], n[1]), point(n[0], n[2]), s.color(args[3]))
}

// H X1 X2 Y C
func (s *Session) horizontalLine(args []string) error {
	n, err := integers(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	return s.cur.DrawLine(editor.Horizontal, point(n[0], n[2]), point(n[1], n[2]), s.color(args[3]))
}

// K X1 Y1 X2 Y2 C
func (s *Session) rect(args []string) error {
	n, err := integers(args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}

	return s.cur.DrawRect(point(n[0], n[1]), point(n[2], n[3]), s.color(args[4]))
}

// F X Y C
func (s *Session) fill(args []string) error {
	n, err := integers(args[0], args[1])
	if err != nil {
		return err
	}
	repainted, err := s.cur.FillCount(point(n[0], n[1]), s.color(args[2]))
	if err != nil {
		return err
	}
	s.opts.Logger.Printf("F: repainted %d cells", repainted)

	return nil
}

// S NAME
func (s *Session) save(args []string) error {
	if s.opts.Saver == nil {
		return ErrNoSaver
	}

	return s.opts.Saver.Save(args[0], s.cur)
}
