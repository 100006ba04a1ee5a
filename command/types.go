// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/matrixeditor/editor"
)

// DefaultMaxArea is the width×height cap applied by DefaultOptions.
const DefaultMaxArea = 1 << 24

// Sentinel errors for parsing and dispatch.
var (
	// ErrEmptyLine is returned by Parse for a blank line. Run skips such lines silently.
	ErrEmptyLine = errors.New("command: empty line")

	// ErrUnknownCommand is returned for a leading token outside the command table.
	ErrUnknownCommand = errors.New("command: unrecognized command")

	// ErrArgCount is returned when a command gets the wrong number of arguments.
	ErrArgCount = errors.New("command: wrong number of arguments")

	// ErrBadNumber is returned when a numeric argument is not an integer.
	ErrBadNumber = errors.New("command: argument is not an integer")

	// ErrNoEditor is returned for editing commands issued before any I.
	ErrNoEditor = errors.New("command: no matrix, initialize one with I first")

	// ErrNoSaver is returned by S when the Session has no Saver.
	ErrNoSaver = errors.New("command: saving is not configured")

	// ErrAreaLimit is returned by I when width×height exceeds the configured maximum.
	ErrAreaLimit = errors.New("command: matrix area exceeds limit")

	// ErrOptionViolation is returned by NewSession when an invalid Option is supplied.
	ErrOptionViolation = errors.New("command: invalid option supplied")
)

// Saver persists the current editor under a user-supplied name.
type Saver interface {
	Save(name string, e *editor.Editor) error
}

// Command is one parsed input line.
type Command struct {
	Name string
	Args []string
}

// Option configures a Session via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by NewSession.
type Option func(*Options)

// Options holds the Session configuration.
type Options struct {
	// Saver handles S. Nil makes S fail with ErrNoSaver.
	Saver Saver

	// Logger receives one diagnostic line per executed command.
	Logger *log.Logger

	// Prompt, if non-empty, is written to the output before each read.
	Prompt string

	// Normalize applies Unicode NFC to color tokens before validation, so a
	// letter typed as base + combining mark counts as one character.
	Normalize bool

	// MaxArea, if > 0, caps width×height accepted by I. 0 means no limit.
	// Without a cap a single I line can exhaust memory.
	MaxArea int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no Saver
//   - a Logger that discards everything
//   - no prompt
//   - NFC normalization on
//   - MaxArea = DefaultMaxArea.
func DefaultOptions() Options {
	return Options{
		Logger:    log.New(io.Discard, "", 0),
		Normalize: true,
		MaxArea:   DefaultMaxArea,
	}
}

// WithSaver sets the collaborator used by S.
func WithSaver(s Saver) Option {
	return func(o *Options) {
		if s != nil {
			o.Saver = s
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithPrompt sets the prompt written before each read.
func WithPrompt(p string) Option {
	return func(o *Options) {
		o.Prompt = p
	}
}

// WithNormalization toggles NFC normalization of color tokens.
func WithNormalization(on bool) Option {
	return func(o *Options) {
		o.Normalize = on
	}
}

// WithMaxArea caps the area accepted by I.
//
//	n > 0: limit to n cells
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxArea(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxArea cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxArea = n
	}
}
