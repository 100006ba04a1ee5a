// SPDX-License-Identifier: MIT

// Command matrixeditor is an interactive matrix editor reading
// single-letter commands from stdin or a script file.
//
// Usage:
//
//	matrixeditor [-script FILE] [-open SNAPSHOT] [-dir DIR] [-verbose]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/katalvlaran/matrixeditor/command"
	"github.com/katalvlaran/matrixeditor/snapshot"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("matrixeditor", flag.ContinueOnError)
	fs.SetOutput(stderr)

	script := fs.String("script", "", "Read commands from FILE instead of stdin")
	open := fs.String("open", "", "Start with the grid stored in a snapshot file")
	dir := fs.String("dir", "", "Directory that S saves into (default: working directory)")
	prompt := fs.String("prompt", "> ", "Prompt shown when reading from a terminal")
	noPrompt := fs.Bool("no-prompt", false, "Never show the prompt")
	verbose := fs.Bool("verbose", false, "Log every command to stderr")
	maxArea := fs.Int("max-area", command.DefaultMaxArea, "Largest width*height accepted by I (0 = no limit)")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	logOut := io.Discard
	if *verbose {
		logOut = stderr
	}
	logger := log.New(logOut, "matrixeditor: ", log.LstdFlags)

	in := stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	opts := []command.Option{
		command.WithSaver(snapshot.Dir{Root: *dir}),
		command.WithLogger(logger),
		command.WithMaxArea(*maxArea),
	}
	if !*noPrompt && isTerminal(in) {
		opts = append(opts, command.WithPrompt(*prompt))
	}
	sess, err := command.NewSession(opts...)
	if err != nil {
		return err
	}

	if *open != "" {
		e, err := snapshot.Load(*open)
		if err != nil {
			return err
		}
		sess.SetEditor(e)
		logger.Printf("loaded %dx%d grid from %s", e.Width(), e.Height(), *open)
	}

	return sess.Run(ctx, in, stdout)
}

// isTerminal reports whether r is a file attached to a terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
