// SPDX-License-Identifier: MIT

// Package snapshot persists an editor grid as flat text: one
// newline-terminated line per row, cells left to right, nothing else.
package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/matrixeditor/editor"
)

// FileMode is the permission given to a new snapshot. An overwritten
// snapshot keeps the mode it already had.
const FileMode os.FileMode = 0o644

var (
	// ErrNilEditor is returned when Save is given no editor.
	ErrNilEditor = errors.New("snapshot: editor is nil")
	// ErrEmptyName is returned when the target file name is blank.
	ErrEmptyName = errors.New("snapshot: file name is empty")
)

// Save writes e to path. The content goes to a temporary file in the same
// directory which is then renamed over path, so an existing snapshot is
// either fully replaced or left as it was. New files get FileMode.
func Save(path string, e *editor.Editor) error {
	if e == nil {
		return ErrNilEditor
	}
	if path == "" {
		return ErrEmptyName
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	// Remove is a no-op once the rename succeeded.
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, line := range e.Lines() {
		if _, err := w.WriteString(line); err != nil {
			tmp.Close()
			return fmt.Errorf("snapshot: write %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			return fmt.Errorf("snapshot: write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	mode := FileMode
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	// CreateTemp uses 0600.
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("snapshot: chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("snapshot: close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("snapshot: rename %s: %w", path, err)
	}

	return nil
}

// Load reads a snapshot written by Save and rebuilds the editor.
// Shape errors are reported as editor.ErrEmptyGrid or editor.ErrNonRectangular.
func Load(path string) (*editor.Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read %s: %w", path, err)
	}
	e, err := editor.FromText(string(data))
	if err != nil {
		return nil, fmt.Errorf("snapshot: parse %s: %w", path, err)
	}

	return e, nil
}

// Dir saves snapshots relative to a root directory. Absolute names are
// used as given. The zero value saves relative to the working directory.
type Dir struct {
	Root string
}

// Save writes e to name resolved against d.Root.
func (d Dir) Save(name string, e *editor.Editor) error {
	if name == "" {
		return ErrEmptyName
	}

	return Save(d.resolve(name), e)
}

func (d Dir) resolve(name string) string {
	if d.Root == "" || filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(d.Root, name)
}
