// SPDX-License-Identifier: MIT

package snapshot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixeditor/editor"
	"github.com/katalvlaran/matrixeditor/snapshot"
)

// TestSave_Format checks one newline-terminated line per row and no extras.
func TestSave_Format(t *testing.T) {
	const w, h = 20, 13
	e, err := editor.New(w, h)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "s_command_result.txt")
	require.NoError(t, snapshot.Save(path, e))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := strings.Repeat(strings.Repeat("0", w)+"\n", h)
	assert.Equal(t, want, string(data))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, snapshot.FileMode, fi.Mode().Perm())
}

// TestSave_KeepsMode overwrites a private snapshot without widening its mode.
func TestSave_KeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "private.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\n"), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))

	e, err := editor.New(1, 1)
	require.NoError(t, err)
	require.NoError(t, e.ColorPoint(0, 0, "p"))
	require.NoError(t, snapshot.Save(path, e))

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "p\n", string(data))
}

// TestSave_Overwrite replaces an older snapshot and leaves no temp files behind.
func TestSave_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer\n"), 0o644))

	e, err := editor.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, e.ColorPoint(1, 1, "x"))
	require.NoError(t, snapshot.Save(path, e))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "00\n0x\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_Errors(t *testing.T) {
	e, err := editor.New(1, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, snapshot.Save("x.txt", nil), snapshot.ErrNilEditor)
	assert.ErrorIs(t, snapshot.Save("", e), snapshot.ErrEmptyName)

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "grid.txt")
	assert.Error(t, snapshot.Save(missing, e))
}

// TestLoad_RoundTrip saves, loads and compares cells.
func TestLoad_RoundTrip(t *testing.T) {
	e, err := editor.New(5, 3)
	require.NoError(t, err)
	require.NoError(t, e.DrawRect(editor.Point{X: 0, Y: 0}, editor.Point{X: 4, Y: 2}, "\u00e9"))

	path := filepath.Join(t.TempDir(), "grid.txt")
	require.NoError(t, snapshot.Save(path, e))

	back, err := snapshot.Load(path)
	require.NoError(t, err)
	assert.Equal(t, e.Rows(), back.Rows())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := snapshot.Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	ragged := filepath.Join(dir, "ragged.txt")
	require.NoError(t, os.WriteFile(ragged, []byte("000\n00\n"), 0o644))
	_, err = snapshot.Load(ragged)
	assert.ErrorIs(t, err, editor.ErrNonRectangular)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = snapshot.Load(empty)
	assert.ErrorIs(t, err, editor.ErrEmptyGrid)
}

// TestDir_Save resolves relative names against Root and keeps absolute ones.
func TestDir_Save(t *testing.T) {
	root := t.TempDir()
	e, err := editor.New(3, 1)
	require.NoError(t, err)

	d := snapshot.Dir{Root: root}
	require.NoError(t, d.Save("rel.txt", e))
	data, err := os.ReadFile(filepath.Join(root, "rel.txt"))
	require.NoError(t, err)
	assert.Equal(t, "000\n", string(data))

	abs := filepath.Join(t.TempDir(), "abs.txt")
	require.NoError(t, d.Save(abs, e))
	_, err = os.Stat(abs)
	assert.NoError(t, err)

	assert.ErrorIs(t, d.Save("", e), snapshot.ErrEmptyName)
}
