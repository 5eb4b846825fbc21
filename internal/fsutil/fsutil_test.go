package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0755))
	for _, name := range []string{"b.hcl", "a.hcl", "nested/c.hcl", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0644))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)

	single, err := FindFilesByExtension(filepath.Join(root, "a.hcl"), ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.hcl")}, single)

	_, err = FindFilesByExtension(filepath.Join(root, "missing"), ".hcl")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root, "") })
}

func TestScanLines(t *testing.T) {
	t.Parallel()

	lines, err := ScanLines(strings.NewReader("XMAS\r\nMMMM\n\nSAMX"))
	require.NoError(t, err)
	assert.Equal(t, []string{"XMAS", "MMMM", "", "SAMX"}, lines)

	lines, err = ScanLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("3   4\n4   3\n"), 0644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"3   4", "4   3"}, lines)

	_, err = ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.ErrorContains(t, err, "failed to open input")
}
