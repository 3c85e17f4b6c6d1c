package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()

	exists, err := DirExists(tmpDir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = DirExists(filepath.Join(tmpDir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)

	file := filepath.Join(tmpDir, "images")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	exists, err = DirExists(file)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestIsDir(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	assert.True(t, IsDir(tmpDir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(tmpDir, "missing")))
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "build", "js", "media-data.js")

	require.NoError(t, EnsureDir(target))
	assert.True(t, IsDir(filepath.Join(tmpDir, "build", "js")))
}

func TestCanWriteDir(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, CanWriteDir(tmpDir))
	assert.False(t, CanWriteDir(filepath.Join(tmpDir, "missing")))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file should be removed")
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	assert.Equal(t, filepath.Join(home, "images"), ExpandPath("~/images"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "images", ExpandPath("images"))
	assert.Equal(t, "/abs/images", ExpandPath("/abs/images"))
}
