// Package testutil holds fixtures shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MediaTree creates each slash-separated file path under a fresh temporary
// directory and returns that directory. File contents are the path itself.
// Usage:
//
//	dir := testutil.MediaTree(t, "images/products/a.png", "images/site/b.svg")
func MediaTree(t *testing.T, files ...string) string {
	t.Helper()

	baseDir := t.TempDir()
	for _, f := range files {
		WriteFile(t, baseDir, f, f)
	}
	return baseDir
}

// WriteFile creates baseDir/rel with content, creating parent directories
func WriteFile(t *testing.T, baseDir, rel, content string) string {
	t.Helper()

	path := filepath.Join(baseDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Chdir switches the working directory to dir for the rest of the test
func Chdir(t *testing.T, dir string) {
	t.Helper()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
}

// ReadFile returns the contents of path as a string
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read %s", path)
	return string(data)
}
