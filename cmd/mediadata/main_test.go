package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/mediadata-go/internal/config"
	"github.com/quantmind-br/mediadata-go/internal/domain"
	"github.com/quantmind-br/mediadata-go/internal/testutil"
	"github.com/quantmind-br/mediadata-go/internal/tui"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args in a fresh working directory
// state and returns stdout and the log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, logs bytes.Buffer
	origStderr, origTerminal := stderr, isTerminal
	t.Cleanup(func() {
		stderr, isTerminal = origStderr, origTerminal
		cfgFile, verbose, dryRun, noProgress = "", false, false, false
		viper.Reset()
		bindFlags()
	})

	stderr = &logs
	isTerminal = func() bool { return false }
	viper.Reset()
	bindFlags()

	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), logs.String(), err
}

// workspace creates a project directory with the given files and makes it
// the working directory and HOME for the test
func workspace(t *testing.T, files ...string) string {
	t.Helper()

	dir := testutil.MediaTree(t, files...)
	t.Setenv("HOME", dir)
	testutil.Chdir(t, dir)
	return dir
}

func TestRun_GeneratesFile(t *testing.T) {
	dir := workspace(t,
		"images/products/a.PNG",
		"images/community/b.gif",
		"images/site/c.svg",
		"images/misc/d.txt",
	)

	_, logs, err := execute(t)
	require.NoError(t, err)

	content := testutil.ReadFile(t, filepath.Join(dir, "media-data.js"))
	assert.Contains(t, content, `"path": "images/products/a.PNG"`)
	assert.NotContains(t, content, "d.txt")
	assert.Contains(t, logs, "Successfully updated media-data.js with 3 images.")
}

func TestRun_MissingRoot(t *testing.T) {
	dir := workspace(t)

	_, logs, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, logs, "Directory 'images' not found.")
	assert.NoFileExists(t, filepath.Join(dir, "media-data.js"))
}

func TestRun_DryRun(t *testing.T) {
	dir := workspace(t, "images/a.png")

	_, logs, err := execute(t, "--dry-run")
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(dir, "media-data.js"))
	assert.Contains(t, logs, "Dry run: would update media-data.js with 1 images.")
}

func TestRun_EnvOverrides(t *testing.T) {
	dir := workspace(t, "assets/a.png")
	t.Setenv("MEDIADATA_SCAN_ROOT", "assets")
	t.Setenv("MEDIADATA_OUTPUT_FILE", "public/data.js")

	_, _, err := execute(t)
	require.NoError(t, err)

	content := testutil.ReadFile(t, filepath.Join(dir, "public", "data.js"))
	assert.Contains(t, content, `"path": "assets/a.png"`)
}

func TestRun_RejectsArgs(t *testing.T) {
	workspace(t)

	_, _, err := execute(t, "images")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	workspace(t, "images/site/logo.svg")

	_, _, err := execute(t, "check")
	assert.ErrorIs(t, err, domain.ErrStale)

	_, _, err = execute(t)
	require.NoError(t, err)

	_, logs, err := execute(t, "check")
	require.NoError(t, err)
	assert.Contains(t, logs, "media-data.js is up to date.")
}

func TestConfigCmd(t *testing.T) {
	workspace(t)

	out, _, err := execute(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "root: images")
	assert.Contains(t, out, "file: media-data.js")
	assert.Contains(t, out, "variable: MEDIA_DATA")
	assert.Contains(t, out, "- .svg")
	assert.NotContains(t, out, "# loaded from")
}

func TestConfigCmd_WithConfigFile(t *testing.T) {
	dir := workspace(t)
	cfgPath := testutil.WriteFile(t, dir, "custom.yaml", "scan:\n  root: media\noutput:\n  variable: ASSETS\n")

	out, _, err := execute(t, "config", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "# loaded from "+cfgPath)
	assert.Contains(t, out, "root: media")
	assert.Contains(t, out, "variable: ASSETS")
}

func TestConfigCmd_InvalidVariable(t *testing.T) {
	dir := workspace(t)
	testutil.WriteFile(t, dir, "config.yaml", "output:\n  variable: \"not-valid\"\n")

	_, _, err := execute(t, "config")
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestDoctor(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		expected []string
	}{
		{
			name:  "healthy",
			files: []string{"images/a.png"},
			expected: []string{
				"Config file: OK (defaults)",
				"Scan directory: OK (images)",
				"Write permissions: OK (.)",
				"All critical checks passed!",
			},
		},
		{
			name: "missing root is a warning",
			expected: []string{
				"Scan directory: WARN (images not found, nothing will be written)",
				"All critical checks passed!",
			},
		},
		{
			name:  "root is a file",
			files: []string{"images"},
			expected: []string{
				"Scan directory: WARN (images is not a directory)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workspace(t, tt.files...)

			out, _, err := execute(t, "doctor")
			require.NoError(t, err)
			for _, s := range tt.expected {
				assert.Contains(t, out, s)
			}
		})
	}
}

func TestCheckWritePermissions(t *testing.T) {
	tmpDir := t.TempDir()

	assert.True(t, checkWritePermissions(tmpDir))
	assert.True(t, checkWritePermissions(filepath.Join(tmpDir, "not", "yet", "created")))

	if os.Geteuid() != 0 {
		locked := filepath.Join(tmpDir, "locked")
		require.NoError(t, os.Mkdir(locked, 0555))
		assert.False(t, checkWritePermissions(locked))
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mediadata dev")
}

func TestConfigEditCmd_SavesToDefaultPath(t *testing.T) {
	dir := workspace(t)

	origEditor := runEditor
	t.Cleanup(func() { runEditor = origEditor })

	var got tui.Options
	runEditor = func(opts tui.Options) error {
		got = opts
		cfg := *opts.Config
		cfg.Output.Variable = "ASSETS"
		return opts.SaveFunc(&cfg)
	}

	_, _, err := execute(t, "config", "edit", "--accessible")
	require.NoError(t, err)

	expectedPath := filepath.Join(dir, ".mediadata", "config.yaml")
	assert.Equal(t, expectedPath, got.SavePath)
	assert.True(t, got.Accessible)
	assert.Equal(t, config.Default(), got.Config)
	assert.Contains(t, testutil.ReadFile(t, expectedPath), "variable: ASSETS")
}

func TestConfigEditCmd_UsesExplicitConfig(t *testing.T) {
	dir := workspace(t)
	cfgPath := testutil.WriteFile(t, dir, "mediadata.yaml", "scan:\n  root: media\n")

	origEditor := runEditor
	t.Cleanup(func() { runEditor = origEditor })

	var got tui.Options
	runEditor = func(opts tui.Options) error {
		got = opts
		return nil
	}

	_, _, err := execute(t, "config", "edit", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, got.SavePath)
	assert.Equal(t, "media", got.Config.Scan.Root)
}
