package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platematch/platematch/internal/prefs"
	"github.com/platematch/platematch/internal/weights"
)

func TestInitCommand_CreatesStarterFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "meal-plan")

	out, err := runCommand(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created:")

	prefsPath := filepath.Join(dir, "preferences.yaml")
	spec, err := prefs.Load(prefsPath)
	require.NoError(t, err, "scaffold must be a loadable preference document")
	assert.Empty(t, spec.RecipeName)
	assert.Empty(t, spec.Liked)

	weightsPath := filepath.Join(dir, "weights.conf")
	cfg := weights.Load(weightsPath)
	assert.Equal(t, weights.Default(), cfg, "scaffold weight file is all comments")
}

func TestInitCommand_DefaultsToCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	_, err = runCommand(t, "init")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "preferences.yaml"))
	assert.NoError(t, err)
}
