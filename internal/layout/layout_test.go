package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/h3tc/internal/layout"
)

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "templates/duel.h3t.h3tc-layout.json", layout.SidecarPath("templates/duel.h3t"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.h3t")
	in := layout.Layout{
		"duel": {
			"1": {X: 12.5, Y: -4},
			"2": {X: 0, Y: 310.5},
		},
		"arena": {
			"1": {X: 80, Y: 80},
		},
	}

	require.NoError(t, layout.Save(path, in))
	assert.Equal(t, in, layout.Load(path))
}

func TestSaveRoundsCoordinates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.h3t")
	require.NoError(t, layout.Save(path, layout.Layout{"duel": {"1": {X: 1.26, Y: -9.94}}}))

	got := layout.Load(path)
	require.Contains(t, got, "duel")
	require.Contains(t, got["duel"], "1")
	assert.InDelta(t, 1.3, got["duel"]["1"].X, 1e-9)
	assert.InDelta(t, -9.9, got["duel"]["1"].Y, 1e-9)
}

func TestLoadMissingSidecar(t *testing.T) {
	got := layout.Load(filepath.Join(t.TempDir(), "nope.h3t"))
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadCorruptSidecar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.h3t")
	require.NoError(t, os.WriteFile(layout.SidecarPath(path), []byte("{not json"), 0644))
	assert.Empty(t, layout.Load(path))
}

func TestLoadWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duel.h3t")
	require.NoError(t, os.WriteFile(layout.SidecarPath(path), []byte(`{"version":2,"maps":{}}`), 0644))
	assert.Empty(t, layout.Load(path))
}
