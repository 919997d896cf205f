package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/prefabs"
)

func TestPlayerStripsMatchPrefab(t *testing.T) {
	sheets, err := loadPrefabSheets("player.yaml")
	require.NoError(t, err)
	require.Len(t, sheets.Strips, 3)
	assert.Equal(t, "idle", sheets.Strips[0].Name)
	assert.Equal(t, 0.1, sheets.FrameTime)

	for _, s := range sheets.Strips {
		assert.NoError(t, checkStrip(s, sheets.FrameW, sheets.FrameH), s.Name)
	}
}

func TestCheckStripSizeMismatch(t *testing.T) {
	err := checkStrip(strip{Name: "run", Path: "dogpack_spritesheets/dog_run_strip8.png", Frames: 6}, 60, 60)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 360x60")
}

func TestLoadPrefabSheetsWithoutSheets(t *testing.T) {
	_, err := loadPrefabSheets("camera.yaml")
	require.Error(t, err)
}

func TestLoadPrefabSheetsDefaultsFrames(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.DiskDir
	prefabs.DiskDir = dir
	t.Cleanup(func() { prefabs.DiskDir = prev })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dog.yaml"), []byte(`components:
  sprite_sheets:
    frame_w: 60
    frame_h: 60
    sheets:
      run:
        path: dogpack_spritesheets/dog_run_strip8.png
`), 0o644))

	sheets, err := loadPrefabSheets("dog.yaml")
	require.NoError(t, err)
	require.Len(t, sheets.Strips, 1)
	assert.Equal(t, character.DefaultFrameLength, sheets.Strips[0].Frames)
	assert.NoError(t, checkStrip(sheets.Strips[0], sheets.FrameW, sheets.FrameH))
}
