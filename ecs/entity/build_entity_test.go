package entity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs"
	"github.com/milk9111/dogrun/ecs/component"
	"github.com/milk9111/dogrun/prefabs"
)

func noImages(key string) (*ebiten.Image, error) {
	return nil, nil
}

// useDiskPrefabs points the prefab loader at a temp dir for the test.
func useDiskPrefabs(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	prev := prefabs.DiskDir
	prefabs.DiskDir = dir
	t.Cleanup(func() { prefabs.DiskDir = prev })
}

func TestNewPlayerFromEmbeddedPrefab(t *testing.T) {
	useDiskPrefabs(t, nil)
	w := ecs.NewWorld()

	p, err := NewPlayer(w, "player.yaml", WithImageLoader(noImages))
	require.NoError(t, err)
	require.NotNil(t, p.Character)
	require.NotNil(t, p.Input)

	c := p.Character
	assert.Equal(t, character.SheetIdle, c.Sheet)
	assert.Equal(t, uint(8), c.Animation.FrameLength)
	assert.Equal(t, 0.1, c.Animation.FrameTime)
	assert.Equal(t, character.DefaultTuning(), c.Tuning)
	assert.Equal(t, character.Grounded, c.Motion.State)
	assert.Zero(t, c.Position.X)
	assert.Zero(t, c.Position.Y)

	got, ok := ecs.Get(w, p.Entity, component.CharacterComponent.Kind())
	require.True(t, ok)
	assert.Same(t, c, got)

	assert.True(t, ecs.Has(w, p.Entity, component.PlayerTagComponent.Kind()))
	sheets, ok := ecs.Get(w, p.Entity, component.SpriteSheetsComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 60, sheets.FrameW)
	assert.Len(t, sheets.Paths, 3)

	tr, ok := ecs.Get(w, p.Entity, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 2.0, tr.ScaleX)
}

func TestSceneEntities(t *testing.T) {
	useDiskPrefabs(t, nil)
	w := ecs.NewWorld()

	cam, err := NewCamera(w, WithImageLoader(noImages))
	require.NoError(t, err)
	cc, ok := ecs.Get(w, cam, component.CameraComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 1.0, cc.Zoom)
	assert.Equal(t, 0.12, cc.Smoothness)

	var requested []string
	bg, err := NewBackground(w, "background.yaml", WithImageLoader(func(key string) (*ebiten.Image, error) {
		requested = append(requested, key)
		return nil, nil
	}))
	require.NoError(t, err)
	assert.True(t, ecs.Has(w, bg, component.ScreenSpaceComponent.Kind()))
	assert.Equal(t, []string{"background.png"}, requested)
}

func TestBuildEntityErrors(t *testing.T) {
	tests := []struct {
		name   string
		prefab string
		body   string
		loader func(string) (*ebiten.Image, error)
	}{
		{
			name:   "unknown component",
			prefab: "bad.yaml",
			body:   "components:\n  wings: {}\n",
		},
		{
			name:   "no components",
			prefab: "empty.yaml",
			body:   "name: empty\n",
		},
		{
			name:   "invalid tuning",
			prefab: "slow.yaml",
			body:   "components:\n  character:\n    move_speed: 100\n    fall_acceleration: 0\n    frame_time: 0.1\n",
		},
		{
			name:   "missing sheet",
			prefab: "sheets.yaml",
			body:   "components:\n  sprite_sheets:\n    frame_w: 60\n    frame_h: 60\n    sheets:\n      idle: {path: a.png, frames: 8}\n",
		},
		{
			name:   "image load failure",
			prefab: "img.yaml",
			body:   "components:\n  transform: {}\n  sprite:\n    image: nope.png\n",
			loader: func(string) (*ebiten.Image, error) { return nil, errors.New("missing") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useDiskPrefabs(t, map[string]string{tt.prefab: tt.body})
			w := ecs.NewWorld()
			loader := tt.loader
			if loader == nil {
				loader = noImages
			}

			_, err := BuildEntity(w, tt.prefab, WithImageLoader(loader))
			require.Error(t, err)
			assert.Empty(t, ecs.Entities(w), "failed builds leave no entity behind")
		})
	}
}

func TestBuildEntityNilWorld(t *testing.T) {
	_, err := BuildEntity(nil, "player.yaml")
	require.Error(t, err)
}

func TestNewPlayerRequiresCharacter(t *testing.T) {
	useDiskPrefabs(t, map[string]string{"ghost.yaml": "components:\n  input: {}\n"})
	w := ecs.NewWorld()

	_, err := NewPlayer(w, "ghost.yaml")
	require.Error(t, err)
	assert.Empty(t, ecs.Entities(w))
}

func TestReloadTuning(t *testing.T) {
	useDiskPrefabs(t, nil)
	w := ecs.NewWorld()
	p, err := NewPlayer(w, "player.yaml", WithImageLoader(noImages))
	require.NoError(t, err)

	p.Character.Position.X = 50
	p.Character.SetSheet(character.SheetRun)

	useDiskPrefabs(t, map[string]string{"player.yaml": `components:
  character:
    move_speed: 250
    launch_speed: 300
    fall_acceleration: 100
    fall_speed: 90
    frame_time: 0.05
`})
	require.NoError(t, p.ReloadTuning("player.yaml"))

	assert.Equal(t, character.Tuning{MoveSpeed: 250, LaunchSpeed: 300, FallAcceleration: 100, FallSpeed: 90}, p.Character.Tuning)
	assert.Equal(t, 0.05, p.Character.Animation.FrameTime)
	assert.Equal(t, 50.0, p.Character.Position.X)
	assert.Equal(t, character.SheetRun, p.Character.Sheet)

	useDiskPrefabs(t, map[string]string{"player.yaml": "components:\n  character:\n    frame_time: 0\n"})
	require.Error(t, p.ReloadTuning("player.yaml"))
	assert.Equal(t, 0.05, p.Character.Animation.FrameTime, "a bad reload keeps the previous values")
}
