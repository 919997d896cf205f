package system

import (
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/common"
	"github.com/milk9111/dogrun/ecs"
	"github.com/milk9111/dogrun/ecs/component"
)

// newTickPipeline wires the per-tick systems in game order with the input
// snapshot supplied directly by the test.
func newTickPipeline(c *character.Character, in *character.Input, policy character.SelectionPolicy) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewSheetSelectSystem(c, in, policy),
		NewMovementSystem(c, in),
		NewJumpSystem(c, in),
		NewFallSystem(c),
		NewAnimationClockSystem(c),
	)
}

func TestPipelineRunRight(t *testing.T) {
	w := ecs.NewWorld()
	c := character.New(character.DefaultTuning(), 0.1)
	in := &character.Input{}
	sched := newTickPipeline(c, in, nil)

	for i := 0; i < 60; i++ {
		*in = character.Input{Held: character.Set(character.ActionRight)}
		if i == 0 {
			in.Pressed = character.Set(character.ActionRight)
		}
		w.Time().Advance(1.0 / 60)
		sched.Update(w)
	}

	assert.InDelta(t, 100, c.Position.X, 1e-6)
	assert.Equal(t, character.SheetRun, c.Sheet)
	assert.False(t, c.FacingLeft)
}

func TestPipelineJumpFirstTick(t *testing.T) {
	w := ecs.NewWorld()
	c := character.New(character.Tuning{LaunchSpeed: 180, FallAcceleration: 130, FallSpeed: 130}, 0.1)
	in := &character.Input{Held: character.Set(character.ActionJump), Pressed: character.Set(character.ActionJump)}
	sched := newTickPipeline(c, in, nil)

	w.Time().Advance(0.1)
	sched.Update(w)

	assert.True(t, c.Motion.Jumping())
	assert.InDelta(t, 154, c.Motion.Velocity, 1e-9)
	assert.InDelta(t, 26, c.Position.Y, 1e-9)
	assert.Equal(t, character.SheetJump, c.Sheet)
}

func TestSheetSelectPolicySwap(t *testing.T) {
	c := character.New(character.DefaultTuning(), 0.1)
	c.SetSheet(character.SheetRun)
	in := &character.Input{
		Pressed:  character.Set(character.ActionJump),
		Held:     character.Set(character.ActionJump),
		Released: character.Set(character.ActionRight),
	}
	sys := NewSheetSelectSystem(c, in, nil)
	require.Equal(t, character.PolicyReleaseFirst, sys.Policy().Name())

	sys.Update(nil)
	assert.Equal(t, character.SheetIdle, c.Sheet)

	sys.SetPolicy(nil)
	assert.Equal(t, character.PolicyReleaseFirst, sys.Policy().Name())

	c.SetSheet(character.SheetRun)
	sys.SetPolicy(character.JumpFirst{})
	sys.Update(nil)
	assert.Equal(t, character.SheetJump, c.Sheet)
}

func newSyncedPlayer(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 2, ScaleY: 2}))
	require.NoError(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}))
	require.NoError(t, ecs.Add(w, e, component.SpriteSheetsComponent.Kind(), &component.SpriteSheets{
		Paths: map[character.SheetID]string{
			character.SheetIdle: "idle.png",
			character.SheetRun:  "run.png",
			character.SheetJump: "jump.png",
		},
		FrameW: 60,
		FrameH: 60,
	}))
	return e
}

func TestCharacterSyncSwapsSheetOnce(t *testing.T) {
	w := ecs.NewWorld()
	e := newSyncedPlayer(t, w)
	c := character.New(character.DefaultTuning(), 0.1)

	var loaded []string
	loader := func(key string) (*ebiten.Image, error) {
		loaded = append(loaded, key)
		return nil, nil
	}
	sys := NewCharacterSyncSystem(e, c, loader, nil)

	c.Position.X = 42
	c.Position.Y = 26
	c.FacingLeft = true
	c.Animation.Frame = 3
	sys.Update(w)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 42.0, tr.X)
	assert.Equal(t, common.GroundY-26, tr.Y)

	sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	require.True(t, ok)
	assert.True(t, sp.FacingLeft)
	assert.Equal(t, image.Rect(180, 0, 240, 60), sp.Source)
	assert.Equal(t, 30.0, sp.OriginX)
	assert.Equal(t, 60.0, sp.OriginY)

	sheets, _ := ecs.Get(w, e, component.SpriteSheetsComponent.Kind())
	assert.Equal(t, character.SheetIdle, sheets.Loaded)

	c.SetSheet(character.SheetRun)
	sys.Update(w)
	assert.Equal(t, character.SheetRun, sheets.Loaded)
	assert.Equal(t, []string{"idle.png", "run.png"}, loaded[len(loaded)-2:])
}

func TestCharacterSyncLoadFailureKeepsRunning(t *testing.T) {
	w := ecs.NewWorld()
	e := newSyncedPlayer(t, w)
	c := character.New(character.DefaultTuning(), 0.1)
	sys := NewCharacterSyncSystem(e, c, func(string) (*ebiten.Image, error) {
		return nil, errors.New("boom")
	}, nil)

	assert.NotPanics(t, func() { sys.Update(w) })
	sheets, _ := ecs.Get(w, e, component.SpriteSheetsComponent.Kind())
	assert.Equal(t, character.SheetIdle, sheets.Loaded)
}

func TestCameraFollowsCharacter(t *testing.T) {
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, cam, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	require.NoError(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1, Smoothness: 0.5}))
	require.NoError(t, ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{}))

	c := character.New(character.DefaultTuning(), 0.1)
	sys := NewCameraSystem(c)

	sys.Update(w)
	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	assert.Equal(t, -common.BaseWidth/2.0, tr.X, "first update snaps")

	c.Position.X = 100
	sys.Update(w)
	assert.InDelta(t, -common.BaseWidth/2.0+50, tr.X, 1e-9)
}
