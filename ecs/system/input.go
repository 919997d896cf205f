package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs"
)

// KeyState answers key queries for the current tick.
type KeyState interface {
	Held(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Held(k ebiten.Key) bool         { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// EbitenKeys reads the keyboard through ebiten and inpututil.
var EbitenKeys KeyState = ebitenKeys{}

// Bindings maps each action to the keys that trigger it.
type Bindings map[character.Action][]ebiten.Key

func DefaultBindings() Bindings {
	return Bindings{
		character.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
		character.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
		character.ActionJump:  {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
	}
}

// SampleInput folds key aliases into one snapshot. An action is released
// only when one of its keys went up and none of the others is still down.
func SampleInput(keys KeyState, bindings Bindings) character.Input {
	var in character.Input
	for action, aliases := range bindings {
		held, pressed, released := false, false, false
		for _, k := range aliases {
			if keys.Held(k) {
				held = true
			}
			if keys.JustPressed(k) {
				pressed = true
			}
			if keys.JustReleased(k) {
				released = true
			}
		}
		if held {
			in.Held = in.Held.With(action)
		}
		if pressed {
			in.Pressed = in.Pressed.With(action)
		}
		if released && !held {
			in.Released = in.Released.With(action)
		}
	}
	return in
}

type InputSystem struct {
	input    *character.Input
	keys     KeyState
	bindings Bindings
}

func NewInputSystem(input *character.Input, keys KeyState) *InputSystem {
	if keys == nil {
		keys = EbitenKeys
	}
	return &InputSystem{input: input, keys: keys, bindings: DefaultBindings()}
}

func (i *InputSystem) Update(_ *ecs.World) {
	if i == nil || i.input == nil {
		return
	}
	*i.input = SampleInput(i.keys, i.bindings)
}
