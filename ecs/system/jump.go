package system

import (
	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs"
)

// JumpSystem starts jumps and steps the ascent. A jump triggered this tick
// already rises this tick.
type JumpSystem struct {
	char  *character.Character
	input *character.Input
}

func NewJumpSystem(c *character.Character, input *character.Input) *JumpSystem {
	return &JumpSystem{char: c, input: input}
}

func (j *JumpSystem) Update(w *ecs.World) {
	if j == nil || j.char == nil || j.input == nil || w == nil {
		return
	}
	character.TriggerJump(j.char, *j.input)
	character.Ascend(j.char, w.Time().Delta)
}

type FallSystem struct {
	char *character.Character
}

func NewFallSystem(c *character.Character) *FallSystem {
	return &FallSystem{char: c}
}

func (f *FallSystem) Update(w *ecs.World) {
	if f == nil || f.char == nil || w == nil {
		return
	}
	character.Fall(f.char, w.Time().Delta)
}
