package system

import (
	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs"
)

type MovementSystem struct {
	char  *character.Character
	input *character.Input
}

func NewMovementSystem(c *character.Character, input *character.Input) *MovementSystem {
	return &MovementSystem{char: c, input: input}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if m == nil || m.char == nil || m.input == nil || w == nil {
		return
	}
	character.Move(m.char, *m.input, w.Time().Delta)
}
