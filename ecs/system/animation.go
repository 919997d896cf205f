package system

import (
	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs"
)

// AnimationClockSystem advances the active sheet's frame index by wall time.
type AnimationClockSystem struct {
	char *character.Character
}

func NewAnimationClockSystem(c *character.Character) *AnimationClockSystem {
	return &AnimationClockSystem{char: c}
}

func (a *AnimationClockSystem) Update(w *ecs.World) {
	if a == nil || a.char == nil || w == nil {
		return
	}
	a.char.Animation.Advance(w.Time().Delta)
}
