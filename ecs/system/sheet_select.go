package system

import (
	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs"
)

// SheetSelectSystem switches the active sheet and facing on input edges.
type SheetSelectSystem struct {
	char   *character.Character
	input  *character.Input
	policy character.SelectionPolicy
}

func NewSheetSelectSystem(c *character.Character, input *character.Input, policy character.SelectionPolicy) *SheetSelectSystem {
	if policy == nil {
		policy = character.ReleaseFirst{}
	}
	return &SheetSelectSystem{char: c, input: input, policy: policy}
}

func (s *SheetSelectSystem) Policy() character.SelectionPolicy {
	if s == nil {
		return nil
	}
	return s.policy
}

// SetPolicy swaps the precedence rule. nil is ignored.
func (s *SheetSelectSystem) SetPolicy(p character.SelectionPolicy) {
	if s == nil || p == nil {
		return
	}
	s.policy = p
}

func (s *SheetSelectSystem) Update(_ *ecs.World) {
	if s == nil || s.char == nil || s.input == nil {
		return
	}
	character.SelectSheet(s.char, *s.input, s.policy)
}
