package entity

import (
	"fmt"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs"
	"github.com/milk9111/dogrun/ecs/component"
	"github.com/milk9111/dogrun/prefabs"
)

// Player bundles the player entity with the records its systems mutate.
type Player struct {
	Entity    ecs.Entity
	Character *character.Character
	Input     *character.Input
}

// NewPlayer builds the player prefab. The prefab must carry character and
// input blocks; a player without them is a startup error.
func NewPlayer(w *ecs.World, prefab string, opts ...BuildOption) (*Player, error) {
	e, err := BuildEntity(w, prefab, opts...)
	if err != nil {
		return nil, err
	}
	c, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return nil, fmt.Errorf("player: prefab %q has no character component", prefab)
	}
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return nil, fmt.Errorf("player: prefab %q has no input component", prefab)
	}
	return &Player{Entity: e, Character: c, Input: in}, nil
}

// ReloadTuning re-reads the character block of prefab and applies the speeds
// and frame time in place. Position, sheet and motion are kept.
func (p *Player) ReloadTuning(prefab string) error {
	if p == nil || p.Character == nil {
		return fmt.Errorf("player: reload tuning: no character")
	}
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return fmt.Errorf("player: reload tuning: %w", err)
	}
	raw, ok := spec.Component("character")
	if !ok {
		return fmt.Errorf("player: reload tuning: prefab %q has no character component", prefab)
	}
	cs, err := decodeCharacter(raw)
	if err != nil {
		return fmt.Errorf("player: reload tuning: %w", err)
	}
	p.Character.Tuning = tuningFrom(cs)
	p.Character.Animation.FrameTime = cs.FrameTime
	return nil
}
