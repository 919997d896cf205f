package system

import (
	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/common"
	"github.com/milk9111/dogrun/ecs"
	"github.com/milk9111/dogrun/ecs/component"
)

// CameraSystem eases the camera transform toward the character so the view
// stays centered on x. The vertical view is fixed.
type CameraSystem struct {
	camEntity ecs.Entity
	char      *character.Character
	snapped   bool
}

func NewCameraSystem(c *character.Character) *CameraSystem {
	return &CameraSystem{char: c}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || cs.char == nil || w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraTagComponent.Kind(), component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.snapped = false
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	targetX := cs.char.Position.X - common.BaseWidth/(2*zoom)
	if !cs.snapped {
		t.X = targetX
		cs.snapped = true
	} else {
		t.X = common.Lerp(t.X, targetX, cam.Smoothness)
	}
	t.Y = cam.OffsetY
}
