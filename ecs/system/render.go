package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dogrun/ecs"
	"github.com/milk9111/dogrun/ecs/component"
)

type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw paints screen-space sprites first, then world sprites by render layer
// offset by the camera.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sortForDraw(w, entities)

	for _, e := range entities {
		if e == r.camEntity {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if t == nil || s == nil || s.Image == nil {
			continue
		}

		if ecs.Has(w, e, component.ScreenSpaceComponent.Kind()) {
			drawSprite(screen, t, s, 0, 0, 1)
			continue
		}
		drawSprite(screen, t, s, camX, camY, zoom)
	}
}

// sortForDraw orders screen-space entities before world entities, then by
// layer, then by entity for stability.
func sortForDraw(w *ecs.World, entities []ecs.Entity) {
	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		si := ecs.Has(w, entities[i], component.ScreenSpaceComponent.Kind())
		sj := ecs.Has(w, entities[j], component.ScreenSpaceComponent.Kind())
		if si != sj {
			return si
		}
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}

func drawSprite(screen *ebiten.Image, t *component.Transform, s *component.Sprite, camX, camY, zoom float64) {
	img := s.Image
	if s.UseSource {
		if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
			img = sub
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.OriginX, -s.OriginY)

	sx, sy := t.Scale()
	if s.FacingLeft {
		// mirror around the origin
		sx = -sx
	}

	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(t.Rotation)
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate((t.X-camX)*zoom, (t.Y-camY)*zoom)
	op.Filter = ebiten.FilterNearest

	screen.DrawImage(img, op)
}
