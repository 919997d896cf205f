package entity

import (
	"fmt"
	"sort"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs"
	"github.com/milk9111/dogrun/ecs/component"
	"github.com/milk9111/dogrun/ecs/render"
	"github.com/milk9111/dogrun/prefabs"
)

type buildContext struct {
	PrefabPath string
	LoadImage  render.Loader
}

// BuildOption adjusts how a prefab is turned into components.
type BuildOption func(*buildContext)

// WithImageLoader replaces render.LoadImage for sprite images.
func WithImageLoader(l render.Loader) BuildOption {
	return func(ctx *buildContext) {
		ctx.LoadImage = l
	}
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":    addPlayerTag,
	"camera_tag":    addCameraTag,
	"character":     addCharacter,
	"input":         addInput,
	"sprite_sheets": addSpriteSheets,
	"transform":     addTransform,
	"sprite":        addSprite,
	"render_layer":  addRenderLayer,
	"screen_space":  addScreenSpace,
	"camera":        addCamera,
}

// sprite_sheets reads the character's frame lengths, so it must follow it.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"character",
	"input",
	"sprite_sheets",
	"transform",
	"sprite",
	"render_layer",
	"screen_space",
	"camera",
}

func BuildEntity(w *ecs.World, prefabPath string, opts ...BuildOption) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	ctx := &buildContext{PrefabPath: prefabPath, LoadImage: render.LoadImage}
	for _, opt := range opts {
		opt(ctx)
	}

	unknown := make([]string, 0)
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return 0, fmt.Errorf("build entity: %q: no builder for components %v", prefabPath, unknown)
	}

	e := ecs.CreateEntity(w)
	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

type characterSpec = prefabs.CharacterComponentSpec

func decodeCharacter(raw any) (characterSpec, error) {
	spec, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return spec, fmt.Errorf("decode character spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("character spec: %w", err)
	}
	return spec, nil
}

func tuningFrom(spec characterSpec) character.Tuning {
	return character.Tuning{
		MoveSpeed:        spec.MoveSpeed,
		LaunchSpeed:      spec.LaunchSpeed,
		FallAcceleration: spec.FallAcceleration,
		FallSpeed:        spec.FallSpeed,
	}
}

func addCharacter(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := decodeCharacter(raw)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.CharacterComponent.Kind(), character.New(tuningFrom(spec), spec.FrameTime))
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &character.Input{})
}

type spriteSheetsSpec = prefabs.SpriteSheetsComponentSpec

var requiredSheets = []character.SheetID{character.SheetIdle, character.SheetRun, character.SheetJump}

func addSpriteSheets(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSheetsSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite sheets spec: %w", err)
	}
	if spec.FrameW <= 0 || spec.FrameH <= 0 {
		return fmt.Errorf("sprite sheets: frame size must be positive, got %dx%d", spec.FrameW, spec.FrameH)
	}

	sheets := &component.SpriteSheets{
		Paths:  make(map[character.SheetID]string, len(spec.Sheets)),
		FrameW: spec.FrameW,
		FrameH: spec.FrameH,
	}
	lengths := make(map[character.SheetID]uint, len(spec.Sheets))
	for name, sheet := range spec.Sheets {
		id := character.SheetID(name)
		switch id {
		case character.SheetIdle, character.SheetRun, character.SheetJump:
		default:
			return fmt.Errorf("sprite sheets: unknown sheet %q", name)
		}
		if sheet.Path == "" {
			return fmt.Errorf("sprite sheets: sheet %q has no path", name)
		}
		sheets.Paths[id] = sheet.Path
		if sheet.Frames > 0 {
			lengths[id] = sheet.Frames
		}
	}
	for _, id := range requiredSheets {
		if _, ok := sheets.Paths[id]; !ok {
			return fmt.Errorf("sprite sheets: missing %q sheet", id)
		}
	}

	if c, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok {
		c.FrameLengths = lengths
		c.Animation.FrameLength = c.FrameLengthFor(c.Sheet)
	}
	return ecs.Add(w, e, component.SpriteSheetsComponent.Kind(), sheets)
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := ctx.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.UseSource = spec.UseSource
	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero && sprite.Image != nil {
		iw, ih := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		sprite.OriginX = float64(iw) / 2
		sprite.OriginY = float64(ih) / 2
	}
	sprite.FacingLeft = spec.FacingLeft

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addScreenSpace(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ScreenSpaceComponent.Kind(), &component.ScreenSpace{})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	if spec.Smoothness <= 0 || spec.Smoothness > 1 {
		spec.Smoothness = 0.15
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
		OffsetY:    spec.OffsetY,
	})
}
