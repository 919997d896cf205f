package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/common"
	"github.com/milk9111/dogrun/ecs"
	"github.com/milk9111/dogrun/ecs/component"
	"github.com/milk9111/dogrun/ecs/render"
)

// CharacterSyncSystem copies the character record into the render
// components of its entity. The sprite sits centered on x with its feet on
// the ground line.
type CharacterSyncSystem struct {
	entity ecs.Entity
	char   *character.Character
	load   render.Loader
	logger *zap.Logger
}

func NewCharacterSyncSystem(e ecs.Entity, c *character.Character, load render.Loader, logger *zap.Logger) *CharacterSyncSystem {
	if load == nil {
		load = render.LoadImage
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CharacterSyncSystem{entity: e, char: c, load: load, logger: logger}
}

func (s *CharacterSyncSystem) Update(w *ecs.World) {
	if s == nil || s.char == nil || w == nil {
		return
	}

	if t, ok := ecs.Get(w, s.entity, component.TransformComponent.Kind()); ok {
		t.X = s.char.Position.X
		t.Y = common.WorldToScreenY(s.char.Position.Y)
	}

	sprite, ok := ecs.Get(w, s.entity, component.SpriteComponent.Kind())
	if !ok {
		return
	}
	sprite.FacingLeft = s.char.FacingLeft

	sheets, ok := ecs.Get(w, s.entity, component.SpriteSheetsComponent.Kind())
	if !ok {
		return
	}
	if sheets.Loaded != s.char.Sheet || sheets.Image == nil {
		s.swapSheet(sheets)
	}
	if sheets.Image != nil {
		sprite.Image = sheets.Image
	}
	sprite.UseSource = true
	sprite.Source = sheets.FrameRect(s.char.Animation.Frame)
	sprite.OriginX = float64(sheets.FrameW) / 2
	sprite.OriginY = float64(sheets.FrameH)
}

func (s *CharacterSyncSystem) swapSheet(sheets *component.SpriteSheets) {
	path, ok := sheets.Paths[s.char.Sheet]
	if !ok {
		s.logger.Warn("no sprite sheet for sheet id", zap.String("sheet", string(s.char.Sheet)))
		sheets.Loaded = s.char.Sheet
		return
	}
	img, err := s.load(path)
	if err != nil {
		// Keep drawing the old strip rather than nothing.
		s.logger.Error("load sprite sheet", zap.String("sheet", string(s.char.Sheet)), zap.String("path", path), zap.Error(err))
		sheets.Loaded = s.char.Sheet
		return
	}
	s.logger.Debug("sprite sheet swapped",
		zap.String("from", string(sheets.Loaded)),
		zap.String("to", string(s.char.Sheet)),
		zap.String("path", path),
	)
	sheets.Loaded = s.char.Sheet
	sheets.Image = img
}
