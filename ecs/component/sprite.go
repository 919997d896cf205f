package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dogrun/character"
)

type Sprite struct {
	Image      *ebiten.Image
	Source     image.Rectangle
	UseSource  bool
	OriginX    float64
	OriginY    float64
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()

// SpriteSheets maps each sheet id to its asset path. Loaded is the sheet
// currently resolved into Image; the sync system swaps it when the
// character's sheet changes.
type SpriteSheets struct {
	Paths  map[character.SheetID]string
	FrameW int
	FrameH int
	Loaded character.SheetID
	Image  *ebiten.Image
}

// FrameRect returns the cell of frame in a horizontal strip.
func (s *SpriteSheets) FrameRect(frame uint) image.Rectangle {
	x := int(frame) * s.FrameW
	return image.Rect(x, 0, x+s.FrameW, s.FrameH)
}

var SpriteSheetsComponent = NewComponent[SpriteSheets]()
