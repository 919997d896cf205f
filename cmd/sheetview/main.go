// Command sheetview previews one sprite strip of a prefab with the game's
// animation clock, or checks every strip's size with --check.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/pflag"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/ecs/component"
	"github.com/milk9111/dogrun/ecs/render"
)

const viewSize = 512

type previewGame struct {
	name   string
	sheets *component.SpriteSheets
	anim   character.Animation
	scale  float64
	last   time.Time
}

func (g *previewGame) Update() error {
	now := time.Now()
	if !g.last.IsZero() {
		g.anim.Advance(now.Sub(g.last).Seconds())
	}
	g.last = now
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})

	cell, ok := g.sheets.Image.SubImage(g.sheets.FrameRect(g.anim.Frame)).(*ebiten.Image)
	if ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(g.scale, g.scale)
		op.GeoM.Translate(
			(viewSize-float64(g.sheets.FrameW)*g.scale)/2,
			(viewSize-float64(g.sheets.FrameH)*g.scale)/2,
		)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(cell, op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s frame %d/%d", g.name, g.anim.Frame, g.anim.FrameLength))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	flags := pflag.NewFlagSet("sheetview", pflag.ContinueOnError)
	prefab := flags.String("prefab", "player.yaml", "prefab with a sprite_sheets block")
	sheet := flags.String("sheet", string(character.SheetIdle), "strip to preview")
	scale := flags.Float64("scale", 4, "preview scale")
	check := flags.Bool("check", false, "validate every strip and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	sheets, err := loadPrefabSheets(*prefab)
	if err != nil {
		log.Fatal(err)
	}

	if *check {
		var errs []error
		for _, s := range sheets.Strips {
			if err := checkStrip(s, sheets.FrameW, sheets.FrameH); err != nil {
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			log.Fatal(err)
		}
		log.Printf("%s: %d strips ok", *prefab, len(sheets.Strips))
		return
	}

	var chosen *strip
	for i := range sheets.Strips {
		if sheets.Strips[i].Name == *sheet {
			chosen = &sheets.Strips[i]
		}
	}
	if chosen == nil {
		log.Fatalf("sheetview: %s has no %q sheet", *prefab, *sheet)
	}

	img, err := render.LoadImage(chosen.Path)
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{
		name: chosen.Name,
		sheets: &component.SpriteSheets{
			FrameW: sheets.FrameW,
			FrameH: sheets.FrameH,
			Loaded: character.SheetID(chosen.Name),
			Image:  img,
		},
		anim:  character.Animation{FrameLength: chosen.Frames, FrameTime: sheets.FrameTime},
		scale: *scale,
	}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("sheetview: " + chosen.Name)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
