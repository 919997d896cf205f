package main

import (
	"fmt"
	"sort"

	"github.com/milk9111/dogrun/assets"
	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/prefabs"
)

type strip struct {
	Name   string
	Path   string
	Frames uint
}

type prefabSheets struct {
	FrameW    int
	FrameH    int
	FrameTime float64
	Strips    []strip
}

// loadPrefabSheets reads the sprite_sheets and character blocks of a prefab.
// A sheet without frames gets the default strip length, as in the game.
func loadPrefabSheets(prefab string) (prefabSheets, error) {
	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return prefabSheets{}, fmt.Errorf("sheetview: load %s: %w", prefab, err)
	}
	raw, ok := spec.Component("sprite_sheets")
	if !ok {
		return prefabSheets{}, fmt.Errorf("sheetview: %s has no sprite_sheets", prefab)
	}
	sheets, err := prefabs.DecodeComponentSpec[prefabs.SpriteSheetsComponentSpec](raw)
	if err != nil {
		return prefabSheets{}, fmt.Errorf("sheetview: decode sprite_sheets: %w", err)
	}

	out := prefabSheets{FrameW: sheets.FrameW, FrameH: sheets.FrameH, FrameTime: 0.1}
	if raw, ok := spec.Component("character"); ok {
		if cs, err := prefabs.DecodeComponentSpec[prefabs.CharacterComponentSpec](raw); err == nil && cs.FrameTime > 0 {
			out.FrameTime = cs.FrameTime
		}
	}
	for name, s := range sheets.Sheets {
		frames := s.Frames
		if frames == 0 {
			frames = character.DefaultFrameLength
		}
		out.Strips = append(out.Strips, strip{Name: name, Path: s.Path, Frames: frames})
	}
	sort.Slice(out.Strips, func(i, j int) bool { return out.Strips[i].Name < out.Strips[j].Name })
	return out, nil
}

// checkStrip verifies a strip image is one row of Frames cells.
func checkStrip(s strip, frameW, frameH int) error {
	img, err := assets.DecodeImage(s.Path)
	if err != nil {
		return err
	}
	b := img.Bounds()
	wantW := frameW * int(s.Frames)
	if b.Dx() != wantW || b.Dy() != frameH {
		return fmt.Errorf("sheet %s: %s is %dx%d, want %dx%d", s.Name, s.Path, b.Dx(), b.Dy(), wantW, frameH)
	}
	return nil
}
