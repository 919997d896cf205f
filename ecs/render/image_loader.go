package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dogrun/assets"
)

// Loader resolves an asset key to an uploaded image.
type Loader func(key string) (*ebiten.Image, error)

// LoadImage loads an image from the disk or the embedded assets and caches
// it by key. The disk copy wins so edited sheets show up without a rebuild.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromFSOrAssets(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

func loadImageFromFSOrAssets(path string) (*ebiten.Image, error) {
	for _, p := range []string{filepath.Join("assets", path), path} {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
			return ebiten.NewImageFromImage(im), nil
		}
	}
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("render: load image %s: %w", path, err)
	}
	return img, nil
}
