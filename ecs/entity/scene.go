package entity

import (
	"fmt"

	"github.com/milk9111/dogrun/ecs"
)

func NewCamera(w *ecs.World, opts ...BuildOption) (ecs.Entity, error) {
	camera, err := BuildEntity(w, "camera.yaml", opts...)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}
	return camera, nil
}

func NewBackground(w *ecs.World, prefab string, opts ...BuildOption) (ecs.Entity, error) {
	bg, err := BuildEntity(w, prefab, opts...)
	if err != nil {
		return 0, fmt.Errorf("background: %w", err)
	}
	return bg, nil
}
