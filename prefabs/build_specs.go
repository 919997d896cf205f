package prefabs

import (
	"errors"
	"fmt"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// Component returns the raw block for name, if the prefab declares it.
func (s EntityBuildSpec) Component(name string) (any, bool) {
	raw, ok := s.Components[name]
	return raw, ok
}

type CharacterComponentSpec struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	LaunchSpeed      float64 `yaml:"launch_speed"`
	FallAcceleration float64 `yaml:"fall_acceleration"`
	FallSpeed        float64 `yaml:"fall_speed"`
	FrameTime        float64 `yaml:"frame_time"`
}

// Validate rejects tunings that would stall the jump or the clock.
func (s CharacterComponentSpec) Validate() error {
	var errs []error
	if s.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("move_speed must be >= 0, got %v", s.MoveSpeed))
	}
	if s.LaunchSpeed < 0 {
		errs = append(errs, fmt.Errorf("launch_speed must be >= 0, got %v", s.LaunchSpeed))
	}
	if s.FallAcceleration <= 0 {
		errs = append(errs, fmt.Errorf("fall_acceleration must be > 0, got %v", s.FallAcceleration))
	}
	if s.FallSpeed < 0 {
		errs = append(errs, fmt.Errorf("fall_speed must be >= 0, got %v", s.FallSpeed))
	}
	if s.FrameTime <= 0 {
		errs = append(errs, fmt.Errorf("frame_time must be > 0, got %v", s.FrameTime))
	}
	return errors.Join(errs...)
}

type SheetSpec struct {
	Path   string `yaml:"path"`
	Frames uint   `yaml:"frames"`
}

type SpriteSheetsComponentSpec struct {
	FrameW int                  `yaml:"frame_w"`
	FrameH int                  `yaml:"frame_h"`
	Sheets map[string]SheetSpec `yaml:"sheets"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image              string  `yaml:"image"`
	UseSource          bool    `yaml:"use_source"`
	OriginX            float64 `yaml:"origin_x"`
	OriginY            float64 `yaml:"origin_y"`
	CenterOriginIfZero bool    `yaml:"center_origin_if_zero"`
	FacingLeft         bool    `yaml:"facing_left"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
	OffsetY    float64 `yaml:"offset_y"`
}
