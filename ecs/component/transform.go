package component

// Transform is a screen-space placement in pixels, y down. Character
// positions live in world space and are projected here each tick.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Scale returns the scale factors with zero treated as 1.
func (t *Transform) Scale() (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

var TransformComponent = NewComponent[Transform]()
