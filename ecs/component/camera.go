package component

// Camera follows the player horizontally. Smoothness is the lerp factor
// applied per tick; OffsetY shifts the whole view.
type Camera struct {
	Zoom       float64
	Smoothness float64
	OffsetY    float64
}

var CameraComponent = NewComponent[Camera]()
