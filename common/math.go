package common

// Base resolution the game lays out at; ebiten scales it to the window.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// GroundY is the screen row that world y=0 maps to.
const GroundY = 600.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// WorldToScreenY flips a y-up world coordinate onto the y-down screen.
func WorldToScreenY(y float64) float64 {
	return GroundY - y
}
