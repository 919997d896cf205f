package character

import "math"

// Animation is a fixed-cadence strip clock.
type Animation struct {
	Frame       uint
	FrameLength uint
	FrameTime   float64
	Elapsed     float64
}

// Advance accumulates dt and steps the frame index by every whole frame time
// that fit, wrapping at FrameLength. Slow ticks catch up by several cells and
// fast ticks only accumulate. It returns the number of cells stepped.
func (a *Animation) Advance(dt float64) uint {
	if a.FrameLength == 0 || a.FrameTime <= 0 {
		return 0
	}
	if dt > 0 {
		a.Elapsed += dt
	}
	if a.Elapsed < a.FrameTime {
		return 0
	}

	n := math.Floor(a.Elapsed / a.FrameTime)
	steps := uint(n)
	a.Frame = (a.Frame + steps%a.FrameLength) % a.FrameLength
	a.Elapsed -= n * a.FrameTime
	if a.Elapsed < 0 {
		a.Elapsed = 0
	}
	return steps
}
