package ecs

// Time is the per-tick clock. Delta is the wall time in seconds since the
// previous tick, already clamped by the game loop.
type Time struct {
	Delta   float64
	Elapsed float64
	Frame   uint64
}

// Advance records one tick of dt seconds.
func (t *Time) Advance(dt float64) {
	if t == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	t.Delta = dt
	t.Elapsed += dt
	t.Frame++
}
