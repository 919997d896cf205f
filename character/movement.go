package character

import "github.com/jakecoffman/cp"

// Move displaces the character horizontally at MoveSpeed. Left wins when
// both directions are held. x is unbounded.
func Move(c *Character, in Input, dt float64) {
	step := c.Tuning.MoveSpeed * dt
	if in.Held.Has(ActionLeft) {
		c.Position = c.Position.Sub(cp.Vector{X: step})
	} else if in.Held.Has(ActionRight) {
		c.Position = c.Position.Add(cp.Vector{X: step})
	}
}
