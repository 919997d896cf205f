package character

import (
	"math"

	"github.com/jakecoffman/cp"
)

// TriggerJump starts a jump on a rising jump edge unless one is already in
// progress. A falling character may jump again.
func TriggerJump(c *Character, in Input) bool {
	if c.Motion.Jumping() || !in.JumpPressed() {
		return false
	}
	c.Motion = Motion{State: Jumping, Velocity: c.Tuning.LaunchSpeed}
	return true
}

// Ascend moves a jumping character up by the decayed part of its velocity.
// The decay is capped by the velocity left, so velocity lands on exactly zero
// and the character is Grounded again.
func Ascend(c *Character, dt float64) {
	if !c.Motion.Jumping() {
		return
	}
	decay := math.Min(c.Tuning.FallAcceleration*dt*2, c.Motion.Velocity)
	if decay < 0 {
		decay = 0
	}
	c.Motion.Velocity -= decay
	c.Position = c.Position.Add(cp.Vector{Y: decay})
	if c.Motion.Velocity <= 0 {
		c.Motion = Motion{State: Grounded}
	}
}

// Fall pulls a grounded character back to y=0 at FallSpeed. It never leaves
// y negative.
func Fall(c *Character, dt float64) {
	if c.Motion.Jumping() {
		return
	}
	if c.Position.Y > 0 {
		c.Position = c.Position.Sub(cp.Vector{Y: c.Tuning.FallSpeed * dt})
	}
	if c.Position.Y < 0 {
		c.Position.Y = 0
	}
}

// Airborne reports whether the character is off the ground.
func (c *Character) Airborne() bool {
	return c.Motion.Jumping() || c.Position.Y > 0
}
