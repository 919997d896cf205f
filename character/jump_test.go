package character

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func jumpPress() Input {
	return Input{Held: Set(ActionJump), Pressed: Set(ActionJump)}
}

func TestJumpFirstTick(t *testing.T) {
	c := New(Tuning{LaunchSpeed: 180, FallAcceleration: 130, FallSpeed: 130}, 0.1)

	require.True(t, TriggerJump(c, jumpPress()))
	Ascend(c, 0.1)

	assert.True(t, c.Motion.Jumping())
	assert.InDelta(t, 154.0, c.Motion.Velocity, 1e-9)
	assert.InDelta(t, 26.0, c.Position.Y, 1e-9)
}

func TestJumpNeedsRisingEdge(t *testing.T) {
	c := New(DefaultTuning(), 0.1)

	assert.False(t, TriggerJump(c, Input{Held: Set(ActionJump)}), "held without edge")
	assert.Equal(t, Grounded, c.Motion.State)

	require.True(t, TriggerJump(c, jumpPress()))
	c.Motion.Velocity = 50
	assert.False(t, TriggerJump(c, jumpPress()), "already jumping")
	assert.Equal(t, 50.0, c.Motion.Velocity)
}

func TestJumpLandsThenFalls(t *testing.T) {
	c := New(DefaultTuning(), 0.1)
	require.True(t, TriggerJump(c, jumpPress()))

	for i := 0; i < 1000 && c.Motion.Jumping(); i++ {
		Ascend(c, 1.0/60)
	}
	require.Equal(t, Grounded, c.Motion.State)
	assert.Equal(t, 0.0, c.Motion.Velocity)
	assert.InDelta(t, c.Tuning.LaunchSpeed, c.Position.Y, 1e-9, "ascent adds up to the launch speed")

	for i := 0; i < 1000 && c.Position.Y > 0; i++ {
		Fall(c, 1.0/60)
	}
	assert.Equal(t, 0.0, c.Position.Y)
	assert.False(t, c.Airborne())
}

func TestJumpVelocityMonotoneAndFinite(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		launch := rapid.Float64Range(0, 1000).Draw(rt, "launch")
		accel := rapid.Float64Range(0.5, 1000).Draw(rt, "accel")
		dt := rapid.Float64Range(0.001, 0.5).Draw(rt, "dt")

		c := New(Tuning{LaunchSpeed: launch, FallAcceleration: accel}, 0.1)
		if !TriggerJump(c, jumpPress()) {
			rt.Fatalf("grounded character did not jump")
		}

		limit := int(math.Ceil(launch/(2*accel*dt))) + 2
		prev := c.Motion.Velocity
		ticks := 0
		for c.Motion.Jumping() {
			Ascend(c, dt)
			ticks++
			if c.Motion.Velocity > prev {
				rt.Fatalf("velocity rose from %v to %v", prev, c.Motion.Velocity)
			}
			if c.Motion.Velocity < 0 {
				rt.Fatalf("velocity went negative: %v", c.Motion.Velocity)
			}
			prev = c.Motion.Velocity
			if ticks > limit {
				rt.Fatalf("still jumping after %d ticks", ticks)
			}
		}
		if c.Motion.Velocity != 0 {
			rt.Fatalf("landed with velocity %v", c.Motion.Velocity)
		}
	})
}

func TestFallNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := New(Tuning{FallSpeed: rapid.Float64Range(0, 2000).Draw(rt, "speed")}, 0.1)
		c.Position.Y = rapid.Float64Range(-500, 500).Draw(rt, "y")
		Fall(c, rapid.Float64Range(0, 10).Draw(rt, "dt"))
		if c.Position.Y < 0 {
			rt.Fatalf("y = %v after fall", c.Position.Y)
		}
	})
}

func TestFallSkippedWhileJumping(t *testing.T) {
	c := New(DefaultTuning(), 0.1)
	c.Position.Y = 40
	c.Motion = Motion{State: Jumping, Velocity: 10}

	Fall(c, 0.5)
	assert.Equal(t, 40.0, c.Position.Y)

	c.Motion = Motion{}
	Fall(c, 0.1)
	assert.InDelta(t, 27.0, c.Position.Y, 1e-9)
}
