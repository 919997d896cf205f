package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name  string
		held  ActionSet
		wantX float64
	}{
		{"left", Set(ActionLeft), -10},
		{"right", Set(ActionRight), 10},
		{"left_wins_tie", Set(ActionLeft, ActionRight), -10},
		{"none", 0, 0},
		{"jump_only", Set(ActionJump), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(Tuning{MoveSpeed: 100}, 0.1)
			Move(c, Input{Held: tc.held}, 0.1)
			assert.InDelta(t, tc.wantX, c.Position.X, 1e-9)
			assert.Equal(t, 0.0, c.Position.Y)
		})
	}
}

func TestHoldRightForOneSecond(t *testing.T) {
	c := New(Tuning{MoveSpeed: 100}, 0.1)
	const dt = 1.0 / 60

	for i := 0; i < 60; i++ {
		in := Input{Held: Set(ActionRight)}
		if i == 0 {
			in.Pressed = Set(ActionRight)
		}
		SelectSheet(c, in, ReleaseFirst{})
		Move(c, in, dt)
	}

	assert.InDelta(t, 100.0, c.Position.X, 1e-9)
	assert.Equal(t, SheetRun, c.Sheet)
	assert.False(t, c.FacingLeft)
}
