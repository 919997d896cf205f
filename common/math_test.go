package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{name: "start", a: 10, b: 20, t: 0, want: 10},
		{name: "end", a: 10, b: 20, t: 1, want: 20},
		{name: "half", a: -4, b: 4, t: 0.5, want: 0},
		{name: "reverse", a: 20, b: 10, t: 0.25, want: 17.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Lerp(tt.a, tt.b, tt.t), 1e-9)
		})
	}
}

func TestWorldToScreenY(t *testing.T) {
	assert.Equal(t, GroundY, WorldToScreenY(0))
	assert.Equal(t, GroundY-26, WorldToScreenY(26))
}
