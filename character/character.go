// Package character holds the per-tick behavior of the player dog: the
// animation clock, horizontal movement, the jump/fall state machine and the
// input-driven sheet and facing selection. It has no engine dependency; the
// ecs systems feed it a clock delta and an input snapshot.
package character

import "github.com/jakecoffman/cp"

// SheetID names a sprite sheet variant.
type SheetID string

const (
	SheetIdle SheetID = "idle"
	SheetRun  SheetID = "run"
	SheetJump SheetID = "jump"
)

// DefaultFrameLength is the cell count of every dog strip.
const DefaultFrameLength uint = 8

// MotionState is the vertical state of the character.
type MotionState uint8

const (
	// Grounded also covers falling: y > 0 with no jump velocity left.
	Grounded MotionState = iota
	Jumping
)

func (s MotionState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Jumping:
		return "jumping"
	default:
		return "unknown"
	}
}

// Motion is Grounded or Jumping{Velocity}. Velocity is zero while Grounded.
type Motion struct {
	State    MotionState
	Velocity float64
}

func (m Motion) Jumping() bool {
	return m.State == Jumping
}

// Tuning holds the hand-tuned speeds, in world units per second.
type Tuning struct {
	MoveSpeed        float64
	LaunchSpeed      float64
	FallAcceleration float64
	FallSpeed        float64
}

// DefaultTuning matches the values the dog was tuned with.
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:        100,
		LaunchSpeed:      180,
		FallAcceleration: 130,
		FallSpeed:        130,
	}
}

// Character is the single player record. Position.Y is height above the
// ground line and never negative after Fall.
type Character struct {
	Position     cp.Vector
	FacingLeft   bool
	Sheet        SheetID
	Animation    Animation
	Motion       Motion
	Tuning       Tuning
	FrameLengths map[SheetID]uint
}

// New returns a character at the origin showing frame 0 of the idle sheet.
func New(tuning Tuning, frameTime float64) *Character {
	c := &Character{
		Position: cp.Vector{},
		Sheet:    SheetIdle,
		Tuning:   tuning,
	}
	c.Animation = Animation{
		FrameLength: c.FrameLengthFor(SheetIdle),
		FrameTime:   frameTime,
	}
	return c
}

// FrameLengthFor returns the cell count of a sheet, DefaultFrameLength when
// the sheet was not registered.
func (c *Character) FrameLengthFor(id SheetID) uint {
	if n, ok := c.FrameLengths[id]; ok && n > 0 {
		return n
	}
	return DefaultFrameLength
}

// SetSheet switches the active sheet. Switching restarts the strip at cell 0;
// reselecting the active sheet only refreshes its frame length.
func (c *Character) SetSheet(id SheetID) {
	c.Animation.FrameLength = c.FrameLengthFor(id)
	if id == c.Sheet {
		if c.Animation.Frame >= c.Animation.FrameLength {
			c.Animation.Frame %= c.Animation.FrameLength
		}
		return
	}
	c.Sheet = id
	c.Animation.Frame = 0
	c.Animation.Elapsed = 0
}
