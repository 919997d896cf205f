package character

import "strings"

// Action is a logical control, bound to one or more physical keys.
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	actionCount
)

var actionNames = [actionCount]string{"left", "right", "jump"}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ActionSet is a bit set of actions.
type ActionSet uint8

// Set returns a set holding the given actions.
func Set(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Any reports whether s and other share an action.
func (s ActionSet) Any(other ActionSet) bool {
	return s&other != 0
}

func (s ActionSet) String() string {
	var names []string
	for a := Action(0); a < actionCount; a++ {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// MovementActions are the horizontal controls.
var MovementActions = Set(ActionLeft, ActionRight)

// Input is one tick's keyboard snapshot. Pressed and Released are edges
// observed exactly once; Released is only set when no alias of the action is
// still held.
type Input struct {
	Held     ActionSet
	Pressed  ActionSet
	Released ActionSet
}

// MovePressed reports a rising edge on any movement action.
func (in Input) MovePressed() bool {
	return in.Pressed.Any(MovementActions)
}

// MoveReleased reports a movement release with no movement action still held.
func (in Input) MoveReleased() bool {
	return in.Released.Any(MovementActions) && !in.Held.Any(MovementActions)
}

// JumpPressed reports a rising edge on the jump action.
func (in Input) JumpPressed() bool {
	return in.Pressed.Has(ActionJump)
}
