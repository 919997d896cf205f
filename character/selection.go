package character

import (
	"fmt"
	"strings"
)

// Selection is what a policy sees when choosing the active sheet.
type Selection struct {
	MovePressed  bool
	MoveReleased bool
	JumpPressed  bool
	Current      SheetID
}

// SelectionFor builds the policy input for c from one tick's snapshot.
func SelectionFor(c *Character, in Input) Selection {
	return Selection{
		MovePressed:  in.MovePressed(),
		MoveReleased: in.MoveReleased(),
		JumpPressed:  in.JumpPressed(),
		Current:      c.Sheet,
	}
}

// SelectionPolicy decides which sheet an input edge switches to. ok is false
// when the sheet should stay as it is.
type SelectionPolicy interface {
	Name() string
	Select(s Selection) (sheet SheetID, ok bool)
}

const (
	PolicyReleaseFirst = "release-first"
	PolicyJumpFirst    = "jump-first"
	PolicyScript       = "script"
)

// PolicyNames lists every accepted policy name in cycling order.
var PolicyNames = []string{PolicyReleaseFirst, PolicyJumpFirst, PolicyScript}

// ReleaseFirst is the if/else-if ordering: run, then idle, then jump. A jump
// press in the same tick as the last movement release shows idle.
type ReleaseFirst struct{}

func (ReleaseFirst) Name() string { return PolicyReleaseFirst }

func (ReleaseFirst) Select(s Selection) (SheetID, bool) {
	switch {
	case s.MovePressed:
		return SheetRun, true
	case s.MoveReleased:
		return SheetIdle, true
	case s.JumpPressed:
		return SheetJump, true
	}
	return "", false
}

// JumpFirst lets a jump press win over every movement edge.
type JumpFirst struct{}

func (JumpFirst) Name() string { return PolicyJumpFirst }

func (JumpFirst) Select(s Selection) (SheetID, bool) {
	switch {
	case s.JumpPressed:
		return SheetJump, true
	case s.MovePressed:
		return SheetRun, true
	case s.MoveReleased:
		return SheetIdle, true
	}
	return "", false
}

// ParsePolicy resolves a built-in policy by name. The script policy needs a
// compiled script and is built with NewScriptPolicy instead.
func ParsePolicy(name string) (SelectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyReleaseFirst:
		return ReleaseFirst{}, nil
	case PolicyJumpFirst:
		return JumpFirst{}, nil
	default:
		return nil, fmt.Errorf("character: unknown selection policy %q", name)
	}
}

// SelectSheet applies the policy's sheet choice and the facing rules for one
// tick of input.
func SelectSheet(c *Character, in Input, policy SelectionPolicy) {
	if policy == nil {
		policy = ReleaseFirst{}
	}
	if sheet, ok := policy.Select(SelectionFor(c, in)); ok {
		c.SetSheet(sheet)
	}
	ApplyFacing(c, in)
}

// ApplyFacing flips on a left press, unflips on a right press while left is
// up, and unflips when left is let go with right still down.
func ApplyFacing(c *Character, in Input) {
	if in.Pressed.Has(ActionLeft) {
		c.FacingLeft = true
	}
	if in.Pressed.Has(ActionRight) && !in.Held.Has(ActionLeft) {
		c.FacingLeft = false
	}
	if in.Released.Has(ActionLeft) && in.Held.Has(ActionRight) {
		c.FacingLeft = false
	}
}
