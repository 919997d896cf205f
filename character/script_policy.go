package character

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScriptPolicy asks a tengo script for the sheet. The script reads the
// globals move_pressed, move_released, jump_pressed and current, and assigns
// the global sheet ("" keeps the current sheet).
//
// After the first runtime error the policy reports it through onError once
// and answers with Fallback from then on.
type ScriptPolicy struct {
	compiled *tengo.Compiled
	Fallback SelectionPolicy
	onError  func(error)
	failed   bool
}

// NewScriptPolicy compiles src. onError may be nil.
func NewScriptPolicy(src []byte, onError func(error)) (*ScriptPolicy, error) {
	script := tengo.NewScript(src)
	for name, value := range map[string]any{
		"move_pressed":  false,
		"move_released": false,
		"jump_pressed":  false,
		"current":       "",
		"sheet":         "",
	} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("character: script global %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("text", "fmt"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("character: compile selection script: %w", err)
	}
	return &ScriptPolicy{
		compiled: compiled,
		Fallback: ReleaseFirst{},
		onError:  onError,
	}, nil
}

func (p *ScriptPolicy) Name() string { return PolicyScript }

func (p *ScriptPolicy) Select(s Selection) (SheetID, bool) {
	if p == nil || p.compiled == nil {
		return ReleaseFirst{}.Select(s)
	}
	if p.failed {
		return p.Fallback.Select(s)
	}
	sheet, err := p.run(s)
	if err != nil {
		p.failed = true
		if p.onError != nil {
			p.onError(err)
		}
		return p.Fallback.Select(s)
	}
	if sheet == "" {
		return "", false
	}
	return sheet, true
}

func (p *ScriptPolicy) run(s Selection) (SheetID, error) {
	values := []struct {
		name  string
		value any
	}{
		{"move_pressed", s.MovePressed},
		{"move_released", s.MoveReleased},
		{"jump_pressed", s.JumpPressed},
		{"current", string(s.Current)},
		{"sheet", ""},
	}
	for _, v := range values {
		if err := p.compiled.Set(v.name, v.value); err != nil {
			return "", fmt.Errorf("character: set %s: %w", v.name, err)
		}
	}
	if err := p.compiled.Run(); err != nil {
		return "", fmt.Errorf("character: run selection script: %w", err)
	}

	raw := strings.TrimSpace(p.compiled.Get("sheet").String())
	switch id := SheetID(raw); id {
	case "", SheetIdle, SheetRun, SheetJump:
		return id, nil
	default:
		return "", fmt.Errorf("character: selection script chose unknown sheet %q", raw)
	}
}
