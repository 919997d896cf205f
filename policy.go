package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/dogrun/character"
	"github.com/milk9111/dogrun/prefabs"
)

// loadPolicy resolves a selection policy by name, compiling the tengo script
// for the script policy.
func loadPolicy(name, script string, logger *zap.Logger) (character.SelectionPolicy, error) {
	if name != character.PolicyScript {
		return character.ParsePolicy(name)
	}
	src, err := prefabs.LoadScript(script)
	if err != nil {
		return nil, fmt.Errorf("policy: load script %s: %w", script, err)
	}
	policy, err := character.NewScriptPolicy(src, func(err error) {
		logger.Error("selection script failed, using release-first", zap.String("script", script), zap.Error(err))
	})
	if err != nil {
		return nil, fmt.Errorf("policy: %w", err)
	}
	return policy, nil
}

// nextPolicyName returns the policy after current in cycling order.
func nextPolicyName(current string) string {
	for i, name := range character.PolicyNames {
		if name == current {
			return character.PolicyNames[(i+1)%len(character.PolicyNames)]
		}
	}
	return character.PolicyNames[0]
}
