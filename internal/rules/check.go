package rules

import (
	"fmt"

	"github.com/emberveil/rp-combat/internal/dice"
)

// DefaultOpposedBase is the fixed base a defender's effective modifier is
// added to when deriving an opposed target number.
const DefaultOpposedBase = 10

// CheckResult holds one resolved d20 check.
type CheckResult struct {
	Roll         int // raw d20 value
	Modifier     int
	Total        int // Roll + Modifier
	TargetNumber int
	Success      bool
	Detail       string // formatted roll trace for result messages
}

// OpposedTargetNumber derives the TN for an opposed check
func OpposedTargetNumber(base, defenderMod int) int {
	return base + defenderMod
}

// ResolveCheck rolls a single d20 against a target number. The total meets
// or beats the TN on success. Each roll is an independent draw.
func ResolveCheck(roller dice.Roller, attackerMod, targetNumber int) (*CheckResult, error) {
	roll, err := roller.D20(attackerMod)
	if err != nil {
		return nil, fmt.Errorf("failed to roll check: %w", err)
	}

	raw := roll.Rolls[0]
	result := &CheckResult{
		Roll:         raw,
		Modifier:     attackerMod,
		Total:        roll.Total,
		TargetNumber: targetNumber,
		Success:      roll.Total >= targetNumber,
	}

	outcome := "miss"
	if result.Success {
		outcome = "hit"
	}
	result.Detail = fmt.Sprintf("d20: %d %+d = %d vs TN %d (%s)", raw, attackerMod, result.Total, targetNumber, outcome)
	return result, nil
}
