package rules

import (
	"fmt"

	"github.com/emberveil/rp-combat/internal/domain/character"
)

// Modifier maps a raw stat value to its tiered d20 modifier.
//
// Canonical tiers: 0 → -3, 1 → -2, 2 → 0, 3 → +2, 4 → +4, 5 → +6.
// Stats above 5 (reachable through stat buffs) continue the even-number
// pattern at +2 per point. Stats below 0 (reachable through debuffs) hold at
// the bottom tier.
func Modifier(stat int) int {
	switch {
	case stat <= 0:
		return -3
	case stat == 1:
		return -2
	case stat == 2:
		return 0
	default:
		return (stat - 2) * 2
	}
}

// EffectiveModifier computes the d20 modifier for a stat with the live-stat
// overlay applied: the stat_value delta shifts the base stat before tiering,
// the roll_bonus delta is added after.
func EffectiveModifier(base character.BaseStats, live character.LiveStats, stat character.Stat) int {
	shifted := base.Get(stat) + live.StatDelta(stat)
	return Modifier(shifted) + live.RollBonus(stat)
}

// EffectiveModifierDetailed returns the effective modifier together with a
// human-readable breakdown for result messages. The breakdown has no effect
// on resolution.
func EffectiveModifierDetailed(base character.BaseStats, live character.LiveStats, stat character.Stat) (int, string) {
	baseVal := base.Get(stat)
	delta := live.StatDelta(stat)
	shifted := baseVal + delta
	tier := Modifier(shifted)
	rollBonus := live.RollBonus(stat)
	total := tier + rollBonus

	detail := fmt.Sprintf("%s %d", stat, baseVal)
	if delta != 0 {
		detail += fmt.Sprintf("%+d=%d", delta, shifted)
	}
	detail += fmt.Sprintf(" (tier %+d", tier)
	if rollBonus != 0 {
		detail += fmt.Sprintf(", roll bonus %+d", rollBonus)
	}
	detail += fmt.Sprintf(") = %+d", total)
	return total, detail
}
