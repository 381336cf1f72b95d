package effects

import (
	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
)

// DamageReduction sums the reduction from every active defense-category
// effect on a recipient.
func DamageReduction(effs []character.ActiveEffect, catalog rulebook.Catalog) int {
	total := 0
	for _, eff := range effs {
		def := catalog.GetEffect(eff.EffectID)
		if def == nil || def.Category != rulebook.CategoryDefense {
			continue
		}
		total += def.DamageReduction
	}
	return total
}

// ApplyHealth applies net damage and healing to a health value from one
// snapshot. Reduction is subtracted from raw damage before the zero floor;
// damage and healing both apply against the same starting HP within a single
// resolution step. The result is clamped to [0, maxHP].
func ApplyHealth(currentHP, maxHP, rawDamage, rawHeal, reduction int) int {
	damage := rawDamage - reduction
	if damage < 0 {
		damage = 0
	}

	newHP := currentHP - damage + rawHeal
	if newHP > maxHP {
		newHP = maxHP
	}
	if newHP < 0 {
		newHP = 0
	}
	return newHP
}
