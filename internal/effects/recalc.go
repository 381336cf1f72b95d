package effects

import (
	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
)

// Recalculate folds a combined effect list into a fresh live-stats overlay.
// Only stat_modifier effects contribute: stat_value deltas accumulate under
// the stat name, roll_bonus deltas under the stat's rollbonus key. The two
// pools never mix.
//
// Pure: returns a new map, never mutates its inputs. Unknown effect ids are
// skipped.
func Recalculate(effs []character.ActiveEffect, catalog rulebook.Catalog) character.LiveStats {
	live := make(character.LiveStats)
	for _, eff := range effs {
		def := catalog.GetEffect(eff.EffectID)
		if def == nil || def.Category != rulebook.CategoryStatModifier {
			continue
		}
		stat, ok := character.ParseStat(string(def.Stat))
		if !ok {
			continue
		}
		switch def.ModifierType {
		case rulebook.ModifierRollBonus:
			live[character.RollBonusKey(stat)] += def.Modifier
		default:
			live[string(stat)] += def.Modifier
		}
	}
	return live
}

// CombinedEffects returns the character's active effects plus synthetic
// scene-duration effects for every passive granted by an owned ability.
// Passives take the ActiveEffect shape so the rest of the engine processes
// both uniformly.
func CombinedEffects(char *character.Character, catalog rulebook.Catalog) []character.ActiveEffect {
	combined := make([]character.ActiveEffect, 0, len(char.ActiveEffects))
	combined = append(combined, char.ActiveEffects...)

	for _, abilityID := range char.OwnedAbilityIDs() {
		ability, ok := catalog.GetAbility(abilityID)
		if !ok {
			continue
		}
		for _, effectID := range ability.PassiveEffects {
			def := catalog.GetEffect(effectID)
			if def == nil {
				continue
			}
			combined = append(combined, character.ActiveEffect{
				EffectID:   effectID,
				InstanceID: "passive:" + abilityID + ":" + effectID,
				Name:       def.Name,
				Duration:   character.DurationScene,
				TurnsLeft:  character.SceneTurnsSentinel,
				SourceID:   abilityID,
			})
		}
	}
	return combined
}

// RecalculateFor rebuilds the overlay for a character from active plus
// passive effects. Called before every check and after every mutation of
// ActiveEffects; a stale overlay is a correctness bug.
func RecalculateFor(char *character.Character, catalog rulebook.Catalog) character.LiveStats {
	return Recalculate(CombinedEffects(char, catalog), catalog)
}
