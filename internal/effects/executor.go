package effects

import (
	"log"
	"time"

	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
	"github.com/emberveil/rp-combat/internal/rules"
)

// Result is the transient outcome of executing one effect against one
// target. It is consumed immediately by the health applicator and message
// builder, never persisted.
type Result struct {
	Def *rulebook.EffectDefinition

	Damage          int
	Heal            int
	StatDelta       int
	Control         bool
	ControlType     string
	DamageReduction int
}

// Caster is the snapshot of the acting character an execution reads:
// base stats plus the current live-stat overlay.
type Caster struct {
	BaseStats character.BaseStats
	LiveStats character.LiveStats
}

// Execute combines an effect's static definition with the caster's runtime
// modifiers into a concrete Result. Returns nil if the effect id is unknown;
// callers skip nil results (catalog entries may have been removed after a
// character acquired the referencing ability).
//
// fallbackStat is the owning ability's base stat, used for damage effects
// that do not name their own attack stat. Execute is a pure computation over
// a hypothetical application; it never mutates state.
func Execute(catalog rulebook.Catalog, effectID string, caster Caster, fallbackStat character.Stat) *Result {
	def := catalog.GetEffect(effectID)
	if def == nil {
		log.Printf("Unknown effect id %q, skipping", effectID)
		return nil
	}

	result := &Result{Def: def}

	switch def.Category {
	case rulebook.CategoryDamage:
		if def.TickAmount > 0 {
			// Damage-over-time deals no immediate damage; the turn
			// processor ticks it
			return result
		}
		stat := def.Stat
		if stat == "" {
			stat = fallbackStat
		}
		mod := rules.EffectiveModifier(caster.BaseStats, caster.LiveStats, stat)
		damage := def.BaseAmount + mod
		// A hit never deals less than 1
		if damage < 1 {
			damage = 1
		}
		result.Damage = damage

	case rulebook.CategoryHeal:
		if def.TickAmount > 0 {
			return result
		}
		// Clamping to max HP is the applicator's job
		result.Heal = def.BaseAmount

	case rulebook.CategoryStatModifier:
		result.StatDelta = def.Modifier

	case rulebook.CategoryControl:
		result.Control = true
		result.ControlType = def.ControlType

	case rulebook.CategoryDefense:
		result.DamageReduction = def.DamageReduction
	}

	return result
}

// NewActiveEffect instantiates a timed effect from its definition for
// application to a target. instanceID must be unique per application.
func NewActiveEffect(def *rulebook.EffectDefinition, instanceID, sourceID string, now time.Time) (character.ActiveEffect, error) {
	turns, _, err := character.ParseDuration(def.Duration)
	if err != nil {
		return character.ActiveEffect{}, err
	}
	return character.ActiveEffect{
		EffectID:   def.ID,
		InstanceID: instanceID,
		Name:       def.Name,
		Duration:   def.Duration,
		TurnsLeft:  turns,
		AppliedAt:  now,
		SourceID:   sourceID,
	}, nil
}
