package rulebook

import (
	"strings"

	"github.com/emberveil/rp-combat/internal/domain/character"
)

// EffectCategory classifies what an effect does when executed.
type EffectCategory string

const (
	CategoryDamage       EffectCategory = "damage"
	CategoryHeal         EffectCategory = "heal"
	CategoryStatModifier EffectCategory = "stat_modifier"
	CategoryControl      EffectCategory = "control"
	CategoryDefense      EffectCategory = "defense"
	CategoryUtility      EffectCategory = "utility"
)

// TargetScope declares who an effect reaches when applied.
type TargetScope string

const (
	TargetSelf       TargetScope = "self"
	TargetSingle     TargetScope = "single"
	TargetEnemy      TargetScope = "enemy"
	TargetAlly       TargetScope = "ally"
	TargetArea       TargetScope = "area"
	TargetAllAllies  TargetScope = "all_allies"
	TargetAllEnemies TargetScope = "all_enemies"
)

// ModifierType distinguishes the two stat-delta pools. They must never be
// conflated: stat_value shifts the base stat before tiering, roll_bonus is
// added linearly after tiering.
type ModifierType string

const (
	ModifierStatValue ModifierType = "stat_value"
	ModifierRollBonus ModifierType = "roll_bonus"
)

// CheckIDPrefix marks effect ids that are resolved as checks instead of
// being applied. A check gates whether the rest of the effect list runs.
const CheckIDPrefix = "check_"

// EffectDefinition is the static, read-only description of one effect.
type EffectDefinition struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category EffectCategory `json:"category"`
	Target   TargetScope    `json:"target"`

	// Stat names the stat the effect keys off: the affected stat for
	// stat_modifier, the caster's attack stat for damage
	Stat character.Stat `json:"stat,omitempty"`

	// Modifier and ModifierType describe a stat_modifier delta
	Modifier     int          `json:"modifier,omitempty"`
	ModifierType ModifierType `json:"modifier_type,omitempty"`

	// Duration is "turns:<N>" or "scene"; empty for instantaneous effects
	Duration string `json:"duration,omitempty"`

	// BaseAmount is the flat part of a damage or heal amount
	BaseAmount int `json:"base_amount,omitempty"`

	// TickAmount makes a timed damage/heal effect tick each turn-advance
	TickAmount int `json:"tick_amount,omitempty"`

	DamageType      string `json:"damage_type,omitempty"`
	DamageReduction int    `json:"damage_reduction,omitempty"`
	ControlType     string `json:"control_type,omitempty"`

	// CheckStat names the defender stat for an opposed check effect
	CheckStat character.Stat `json:"check_stat,omitempty"`
	// TargetNumber is the fixed TN for a check effect with no defender
	TargetNumber int `json:"target_number,omitempty"`
}

// IsCheck reports whether the effect is a check gate rather than an
// applicable effect
func (d *EffectDefinition) IsCheck() bool {
	return strings.HasPrefix(d.ID, CheckIDPrefix)
}

// IsOpposedCheck reports whether the check is rolled against a defender stat
// (as opposed to a fixed target number). Opposed checks require a primary
// target.
func (d *EffectDefinition) IsOpposedCheck() bool {
	return d.IsCheck() && d.CheckStat != ""
}

// IsTimed reports whether the effect persists as an ActiveEffect
func (d *EffectDefinition) IsTimed() bool {
	return d.Duration != ""
}

// AbilitySource discriminates the five ability categories a character can
// own. A single lookup returns the ability with its source kind; callers
// never search five parallel lists.
type AbilitySource string

const (
	SourceCommonPower    AbilitySource = "common_power"
	SourceArchetypePower AbilitySource = "archetype_power"
	SourcePerk           AbilitySource = "perk"
	SourceCybernetic     AbilitySource = "cybernetic"
	SourceMagicWeave     AbilitySource = "magic_weave"
)

// Ability is a power/perk/cybernetic/weave a character can own and activate.
type Ability struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Source AbilitySource `json:"source"`

	// BaseStat is the caster stat the ability's checks and damage key off
	BaseStat character.Stat `json:"base_stat"`

	// TargetType is the declared scope for the ability's effects
	TargetType TargetScope `json:"target_type"`

	// AttackEffects run on an offensive activation, AbilityEffects on a
	// plain activation. Either list may start with check_ gates.
	AttackEffects  []string `json:"attack_effects,omitempty"`
	AbilityEffects []string `json:"ability_effects,omitempty"`

	// PassiveEffects are always-on while the ability is owned; the
	// recalculator folds them in as synthetic scene effects
	PassiveEffects []string `json:"passive_effects,omitempty"`
}
