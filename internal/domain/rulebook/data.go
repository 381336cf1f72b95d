package rulebook

import (
	"github.com/emberveil/rp-combat/internal/domain/character"
)

// Built-in definition set so the bot runs without an external data store.
// Deployments with their own catalog construct a StaticCatalog from their
// data instead.

var defaultEffects = []EffectDefinition{
	// Check gates
	{
		ID:        "check_enemy_dexterity",
		Name:      "Opposed Dexterity Check",
		Category:  CategoryUtility,
		Target:    TargetEnemy,
		CheckStat: character.StatDexterity,
	},
	{
		ID:        "check_enemy_mental",
		Name:      "Opposed Mental Check",
		Category:  CategoryUtility,
		Target:    TargetEnemy,
		CheckStat: character.StatMental,
	},
	{
		ID:           "check_fixed_10",
		Name:         "Fixed Check (TN 10)",
		Category:     CategoryUtility,
		Target:       TargetArea,
		TargetNumber: 10,
	},

	// Damage
	{
		ID:         "damage_blade",
		Name:       "Blade Strike",
		Category:   CategoryDamage,
		Target:     TargetEnemy,
		Stat:       character.StatPhysical,
		BaseAmount: 1,
		DamageType: "slashing",
	},
	{
		ID:         "damage_firebolt",
		Name:       "Firebolt",
		Category:   CategoryDamage,
		Target:     TargetEnemy,
		Stat:       character.StatMental,
		BaseAmount: 2,
		DamageType: "fire",
	},
	{
		ID:         "damage_shockwave",
		Name:       "Shockwave",
		Category:   CategoryDamage,
		Target:     TargetArea,
		Stat:       character.StatMental,
		BaseAmount: 1,
		DamageType: "force",
	},
	{
		ID:         "poison_venom",
		Name:       "Venom",
		Category:   CategoryDamage,
		Target:     TargetEnemy,
		Duration:   "turns:3",
		TickAmount: 1,
		DamageType: "poison",
	},

	// Healing
	{
		ID:         "heal_minor",
		Name:       "Minor Mend",
		Category:   CategoryHeal,
		Target:     TargetAlly,
		BaseAmount: 5,
	},
	{
		ID:         "heal_regen",
		Name:       "Regeneration",
		Category:   CategoryHeal,
		Target:     TargetSelf,
		Duration:   "turns:3",
		TickAmount: 2,
	},

	// Stat modifiers
	{
		ID:           "buff_physical_stat_1",
		Name:         "Adrenal Surge",
		Category:     CategoryStatModifier,
		Target:       TargetSelf,
		Stat:         character.StatPhysical,
		Modifier:     1,
		ModifierType: ModifierStatValue,
		Duration:     "turns:3",
	},
	{
		ID:           "buff_dexterity_roll_2",
		Name:         "Reflex Boost",
		Category:     CategoryStatModifier,
		Target:       TargetSelf,
		Stat:         character.StatDexterity,
		Modifier:     2,
		ModifierType: ModifierRollBonus,
		Duration:     "turns:3",
	},
	{
		ID:           "debuff_mental_stat_1",
		Name:         "Mind Fog",
		Category:     CategoryStatModifier,
		Target:       TargetEnemy,
		Stat:         character.StatMental,
		Modifier:     -1,
		ModifierType: ModifierStatValue,
		Duration:     "turns:2",
	},

	// Damage reduction
	{
		ID:              "shield_kinetic",
		Name:            "Kinetic Shield",
		Category:        CategoryDefense,
		Target:          TargetSelf,
		DamageReduction: 2,
		Duration:        "turns:3",
	},
	{
		ID:              "passive_subdermal_armor",
		Name:            "Subdermal Armor",
		Category:        CategoryDefense,
		Target:          TargetSelf,
		DamageReduction: 1,
		Duration:        character.DurationScene,
	},

	// Control
	{
		ID:          "control_stun",
		Name:        "Stun",
		Category:    CategoryControl,
		Target:      TargetEnemy,
		ControlType: "stun",
		Duration:    "turns:1",
	},

	// Passive roll bonus (perk)
	{
		ID:           "passive_iron_will",
		Name:         "Iron Will",
		Category:     CategoryStatModifier,
		Target:       TargetSelf,
		Stat:         character.StatMental,
		Modifier:     1,
		ModifierType: ModifierRollBonus,
		Duration:     character.DurationScene,
	},
}

var defaultAbilities = []Ability{
	{
		ID:            "power_strike",
		Name:          "Power Strike",
		Source:        SourceCommonPower,
		BaseStat:      character.StatPhysical,
		TargetType:    TargetEnemy,
		AttackEffects: []string{"check_enemy_dexterity", "damage_blade"},
	},
	{
		ID:            "firebolt",
		Name:          "Firebolt",
		Source:        SourceArchetypePower,
		BaseStat:      character.StatMental,
		TargetType:    TargetEnemy,
		AttackEffects: []string{"check_enemy_dexterity", "damage_firebolt"},
	},
	{
		ID:            "shockwave",
		Name:          "Shockwave",
		Source:        SourceArchetypePower,
		BaseStat:      character.StatMental,
		TargetType:    TargetArea,
		AttackEffects: []string{"check_fixed_10", "damage_shockwave"},
	},
	{
		ID:             "adrenal_surge",
		Name:           "Adrenal Surge",
		Source:         SourceCommonPower,
		BaseStat:       character.StatPhysical,
		TargetType:     TargetSelf,
		AbilityEffects: []string{"buff_physical_stat_1"},
	},
	{
		ID:             "mend_wounds",
		Name:           "Mend Wounds",
		Source:         SourceMagicWeave,
		BaseStat:       character.StatMental,
		TargetType:     TargetAlly,
		AbilityEffects: []string{"heal_minor"},
	},
	{
		ID:            "venom_hex",
		Name:          "Venom Hex",
		Source:        SourceMagicWeave,
		BaseStat:      character.StatMental,
		TargetType:    TargetEnemy,
		AttackEffects: []string{"check_enemy_mental", "poison_venom"},
	},
	{
		ID:             "reflex_booster",
		Name:           "Reflex Booster",
		Source:         SourceCybernetic,
		BaseStat:       character.StatDexterity,
		TargetType:     TargetSelf,
		AbilityEffects: []string{"buff_dexterity_roll_2"},
	},
	{
		ID:             "subdermal_plating",
		Name:           "Subdermal Plating",
		Source:         SourceCybernetic,
		BaseStat:       character.StatPhysical,
		TargetType:     TargetSelf,
		PassiveEffects: []string{"passive_subdermal_armor"},
	},
	{
		ID:             "iron_will",
		Name:           "Iron Will",
		Source:         SourcePerk,
		BaseStat:       character.StatMental,
		TargetType:     TargetSelf,
		PassiveEffects: []string{"passive_iron_will"},
	},
	{
		ID:             "kinetic_shield",
		Name:           "Kinetic Shield",
		Source:         SourceArchetypePower,
		BaseStat:       character.StatMental,
		TargetType:     TargetSelf,
		AbilityEffects: []string{"shield_kinetic"},
	},
}
