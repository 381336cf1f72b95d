package testutils

import (
	"time"

	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
)

// CreateTestCharacter creates a fully formed test character in roleplay mode
func CreateTestCharacter(id, ownerID, name string) *character.Character {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return &character.Character{
		ID:      id,
		OwnerID: ownerID,
		Name:    name,
		BaseStats: character.BaseStats{
			character.StatPhysical:   3,
			character.StatDexterity:  2,
			character.StatMental:     2,
			character.StatPerception: 1,
		},
		MaxHP:         20,
		CurrentHP:     20,
		InRoleplay:    true,
		ActiveEffects: []character.ActiveEffect{},
		LiveStats:     character.LiveStats{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// CreateTestCatalog builds a small static catalog with one effect of each
// category, tuned for deterministic assertions
func CreateTestCatalog() rulebook.Catalog {
	effects := []rulebook.EffectDefinition{
		{
			ID:        "check_enemy_dexterity",
			Name:      "Dexterity Contest",
			Category:  rulebook.CategoryUtility,
			Target:    rulebook.TargetEnemy,
			CheckStat: character.StatDexterity,
		},
		{
			ID:           "check_fixed_12",
			Name:         "Focus Check",
			Category:     rulebook.CategoryUtility,
			Target:       rulebook.TargetSelf,
			TargetNumber: 12,
		},
		{
			ID:         "damage_test",
			Name:       "Test Strike",
			Category:   rulebook.CategoryDamage,
			Target:     rulebook.TargetEnemy,
			Stat:       character.StatPhysical,
			BaseAmount: 3,
			DamageType: "kinetic",
		},
		{
			ID:         "heal_test",
			Name:       "Test Mend",
			Category:   rulebook.CategoryHeal,
			Target:     rulebook.TargetAlly,
			BaseAmount: 4,
		},
		{
			ID:           "buff_physical_test",
			Name:         "Test Might",
			Category:     rulebook.CategoryStatModifier,
			Target:       rulebook.TargetSelf,
			Stat:         character.StatPhysical,
			Modifier:     1,
			ModifierType: rulebook.ModifierStatValue,
			Duration:     character.TurnsDuration(3),
		},
		{
			ID:           "buff_dex_roll_test",
			Name:         "Test Reflexes",
			Category:     rulebook.CategoryStatModifier,
			Target:       rulebook.TargetSelf,
			Stat:         character.StatDexterity,
			Modifier:     2,
			ModifierType: rulebook.ModifierRollBonus,
			Duration:     "scene",
		},
		{
			ID:              "shield_test",
			Name:            "Test Shield",
			Category:        rulebook.CategoryDefense,
			Target:          rulebook.TargetSelf,
			DamageReduction: 2,
			Duration:        character.TurnsDuration(2),
		},
		{
			ID:         "dot_test",
			Name:       "Test Venom",
			Category:   rulebook.CategoryDamage,
			Target:     rulebook.TargetEnemy,
			TickAmount: 2,
			DamageType: "toxin",
			Duration:   character.TurnsDuration(2),
		},
		{
			ID:          "control_stun_test",
			Name:        "Test Stun",
			Category:    rulebook.CategoryControl,
			Target:      rulebook.TargetEnemy,
			ControlType: "stun",
			Duration:    character.TurnsDuration(1),
		},
	}

	abilities := []rulebook.Ability{
		{
			ID:             "power_test_strike",
			Name:           "Test Strike",
			Source:         rulebook.SourceCommonPower,
			BaseStat:       character.StatPhysical,
			TargetType:     rulebook.TargetEnemy,
			AttackEffects:  []string{"check_enemy_dexterity", "damage_test"},
			AbilityEffects: []string{"buff_physical_test"},
		},
		{
			ID:             "power_test_mend",
			Name:           "Test Mend",
			Source:         rulebook.SourceMagicWeave,
			BaseStat:       character.StatMental,
			TargetType:     rulebook.TargetAlly,
			AbilityEffects: []string{"heal_test"},
		},
		{
			ID:             "power_test_hex",
			Name:           "Test Hex",
			Source:         rulebook.SourceArchetypePower,
			BaseStat:       character.StatMental,
			TargetType:     rulebook.TargetEnemy,
			AttackEffects:  []string{"check_enemy_dexterity", "dot_test"},
			AbilityEffects: []string{"check_enemy_dexterity", "control_stun_test"},
		},
		{
			ID:             "perk_test_plating",
			Name:           "Test Plating",
			Source:         rulebook.SourceCybernetic,
			BaseStat:       character.StatPhysical,
			TargetType:     rulebook.TargetSelf,
			PassiveEffects: []string{"shield_test"},
		},
	}

	return rulebook.NewStaticCatalog(effects, abilities)
}
