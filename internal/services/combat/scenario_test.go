package combat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
	"github.com/emberveil/rp-combat/internal/services/combat"
	"github.com/emberveil/rp-combat/internal/testutils"
)

// Full resolutions through the public service surface, fixed numbers end to
// end.

func TestScenarioBruiserVsSlowTarget(t *testing.T) {
	env := newTestEnv(t, nil)
	caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
	caster.BaseStats[character.StatPhysical] = 5 // +6
	env.create(t, caster)
	target := testutils.CreateTestCharacter("target", "o2", "Rook")
	target.BaseStats[character.StatDexterity] = 1 // -2, TN 8
	env.create(t, target)

	env.roller.SetNextRoll(3) // 3+6=9 vs 8

	result, err := env.svc.Attack(context.Background(), &combat.AttackInput{
		CasterID: "caster",
		TargetID: "target",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 8, result.Check.TargetNumber)
	assert.Equal(t, 9, result.Check.Total)
	require.Len(t, result.Targets, 1)
	assert.Equal(t, 7, result.Targets[0].Damage) // 1 + 6
	assert.Equal(t, 13, env.get(t, "target").CurrentHP)
}

func TestScenarioFixedTNArea(t *testing.T) {
	// An area power with no primary target gates on a fixed TN; neither
	// bystander's stats influence the check.
	catalog := rulebook.NewStaticCatalog([]rulebook.EffectDefinition{
		{
			ID:           "check_fixed_10",
			Name:         "Focus",
			Category:     rulebook.CategoryUtility,
			Target:       rulebook.TargetSelf,
			TargetNumber: 10,
		},
		{
			ID:         "damage_pulse",
			Name:       "Pulse",
			Category:   rulebook.CategoryDamage,
			Target:     rulebook.TargetAllEnemies,
			Stat:       character.StatMental,
			BaseAmount: 1,
			DamageType: "psychic",
		},
	}, []rulebook.Ability{
		{
			ID:            "power_pulse",
			Name:          "Pulse",
			Source:        rulebook.SourceArchetypePower,
			BaseStat:      character.StatMental,
			TargetType:    rulebook.TargetAllEnemies,
			AttackEffects: []string{"check_fixed_10", "damage_pulse"},
		},
	})

	env := newTestEnv(t, catalog)
	caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
	caster.BaseStats[character.StatMental] = 5 // +6
	caster.ArchetypePowers = []string{"power_pulse"}
	env.create(t, caster)
	nearA := testutils.CreateTestCharacter("near-a", "o2", "Rook")
	nearA.BaseStats[character.StatDexterity] = 5 // irrelevant to a fixed TN
	env.create(t, nearA)
	env.create(t, testutils.CreateTestCharacter("near-b", "o3", "Siv"))

	env.roller.SetNextRoll(4) // 4+6=10 vs fixed 10

	result, err := env.svc.PowerAttack(context.Background(), &combat.PowerAttackInput{
		CasterID:  "caster",
		AbilityID: "power_pulse",
		NearbyIDs: []string{"near-a", "near-b"},
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 10, result.Check.TargetNumber, "fixed TN, no defender influence")
	require.Len(t, result.Targets, 2)
	for _, target := range result.Targets {
		assert.Equal(t, 7, target.Damage) // 1 + 6, computed per target
	}
	assert.Equal(t, 13, env.get(t, "near-a").CurrentHP)
	assert.Equal(t, 13, env.get(t, "near-b").CurrentHP)
}

func TestScenarioBuffLifecycle(t *testing.T) {
	// A +1 Physical stat_value buff on base Physical 2 raises the tier from 0
	// to +2 for as long as it lasts, then reverts.
	env := newTestEnv(t, nil)
	caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
	caster.BaseStats[character.StatPhysical] = 2
	caster.CommonPowers = []string{"power_test_strike"}
	env.create(t, caster)

	_, err := env.svc.UsePower(context.Background(), &combat.UsePowerInput{
		CasterID:  "caster",
		AbilityID: "power_test_strike",
	})
	require.NoError(t, err)

	stored := env.get(t, "caster")
	require.Len(t, stored.ActiveEffects, 1)
	assert.Equal(t, 3, stored.ActiveEffects[0].TurnsLeft)
	assert.Equal(t, 1, stored.LiveStats.StatDelta(character.StatPhysical))

	// Each check is an action; three of them burn the buff down
	for i := 0; i < 3; i++ {
		env.roller.SetNextRoll(10)
		result, checkErr := env.svc.StatCheck(context.Background(), &combat.StatCheckInput{
			CasterID: "caster",
			Stat:     "physical",
		})
		require.NoError(t, checkErr)
		assert.Equal(t, 2, result.Check.Modifier, "buffed 2+1=3 tiers to +2")
	}

	stored = env.get(t, "caster")
	assert.Empty(t, stored.ActiveEffects)
	assert.Zero(t, stored.LiveStats.StatDelta(character.StatPhysical))

	env.roller.SetNextRoll(10)
	result, err := env.svc.StatCheck(context.Background(), &combat.StatCheckInput{
		CasterID: "caster",
		Stat:     "physical",
	})
	require.NoError(t, err)
	assert.Zero(t, result.Check.Modifier, "base 2 tiers back to 0")
}

func TestRemoveEffect(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the instance and rebuilds the overlay", func(t *testing.T) {
		env := newTestEnv(t, nil)
		char := testutils.CreateTestCharacter("char-1", "o1", "Vex")
		char.ActiveEffects = []character.ActiveEffect{
			{EffectID: "buff_dex_roll_test", InstanceID: "a", Name: "Test Reflexes", Duration: character.DurationScene, TurnsLeft: character.SceneTurnsSentinel},
		}
		char.LiveStats = character.LiveStats{"dexterity_rollbonus": 2}
		env.create(t, char)

		result, err := env.svc.RemoveEffect(ctx, &combat.RemoveEffectInput{
			CharacterID: "char-1",
			InstanceID:  "a",
		})
		require.NoError(t, err)

		assert.Equal(t, "Test Reflexes", result.EffectName)
		stored := env.get(t, "char-1")
		assert.Empty(t, stored.ActiveEffects)
		assert.Zero(t, stored.LiveStats.RollBonus(character.StatDexterity))
	})

	t.Run("works on unconscious characters", func(t *testing.T) {
		env := newTestEnv(t, nil)
		char := testutils.CreateTestCharacter("char-1", "o1", "Vex")
		char.CurrentHP = 0
		char.ActiveEffects = []character.ActiveEffect{
			{EffectID: "dot_test", InstanceID: "a", Name: "Test Venom", Duration: character.TurnsDuration(2), TurnsLeft: 2},
		}
		env.create(t, char)

		_, err := env.svc.RemoveEffect(ctx, &combat.RemoveEffectInput{
			CharacterID: "char-1",
			InstanceID:  "a",
		})
		require.NoError(t, err)
		assert.Empty(t, env.get(t, "char-1").ActiveEffects)
	})

	t.Run("unknown instance is not found", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.create(t, testutils.CreateTestCharacter("char-1", "o1", "Vex"))

		_, err := env.svc.RemoveEffect(ctx, &combat.RemoveEffectInput{
			CharacterID: "char-1",
			InstanceID:  "ghost",
		})
		assert.True(t, rpgerr.IsNotFound(err))
	})

	t.Run("validation", func(t *testing.T) {
		env := newTestEnv(t, nil)
		_, err := env.svc.RemoveEffect(ctx, nil)
		assert.Equal(t, rpgerr.CodeInvalidArgument, rpgerr.GetCode(err))

		_, err = env.svc.RemoveEffect(ctx, &combat.RemoveEffectInput{CharacterID: "char-1"})
		assert.Equal(t, rpgerr.CodeInvalidArgument, rpgerr.GetCode(err))
	})
}
