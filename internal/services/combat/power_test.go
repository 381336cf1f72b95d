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

func TestUsePowerValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
	caster.CommonPowers = []string{"power_test_strike"}
	env.create(t, caster)
	ctx := context.Background()

	t.Run("nil input", func(t *testing.T) {
		_, err := env.svc.UsePower(ctx, nil)
		assert.Equal(t, rpgerr.CodeInvalidArgument, rpgerr.GetCode(err))
	})

	t.Run("unknown ability name", func(t *testing.T) {
		_, err := env.svc.UsePower(ctx, &combat.UsePowerInput{CasterID: "caster", AbilityName: "Nonexistent"})
		assert.True(t, rpgerr.IsNotFound(err))
	})

	t.Run("ability id or name required", func(t *testing.T) {
		_, err := env.svc.UsePower(ctx, &combat.UsePowerInput{CasterID: "caster"})
		assert.Equal(t, rpgerr.CodeInvalidArgument, rpgerr.GetCode(err))
	})

	t.Run("caster must own the ability", func(t *testing.T) {
		_, err := env.svc.UsePower(ctx, &combat.UsePowerInput{CasterID: "caster", AbilityID: "power_test_mend"})
		assert.Equal(t, rpgerr.CodePrecondition, rpgerr.GetCode(err))
	})

	t.Run("ability without activation effects", func(t *testing.T) {
		env2 := newTestEnv(t, nil)
		plated := testutils.CreateTestCharacter("plated", "o9", "Hull")
		plated.Cybernetics = []string{"perk_test_plating"}
		env2.create(t, plated)

		_, err := env2.svc.UsePower(ctx, &combat.UsePowerInput{CasterID: "plated", AbilityID: "perk_test_plating"})
		assert.Equal(t, rpgerr.CodeInvalidArgument, rpgerr.GetCode(err))
	})

	t.Run("ability resolves by display name", func(t *testing.T) {
		env.roller.Reset()
		result, err := env.svc.UsePower(ctx, &combat.UsePowerInput{CasterID: "caster", AbilityName: "test strike"})
		require.NoError(t, err)
		assert.Equal(t, "Test Strike", result.AbilityName)
	})
}

func TestUsePowerSelfBuff(t *testing.T) {
	ctx := context.Background()

	t.Run("buff lands on the caster at full duration", func(t *testing.T) {
		env := newTestEnv(t, nil)
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.CommonPowers = []string{"power_test_strike"}
		env.create(t, caster)

		result, err := env.svc.UsePower(ctx, &combat.UsePowerInput{CasterID: "caster", AbilityID: "power_test_strike"})
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Nil(t, result.Check, "a pure buff has no gate")
		require.Len(t, result.Targets, 1)
		assert.Equal(t, []string{"Test Might"}, result.Targets[0].EffectsApplied)

		stored := env.get(t, "caster")
		require.Len(t, stored.ActiveEffects, 1)
		assert.Equal(t, 3, stored.ActiveEffects[0].TurnsLeft, "new buff keeps its full duration through the caster's own turn advance")
		assert.Equal(t, 1, stored.LiveStats.StatDelta(character.StatPhysical))
	})

	t.Run("pre-existing effects decrement before the new buff lands", func(t *testing.T) {
		env := newTestEnv(t, nil)
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.CommonPowers = []string{"power_test_strike"}
		caster.ActiveEffects = []character.ActiveEffect{
			{EffectID: "buff_physical_test", InstanceID: "old", Name: "Test Might", Duration: character.TurnsDuration(3), TurnsLeft: 2},
		}
		env.create(t, caster)

		_, err := env.svc.UsePower(ctx, &combat.UsePowerInput{CasterID: "caster", AbilityID: "power_test_strike"})
		require.NoError(t, err)

		stored := env.get(t, "caster")
		require.Len(t, stored.ActiveEffects, 2)

		byInstance := map[string]int{}
		for _, eff := range stored.ActiveEffects {
			byInstance[eff.InstanceID] = eff.TurnsLeft
		}
		assert.Equal(t, 1, byInstance["old"])
		assert.Equal(t, 3, byInstance["inst-1"])
		assert.Equal(t, 2, stored.LiveStats.StatDelta(character.StatPhysical), "both instances stack")
	})
}

func TestPowerAttack(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *testEnv {
		env := newTestEnv(t, nil)
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.CommonPowers = []string{"power_test_strike"}
		env.create(t, caster)
		env.create(t, testutils.CreateTestCharacter("target", "o2", "Rook"))
		return env
	}

	t.Run("hit applies modifier-scaled damage", func(t *testing.T) {
		env := setup(t)
		// gate: physical +2 vs TN 10 + target dexterity tier 0
		env.roller.SetNextRoll(10)

		result, err := env.svc.PowerAttack(ctx, &combat.PowerAttackInput{
			CasterID:  "caster",
			AbilityID: "power_test_strike",
			TargetID:  "target",
		})
		require.NoError(t, err)

		assert.True(t, result.Success)
		require.NotNil(t, result.Check)
		assert.Equal(t, 10, result.Check.TargetNumber)
		require.Len(t, result.Targets, 1)
		assert.Equal(t, 5, result.Targets[0].Damage) // base 3 + physical +2
		assert.Equal(t, 15, env.get(t, "target").CurrentHP)
	})

	t.Run("failed gate applies nothing but consumes the turn", func(t *testing.T) {
		env := setup(t)
		caster := env.get(t, "caster")
		caster.ActiveEffects = []character.ActiveEffect{
			{EffectID: "shield_test", InstanceID: "s", Name: "Test Shield", Duration: character.TurnsDuration(2), TurnsLeft: 2},
		}
		require.NoError(t, env.repo.Update(ctx, caster))

		env.roller.SetNextRoll(2) // 2+2=4 vs TN 10; the shield has no stat effect

		result, err := env.svc.PowerAttack(ctx, &combat.PowerAttackInput{
			CasterID:  "caster",
			AbilityID: "power_test_strike",
			TargetID:  "target",
		})
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.Empty(t, result.Targets)
		assert.Equal(t, 20, env.get(t, "target").CurrentHP)

		stored := env.get(t, "caster")
		require.Len(t, stored.ActiveEffects, 1)
		assert.Equal(t, 1, stored.ActiveEffects[0].TurnsLeft, "the failed attempt still consumed a turn")
	})

	t.Run("cannot aim an offensive power at yourself", func(t *testing.T) {
		env := setup(t)

		_, err := env.svc.PowerAttack(ctx, &combat.PowerAttackInput{
			CasterID:  "caster",
			AbilityID: "power_test_strike",
			TargetID:  "caster",
		})
		assert.Equal(t, rpgerr.CodePrecondition, rpgerr.GetCode(err))
	})

	t.Run("ability without attack effects", func(t *testing.T) {
		env := newTestEnv(t, nil)
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.MagicWeaves = []string{"power_test_mend"}
		env.create(t, caster)

		_, err := env.svc.PowerAttack(ctx, &combat.PowerAttackInput{CasterID: "caster", AbilityID: "power_test_mend"})
		assert.Equal(t, rpgerr.CodeInvalidArgument, rpgerr.GetCode(err))
	})

	t.Run("target defense reduces power damage", func(t *testing.T) {
		env := newTestEnv(t, nil)
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.CommonPowers = []string{"power_test_strike"}
		env.create(t, caster)
		target := testutils.CreateTestCharacter("target", "o2", "Rook")
		target.Cybernetics = []string{"perk_test_plating"}
		env.create(t, target)

		env.roller.SetNextRoll(15)

		result, err := env.svc.PowerAttack(ctx, &combat.PowerAttackInput{
			CasterID:  "caster",
			AbilityID: "power_test_strike",
			TargetID:  "target",
		})
		require.NoError(t, err)

		assert.Equal(t, 5, result.Targets[0].Damage)
		assert.Equal(t, 2, result.Targets[0].DamageReduction)
		assert.Equal(t, 17, env.get(t, "target").CurrentHP)
	})
}

func TestOpposedGateRequiresTarget(t *testing.T) {
	env := newTestEnv(t, nil)
	caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
	caster.ArchetypePowers = []string{"power_test_hex"}
	env.create(t, caster)

	_, err := env.svc.UsePower(context.Background(), &combat.UsePowerInput{
		CasterID:  "caster",
		AbilityID: "power_test_hex",
	})
	assert.Equal(t, rpgerr.CodeValidation, rpgerr.GetCode(err))

	stored := env.get(t, "caster")
	assert.Empty(t, stored.ActiveEffects, "a rejected action mutates nothing")
}

func TestPowerTimedEffects(t *testing.T) {
	ctx := context.Background()

	t.Run("damage over time lands as an effect, not immediate damage", func(t *testing.T) {
		env := newTestEnv(t, nil)
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.ArchetypePowers = []string{"power_test_hex"}
		env.create(t, caster)
		env.create(t, testutils.CreateTestCharacter("target", "o2", "Rook"))

		env.roller.SetNextRoll(15)

		result, err := env.svc.PowerAttack(ctx, &combat.PowerAttackInput{
			CasterID:  "caster",
			AbilityID: "power_test_hex",
			TargetID:  "target",
		})
		require.NoError(t, err)

		require.Len(t, result.Targets, 1)
		assert.Zero(t, result.Targets[0].Damage)
		assert.Equal(t, []string{"Test Venom"}, result.Targets[0].EffectsApplied)

		stored := env.get(t, "target")
		assert.Equal(t, 20, stored.CurrentHP)
		require.Len(t, stored.ActiveEffects, 1)
		assert.Equal(t, "dot_test", stored.ActiveEffects[0].EffectID)
		assert.Equal(t, 2, stored.ActiveEffects[0].TurnsLeft)
		assert.Equal(t, "caster", stored.ActiveEffects[0].SourceID)
	})

	t.Run("control lands as a timed effect", func(t *testing.T) {
		env := newTestEnv(t, nil)
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.ArchetypePowers = []string{"power_test_hex"}
		env.create(t, caster)
		env.create(t, testutils.CreateTestCharacter("target", "o2", "Rook"))

		env.roller.SetNextRoll(15)

		result, err := env.svc.UsePower(ctx, &combat.UsePowerInput{
			CasterID:  "caster",
			AbilityID: "power_test_hex",
			TargetID:  "target",
		})
		require.NoError(t, err)

		assert.True(t, result.Success)
		stored := env.get(t, "target")
		require.Len(t, stored.ActiveEffects, 1)
		assert.Equal(t, "control_stun_test", stored.ActiveEffects[0].EffectID)
	})
}

func TestPowerHeal(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, targetHP int) *testEnv {
		env := newTestEnv(t, nil)
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.MagicWeaves = []string{"power_test_mend"}
		env.create(t, caster)
		target := testutils.CreateTestCharacter("target", "o2", "Rook")
		target.CurrentHP = targetHP
		env.create(t, target)
		return env
	}

	t.Run("heal restores the flat amount", func(t *testing.T) {
		env := setup(t, 15)

		result, err := env.svc.UsePower(ctx, &combat.UsePowerInput{
			CasterID:  "caster",
			AbilityID: "power_test_mend",
			TargetID:  "target",
		})
		require.NoError(t, err)

		require.Len(t, result.Targets, 1)
		assert.Equal(t, 4, result.Targets[0].Heal)
		assert.Equal(t, 19, env.get(t, "target").CurrentHP)
	})

	t.Run("heal clamps at max HP", func(t *testing.T) {
		env := setup(t, 19)

		_, err := env.svc.UsePower(ctx, &combat.UsePowerInput{
			CasterID:  "caster",
			AbilityID: "power_test_mend",
			TargetID:  "target",
		})
		require.NoError(t, err)

		assert.Equal(t, 20, env.get(t, "target").CurrentHP)
	})
}

// areaCatalog adds wave abilities for fan-out coverage
func areaCatalog() rulebook.Catalog {
	return rulebook.NewStaticCatalog([]rulebook.EffectDefinition{
		{
			ID:         "damage_wave",
			Name:       "Wave Burst",
			Category:   rulebook.CategoryDamage,
			Target:     rulebook.TargetAllEnemies,
			Stat:       character.StatPhysical,
			BaseAmount: 2,
			DamageType: "kinetic",
		},
		{
			ID:         "heal_wave",
			Name:       "Mending Wave",
			Category:   rulebook.CategoryHeal,
			Target:     rulebook.TargetAllAllies,
			BaseAmount: 2,
		},
	}, []rulebook.Ability{
		{
			ID:             "power_wave",
			Name:           "Wave",
			Source:         rulebook.SourceCommonPower,
			BaseStat:       character.StatPhysical,
			TargetType:     rulebook.TargetAllEnemies,
			AbilityEffects: []string{"damage_wave"},
		},
		{
			ID:             "power_mend_wave",
			Name:           "Mend Wave",
			Source:         rulebook.SourceMagicWeave,
			BaseStat:       character.StatMental,
			TargetType:     rulebook.TargetAllAllies,
			AbilityEffects: []string{"heal_wave"},
		},
	})
}

func TestPowerAreaFanOut(t *testing.T) {
	ctx := context.Background()

	t.Run("all_enemies hits every eligible bystander and never the caster", func(t *testing.T) {
		env := newTestEnv(t, areaCatalog())
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.CommonPowers = []string{"power_wave"}
		env.create(t, caster)
		env.create(t, testutils.CreateTestCharacter("near-1", "o2", "Rook"))
		env.create(t, testutils.CreateTestCharacter("near-2", "o3", "Siv"))
		downed := testutils.CreateTestCharacter("downed", "o4", "Dax")
		downed.CurrentHP = 0
		env.create(t, downed)
		away := testutils.CreateTestCharacter("away", "o5", "Nyx")
		away.InRoleplay = false
		env.create(t, away)

		result, err := env.svc.UsePower(ctx, &combat.UsePowerInput{
			CasterID:  "caster",
			AbilityID: "power_wave",
			NearbyIDs: []string{"near-1", "near-2", "near-2", "downed", "away", "caster", "ghost"},
		})
		require.NoError(t, err)

		// physical +2, so 2+2=4 damage per bystander
		require.Len(t, result.Targets, 2)
		for _, target := range result.Targets {
			assert.Equal(t, 4, target.Damage)
		}

		assert.Equal(t, 16, env.get(t, "near-1").CurrentHP)
		assert.Equal(t, 16, env.get(t, "near-2").CurrentHP)
		assert.Equal(t, 20, env.get(t, "caster").CurrentHP)
		assert.Equal(t, 0, env.get(t, "downed").CurrentHP)
		assert.Equal(t, 20, env.get(t, "away").CurrentHP)
	})

	t.Run("all_allies includes the caster", func(t *testing.T) {
		env := newTestEnv(t, areaCatalog())
		caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
		caster.MagicWeaves = []string{"power_mend_wave"}
		caster.CurrentHP = 10
		env.create(t, caster)
		ally := testutils.CreateTestCharacter("ally", "o2", "Rook")
		ally.CurrentHP = 10
		env.create(t, ally)

		result, err := env.svc.UsePower(ctx, &combat.UsePowerInput{
			CasterID:  "caster",
			AbilityID: "power_mend_wave",
			NearbyIDs: []string{"ally"},
		})
		require.NoError(t, err)

		require.Len(t, result.Targets, 2)
		assert.Equal(t, 12, env.get(t, "caster").CurrentHP)
		assert.Equal(t, 12, env.get(t, "ally").CurrentHP)
	})
}

func TestPowerUnknownEffectSkipped(t *testing.T) {
	catalog := rulebook.NewStaticCatalog([]rulebook.EffectDefinition{
		{
			ID:           "buff_local",
			Name:         "Local Buff",
			Category:     rulebook.CategoryStatModifier,
			Target:       rulebook.TargetSelf,
			Stat:         character.StatPhysical,
			Modifier:     1,
			ModifierType: rulebook.ModifierStatValue,
			Duration:     character.TurnsDuration(2),
		},
	}, []rulebook.Ability{
		{
			ID:             "power_stale",
			Name:           "Stale Power",
			Source:         rulebook.SourceCommonPower,
			BaseStat:       character.StatPhysical,
			TargetType:     rulebook.TargetSelf,
			AbilityEffects: []string{"removed_from_catalog", "buff_local"},
		},
	})

	env := newTestEnv(t, catalog)
	caster := testutils.CreateTestCharacter("caster", "o1", "Vex")
	caster.CommonPowers = []string{"power_stale"}
	env.create(t, caster)

	result, err := env.svc.UsePower(context.Background(), &combat.UsePowerInput{
		CasterID:  "caster",
		AbilityID: "power_stale",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	stored := env.get(t, "caster")
	require.Len(t, stored.ActiveEffects, 1)
	assert.Equal(t, "buff_local", stored.ActiveEffects[0].EffectID)
}
