package combat

import (
	"context"
	"fmt"

	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/effects"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
	"github.com/emberveil/rp-combat/internal/rules"
)

// attackBaseDamage is the flat part of a basic strike's damage before the
// attacker's Physical modifier is added
const attackBaseDamage = 1

// Attack resolves a basic strike: the attacker's Physical modifier against
// 10 plus the defender's Dexterity modifier. On a hit the target takes
// max(1, 1 + Physical modifier) damage less any damage reduction. The
// attacker's turn clock advances whether or not the strike lands.
func (s *service) Attack(ctx context.Context, input *AttackInput) (*ActionResult, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input cannot be nil")
	}
	if input.TargetID == "" {
		return nil, rpgerr.InvalidArgument("target ID is required")
	}
	if input.CasterID == input.TargetID {
		return nil, rpgerr.Precondition("cannot attack yourself")
	}

	caster, err := s.loadActor(ctx, input.CasterID)
	if err != nil {
		return nil, err
	}
	target, err := s.loadTarget(ctx, input.TargetID)
	if err != nil {
		return nil, err
	}

	// Overlays are recomputed on read, never trusted from storage
	caster.LiveStats = effects.RecalculateFor(caster, s.catalog)
	targetLive := effects.RecalculateFor(target, s.catalog)

	atkMod, atkDetail := rules.EffectiveModifierDetailed(caster.BaseStats, caster.LiveStats, character.StatPhysical)
	tn := s.opposedTN(target, targetLive, character.StatDexterity)

	check, err := rules.ResolveCheck(s.diceRoller, atkMod, tn)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to resolve attack check")
	}

	result := &ActionResult{
		Success:        check.Success,
		CasterID:       caster.ID,
		CasterName:     caster.Name,
		ModifierUsed:   atkMod,
		ModifierDetail: atkDetail,
		Check:          check,
	}

	if !check.Success {
		// A miss is a normal terminal outcome: the caster's turn still
		// advances and that advancement persists
		report, err := s.advanceAndPersist(ctx, caster)
		if err != nil {
			return nil, err
		}
		result.TurnSummary = report.Summary()
		result.Narrative = fmt.Sprintf("%s attacks %s. %s %s", caster.Name, target.Name, check.Detail, result.TurnSummary)
		return result, nil
	}

	damage := attackBaseDamage + atkMod
	if damage < 1 {
		damage = 1
	}

	reduction := effects.DamageReduction(effects.CombinedEffects(target, s.catalog), s.catalog)
	hpBefore := target.CurrentHP
	target.CurrentHP = effects.ApplyHealth(target.CurrentHP, target.MaxHP, damage, 0, reduction)

	if err := s.repo.UpdateCombatState(ctx, target.ID, target.CurrentHP, target.ActiveEffects, targetLive); err != nil {
		return nil, rpgerr.Wrap(err, "failed to persist target state")
	}

	report, err := s.advanceAndPersist(ctx, caster)
	if err != nil {
		return nil, err
	}

	outcome := TargetOutcome{
		TargetID:        target.ID,
		TargetName:      target.Name,
		Damage:          damage,
		DamageReduction: reduction,
		HPBefore:        hpBefore,
		HPAfter:         target.CurrentHP,
		Detail:          hpLine(target.Name, hpBefore, target.CurrentHP),
	}
	result.Targets = []TargetOutcome{outcome}
	result.TurnSummary = report.Summary()
	result.Narrative = fmt.Sprintf("%s attacks %s. %s %s takes %d damage (%s). %s",
		caster.Name, target.Name, check.Detail, target.Name, damage, outcome.Detail, result.TurnSummary)
	return result, nil
}
