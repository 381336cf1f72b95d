package combat

import (
	"context"
	"fmt"

	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/effects"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
	"github.com/emberveil/rp-combat/internal/rules"
)

// StatCheck resolves a feat-style check of one of the caster's stats. With
// a target the check is opposed against the target's same stat; otherwise
// it runs against a fixed target number (10 if unset). A check is an action:
// the caster's turn clock advances regardless of the outcome.
func (s *service) StatCheck(ctx context.Context, input *StatCheckInput) (*StatCheckResult, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input cannot be nil")
	}
	stat, ok := character.ParseStat(input.Stat)
	if !ok {
		return nil, rpgerr.InvalidArgumentf("unknown stat '%s'", input.Stat)
	}

	caster, err := s.loadActor(ctx, input.CasterID)
	if err != nil {
		return nil, err
	}

	caster.LiveStats = effects.RecalculateFor(caster, s.catalog)
	mod, detail := rules.EffectiveModifierDetailed(caster.BaseStats, caster.LiveStats, stat)

	tn := input.TargetNumber
	if input.TargetID != "" && input.TargetID != caster.ID {
		target, loadErr := s.loadTarget(ctx, input.TargetID)
		if loadErr != nil {
			return nil, loadErr
		}
		targetLive := effects.RecalculateFor(target, s.catalog)
		tn = s.opposedTN(target, targetLive, stat)
	} else if tn == 0 {
		tn = rules.DefaultOpposedBase
	}

	check, err := rules.ResolveCheck(s.diceRoller, mod, tn)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to resolve stat check")
	}

	report, err := s.advanceAndPersist(ctx, caster)
	if err != nil {
		return nil, err
	}

	return &StatCheckResult{
		Success:        check.Success,
		Check:          check,
		CasterID:       caster.ID,
		CasterName:     caster.Name,
		Stat:           string(stat),
		ModifierDetail: detail,
		TurnSummary:    report.Summary(),
		Narrative:      fmt.Sprintf("%s makes a %s check. %s %s", caster.Name, stat, check.Detail, report.Summary()),
	}, nil
}
