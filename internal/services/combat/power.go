package combat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
	"github.com/emberveil/rp-combat/internal/effects"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
	"github.com/emberveil/rp-combat/internal/rules"
)

// UsePower activates an ability's plain (non-offensive) effect list
func (s *service) UsePower(ctx context.Context, input *UsePowerInput) (*ActionResult, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input cannot be nil")
	}
	ability, err := s.findAbility(input.AbilityID, input.AbilityName)
	if err != nil {
		return nil, err
	}
	if len(ability.AbilityEffects) == 0 {
		return nil, rpgerr.InvalidArgumentf("ability '%s' has no activation effects", ability.Name)
	}
	return s.activate(ctx, ability, ability.AbilityEffects, input.CasterID, input.TargetID, input.NearbyIDs)
}

// PowerAttack activates an ability's offensive effect list against a target
func (s *service) PowerAttack(ctx context.Context, input *PowerAttackInput) (*ActionResult, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input cannot be nil")
	}
	ability, err := s.findAbility(input.AbilityID, input.AbilityName)
	if err != nil {
		return nil, err
	}
	if len(ability.AttackEffects) == 0 {
		return nil, rpgerr.InvalidArgumentf("ability '%s' has no attack effects", ability.Name)
	}
	return s.activate(ctx, ability, ability.AttackEffects, input.CasterID, input.TargetID, input.NearbyIDs)
}

// recipientState accumulates everything one activation does to one recipient
// before it is applied and persisted as a single atomic unit
type recipientState struct {
	char       *character.Character
	damage     int
	heal       int
	reduction  int
	hpBefore   int
	newEffects []character.ActiveEffect
	names      []string
	controls   []string
}

// activate runs the shared activation pipeline: preconditions, check gates,
// per-recipient effect execution, application and persistence, then the
// caster's turn advance.
func (s *service) activate(ctx context.Context, ability *rulebook.Ability, effectIDs []string, casterID, targetID string, nearbyIDs []string) (*ActionResult, error) {
	caster, err := s.loadActor(ctx, casterID)
	if err != nil {
		return nil, err
	}
	if !caster.OwnsAbility(ability.ID) {
		return nil, rpgerr.Preconditionf("%s does not have %s", caster.Name, ability.Name)
	}

	var primary *character.Character
	switch {
	case targetID == "" || targetID == caster.ID:
		if targetID == caster.ID || ability.TargetType == rulebook.TargetSelf {
			primary = caster
		}
	default:
		primary, err = s.loadTarget(ctx, targetID)
		if err != nil {
			return nil, err
		}
	}
	if primary == caster && (ability.TargetType == rulebook.TargetEnemy || ability.TargetType == rulebook.TargetAllEnemies) {
		return nil, rpgerr.Preconditionf("%s cannot target yourself", ability.Name)
	}

	nearby := s.loadNearby(ctx, nearbyIDs, caster, primary)

	caster.LiveStats = effects.RecalculateFor(caster, s.catalog)
	atkMod, atkDetail := rules.EffectiveModifierDetailed(caster.BaseStats, caster.LiveStats, ability.BaseStat)

	result := &ActionResult{
		Success:        true,
		CasterID:       caster.ID,
		CasterName:     caster.Name,
		AbilityName:    ability.Name,
		ModifierUsed:   atkMod,
		ModifierDetail: atkDetail,
	}

	// Resolve check gates first; a failed gate means nothing applies
	var applyIDs []string
	for _, effectID := range effectIDs {
		def := s.catalog.GetEffect(effectID)
		if def == nil {
			// Tolerated: the catalog entry may have been removed after
			// the ability was acquired
			continue
		}
		if !def.IsCheck() {
			applyIDs = append(applyIDs, effectID)
			continue
		}

		check, checkErr := s.resolveGate(def, primary, caster, atkMod)
		if checkErr != nil {
			return nil, checkErr
		}
		result.Check = check
		if !check.Success {
			result.Success = false
			report, advErr := s.advanceAndPersist(ctx, caster)
			if advErr != nil {
				return nil, advErr
			}
			result.TurnSummary = report.Summary()
			result.Narrative = fmt.Sprintf("%s uses %s. %s %s", caster.Name, ability.Name, check.Detail, result.TurnSummary)
			return result, nil
		}
	}

	// Execute remaining effects per recipient
	states, order := s.executeEffects(applyIDs, ability, caster, primary, nearby)

	// Bystander state is applied first, one atomic write per recipient;
	// per-target application is independent so area fan-out runs concurrently
	g, gctx := errgroup.WithContext(ctx)
	for _, st := range order {
		if st.char == caster {
			continue
		}
		st := st
		g.Go(func() error {
			return s.applyToRecipient(gctx, st)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The caster's pre-existing effects decrement before anything granted by
	// this action lands, so a fresh self-buff keeps its full duration
	report := effects.AdvanceTurn(caster, s.catalog)
	if st, ok := states[caster]; ok {
		s.applyState(st)
		caster.LiveStats = effects.RecalculateFor(caster, s.catalog)
	}
	if err := s.repo.UpdateCombatState(ctx, caster.ID, caster.CurrentHP, caster.ActiveEffects, caster.LiveStats); err != nil {
		return nil, rpgerr.Wrap(err, "failed to persist caster state")
	}

	result.TurnSummary = report.Summary()
	for _, st := range order {
		result.Targets = append(result.Targets, st.outcome())
	}
	result.Narrative = buildNarrative(caster.Name, ability.Name, result)
	return result, nil
}

// resolveGate resolves one check_ effect. Opposed gates require a primary
// target and surface a distinct validation error without one.
func (s *service) resolveGate(def *rulebook.EffectDefinition, primary, caster *character.Character, atkMod int) (*rules.CheckResult, error) {
	var tn int
	if def.IsOpposedCheck() {
		if primary == nil || primary == caster {
			return nil, rpgerr.Validationf("%s requires a primary target", def.Name).
				WithMeta("effect_id", def.ID)
		}
		primaryLive := effects.RecalculateFor(primary, s.catalog)
		tn = s.opposedTN(primary, primaryLive, def.CheckStat)
	} else {
		tn = def.TargetNumber
	}

	check, err := rules.ResolveCheck(s.diceRoller, atkMod, tn)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to resolve check")
	}
	return check, nil
}

// executeEffects fans the apply list out to its recipients and accumulates
// the per-recipient results. Execution is a pure computation; nothing is
// mutated here.
func (s *service) executeEffects(applyIDs []string, ability *rulebook.Ability, caster, primary *character.Character, nearby []*character.Character) (map[*character.Character]*recipientState, []*recipientState) {
	states := make(map[*character.Character]*recipientState)
	var order []*recipientState
	now := time.Now().UTC()

	for _, effectID := range applyIDs {
		res := effects.Execute(s.catalog, effectID, effects.Caster{
			BaseStats: caster.BaseStats,
			LiveStats: caster.LiveStats,
		}, ability.BaseStat)
		if res == nil {
			continue
		}

		recipients := effects.ResolveTargets(res.Def.Target, caster, primary, nearby)
		for _, recipient := range recipients {
			st, ok := states[recipient]
			if !ok {
				st = &recipientState{char: recipient}
				states[recipient] = st
				order = append(order, st)
			}

			st.damage += res.Damage
			st.heal += res.Heal
			if res.Control {
				st.controls = append(st.controls, res.ControlType)
			}

			if res.Def.IsTimed() {
				eff, err := effects.NewActiveEffect(res.Def, s.uuidGen.New(), caster.ID, now)
				if err != nil {
					continue
				}
				st.newEffects = append(st.newEffects, eff)
				st.names = append(st.names, res.Def.Name)
			}
		}
	}
	return states, order
}

// applyState folds a recipient's accumulated damage, healing and new timed
// effects into the character. Damage and healing apply against the same HP
// snapshot; reduction comes from effects active before this action.
func (s *service) applyState(st *recipientState) {
	char := st.char
	reduction := 0
	if st.damage > 0 {
		reduction = effects.DamageReduction(effects.CombinedEffects(char, s.catalog), s.catalog)
	}
	st.hpBefore = char.CurrentHP
	char.CurrentHP = effects.ApplyHealth(char.CurrentHP, char.MaxHP, st.damage, st.heal, reduction)
	st.reduction = reduction
	char.ActiveEffects = append(char.ActiveEffects, st.newEffects...)
}

// applyToRecipient applies and persists one bystander's state as a single
// atomic unit
func (s *service) applyToRecipient(ctx context.Context, st *recipientState) error {
	s.applyState(st)
	char := st.char
	char.LiveStats = effects.RecalculateFor(char, s.catalog)
	if err := s.repo.UpdateCombatState(ctx, char.ID, char.CurrentHP, char.ActiveEffects, char.LiveStats); err != nil {
		return rpgerr.Wrapf(err, "failed to persist state for %s", char.Name)
	}
	return nil
}

func (st *recipientState) outcome() TargetOutcome {
	detail := hpLine(st.char.Name, st.hpBefore, st.char.CurrentHP)
	if len(st.names) > 0 {
		detail += ", gains " + strings.Join(st.names, ", ")
	}
	if len(st.controls) > 0 {
		detail += ", " + strings.Join(st.controls, ", ")
	}
	return TargetOutcome{
		TargetID:        st.char.ID,
		TargetName:      st.char.Name,
		Damage:          st.damage,
		DamageReduction: st.reduction,
		Heal:            st.heal,
		HPBefore:        st.hpBefore,
		HPAfter:         st.char.CurrentHP,
		EffectsApplied:  st.names,
		Detail:          detail,
	}
}

func buildNarrative(casterName, abilityName string, result *ActionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s uses %s.", casterName, abilityName)
	if result.Check != nil {
		b.WriteString(" " + result.Check.Detail)
	}
	for _, t := range result.Targets {
		b.WriteString(" ")
		if t.Damage > 0 {
			net := t.Damage - t.DamageReduction
			if net < 0 {
				net = 0
			}
			fmt.Fprintf(&b, "%s takes %d damage", t.TargetName, net)
			if t.DamageReduction > 0 {
				fmt.Fprintf(&b, " (%d reduced)", t.DamageReduction)
			}
			b.WriteString(". ")
		}
		if t.Heal > 0 {
			fmt.Fprintf(&b, "%s heals %d HP. ", t.TargetName, t.Heal)
		}
		b.WriteString(t.Detail + ".")
	}
	if result.TurnSummary != "" {
		b.WriteString(" " + result.TurnSummary)
	}
	return b.String()
}
