package effects

import (
	"fmt"

	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
)

// Tick records one heal- or damage-over-time application during a turn
// advance.
type Tick struct {
	EffectName string
	Amount     int // positive heal, negative damage
}

// TurnReport summarizes what one turn advance did to a character.
type TurnReport struct {
	HealthDelta int
	Ticks       []Tick
	Expired     []string // names of effects removed this advance
}

// Summary renders the report for result messages
func (r *TurnReport) Summary() string {
	if len(r.Ticks) == 0 && len(r.Expired) == 0 {
		return ""
	}
	out := ""
	for _, tick := range r.Ticks {
		out += fmt.Sprintf("%s ticks for %+d HP. ", tick.EffectName, tick.Amount)
	}
	for _, name := range r.Expired {
		out += fmt.Sprintf("%s wears off. ", name)
	}
	return out
}

// AdvanceTurn advances the acting character's turn clock by one tick.
//
// For every active effect: over-time entries tick once (an effect present at
// the start of the turn was active during it, so it ticks even on the
// advance that expires it — but never again after removal); turn-limited
// durations decrement and expire at zero with no grace period; scene
// durations are untouched. Health ticks are clamped to [0, maxHP] and
// LiveStats is rebuilt from the surviving effect list.
//
// Only the acting character advances per action; AdvanceTurn is never called
// on bystanders.
func AdvanceTurn(char *character.Character, catalog rulebook.Catalog) *TurnReport {
	report := &TurnReport{}

	remaining := char.ActiveEffects[:0]
	for _, eff := range char.ActiveEffects {
		def := catalog.GetEffect(eff.EffectID)

		if def != nil && def.TickAmount > 0 {
			switch def.Category {
			case rulebook.CategoryHeal:
				report.HealthDelta += def.TickAmount
				report.Ticks = append(report.Ticks, Tick{EffectName: eff.Name, Amount: def.TickAmount})
			case rulebook.CategoryDamage:
				report.HealthDelta -= def.TickAmount
				report.Ticks = append(report.Ticks, Tick{EffectName: eff.Name, Amount: -def.TickAmount})
			}
		}

		if eff.IsScene() {
			remaining = append(remaining, eff)
			continue
		}

		eff.TurnsLeft--
		if eff.TurnsLeft <= 0 {
			report.Expired = append(report.Expired, eff.Name)
			continue
		}
		remaining = append(remaining, eff)
	}
	char.ActiveEffects = remaining

	if report.HealthDelta != 0 {
		heal, damage := report.HealthDelta, 0
		if heal < 0 {
			heal, damage = 0, -report.HealthDelta
		}
		// Ticks are not subject to damage reduction; they already landed
		char.CurrentHP = ApplyHealth(char.CurrentHP, char.MaxHP, damage, heal, 0)
	}

	char.LiveStats = RecalculateFor(char, catalog)
	return report
}
