package effects

import (
	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
)

// ResolveTargets maps an effect's declared scope to the concrete recipient
// list. Eligibility filtering (consciousness, roleplay mode, self-duplicate
// removal) is the orchestrator's responsibility before candidates reach this
// resolver; this is scope selection only.
//
//	self                 -> caster
//	single, enemy, ally  -> primary target if present, else empty
//	area, all_allies     -> caster plus nearby candidates
//	all_enemies          -> nearby candidates only, never the caster
func ResolveTargets(scope rulebook.TargetScope, caster *character.Character, primary *character.Character, nearby []*character.Character) []*character.Character {
	switch scope {
	case rulebook.TargetSelf:
		return []*character.Character{caster}

	case rulebook.TargetSingle, rulebook.TargetEnemy, rulebook.TargetAlly:
		if primary == nil {
			return nil
		}
		return []*character.Character{primary}

	case rulebook.TargetArea, rulebook.TargetAllAllies:
		out := make([]*character.Character, 0, len(nearby)+1)
		out = append(out, caster)
		out = append(out, nearby...)
		return out

	case rulebook.TargetAllEnemies:
		out := make([]*character.Character, 0, len(nearby))
		out = append(out, nearby...)
		return out
	}
	return nil
}
