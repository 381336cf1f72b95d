package combat

import (
	"context"
	"fmt"

	"github.com/emberveil/rp-combat/internal/effects"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
)

// RemoveEffect strips one active effect instance from a character and persists
// the resulting state. Unlike combat actions it carries no preconditions — an
// unconscious character can still have effects dispelled — and advances no
// turn clock.
func (s *service) RemoveEffect(ctx context.Context, input *RemoveEffectInput) (*RemoveEffectResult, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input cannot be nil")
	}
	if input.InstanceID == "" {
		return nil, rpgerr.InvalidArgument("effect instance ID is required")
	}

	char, err := s.repo.Get(ctx, input.CharacterID)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to load character")
	}

	name := ""
	for _, eff := range char.ActiveEffects {
		if eff.InstanceID == input.InstanceID {
			name = eff.Name
			break
		}
	}
	if !char.RemoveEffectInstance(input.InstanceID) {
		return nil, rpgerr.NotFoundf("effect instance '%s' not found on %s", input.InstanceID, char.Name)
	}

	char.LiveStats = effects.RecalculateFor(char, s.catalog)
	if err := s.repo.UpdateCombatState(ctx, char.ID, char.CurrentHP, char.ActiveEffects, char.LiveStats); err != nil {
		return nil, rpgerr.Wrap(err, "failed to persist character state")
	}

	return &RemoveEffectResult{
		CharacterID:   char.ID,
		CharacterName: char.Name,
		EffectName:    name,
		Narrative:     fmt.Sprintf("%s loses %s.", char.Name, name),
	}, nil
}
