package combat

import (
	"context"
	"fmt"

	"github.com/emberveil/rp-combat/internal/dice"
	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
	"github.com/emberveil/rp-combat/internal/effects"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
	"github.com/emberveil/rp-combat/internal/repositories/characters"
	"github.com/emberveil/rp-combat/internal/rules"
	"github.com/emberveil/rp-combat/internal/uuid"
)

// service is the combat orchestrator implementation
type service struct {
	repo        characters.Repository
	catalog     rulebook.Catalog
	diceRoller  dice.Roller
	uuidGen     uuid.Generator
	opposedBase int
}

// ServiceConfig holds configuration for the combat service
type ServiceConfig struct {
	Repository    characters.Repository
	Catalog       rulebook.Catalog
	DiceRoller    dice.Roller
	UUIDGenerator uuid.Generator
	// OpposedBase is the fixed base for opposed target numbers, 10 if unset
	OpposedBase int
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("character repository is required")
	}
	if cfg.Catalog == nil {
		panic("catalog is required")
	}

	svc := &service{
		repo:        cfg.Repository,
		catalog:     cfg.Catalog,
		diceRoller:  cfg.DiceRoller,
		uuidGen:     cfg.UUIDGenerator,
		opposedBase: cfg.OpposedBase,
	}
	if svc.diceRoller == nil {
		svc.diceRoller = dice.NewRandomRoller()
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	if svc.opposedBase == 0 {
		svc.opposedBase = rules.DefaultOpposedBase
	}
	return svc
}

// FindByOwner returns the owner's character
func (s *service) FindByOwner(ctx context.Context, ownerID string) (*character.Character, error) {
	if ownerID == "" {
		return nil, rpgerr.InvalidArgument("owner ID is required")
	}
	chars, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to list characters")
	}
	if len(chars) == 0 {
		return nil, rpgerr.NotFoundf("no character found for owner '%s'", ownerID)
	}
	return chars[0], nil
}

// loadActor loads the acting character and checks the preconditions every
// action shares. Nothing is mutated or persisted on failure.
func (s *service) loadActor(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, rpgerr.InvalidArgument("caster ID is required")
	}
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to load caster")
	}
	if !char.IsConscious() {
		return nil, rpgerr.Preconditionf("%s is unconscious and cannot act", char.Name)
	}
	if !char.InRoleplay {
		return nil, rpgerr.Preconditionf("%s is not in active roleplay mode", char.Name)
	}
	return char, nil
}

// loadTarget loads and validates a primary target
func (s *service) loadTarget(ctx context.Context, id string) (*character.Character, error) {
	char, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to load target")
	}
	if !char.IsConscious() {
		return nil, rpgerr.Preconditionf("%s is unconscious", char.Name)
	}
	if !char.InRoleplay {
		return nil, rpgerr.Preconditionf("%s is not in active roleplay mode", char.Name)
	}
	return char, nil
}

// loadNearby loads area candidates and pre-filters them for eligibility:
// unconscious characters, characters outside roleplay mode, and duplicates
// of the caster or primary target are dropped before target resolution.
func (s *service) loadNearby(ctx context.Context, ids []string, caster, primary *character.Character) []*character.Character {
	var out []*character.Character
	seen := map[string]bool{caster.ID: true}
	if primary != nil {
		seen[primary.ID] = true
	}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		char, err := s.repo.Get(ctx, id)
		if err != nil {
			continue
		}
		if !char.IsConscious() || !char.InRoleplay {
			continue
		}
		out = append(out, char)
	}
	return out
}

// advanceAndPersist advances the caster's turn clock and persists the
// resulting state in one atomic write. Newly granted self-effects must be
// appended to the caster AFTER this call so they start at full duration.
func (s *service) advanceAndPersist(ctx context.Context, caster *character.Character) (*effects.TurnReport, error) {
	report := effects.AdvanceTurn(caster, s.catalog)
	if err := s.repo.UpdateCombatState(ctx, caster.ID, caster.CurrentHP, caster.ActiveEffects, caster.LiveStats); err != nil {
		return nil, rpgerr.Wrap(err, "failed to persist caster state")
	}
	return report, nil
}

// opposedTN derives the target number for an opposed check against a
// defender stat
func (s *service) opposedTN(defender *character.Character, defenderLive character.LiveStats, stat character.Stat) int {
	defMod := rules.EffectiveModifier(defender.BaseStats, defenderLive, stat)
	return rules.OpposedTargetNumber(s.opposedBase, defMod)
}

// findAbility resolves an ability by id or display name
func (s *service) findAbility(abilityID, abilityName string) (*rulebook.Ability, error) {
	if abilityID != "" {
		if ability, ok := s.catalog.GetAbility(abilityID); ok {
			return ability, nil
		}
		return nil, rpgerr.NotFoundf("ability '%s' not found", abilityID)
	}
	if abilityName != "" {
		if ability, ok := s.catalog.FindAbilityByName(abilityName); ok {
			return ability, nil
		}
		return nil, rpgerr.NotFoundf("ability '%s' not found", abilityName)
	}
	return nil, rpgerr.InvalidArgument("ability id or name is required")
}

func hpLine(name string, before, after int) string {
	return fmt.Sprintf("%s: %d -> %d HP", name, before, after)
}
