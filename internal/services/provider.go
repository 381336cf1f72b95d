package services

import (
	"github.com/emberveil/rp-combat/internal/dice"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
	"github.com/emberveil/rp-combat/internal/repositories/characters"
	"github.com/emberveil/rp-combat/internal/services/combat"
)

// Provider holds all services for dependency injection
type Provider struct {
	CombatService combat.Service
}

// ProviderConfig holds dependencies for creating the provider
type ProviderConfig struct {
	// CharacterRepository defaults to in-memory when nil
	CharacterRepository characters.Repository

	// Catalog defaults to the built-in definition set when nil
	Catalog rulebook.Catalog

	// DiceRoller defaults to a random roller when nil
	DiceRoller dice.Roller

	// OpposedBase overrides the opposed-check base when non-zero
	OpposedBase int
}

// NewProvider creates all services with their dependencies wired
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	repo := cfg.CharacterRepository
	if repo == nil {
		repo = characters.NewInMemoryRepository()
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = rulebook.NewDefaultCatalog()
	}

	return &Provider{
		CombatService: combat.NewService(&combat.ServiceConfig{
			Repository:  repo,
			Catalog:     catalog,
			DiceRoller:  cfg.DiceRoller,
			OpposedBase: cfg.OpposedBase,
		}),
	}
}
