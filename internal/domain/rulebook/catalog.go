package rulebook

//go:generate mockgen -destination=mock/mock_catalog.go -package=mockrulebook -source=catalog.go

import (
	"strings"
)

// Catalog is the read-only lookup the engine consumes ability and effect
// definitions from. It is always constructed explicitly and injected; tests
// substitute fixture catalogs freely.
type Catalog interface {
	// GetEffect returns the definition for an effect id, nil if unknown.
	// Callers must tolerate nil: ability definitions may reference effects
	// removed from the catalog after a character acquired the ability.
	GetEffect(id string) *EffectDefinition

	// GetAbility returns the ability for an id
	GetAbility(id string) (*Ability, bool)

	// FindAbilityByName returns the ability matching a display name,
	// case-insensitive
	FindAbilityByName(name string) (*Ability, bool)
}

// StaticCatalog is an immutable in-memory Catalog built from definition
// slices.
type StaticCatalog struct {
	effects   map[string]*EffectDefinition
	abilities map[string]*Ability
	byName    map[string]*Ability
}

// NewStaticCatalog builds a catalog from effect and ability definitions.
// Later entries with duplicate ids replace earlier ones.
func NewStaticCatalog(effects []EffectDefinition, abilities []Ability) *StaticCatalog {
	c := &StaticCatalog{
		effects:   make(map[string]*EffectDefinition, len(effects)),
		abilities: make(map[string]*Ability, len(abilities)),
		byName:    make(map[string]*Ability, len(abilities)),
	}
	for i := range effects {
		eff := effects[i]
		c.effects[eff.ID] = &eff
	}
	for i := range abilities {
		ab := abilities[i]
		c.abilities[ab.ID] = &ab
		c.byName[strings.ToLower(ab.Name)] = &ab
	}
	return c
}

// NewDefaultCatalog builds a catalog from the built-in definition set
func NewDefaultCatalog() *StaticCatalog {
	return NewStaticCatalog(defaultEffects, defaultAbilities)
}

// GetEffect implements Catalog.GetEffect
func (c *StaticCatalog) GetEffect(id string) *EffectDefinition {
	return c.effects[id]
}

// GetAbility implements Catalog.GetAbility
func (c *StaticCatalog) GetAbility(id string) (*Ability, bool) {
	ab, ok := c.abilities[id]
	return ab, ok
}

// FindAbilityByName implements Catalog.FindAbilityByName
func (c *StaticCatalog) FindAbilityByName(name string) (*Ability, bool) {
	ab, ok := c.byName[strings.ToLower(name)]
	return ab, ok
}
