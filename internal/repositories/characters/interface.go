package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/emberveil/rp-combat/internal/domain/character"
)

// Repository defines the interface for character persistence. Every write
// covers the whole character record, so health, active effects and the
// live-stat overlay can never be persisted out of step with each other.
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// GetByOwner retrieves all characters for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// Update updates an existing character
	Update(ctx context.Context, char *character.Character) error

	// UpdateCombatState persists a character's post-action combat state
	// (current HP, active effects, live stats) as one atomic write,
	// leaving all other fields untouched
	UpdateCombatState(ctx context.Context, id string, currentHP int, effs []character.ActiveEffect, live character.LiveStats) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
