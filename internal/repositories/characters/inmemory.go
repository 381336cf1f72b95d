package characters

import (
	"context"
	"sync"

	"github.com/emberveil/rp-combat/internal/domain/character"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

func copyCharacter(char *character.Character) *character.Character {
	charCopy := *char
	charCopy.BaseStats = char.BaseStats.Clone()
	charCopy.LiveStats = char.LiveStats.Clone()
	charCopy.ActiveEffects = append([]character.ActiveEffect(nil), char.ActiveEffects...)
	return &charCopy
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return rpgerr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return rpgerr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = copyCharacter(char)
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return copyCharacter(char), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, rpgerr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*character.Character
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			result = append(result, copyCharacter(char))
		}
	}

	return result, nil
}

// Update updates an existing character
func (r *InMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return rpgerr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return rpgerr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = copyCharacter(char)
	return nil
}

// UpdateCombatState persists post-action combat state under the write lock,
// so health and effects change together or not at all
func (r *InMemoryRepository) UpdateCombatState(ctx context.Context, id string, currentHP int, effs []character.ActiveEffect, live character.LiveStats) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[id]
	if !exists {
		return rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	char.CurrentHP = currentHP
	char.ActiveEffects = append([]character.ActiveEffect(nil), effs...)
	char.LiveStats = live.Clone()
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}
