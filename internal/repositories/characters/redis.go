package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emberveil/rp-combat/internal/domain/character"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
)

// CharacterData represents the serialized form of a character in Redis
type CharacterData struct {
	ID        string                       `json:"id"`
	OwnerID   string                       `json:"owner_id"`
	Name      string                       `json:"name"`
	BaseStats map[character.Stat]int       `json:"base_stats"`
	MaxHP     int                          `json:"max_hp"`
	CurrentHP int                          `json:"current_hp"`

	InRoleplay bool `json:"in_roleplay"`

	CommonPowers    []string `json:"common_powers,omitempty"`
	ArchetypePowers []string `json:"archetype_powers,omitempty"`
	Perks           []string `json:"perks,omitempty"`
	Cybernetics     []string `json:"cybernetics,omitempty"`
	MagicWeaves     []string `json:"magic_weaves,omitempty"`

	ActiveEffects []character.ActiveEffect `json:"active_effects,omitempty"`
	LiveStats     map[string]int           `json:"live_stats,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// redisRepo implements the Repository interface using Redis. Each character
// is one JSON value under one key, so every write is atomic per character.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(client redis.UniversalClient) Repository {
	if client == nil {
		panic("Redis client cannot be nil")
	}
	return &redisRepo{client: client}
}

// key generates the Redis key for a character
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// ownerCharactersKey generates the Redis key for an owner's character list
func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return rpgerr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return rpgerr.InvalidArgument("character owner ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return rpgerr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	data := toCharacterData(char)
	data.CreatedAt = time.Now().UTC()
	data.UpdatedAt = data.CreatedAt

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Store character and owner index together
	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), jsonData, 0)
	pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data CharacterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", unmarshalErr)
	}

	return fromCharacterData(&data), nil
}

// GetByOwner retrieves all characters for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, rpgerr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	chars := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if err != nil {
			// Skip characters that can't be loaded
			continue
		}
		chars = append(chars, char)
	}

	return chars, nil
}

// Update updates an existing character
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return rpgerr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	existingData, err := r.client.Get(ctx, r.key(char.ID)).Result()
	if err == redis.Nil {
		return rpgerr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing character: %w", err)
	}

	var existing CharacterData
	if unmarshalErr := json.Unmarshal([]byte(existingData), &existing); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing character: %w", unmarshalErr)
	}

	data := toCharacterData(char)
	data.CreatedAt = existing.CreatedAt // Preserve creation time
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(char.ID), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	// If the owner changed, update the index
	if existing.OwnerID != char.OwnerID {
		pipe := r.client.Pipeline()
		pipe.SRem(ctx, r.ownerCharactersKey(existing.OwnerID), char.ID)
		pipe.SAdd(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
		if _, err = pipe.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update character index: %w", err)
		}
	}

	return nil
}

// UpdateCombatState persists a character's post-action combat state. The
// whole record is rewritten in one SET, so health and effects can never be
// visible out of step.
func (r *redisRepo) UpdateCombatState(ctx context.Context, id string, currentHP int, effs []character.ActiveEffect, live character.LiveStats) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	existingData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get existing character: %w", err)
	}

	var data CharacterData
	if unmarshalErr := json.Unmarshal([]byte(existingData), &data); unmarshalErr != nil {
		return fmt.Errorf("failed to unmarshal existing character: %w", unmarshalErr)
	}

	data.CurrentHP = currentHP
	data.ActiveEffects = effs
	data.LiveStats = live
	data.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	if err := r.client.Set(ctx, r.key(id), jsonData, 0).Err(); err != nil {
		return fmt.Errorf("failed to update combat state: %w", err)
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	char, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.ownerCharactersKey(char.OwnerID), id)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

// toCharacterData converts an entity to the data struct for storage
func toCharacterData(char *character.Character) *CharacterData {
	return &CharacterData{
		ID:              char.ID,
		OwnerID:         char.OwnerID,
		Name:            char.Name,
		BaseStats:       char.BaseStats,
		MaxHP:           char.MaxHP,
		CurrentHP:       char.CurrentHP,
		InRoleplay:      char.InRoleplay,
		CommonPowers:    char.CommonPowers,
		ArchetypePowers: char.ArchetypePowers,
		Perks:           char.Perks,
		Cybernetics:     char.Cybernetics,
		MagicWeaves:     char.MagicWeaves,
		ActiveEffects:   char.ActiveEffects,
		LiveStats:       char.LiveStats,
		CreatedAt:       char.CreatedAt,
		UpdatedAt:       char.UpdatedAt,
	}
}

// fromCharacterData converts a data struct to an entity
func fromCharacterData(data *CharacterData) *character.Character {
	return &character.Character{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Name:            data.Name,
		BaseStats:       data.BaseStats,
		MaxHP:           data.MaxHP,
		CurrentHP:       data.CurrentHP,
		InRoleplay:      data.InRoleplay,
		CommonPowers:    data.CommonPowers,
		ArchetypePowers: data.ArchetypePowers,
		Perks:           data.Perks,
		Cybernetics:     data.Cybernetics,
		MagicWeaves:     data.MagicWeaves,
		ActiveEffects:   data.ActiveEffects,
		LiveStats:       data.LiveStats,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
