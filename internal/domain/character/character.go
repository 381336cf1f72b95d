package character

import (
	"time"
)

// Stat identifies one of the four base stats every character has.
type Stat string

const (
	StatPhysical   Stat = "physical"
	StatDexterity  Stat = "dexterity"
	StatMental     Stat = "mental"
	StatPerception Stat = "perception"
)

// Stats lists all base stats in display order
var Stats = []Stat{StatPhysical, StatDexterity, StatMental, StatPerception}

// ParseStat maps a stat name to its Stat value
func ParseStat(name string) (Stat, bool) {
	switch Stat(name) {
	case StatPhysical, StatDexterity, StatMental, StatPerception:
		return Stat(name), true
	}
	return "", false
}

// BaseStats holds a character's raw stat values. Values are small integers,
// 0-5 typical, unbounded above.
type BaseStats map[Stat]int

// Get returns the base value for a stat, 0 if unset
func (b BaseStats) Get(stat Stat) int {
	return b[stat]
}

// Clone returns a copy of the base stats
func (b BaseStats) Clone() BaseStats {
	out := make(BaseStats, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// LiveStats is the derived overlay of all active and passive stat deltas.
// Keys are either a stat name (stat_value pool, shifts the base stat before
// tiering) or "<stat>_rollbonus" (roll_bonus pool, added after tiering).
// It is a cache over ActiveEffects, never a source of truth, and is replaced
// wholesale on every recalculation.
type LiveStats map[string]int

// RollBonusKey returns the overlay key for a stat's roll-bonus pool
func RollBonusKey(stat Stat) string {
	return string(stat) + "_rollbonus"
}

// StatDelta returns the stat_value delta for a stat, 0 if none
func (l LiveStats) StatDelta(stat Stat) int {
	return l[string(stat)]
}

// RollBonus returns the roll_bonus delta for a stat, 0 if none
func (l LiveStats) RollBonus(stat Stat) int {
	return l[RollBonusKey(stat)]
}

// Clone returns a copy of the overlay
func (l LiveStats) Clone() LiveStats {
	out := make(LiveStats, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Character is the persisted aggregate the engine mutates. Health,
// ActiveEffects and LiveStats are always written together (atomic
// per-character update at the repository).
type Character struct {
	ID        string
	OwnerID   string
	Name      string
	BaseStats BaseStats

	MaxHP     int
	CurrentHP int

	// InRoleplay gates all combat actions; characters outside active
	// roleplay mode can neither act nor be targeted
	InRoleplay bool

	// Owned ability ids by source kind
	CommonPowers    []string
	ArchetypePowers []string
	Perks           []string
	Cybernetics     []string
	MagicWeaves     []string

	ActiveEffects []ActiveEffect
	LiveStats     LiveStats

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConscious reports whether the character can act or be validly targeted
func (c *Character) IsConscious() bool {
	return c.CurrentHP > 0
}

// OwnsAbility reports whether the character owns the ability in any category
func (c *Character) OwnsAbility(abilityID string) bool {
	for _, list := range [][]string{c.CommonPowers, c.ArchetypePowers, c.Perks, c.Cybernetics, c.MagicWeaves} {
		for _, id := range list {
			if id == abilityID {
				return true
			}
		}
	}
	return false
}

// OwnedAbilityIDs returns all owned ability ids across every category
func (c *Character) OwnedAbilityIDs() []string {
	var out []string
	out = append(out, c.CommonPowers...)
	out = append(out, c.ArchetypePowers...)
	out = append(out, c.Perks...)
	out = append(out, c.Cybernetics...)
	out = append(out, c.MagicWeaves...)
	return out
}

// RemoveEffectInstance deletes an active effect by instance id. Scene-duration
// effects only ever leave a character through this path.
func (c *Character) RemoveEffectInstance(instanceID string) bool {
	for i, eff := range c.ActiveEffects {
		if eff.InstanceID == instanceID {
			c.ActiveEffects = append(c.ActiveEffects[:i], c.ActiveEffects[i+1:]...)
			return true
		}
	}
	return false
}
