package combat

//go:generate mockgen -destination=mock/mock.go -package=mockcombat -source=types.go

import (
	"context"

	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/rules"
)

// Service resolves combat actions: validates preconditions, computes
// effective modifiers, rolls checks, fans effects out to targets, advances
// the actor's turn clock and persists updated state.
type Service interface {
	// Attack resolves a basic strike against a single target
	Attack(ctx context.Context, input *AttackInput) (*ActionResult, error)

	// UsePower activates an ability's non-offensive effect list
	UsePower(ctx context.Context, input *UsePowerInput) (*ActionResult, error)

	// PowerAttack activates an ability's offensive effect list
	PowerAttack(ctx context.Context, input *PowerAttackInput) (*ActionResult, error)

	// StatCheck resolves a feat-style stat check vs a fixed or opposed TN
	StatCheck(ctx context.Context, input *StatCheckInput) (*StatCheckResult, error)

	// RemoveEffect explicitly removes one active effect instance. This is a
	// host/GM action, not a combat action: it does not advance anyone's turn.
	// Scene-duration effects only ever end through this path.
	RemoveEffect(ctx context.Context, input *RemoveEffectInput) (*RemoveEffectResult, error)

	// FindByOwner returns the owner's character for command handlers
	FindByOwner(ctx context.Context, ownerID string) (*character.Character, error)
}

// AttackInput contains data for a basic attack
type AttackInput struct {
	CasterID string
	TargetID string
}

// UsePowerInput contains data for activating an ability. Either AbilityID or
// AbilityName identifies the ability. NearbyIDs are candidates for area
// scopes; the orchestrator filters them for eligibility.
type UsePowerInput struct {
	CasterID    string
	AbilityID   string
	AbilityName string
	TargetID    string
	NearbyIDs   []string
}

// PowerAttackInput contains data for an offensive ability activation
type PowerAttackInput struct {
	CasterID    string
	AbilityID   string
	AbilityName string
	TargetID    string
	NearbyIDs   []string
}

// StatCheckInput contains data for a stat check. With a TargetID the check
// is opposed against the target's same stat; otherwise TargetNumber is used
// (default 10).
type StatCheckInput struct {
	CasterID     string
	Stat         string
	TargetNumber int
	TargetID     string
}

// RemoveEffectInput identifies one effect instance on one character
type RemoveEffectInput struct {
	CharacterID string
	InstanceID  string
}

// RemoveEffectResult reports an explicit effect removal
type RemoveEffectResult struct {
	CharacterID   string
	CharacterName string
	EffectName    string
	Narrative     string
}

// TargetOutcome is the per-recipient breakdown of one resolved action
type TargetOutcome struct {
	TargetID   string
	TargetName string

	Damage          int
	DamageReduction int
	Heal            int
	HPBefore        int
	HPAfter         int

	// Names of timed effects newly applied to this recipient
	EffectsApplied []string

	Detail string
}

// ActionResult is the structured outcome of one combat action
type ActionResult struct {
	Success bool

	CasterID     string
	CasterName   string
	AbilityName  string
	ModifierUsed int
	// ModifierDetail is the human-readable modifier breakdown
	ModifierDetail string

	// Check is nil for actions without a gate (pure self-buffs)
	Check *rules.CheckResult

	Targets []TargetOutcome

	// TurnSummary describes over-time ticks and expired effects from the
	// caster's turn advance
	TurnSummary string

	// Narrative is the full human-readable resolution
	Narrative string
}

// StatCheckResult is the outcome of a feat-style stat check
type StatCheckResult struct {
	Success        bool
	Check          *rules.CheckResult
	CasterID       string
	CasterName     string
	Stat           string
	ModifierDetail string
	TurnSummary    string
	Narrative      string
}
