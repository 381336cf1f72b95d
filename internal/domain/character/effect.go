package character

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DurationScene marks an effect that persists until explicitly removed.
// Turn processing never decrements it.
const DurationScene = "scene"

// SceneTurnsSentinel is the TurnsLeft value carried by scene-duration
// effects. It exists for the benefit of external clients that render
// remaining turns; the engine never decrements it.
const SceneTurnsSentinel = 999

// ActiveEffect is one currently-applied timed effect on a character.
type ActiveEffect struct {
	// EffectID references the catalog definition
	EffectID string `json:"effect_id"`
	// InstanceID uniquely identifies this application of the effect
	InstanceID string `json:"instance_id"`
	Name       string `json:"name"`
	// Duration is "turns:<N>" or "scene"
	Duration  string    `json:"duration"`
	TurnsLeft int       `json:"turns_left"`
	AppliedAt time.Time `json:"applied_at"`
	// SourceID identifies the caster or ability that applied the effect
	SourceID string `json:"source_id,omitempty"`
}

// IsScene reports whether the effect persists across turns until removed
func (e *ActiveEffect) IsScene() bool {
	return e.Duration == DurationScene
}

// TurnsDuration formats a turn-limited duration string
func TurnsDuration(turns int) string {
	return fmt.Sprintf("turns:%d", turns)
}

// ParseDuration returns the turn count for a "turns:<N>" duration, or
// scene=true for a scene duration.
func ParseDuration(duration string) (turns int, scene bool, err error) {
	if duration == DurationScene {
		return SceneTurnsSentinel, true, nil
	}
	rest, ok := strings.CutPrefix(duration, "turns:")
	if !ok {
		return 0, false, fmt.Errorf("invalid duration %q", duration)
	}
	turns, err = strconv.Atoi(rest)
	if err != nil || turns < 1 {
		return 0, false, fmt.Errorf("invalid duration %q", duration)
	}
	return turns, false, nil
}
