package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	t.Run("turn-limited", func(t *testing.T) {
		turns, scene, err := ParseDuration("turns:3")
		require.NoError(t, err)
		assert.Equal(t, 3, turns)
		assert.False(t, scene)
	})

	t.Run("scene", func(t *testing.T) {
		turns, scene, err := ParseDuration("scene")
		require.NoError(t, err)
		assert.True(t, scene)
		assert.Equal(t, SceneTurnsSentinel, turns)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"", "turns:", "turns:0", "turns:-1", "turns:abc", "forever"} {
			_, _, err := ParseDuration(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestTurnsDuration(t *testing.T) {
	assert.Equal(t, "turns:4", TurnsDuration(4))
}

func TestActiveEffectIsScene(t *testing.T) {
	scene := ActiveEffect{Duration: DurationScene}
	assert.True(t, scene.IsScene())

	timed := ActiveEffect{Duration: TurnsDuration(2)}
	assert.False(t, timed.IsScene())
}
