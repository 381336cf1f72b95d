package combat_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberveil/rp-combat/internal/dice"
	"github.com/emberveil/rp-combat/internal/domain/character"
	"github.com/emberveil/rp-combat/internal/domain/rulebook"
	rpgerr "github.com/emberveil/rp-combat/internal/errors"
	"github.com/emberveil/rp-combat/internal/repositories/characters"
	"github.com/emberveil/rp-combat/internal/services/combat"
	"github.com/emberveil/rp-combat/internal/testutils"
)

// seqGenerator hands out predictable instance ids for assertions
type seqGenerator struct {
	n int
}

func (g *seqGenerator) New() string {
	g.n++
	return fmt.Sprintf("inst-%d", g.n)
}

type testEnv struct {
	svc    combat.Service
	repo   *characters.InMemoryRepository
	roller *dice.MockRoller
}

func newTestEnv(t *testing.T, catalog rulebook.Catalog) *testEnv {
	t.Helper()
	if catalog == nil {
		catalog = testutils.CreateTestCatalog()
	}
	repo := characters.NewInMemoryRepository()
	roller := dice.NewMockRoller()
	svc := combat.NewService(&combat.ServiceConfig{
		Repository:    repo,
		Catalog:       catalog,
		DiceRoller:    roller,
		UUIDGenerator: &seqGenerator{},
	})
	return &testEnv{svc: svc, repo: repo, roller: roller}
}

func (e *testEnv) create(t *testing.T, char *character.Character) {
	t.Helper()
	require.NoError(t, e.repo.Create(context.Background(), char))
}

func (e *testEnv) get(t *testing.T, id string) *character.Character {
	t.Helper()
	char, err := e.repo.Get(context.Background(), id)
	require.NoError(t, err)
	return char
}

func TestNewService(t *testing.T) {
	t.Run("panics without a repository", func(t *testing.T) {
		assert.Panics(t, func() {
			combat.NewService(&combat.ServiceConfig{
				Catalog: testutils.CreateTestCatalog(),
			})
		})
	})

	t.Run("panics without a catalog", func(t *testing.T) {
		assert.Panics(t, func() {
			combat.NewService(&combat.ServiceConfig{
				Repository: characters.NewInMemoryRepository(),
			})
		})
	})

	t.Run("defaults roller and uuid generator", func(t *testing.T) {
		assert.NotPanics(t, func() {
			combat.NewService(&combat.ServiceConfig{
				Repository: characters.NewInMemoryRepository(),
				Catalog:    testutils.CreateTestCatalog(),
			})
		})
	})
}

func TestFindByOwner(t *testing.T) {
	env := newTestEnv(t, nil)
	env.create(t, testutils.CreateTestCharacter("char-1", "owner-1", "Vex"))

	t.Run("returns the owner's character", func(t *testing.T) {
		char, err := env.svc.FindByOwner(context.Background(), "owner-1")
		require.NoError(t, err)
		assert.Equal(t, "char-1", char.ID)
	})

	t.Run("not found for an unknown owner", func(t *testing.T) {
		_, err := env.svc.FindByOwner(context.Background(), "owner-9")
		assert.True(t, rpgerr.IsNotFound(err))
	})

	t.Run("invalid argument for an empty owner", func(t *testing.T) {
		_, err := env.svc.FindByOwner(context.Background(), "")
		assert.Equal(t, rpgerr.CodeInvalidArgument, rpgerr.GetCode(err))
	})
}
