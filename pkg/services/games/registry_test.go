package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/casino/internal/types"
)

func TestDefaultRegistryListsSingleShotGames(t *testing.T) {
	registry := DefaultRegistry()

	assert.Equal(t, []string{"DICE", "KENO", "LIMBO", "PLINKO", "ROULETTE", "SLOTS"}, registry.List())
}

func TestRegistryGet(t *testing.T) {
	registry := DefaultRegistry()

	game, err := registry.Get("DICE")
	require.NoError(t, err)
	assert.Equal(t, "DICE", game.Name())

	_, err = registry.Get("BACCARAT")
	assert.True(t, types.IsGameError(err, types.ErrGameNotFound))
}

func TestRegistryRejectsDuplicateRegistration(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(Dice{}))
	err := registry.Register(Dice{})
	assert.True(t, types.IsGameError(err, types.ErrInvalidState))
}
