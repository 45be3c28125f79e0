package games

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fintechx/casino/internal/types"
)

// Registry manages the single-shot games playable through the common
// bet-and-settle endpoint. Multi-step games (crash, mines, blackjack,
// trivia) keep round state and are wired separately.
type Registry struct {
	games map[string]Game
	mu    sync.RWMutex
}

// NewRegistry creates an empty game registry
func NewRegistry() *Registry {
	return &Registry{
		games: make(map[string]Game),
	}
}

// Register adds a game under its own name
func (r *Registry) Register(game Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := game.Name()
	if _, exists := r.games[name]; exists {
		return types.NewGameError(types.ErrInvalidState, fmt.Sprintf("game %s is already registered", name))
	}

	r.games[name] = game
	return nil
}

// Get returns the game registered under name
func (r *Registry) Get(name string) (Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	game, exists := r.games[name]
	if !exists {
		return nil, types.NewGameError(types.ErrGameNotFound, fmt.Sprintf("game %s not found", name))
	}

	return game, nil
}

// List returns the registered game names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.games))
	for name := range r.games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with every single-shot game
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, game := range []Game{
		Dice{},
		Limbo{},
		Roulette{},
		Slots{},
		Keno{},
		Plinko{},
	} {
		// registration of a fixed set cannot collide
		_ = registry.Register(game)
	}
	return registry
}
