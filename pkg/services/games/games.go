package games

import (
	"math"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/random"
)

// Params carries the player-chosen parameters of a round, decoded from the
// request body. Typed accessors tolerate the numeric types JSON decoding
// produces.
type Params map[string]any

// Float returns a numeric parameter
func (p Params) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Int returns an integer parameter
func (p Params) Int(key string) (int, bool) {
	f, ok := p.Float(key)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// Ints returns an integer list parameter
func (p Params) Ints(key string) ([]int, bool) {
	raw, ok := p[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]int, 0, len(raw))
	for _, item := range raw {
		f, isNum := item.(float64)
		if !isNum || f != math.Trunc(f) {
			return nil, false
		}
		out = append(out, int(f))
	}
	return out, true
}

// String returns a string parameter
func (p Params) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Outcome is the result of one resolved round: the multiplier applied to
// the stake and the payout to credit (zero on a loss). Details carries the
// game-specific data the presentation layer animates from.
type Outcome struct {
	Game       string  `json:"game"`
	Multiplier float64 `json:"multiplier"`
	Payout     float64 `json:"payout"`
	Details    any     `json:"details,omitempty"`
}

// Game is a stateless outcome generator: a pure function of the injected
// random source and the player parameters. Multi-step games (crash, mines,
// trivia, blackjack) expose round objects instead.
type Game interface {
	// Name returns the game identifier used in the log
	Name() string

	// Play resolves one round for the given stake
	Play(src random.Source, stake float64, params Params) (*Outcome, error)
}

// heavyTail is the shared draw transform behind limbo's generated value
// and crash's committed crash point: 0.99/(1-u) over uniform u in [0,1).
// The 0.99 factor is the house edge; do not substitute another
// heavy-tailed generator.
func heavyTail(u float64) float64 {
	return 0.99 / (1 - u)
}

// floorCents floors a multiplier to two decimals with a hard floor of 1.0
func floorCents(v float64) float64 {
	return math.Max(1.0, math.Floor(v*100)/100)
}

func errInvalidSelection(message string) error {
	return types.NewGameError(types.ErrInvalidSelection, message)
}
