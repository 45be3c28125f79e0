package games

import "github.com/fintechx/casino/pkg/random"

// Limbo generates a heavy-tailed multiplier and pays the player's target
// when the generated value reaches it.
type Limbo struct{}

// LimboDetails reports the generated multiplier behind a resolved round
type LimboDetails struct {
	Generated float64 `json:"generated"`
	Target    float64 `json:"target"`
}

// Name returns the game identifier
func (Limbo) Name() string { return "LIMBO" }

// Play resolves one round. Params: "target" multiplier > 1.
func (g Limbo) Play(src random.Source, stake float64, params Params) (*Outcome, error) {
	target, ok := params.Float("target")
	if !ok {
		return nil, errInvalidSelection("limbo: target is required")
	}
	return PlayLimbo(src, stake, target)
}

// PlayLimbo resolves a limbo round for an explicit target multiplier
func PlayLimbo(src random.Source, stake, target float64) (*Outcome, error) {
	if target <= 1 {
		return nil, errInvalidSelection("limbo: target must be greater than 1")
	}

	generated := LimboResult(src.Float64())

	outcome := &Outcome{
		Game:    "LIMBO",
		Details: LimboDetails{Generated: generated, Target: target},
	}
	if generated >= target {
		outcome.Multiplier = target
		outcome.Payout = stake * target
	}
	return outcome, nil
}

// LimboResult maps a uniform draw to the generated multiplier: the shared
// 0.99/(1-u) transform floored to two decimals, never below 1.00.
func LimboResult(u float64) float64 {
	return floorCents(heavyTail(u))
}
