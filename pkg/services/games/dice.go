package games

import "github.com/fintechx/casino/pkg/random"

const (
	diceMinTarget = 2
	diceMaxTarget = 98
)

// Dice is the roll-under game: pick a target T, roll uniform in [0,100),
// win when the roll lands at or below T. The 98/T multiplier bakes in a
// ~2% house edge.
type Dice struct{}

// DiceDetails reports the roll behind a resolved round
type DiceDetails struct {
	Roll   float64 `json:"roll"`
	Target float64 `json:"target"`
}

// Name returns the game identifier
func (Dice) Name() string { return "DICE" }

// Play resolves one round. Params: "target" in [2, 98].
func (g Dice) Play(src random.Source, stake float64, params Params) (*Outcome, error) {
	target, ok := params.Float("target")
	if !ok {
		return nil, errInvalidSelection("dice: target is required")
	}
	return PlayDice(src, stake, target)
}

// PlayDice resolves a dice round for an explicit target
func PlayDice(src random.Source, stake, target float64) (*Outcome, error) {
	if target < diceMinTarget || target > diceMaxTarget {
		return nil, errInvalidSelection("dice: target must be between 2 and 98")
	}

	roll := src.Float64() * 100

	outcome := &Outcome{
		Game:    "DICE",
		Details: DiceDetails{Roll: roll, Target: target},
	}
	if roll <= target {
		outcome.Multiplier = 98 / target
		outcome.Payout = stake * outcome.Multiplier
	}
	return outcome, nil
}
