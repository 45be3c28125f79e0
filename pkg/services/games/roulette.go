package games

import "github.com/fintechx/casino/pkg/random"

// RouletteColor is a color bet on the European wheel
type RouletteColor string

const (
	Red   RouletteColor = "RED"
	Black RouletteColor = "BLACK"
	Green RouletteColor = "GREEN"
)

// EuropeanWheel is the published European wheel permutation. The spin
// animation and the color table both key off list position, so the order
// must stay exactly as printed.
var EuropeanWheel = [37]int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30, 8, 23, 10,
	5, 24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
}

var redNumbers = map[int]bool{
	32: true, 19: true, 21: true, 25: true, 34: true, 27: true,
	36: true, 30: true, 23: true, 5: true, 16: true, 1: true,
	14: true, 9: true, 18: true, 7: true, 12: true, 3: true,
}

// ColorOf returns the wheel color of a number
func ColorOf(number int) RouletteColor {
	switch {
	case number == 0:
		return Green
	case redNumbers[number]:
		return Red
	default:
		return Black
	}
}

// Roulette is the European single-zero color game: 2x on a matched color,
// 36x on green zero.
type Roulette struct{}

// RouletteDetails reports the winning pocket and its wheel index (used by
// the spin animation)
type RouletteDetails struct {
	Index  int           `json:"index"`
	Number int           `json:"number"`
	Color  RouletteColor `json:"color"`
}

// Name returns the game identifier
func (Roulette) Name() string { return "ROULETTE" }

// Play resolves one round. Params: "color" in RED, BLACK, GREEN.
func (g Roulette) Play(src random.Source, stake float64, params Params) (*Outcome, error) {
	color, ok := params.String("color")
	if !ok {
		return nil, errInvalidSelection("roulette: color is required")
	}
	return PlayRoulette(src, stake, RouletteColor(color))
}

// PlayRoulette resolves a roulette round for an explicit color bet
func PlayRoulette(src random.Source, stake float64, bet RouletteColor) (*Outcome, error) {
	if bet != Red && bet != Black && bet != Green {
		return nil, errInvalidSelection("roulette: color must be RED, BLACK or GREEN")
	}

	index := src.Intn(len(EuropeanWheel))
	number := EuropeanWheel[index]
	color := ColorOf(number)

	outcome := &Outcome{
		Game:    "ROULETTE",
		Details: RouletteDetails{Index: index, Number: number, Color: color},
	}
	switch {
	case bet == Green && color == Green:
		outcome.Multiplier = 36
	case bet == color && color != Green:
		outcome.Multiplier = 2
	}
	outcome.Payout = stake * outcome.Multiplier
	return outcome, nil
}
