package games

import "github.com/fintechx/casino/pkg/random"

// SlotSymbol is one reel symbol
type SlotSymbol string

// The six-symbol alphabet, in reel order
const (
	SymbolCherry  SlotSymbol = "CHERRY"
	SymbolLemon   SlotSymbol = "LEMON"
	SymbolGrape   SlotSymbol = "GRAPE"
	SymbolDiamond SlotSymbol = "DIAMOND"
	SymbolSeven   SlotSymbol = "SEVEN"
	SymbolBell    SlotSymbol = "BELL"
)

var slotSymbols = [6]SlotSymbol{
	SymbolCherry, SymbolLemon, SymbolGrape, SymbolDiamond, SymbolSeven, SymbolBell,
}

// Slots is the three-reel game: each reel is an independent uniform pick.
// Triple sevens pay 50x, triple diamonds 25x, any other triple 10x, any
// pair 2x.
type Slots struct{}

// SlotsDetails reports the three reels behind a resolved round
type SlotsDetails struct {
	Reels [3]SlotSymbol `json:"reels"`
}

// Name returns the game identifier
func (Slots) Name() string { return "SLOTS" }

// Play resolves one round; slots take no parameters
func (g Slots) Play(src random.Source, stake float64, params Params) (*Outcome, error) {
	return PlaySlots(src, stake)
}

// PlaySlots resolves a slots round
func PlaySlots(src random.Source, stake float64) (*Outcome, error) {
	var reels [3]SlotSymbol
	for i := range reels {
		reels[i] = slotSymbols[src.Intn(len(slotSymbols))]
	}

	outcome := &Outcome{
		Game:       "SLOTS",
		Multiplier: slotsMultiplier(reels),
		Details:    SlotsDetails{Reels: reels},
	}
	outcome.Payout = stake * outcome.Multiplier
	return outcome, nil
}

func slotsMultiplier(reels [3]SlotSymbol) float64 {
	if reels[0] == reels[1] && reels[1] == reels[2] {
		switch reels[0] {
		case SymbolSeven:
			return 50
		case SymbolDiamond:
			return 25
		default:
			return 10
		}
	}
	if reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2] {
		return 2
	}
	return 0
}
