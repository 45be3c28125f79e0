package games

import "github.com/fintechx/casino/pkg/random"

const (
	kenoBoardSize = 40
	kenoDrawCount = 20
	kenoMaxPicks  = 10
)

// Keno draws 20 of 40 numbers without replacement and pays by match count:
// 0.5x per match from 2 matches, stepping up to 2x per match from 5.
type Keno struct{}

// KenoDetails reports the drawn numbers and match count
type KenoDetails struct {
	Draw    []int `json:"draw"`
	Matches int   `json:"matches"`
}

// Name returns the game identifier
func (Keno) Name() string { return "KENO" }

// Play resolves one round. Params: "picks", 1 to 10 distinct numbers in 1..40.
func (g Keno) Play(src random.Source, stake float64, params Params) (*Outcome, error) {
	picks, ok := params.Ints("picks")
	if !ok {
		return nil, errInvalidSelection("keno: picks are required")
	}
	return PlayKeno(src, stake, picks)
}

// PlayKeno resolves a keno round for explicit picks
func PlayKeno(src random.Source, stake float64, picks []int) (*Outcome, error) {
	if len(picks) == 0 {
		return nil, errInvalidSelection("keno: at least one number must be picked")
	}
	if len(picks) > kenoMaxPicks {
		return nil, errInvalidSelection("keno: at most 10 numbers may be picked")
	}
	picked := make(map[int]bool, len(picks))
	for _, n := range picks {
		if n < 1 || n > kenoBoardSize {
			return nil, errInvalidSelection("keno: picks must be between 1 and 40")
		}
		if picked[n] {
			return nil, errInvalidSelection("keno: picks must be distinct")
		}
		picked[n] = true
	}

	// Draw 20 numbers without replacement
	perm := src.Perm(kenoBoardSize)
	draw := make([]int, kenoDrawCount)
	matches := 0
	for i := 0; i < kenoDrawCount; i++ {
		draw[i] = perm[i] + 1
		if picked[draw[i]] {
			matches++
		}
	}

	outcome := &Outcome{
		Game:       "KENO",
		Multiplier: kenoMultiplier(matches),
		Details:    KenoDetails{Draw: draw, Matches: matches},
	}
	outcome.Payout = stake * outcome.Multiplier
	return outcome, nil
}

func kenoMultiplier(matches int) float64 {
	switch {
	case matches >= 5:
		return float64(matches) * 2
	case matches >= 2:
		return float64(matches) * 0.5
	default:
		return 0
	}
}
