package games

import (
	"math"
	"sync"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/random"
)

const (
	minesCells    = 25
	minesMinCount = 1
	minesMaxCount = 24
	minesStep     = 1.15
)

// MinesRound is one mines board: N mines hidden among 25 cells, each safe
// reveal compounding the running multiplier by 1.15, any mine reveal
// zeroing the round.
type MinesRound struct {
	mu sync.Mutex

	stake       float64
	mines       [minesCells]bool
	revealed    [minesCells]bool
	safeReveals int
	done        bool
	exploded    bool
}

// NewMinesRound places mineCount mines uniformly without replacement
func NewMinesRound(src random.Source, stake float64, mineCount int) (*MinesRound, error) {
	if mineCount < minesMinCount || mineCount > minesMaxCount {
		return nil, errInvalidSelection("mines: mine count must be between 1 and 24")
	}

	r := &MinesRound{stake: stake}
	perm := src.Perm(minesCells)
	for _, cell := range perm[:mineCount] {
		r.mines[cell] = true
	}
	return r, nil
}

// Reveal uncovers a cell. A safe cell bumps the running multiplier; a mine
// ends the round with everything lost.
func (r *MinesRound) Reveal(cell int) (hitMine bool, multiplier float64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return false, 0, types.NewGameError(types.ErrInvalidState, "mines: round is over")
	}
	if cell < 0 || cell >= minesCells {
		return false, 0, errInvalidSelection("mines: cell out of range")
	}
	if r.revealed[cell] {
		return false, 0, errInvalidSelection("mines: cell already revealed")
	}

	r.revealed[cell] = true
	if r.mines[cell] {
		r.done = true
		r.exploded = true
		return true, 0, nil
	}

	r.safeReveals++
	return false, r.currentMultiplier(), nil
}

// CashOut ends the round and pays stake x 1.15^k for k safe reveals.
// Cashing out with nothing revealed is rejected; an exploded round settles
// as a loss via Resolve.
func (r *MinesRound) CashOut() (*Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.exploded {
		return nil, types.NewGameError(types.ErrInvalidState, "mines: round already exploded")
	}
	if r.done {
		return nil, types.NewGameError(types.ErrInvalidState, "mines: round already cashed out")
	}
	if r.safeReveals == 0 {
		return nil, errInvalidSelection("mines: nothing revealed yet")
	}

	r.done = true
	multiplier := r.currentMultiplier()
	return &Outcome{
		Game:       "MINES",
		Multiplier: multiplier,
		Payout:     r.stake * multiplier,
		Details:    MinesDetails{SafeReveals: r.safeReveals, Mines: r.minePositions()},
	}, nil
}

// Resolve settles an exploded round as a loss
func (r *MinesRound) Resolve() (*Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.exploded {
		return nil, types.NewGameError(types.ErrInvalidState, "mines: round has not exploded")
	}
	return &Outcome{
		Game:    "MINES",
		Details: MinesDetails{SafeReveals: r.safeReveals, Mines: r.minePositions()},
	}, nil
}

// SafeReveals returns the number of safe cells revealed so far
func (r *MinesRound) SafeReveals() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.safeReveals
}

// Done reports whether the round is over
func (r *MinesRound) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// MinesDetails reports the full board, returned only once the round ends
type MinesDetails struct {
	SafeReveals int   `json:"safeReveals"`
	Mines       []int `json:"mines"`
}

func (r *MinesRound) currentMultiplier() float64 {
	return math.Pow(minesStep, float64(r.safeReveals))
}

func (r *MinesRound) minePositions() []int {
	positions := make([]int, 0)
	for cell, isMine := range r.mines {
		if isMine {
			positions = append(positions, cell)
		}
	}
	return positions
}
