package games

import (
	"math"
	"sync"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/random"
)

// Ascent pacing: the multiplier climbs by an accelerating step per tick
const (
	crashStartSpeed = 0.01
	crashAccel      = 0.0005
)

// CrashRound is one crash ascent. The crash point is committed from the
// shared heavy-tail transform the moment the round starts; ticks only
// reveal it. Cash-out captures the multiplier synchronously under the
// round lock, so a tick racing the cash-out can never pay a multiplier the
// player did not see.
type CrashRound struct {
	mu sync.Mutex

	stake      float64
	crashPoint float64
	current    float64
	speed      float64
	done       bool
	crashed    bool
}

// NewCrashRound commits a crash point and starts the ascent at 1.00x
func NewCrashRound(src random.Source, stake float64) *CrashRound {
	return &CrashRound{
		stake:      stake,
		crashPoint: math.Max(1.0, heavyTail(src.Float64())),
		current:    1.0,
		speed:      crashStartSpeed,
	}
}

// Tick advances the ascent one step and reports the multiplier and whether
// the committed crash point has been reached. Ticking a finished round is
// a no-op.
func (r *CrashRound) Tick() (multiplier float64, crashed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return r.current, r.crashed
	}

	r.speed += crashAccel
	r.current += r.speed
	if r.current >= r.crashPoint {
		r.done = true
		r.crashed = true
	}
	return r.current, r.crashed
}

// Multiplier returns the current multiplier
func (r *CrashRound) Multiplier() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Crashed reports whether the ascent has hit the committed point
func (r *CrashRound) Crashed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.crashed
}

// CrashPoint returns the committed crash point
func (r *CrashRound) CrashPoint() float64 {
	return r.crashPoint
}

// CashOut stops the ascent and pays the multiplier at the instant of the
// call. It fails once the crash point has been reached or the round has
// already been cashed out; a crashed round settles as a loss via Resolve.
func (r *CrashRound) CashOut() (*Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.crashed {
		return nil, types.NewGameError(types.ErrInvalidState, "crash: round already crashed")
	}
	if r.done {
		return nil, types.NewGameError(types.ErrInvalidState, "crash: round already cashed out")
	}

	r.done = true
	multiplier := r.current
	return &Outcome{
		Game:       "CRASH",
		Multiplier: multiplier,
		Payout:     math.Floor(r.stake * multiplier),
	}, nil
}

// Resolve settles a crashed round as a loss
func (r *CrashRound) Resolve() (*Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.crashed {
		return nil, types.NewGameError(types.ErrInvalidState, "crash: round has not crashed")
	}
	return &Outcome{Game: "CRASH"}, nil
}
