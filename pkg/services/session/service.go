package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/entities"
	gameRepo "github.com/fintechx/casino/pkg/repositories/game"
	"github.com/fintechx/casino/pkg/services/wallet"
)

// SystemGame is the log label for non-game entries (registration bonus,
// admin access grants)
const SystemGame = "SYSTEM"

// Observer receives every settled log entry. Used by the presentation
// layer for win/loss banners and the lobby feed.
type Observer func(entry *entities.LogEntry)

// Session is the wager contract every game plays against: it owns the
// balance, the append-only game log, and the one-outstanding-round rule.
// All mutation happens under a single mutex, so a round settles atomically
// even with concurrent connections on the same session.
type Session struct {
	mu sync.Mutex

	profile   *entities.Profile
	wallet    wallet.WalletService
	logs      gameRepo.Repository
	observers []Observer

	// Current round. Stake is debited on PlaceBet, before the outcome
	// is known; Settle both credits and logs.
	activeGame  string
	activeStake float64
	active      bool
}

// New creates a session for a registered profile
func New(profile *entities.Profile, walletService wallet.WalletService, logRepository gameRepo.Repository) *Session {
	return &Session{
		profile: profile,
		wallet:  walletService,
		logs:    logRepository,
	}
}

// Profile returns the player profile behind this session
func (s *Session) Profile() *entities.Profile {
	return s.profile
}

// OnSettled registers an observer notified after every settled round
func (s *Session) OnSettled(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Balance returns the current balance
func (s *Session) Balance(ctx context.Context) (float64, error) {
	return s.wallet.GetBalance(ctx, s.profile.Name)
}

// PlaceBet validates and debits a stake for one round of the named game.
// The stake is rejected when it exceeds the balance, when it is not
// positive, or when another round is already outstanding. On rejection the
// balance is unchanged and no log entry is produced.
func (s *Session) PlaceBet(ctx context.Context, game string, stake float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stake <= 0 {
		return types.NewGameError(types.ErrInvalidSelection, "stake must be positive")
	}
	if s.active {
		return types.NewGameError(types.ErrRoundInProgress, "a round is already in progress")
	}

	balance, err := s.wallet.GetBalance(ctx, s.profile.Name)
	if err != nil {
		return types.WrapError(types.ErrInternalError, "failed to read balance", err)
	}
	if stake > balance {
		return types.NewGameError(types.ErrInsufficientFunds, "stake exceeds balance")
	}

	if err := s.wallet.RemoveFunds(ctx, s.profile.Name, stake, entities.TransactionTypeBet, game+" bet"); err != nil {
		return types.WrapError(types.ErrInternalError, "failed to debit stake", err)
	}

	s.activeGame = game
	s.activeStake = stake
	s.active = true

	log.WithFields(log.Fields{
		"user":  s.profile.Name,
		"game":  game,
		"stake": stake,
	}).Debug("bet placed")

	return nil
}

// Settle credits the payout for the outstanding round (zero on a loss),
// appends exactly one log entry and notifies observers. The entry is a WIN
// whenever payout covers the stake, so a push settles as WIN.
func (s *Session) Settle(ctx context.Context, payout, multiplier float64) (*entities.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil, types.NewGameError(types.ErrNoActiveRound, "no round to settle")
	}

	if payout > 0 {
		if err := s.wallet.AddFunds(ctx, s.profile.Name, payout, entities.TransactionTypePayout, s.activeGame+" payout"); err != nil {
			return nil, types.WrapError(types.ErrInternalError, "failed to credit payout", err)
		}
	}

	entry := &entities.LogEntry{
		ID:         uuid.New().String(),
		User:       s.profile.Name,
		Game:       s.activeGame,
		Bet:        s.activeStake,
		Payout:     payout,
		Multiplier: multiplier,
		Timestamp:  time.Now(),
		Outcome:    entities.ClassifyOutcome(s.activeStake, payout),
	}
	if err := s.logs.SaveEntry(ctx, entry); err != nil {
		return nil, types.WrapError(types.ErrInternalError, "failed to append log entry", err)
	}

	s.active = false
	s.activeGame = ""
	s.activeStake = 0

	log.WithFields(log.Fields{
		"user":       entry.User,
		"game":       entry.Game,
		"bet":        entry.Bet,
		"payout":     entry.Payout,
		"multiplier": entry.Multiplier,
		"outcome":    entry.Outcome,
	}).Info("round settled")

	for _, fn := range s.observers {
		fn(entry)
	}

	return entry, nil
}

// Stake returns the stake of the outstanding round, zero when idle
func (s *Session) Stake() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeStake
}

// InRound reports whether a round is currently outstanding
func (s *Session) InRound() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// RecordSystem appends a non-game entry (registration bonus, admin grant)
// without touching the round state
func (s *Session) RecordSystem(ctx context.Context, payout, multiplier float64) (*entities.LogEntry, error) {
	entry := &entities.LogEntry{
		ID:         uuid.New().String(),
		User:       s.profile.Name,
		Game:       SystemGame,
		Bet:        0,
		Payout:     payout,
		Multiplier: multiplier,
		Timestamp:  time.Now(),
		Outcome:    entities.ClassifyOutcome(0, payout),
	}
	if err := s.logs.SaveEntry(ctx, entry); err != nil {
		return nil, types.WrapError(types.ErrInternalError, "failed to append log entry", err)
	}
	return entry, nil
}

// Log returns this session's log entries, most recent first
func (s *Session) Log(ctx context.Context, limit int) ([]*entities.LogEntry, error) {
	return s.logs.GetUserEntries(ctx, s.profile.Name, limit)
}

// Transactions returns this session's wallet history, most recent first
func (s *Session) Transactions(ctx context.Context, limit int) ([]*entities.Transaction, error) {
	return s.wallet.GetTransactions(ctx, s.profile.Name, limit)
}
