package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/entities"
	gameRepo "github.com/fintechx/casino/pkg/repositories/game"
	"github.com/fintechx/casino/pkg/services/blackjack"
	"github.com/fintechx/casino/pkg/services/games"
	"github.com/fintechx/casino/pkg/services/session"
	"github.com/fintechx/casino/pkg/services/wallet"
)

// Registering with the operator code grants the admin session
const (
	superadminCode = "SUPERADMIN"
	operatorName   = "Master Operator"

	adminOpeningBalance  = 10_000_000
	normalOpeningBalance = 10_000
)

// PlayerSession is one authenticated player: the wager session plus the
// in-flight state of the multi-step games. Trivia badges live here too,
// they survive across rounds but not across sessions.
type PlayerSession struct {
	mu sync.Mutex

	Session *session.Session
	Trivia  *games.Trivia

	crash       *games.CrashRound
	mines       *games.MinesRound
	triviaRound *games.TriviaRound
	blackjack   *blackjack.Round
}

// Manager registers players and resolves session tokens
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*PlayerSession

	wallets wallet.WalletService
	logs    gameRepo.Repository
}

// NewManager creates a session manager over the shared wallet service and
// game log
func NewManager(wallets wallet.WalletService, logs gameRepo.Repository) *Manager {
	return &Manager{
		sessions: make(map[string]*PlayerSession),
		wallets:  wallets,
		logs:     logs,
	}
}

// Register creates a profile, wallet and session for a new player and
// returns the session token. The operator code yields an admin profile
// with the operator bankroll; everyone else gets the registration bonus.
func (m *Manager) Register(ctx context.Context, name string) (string, *PlayerSession, error) {
	if name == "" {
		return "", nil, types.NewGameError(types.ErrInvalidSelection, "name is required")
	}

	profile := &entities.Profile{
		Name:     name,
		JoinedAt: time.Now(),
		VIP:      true,
	}
	opening := float64(normalOpeningBalance)
	description := "registration bonus"

	if name == superadminCode {
		profile.Name = operatorName
		profile.Admin = true
		opening = adminOpeningBalance
		description = "admin access granted"
	}

	if _, err := m.wallets.CreateWallet(ctx, profile.Name, opening, description); err != nil {
		if errors.Is(err, wallet.ErrWalletExists) {
			return "", nil, types.NewGameError(types.ErrInvalidSelection, "name already registered")
		}
		return "", nil, types.WrapError(types.ErrInternalError, "failed to create wallet", err)
	}

	sess := session.New(profile, m.wallets, m.logs)
	if profile.Admin {
		// the grant itself is logged, with nothing paid out
		if _, err := sess.RecordSystem(ctx, 0, 0); err != nil {
			return "", nil, err
		}
	} else {
		if _, err := sess.RecordSystem(ctx, normalOpeningBalance, 1); err != nil {
			return "", nil, err
		}
	}

	ps := &PlayerSession{
		Session: sess,
		Trivia:  games.NewTrivia(),
	}
	token := uuid.New().String()

	m.mu.Lock()
	m.sessions[token] = ps
	m.mu.Unlock()

	log.WithFields(log.Fields{
		"user":  profile.Name,
		"admin": profile.Admin,
	}).Info("player registered")

	return token, ps, nil
}

// Get resolves a session token
func (m *Manager) Get(token string) (*PlayerSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ps, ok := m.sessions[token]
	if !ok {
		return nil, types.NewGameError(types.ErrSessionNotFound, "unknown session token")
	}
	return ps, nil
}
