package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/entities"
	gameRepo "github.com/fintechx/casino/pkg/repositories/game"
	walletRepo "github.com/fintechx/casino/pkg/repositories/wallet"
	"github.com/fintechx/casino/pkg/services/wallet"
)

func newTestSession(t *testing.T, balance float64) *Session {
	t.Helper()

	walletService := wallet.NewService(walletRepo.NewMemoryRepository())
	_, err := walletService.CreateWallet(context.Background(), "tester", balance, "test bonus")
	require.NoError(t, err)

	profile := &entities.Profile{Name: "tester", JoinedAt: time.Now(), VIP: true}
	return New(profile, walletService, gameRepo.NewMemoryRepository())
}

func TestPlaceBetRejectsStakeOverBalance(t *testing.T) {
	s := newTestSession(t, 100)
	ctx := context.Background()

	err := s.PlaceBet(ctx, "DICE", 150)
	assert.True(t, types.IsGameError(err, types.ErrInsufficientFunds))

	// Balance unchanged and no log entry on rejection
	balance, err := s.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance)

	entries, err := s.Log(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPlaceBetRejectsNonPositiveStake(t *testing.T) {
	s := newTestSession(t, 100)

	err := s.PlaceBet(context.Background(), "DICE", 0)
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))

	err = s.PlaceBet(context.Background(), "DICE", -5)
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))
}

func TestPlaceBetRejectsWhileRoundOutstanding(t *testing.T) {
	s := newTestSession(t, 100)
	ctx := context.Background()

	require.NoError(t, s.PlaceBet(ctx, "MINES", 10))

	err := s.PlaceBet(ctx, "DICE", 10)
	assert.True(t, types.IsGameError(err, types.ErrRoundInProgress))
}

func TestSettleBalanceInvariant(t *testing.T) {
	// balance_after = balance_before - stake + payout, including payout 0
	testCases := []struct {
		name   string
		stake  float64
		payout float64
	}{
		{"win", 100, 196},
		{"loss", 100, 0},
		{"push", 100, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, 1000)
			ctx := context.Background()

			require.NoError(t, s.PlaceBet(ctx, "DICE", tc.stake))
			_, err := s.Settle(ctx, tc.payout, tc.payout/tc.stake)
			require.NoError(t, err)

			balance, err := s.Balance(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1000-tc.stake+tc.payout, balance)
		})
	}
}

func TestSettleAppendsExactlyOneEntry(t *testing.T) {
	s := newTestSession(t, 1000)
	ctx := context.Background()

	require.NoError(t, s.PlaceBet(ctx, "DICE", 100))
	entry, err := s.Settle(ctx, 196, 1.96)
	require.NoError(t, err)

	entries, err := s.Log(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, "DICE", entries[0].Game)
	assert.Equal(t, entities.OutcomeWin, entries[0].Outcome)
}

func TestSettleOutcomeClassification(t *testing.T) {
	// WIN iff payout >= stake; a break-even push is labelled WIN
	testCases := []struct {
		payout  float64
		outcome entities.Outcome
	}{
		{196, entities.OutcomeWin},
		{100, entities.OutcomeWin}, // push
		{99.99, entities.OutcomeLoss},
		{0, entities.OutcomeLoss},
	}

	for _, tc := range testCases {
		s := newTestSession(t, 1000)
		ctx := context.Background()

		require.NoError(t, s.PlaceBet(ctx, "ROULETTE", 100))
		entry, err := s.Settle(ctx, tc.payout, tc.payout/100)
		require.NoError(t, err)

		if entry.Outcome != tc.outcome {
			t.Errorf("payout %.2f: expected outcome %s, got %s", tc.payout, tc.outcome, entry.Outcome)
		}
	}
}

func TestSettleWithoutRound(t *testing.T) {
	s := newTestSession(t, 100)

	_, err := s.Settle(context.Background(), 10, 1)
	assert.True(t, types.IsGameError(err, types.ErrNoActiveRound))
}

func TestObserverNotifiedOnSettle(t *testing.T) {
	s := newTestSession(t, 1000)
	ctx := context.Background()

	var seen []*entities.LogEntry
	s.OnSettled(func(entry *entities.LogEntry) {
		seen = append(seen, entry)
	})

	require.NoError(t, s.PlaceBet(ctx, "SLOTS", 10))
	_, err := s.Settle(ctx, 20, 2)
	require.NoError(t, err)

	require.Len(t, seen, 1)
	assert.Equal(t, "SLOTS", seen[0].Game)
	assert.Equal(t, 20.0, seen[0].Payout)
}

func TestEndToEndDiceScenario(t *testing.T) {
	// stake=100, T=50, roll=30 => win, payout 196, delta +96, one WIN entry
	s := newTestSession(t, 1000)
	ctx := context.Background()

	require.NoError(t, s.PlaceBet(ctx, "DICE", 100))

	multiplier := 98.0 / 50.0
	payout := 100 * multiplier
	entry, err := s.Settle(ctx, payout, multiplier)
	require.NoError(t, err)

	balance, err := s.Balance(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1096.0, balance)
	assert.Equal(t, entities.OutcomeWin, entry.Outcome)
	assert.InDelta(t, 1.96, entry.Multiplier, 1e-9)
}

func TestRecordSystemEntry(t *testing.T) {
	s := newTestSession(t, 10000)
	ctx := context.Background()

	entry, err := s.RecordSystem(ctx, 10000, 1)
	require.NoError(t, err)
	assert.Equal(t, SystemGame, entry.Game)
	assert.Equal(t, entities.OutcomeWin, entry.Outcome)
	assert.False(t, s.InRound())
}
