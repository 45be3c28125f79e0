package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/casino/pkg/entities"
	"github.com/fintechx/casino/pkg/repositories/game"
)

func TestDashboardSeededBaseWithEmptyLog(t *testing.T) {
	service := NewService(game.NewMemoryRepository())

	dashboard, err := service.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(BaseVolume), dashboard.TotalVolume)
	assert.Equal(t, float64(BasePayout), dashboard.TotalPayout)
	assert.Equal(t, float64(BaseVolume-BasePayout), dashboard.HouseProfit)
	assert.Equal(t, BaseUsers, dashboard.TotalUsers)
	assert.Zero(t, dashboard.Rounds)
	assert.Empty(t, dashboard.Games)
}

func TestDashboardAggregatesLog(t *testing.T) {
	repository := game.NewMemoryRepository()
	ctx := context.Background()

	entries := []*entities.LogEntry{
		{ID: "1", User: "alice", Game: "DICE", Bet: 100, Payout: 196, Outcome: entities.OutcomeWin},
		{ID: "2", User: "alice", Game: "DICE", Bet: 200, Payout: 0, Outcome: entities.OutcomeLoss},
		{ID: "3", User: "bob", Game: "SLOTS", Bet: 50, Payout: 100, Outcome: entities.OutcomeWin},
	}
	for _, entry := range entries {
		require.NoError(t, repository.SaveEntry(ctx, entry))
	}

	dashboard, err := NewService(repository).GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, float64(BaseVolume+350), dashboard.TotalVolume)
	assert.Equal(t, float64(BasePayout+296), dashboard.TotalPayout)
	assert.Equal(t, dashboard.TotalVolume-dashboard.TotalPayout, dashboard.HouseProfit)
	assert.Equal(t, BaseUsers+2, dashboard.TotalUsers)
	assert.Equal(t, 3, dashboard.Rounds)

	require.Len(t, dashboard.Games, 2)
	byGame := make(map[string]GameCount)
	for _, count := range dashboard.Games {
		byGame[count.Game] = count
	}
	assert.Equal(t, 2, byGame["DICE"].Rounds)
	assert.Equal(t, 300.0, byGame["DICE"].Volume)
	assert.Equal(t, 1, byGame["SLOTS"].Rounds)
}
