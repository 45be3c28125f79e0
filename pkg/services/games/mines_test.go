package games

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/random"
)

// The Sequence fake returns the identity permutation, so a round with N
// mines always has them on cells 0..N-1.

func TestNewMinesRoundValidatesCount(t *testing.T) {
	for _, count := range []int{0, -1, 25, 100} {
		_, err := NewMinesRound(&random.Sequence{}, 100, count)
		assert.True(t, types.IsGameError(err, types.ErrInvalidSelection), "count %d", count)
	}

	round, err := NewMinesRound(&random.Sequence{}, 100, 24)
	require.NoError(t, err)
	assert.NotNil(t, round)
}

func TestMinesSafeRevealsCompound(t *testing.T) {
	round, err := NewMinesRound(&random.Sequence{}, 100, 3)
	require.NoError(t, err)

	for i, cell := range []int{3, 4, 5} {
		hit, multiplier, err := round.Reveal(cell)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.InDelta(t, math.Pow(1.15, float64(i+1)), multiplier, 1e-9)
	}
	assert.Equal(t, 3, round.SafeReveals())
}

func TestMinesCashOutPaysCompoundedStake(t *testing.T) {
	round, err := NewMinesRound(&random.Sequence{}, 100, 3)
	require.NoError(t, err)

	for _, cell := range []int{10, 11, 12, 13} {
		_, _, err := round.Reveal(cell)
		require.NoError(t, err)
	}

	outcome, err := round.CashOut()
	require.NoError(t, err)

	want := 100 * math.Pow(1.15, 4)
	assert.InDelta(t, want, outcome.Payout, 1e-9)

	details := outcome.Details.(MinesDetails)
	assert.Equal(t, 4, details.SafeReveals)
	assert.Equal(t, []int{0, 1, 2}, details.Mines)
}

func TestMinesRevealMineEndsRound(t *testing.T) {
	round, err := NewMinesRound(&random.Sequence{}, 100, 3)
	require.NoError(t, err)

	_, _, err = round.Reveal(5)
	require.NoError(t, err)

	hit, multiplier, err := round.Reveal(0)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Zero(t, multiplier)
	assert.True(t, round.Done())

	// everything is lost, the earlier safe reveal included
	_, err = round.CashOut()
	assert.True(t, types.IsGameError(err, types.ErrInvalidState))

	outcome, err := round.Resolve()
	require.NoError(t, err)
	assert.Zero(t, outcome.Payout)
}

func TestMinesCashOutWithNothingRevealed(t *testing.T) {
	round, err := NewMinesRound(&random.Sequence{}, 100, 3)
	require.NoError(t, err)

	_, err = round.CashOut()
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))
}

func TestMinesRevealValidation(t *testing.T) {
	round, err := NewMinesRound(&random.Sequence{}, 100, 3)
	require.NoError(t, err)

	_, _, err = round.Reveal(-1)
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))

	_, _, err = round.Reveal(25)
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))

	_, _, err = round.Reveal(5)
	require.NoError(t, err)
	_, _, err = round.Reveal(5)
	assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))
}

func TestMinesRevealAfterCashOutFails(t *testing.T) {
	round, err := NewMinesRound(&random.Sequence{}, 100, 3)
	require.NoError(t, err)

	_, _, err = round.Reveal(5)
	require.NoError(t, err)
	_, err = round.CashOut()
	require.NoError(t, err)

	_, _, err = round.Reveal(6)
	assert.True(t, types.IsGameError(err, types.ErrInvalidState))
}

func TestMinesResolveWithoutExplosionFails(t *testing.T) {
	round, err := NewMinesRound(&random.Sequence{}, 100, 3)
	require.NoError(t, err)

	_, err = round.Resolve()
	assert.True(t, types.IsGameError(err, types.ErrInvalidState))
}
