package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/random"
)

func TestLimboResult(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		want float64
	}{
		{name: "low draw floors to the 1.00 minimum", u: 0, want: 1.0},
		{name: "median draw", u: 0.5, want: 1.98},
		{name: "high draw", u: 0.9, want: 9.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LimboResult(tt.u))
		})
	}
}

func TestLimboResultMonotonic(t *testing.T) {
	prev := 0.0
	for u := 0.0; u < 0.999; u += 0.001 {
		got := LimboResult(u)
		assert.GreaterOrEqual(t, got, prev, "u=%v", u)
		prev = got
	}
}

func TestPlayLimboWin(t *testing.T) {
	src := &random.Sequence{Floats: []float64{0.9}} // generates 9.89

	outcome, err := PlayLimbo(src, 100, 5)
	require.NoError(t, err)

	assert.Equal(t, 5.0, outcome.Multiplier)
	assert.Equal(t, 500.0, outcome.Payout)

	details := outcome.Details.(LimboDetails)
	assert.Equal(t, 9.89, details.Generated)
}

func TestPlayLimboGeneratedOnTargetWins(t *testing.T) {
	src := &random.Sequence{Floats: []float64{0.5}} // generates exactly 1.98

	outcome, err := PlayLimbo(src, 100, 1.98)
	require.NoError(t, err)

	assert.Equal(t, 198.0, outcome.Payout)
}

func TestPlayLimboLoss(t *testing.T) {
	src := &random.Sequence{Floats: []float64{0.5}} // generates 1.98

	outcome, err := PlayLimbo(src, 100, 2)
	require.NoError(t, err)

	assert.Zero(t, outcome.Multiplier)
	assert.Zero(t, outcome.Payout)
}

func TestPlayLimboRejectsTargetAtOrBelowOne(t *testing.T) {
	for _, target := range []float64{1, 0.5, 0, -2} {
		_, err := PlayLimbo(&random.Sequence{}, 100, target)
		assert.True(t, types.IsGameError(err, types.ErrInvalidSelection), "target %v", target)
	}
}
