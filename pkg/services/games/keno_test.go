package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/random"
)

// The Sequence fake returns the identity permutation, so the draw is
// always 1..20 and match counts can be chosen through the picks.

func TestPlayKenoDrawAndMatches(t *testing.T) {
	src := &random.Sequence{}

	outcome, err := PlayKeno(src, 100, []int{1, 2, 39, 40})
	require.NoError(t, err)

	details := outcome.Details.(KenoDetails)
	assert.Len(t, details.Draw, 20)
	assert.Equal(t, 1, details.Draw[0])
	assert.Equal(t, 20, details.Draw[19])
	assert.Equal(t, 2, details.Matches)
}

func TestPlayKenoMultiplierSteps(t *testing.T) {
	tests := []struct {
		name       string
		picks      []int
		multiplier float64
	}{
		{name: "no matches pays nothing", picks: []int{21, 22, 23}, multiplier: 0},
		{name: "one match pays nothing", picks: []int{1, 30, 31}, multiplier: 0},
		{name: "two matches pay half per match", picks: []int{1, 2, 30}, multiplier: 1},
		{name: "four matches pay half per match", picks: []int{1, 2, 3, 4}, multiplier: 2},
		{name: "five matches step up to double per match", picks: []int{1, 2, 3, 4, 5}, multiplier: 10},
		{name: "ten matches", picks: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, multiplier: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := PlayKeno(&random.Sequence{}, 100, tt.picks)
			require.NoError(t, err)

			assert.Equal(t, tt.multiplier, outcome.Multiplier)
			assert.Equal(t, 100*tt.multiplier, outcome.Payout)
		})
	}
}

func TestPlayKenoRejectsInvalidPicks(t *testing.T) {
	tests := []struct {
		name  string
		picks []int
	}{
		{name: "no picks", picks: nil},
		{name: "too many picks", picks: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{name: "pick below range", picks: []int{0, 5}},
		{name: "pick above range", picks: []int{5, 41}},
		{name: "duplicate pick", picks: []int{7, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlayKeno(&random.Sequence{}, 100, tt.picks)
			assert.True(t, types.IsGameError(err, types.ErrInvalidSelection))
		})
	}
}
