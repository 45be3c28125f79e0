package games

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsDecodedFromJSON(t *testing.T) {
	var params Params
	err := json.Unmarshal([]byte(`{"target": 50, "picks": [1, 2, 3], "color": "RED"}`), &params)
	require.NoError(t, err)

	target, ok := params.Float("target")
	assert.True(t, ok)
	assert.Equal(t, 50.0, target)

	picks, ok := params.Ints("picks")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, picks)

	color, ok := params.String("color")
	assert.True(t, ok)
	assert.Equal(t, "RED", color)
}

func TestParamsMissingKeys(t *testing.T) {
	params := Params{}

	_, ok := params.Float("target")
	assert.False(t, ok)

	_, ok = params.Ints("picks")
	assert.False(t, ok)

	_, ok = params.String("color")
	assert.False(t, ok)
}

func TestParamsIntRejectsFraction(t *testing.T) {
	params := Params{"count": 2.5}

	_, ok := params.Int("count")
	assert.False(t, ok)
}

func TestHeavyTailTransform(t *testing.T) {
	tests := []struct {
		name string
		u    float64
		want float64
	}{
		{name: "zero draw lands at the house edge", u: 0, want: 0.99},
		{name: "median draw", u: 0.5, want: 1.98},
		{name: "high draw", u: 0.9, want: 9.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, heavyTail(tt.u), 1e-9)
		})
	}
}

func TestFloorCents(t *testing.T) {
	assert.Equal(t, 1.0, floorCents(0.99))
	assert.Equal(t, 1.98, floorCents(1.989))
	assert.Equal(t, 9.89, floorCents(9.899999))
}
