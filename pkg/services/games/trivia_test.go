package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/random"
)

func TestTriviaSpinCommitsCategoryAndQuestion(t *testing.T) {
	trivia := NewTrivia()
	src := &random.Sequence{Ints: []int{0, 0}} // GEO, first question

	round := trivia.Spin(src, 100)

	assert.Equal(t, "GEO", round.Category().ID)
	assert.Equal(t, "Geografía", round.Category().Name)
	assert.Equal(t, "¿Cuál es la capital de Australia?", round.Question().Prompt)
}

func TestTriviaRotationSettlesOnSegment(t *testing.T) {
	trivia := NewTrivia()

	round := trivia.Spin(&random.Sequence{Ints: []int{2}}, 100) // ART, index 2
	assert.Equal(t, 2160+(360-2*60), round.Rotation())
}

func TestTriviaCorrectAnswerPaysDoubleAndCollectsBadge(t *testing.T) {
	trivia := NewTrivia()
	round := trivia.Spin(&random.Sequence{Ints: []int{0, 0}}, 100)

	outcome, err := trivia.Answer(round, 2) // Canberra
	require.NoError(t, err)

	assert.Equal(t, 2.0, outcome.Multiplier)
	assert.Equal(t, 200.0, outcome.Payout)

	details := outcome.Details.(*TriviaDetails)
	assert.True(t, details.Correct)
	assert.False(t, details.Jackpot)
	assert.Equal(t, []string{"GEO"}, details.Badges)
}

func TestTriviaWrongAnswerPaysNothing(t *testing.T) {
	trivia := NewTrivia()
	round := trivia.Spin(&random.Sequence{Ints: []int{0, 0}}, 100)

	outcome, err := trivia.Answer(round, 0) // Sydney
	require.NoError(t, err)

	assert.Zero(t, outcome.Multiplier)
	assert.Zero(t, outcome.Payout)
	assert.Empty(t, trivia.Badges())
}

func TestTriviaRepeatBadgeDoesNotStack(t *testing.T) {
	trivia := NewTrivia()

	for i := 0; i < 2; i++ {
		round := trivia.Spin(&random.Sequence{Ints: []int{0, 0}}, 100)
		_, err := trivia.Answer(round, 2)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"GEO"}, trivia.Badges())
}

func TestTriviaSixthBadgePaysJackpotAndResets(t *testing.T) {
	trivia := NewTrivia()

	// first question of each category, with its correct option
	answers := []int{2, 0, 2, 0, 2, 2}

	for category := 0; category < 5; category++ {
		round := trivia.Spin(&random.Sequence{Ints: []int{category, 0}}, 100)
		outcome, err := trivia.Answer(round, answers[category])
		require.NoError(t, err)
		assert.Equal(t, 2.0, outcome.Multiplier, "category %d", category)
	}
	assert.Len(t, trivia.Badges(), 5)

	round := trivia.Spin(&random.Sequence{Ints: []int{5, 0}}, 100)
	outcome, err := trivia.Answer(round, answers[5])
	require.NoError(t, err)

	assert.Equal(t, 52.0, outcome.Multiplier)
	assert.Equal(t, 5200.0, outcome.Payout)

	details := outcome.Details.(*TriviaDetails)
	assert.True(t, details.Jackpot)
	assert.Empty(t, details.Badges)
	assert.Empty(t, trivia.Badges())
}

func TestTriviaDoubleAnswerFails(t *testing.T) {
	trivia := NewTrivia()
	round := trivia.Spin(&random.Sequence{Ints: []int{0, 0}}, 100)

	_, err := trivia.Answer(round, 2)
	require.NoError(t, err)

	_, err = trivia.Answer(round, 2)
	assert.True(t, types.IsGameError(err, types.ErrInvalidState))
}

func TestTriviaAnswerOptionOutOfRange(t *testing.T) {
	trivia := NewTrivia()
	round := trivia.Spin(&random.Sequence{Ints: []int{0, 0}}, 100)

	for _, option := range []int{-1, 4} {
		_, err := trivia.Answer(round, option)
		assert.True(t, types.IsGameError(err, types.ErrInvalidSelection), "option %d", option)
	}
}

func TestTriviaBankCoversEveryCategory(t *testing.T) {
	for _, category := range TriviaCategories {
		bank := triviaBank[category.ID]
		require.NotEmpty(t, bank, "category %s", category.ID)
		for _, question := range bank {
			assert.GreaterOrEqual(t, question.Answer, 0)
			assert.Less(t, question.Answer, len(question.Options))
		}
	}
}
