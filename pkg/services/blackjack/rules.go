package blackjack

import (
	"math"
	"strconv"

	"github.com/fintechx/casino/pkg/entities"
)

const (
	// DealerStandScore is the score the dealer (and the table bots)
	// stand on
	DealerStandScore = 17

	// BlackjackScore is the target hand value
	BlackjackScore = 21
)

// Result represents the outcome of a blackjack hand
type Result string

const (
	ResultWin       Result = "WIN"
	ResultLose      Result = "LOSE"
	ResultPush      Result = "PUSH"
	ResultBlackjack Result = "BLACKJACK"
)

// String returns the string representation of the result
func (r Result) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r Result) IsWin() bool {
	return r == ResultWin || r == ResultBlackjack
}

func GetCardValue(card *entities.Card) int {
	switch card.Rank {
	case entities.Ace:
		return 11
	case entities.Jack, entities.Queen, entities.King:
		return 10
	default:
		val, _ := strconv.Atoi(string(card.Rank))
		return val
	}
}

func IsAce(card *entities.Card) bool {
	return card.Rank == entities.Ace
}

// GetBestScore values aces at 11 and demotes them to 1 one at a time
// while the hand would bust
func GetBestScore(cards []*entities.Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += GetCardValue(card)
		if IsAce(card) {
			aces++
		}
	}

	for score > BlackjackScore && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

func IsBlackjack(cards []*entities.Card) bool {
	return len(cards) == 2 && GetBestScore(cards) == BlackjackScore
}

// IsBust checks if a hand exceeds 21
func IsBust(cards []*entities.Card) bool {
	return GetBestScore(cards) > BlackjackScore
}

// ResolveSeat scores a stood hand against the final dealer hand. Busted
// hands lose before the dealer plays and never reach here.
func ResolveSeat(hand []*entities.Card, dealerScore int, natural bool) Result {
	score := GetBestScore(hand)
	switch {
	case dealerScore > BlackjackScore || score > dealerScore:
		if natural {
			return ResultBlackjack
		}
		return ResultWin
	case score == dealerScore:
		return ResultPush
	default:
		return ResultLose
	}
}

// SeatPayout converts a seat result into the amount returned to the
// player. Wins pay double the bet, a natural pays 5:2, both floored to a
// whole amount; a push returns the bet.
func SeatPayout(result Result, bet float64) float64 {
	switch result {
	case ResultBlackjack:
		return math.Floor(bet * 2.5)
	case ResultWin:
		return math.Floor(bet * 2)
	case ResultPush:
		return bet
	default:
		return 0
	}
}
