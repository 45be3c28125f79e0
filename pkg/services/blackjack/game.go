package blackjack

import (
	"sync"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/entities"
	"github.com/fintechx/casino/pkg/random"
	"github.com/fintechx/casino/pkg/services/games"
)

// State represents the current phase of a blackjack round
type State string

const (
	StateDealing    State = "DEALING"
	StatePlaying    State = "PLAYING"
	StateDealerTurn State = "DEALER_TURN"
	StateEnded      State = "ENDED"
)

// SeatStatus tracks a seat through the round
type SeatStatus string

const (
	SeatPlaying   SeatStatus = "PLAYING"
	SeatStood     SeatStatus = "STOOD"
	SeatBust      SeatStatus = "BUST"
	SeatBlackjack SeatStatus = "BLACKJACK"
)

const (
	seatCount = 4
	// UserSeat is the fixed table position of the human player
	UserSeat = 1
)

// Seat is one table position: the human player or a bot
type Seat struct {
	Name   string           `json:"name"`
	Hand   []*entities.Card `json:"hand"`
	IsUser bool             `json:"isUser"`
	Status SeatStatus       `json:"status"`
	Bet    float64          `json:"bet"`
	Chat   string           `json:"chat,omitempty"`
	Result Result           `json:"result,omitempty"`
}

// Score returns the seat's best hand value
func (s *Seat) Score() int {
	return GetBestScore(s.Hand)
}

// RoundDetails reports the user's result once the round ends
type RoundDetails struct {
	Result      Result `json:"result"`
	DealerScore int    `json:"dealerScore"`
	UserScore   int    `json:"userScore"`
}

// Round is one four-seat blackjack round against the dealer. Three bot
// seats play themselves to the dealer's stand rule; the round pauses at
// the human seat until Hit or Stand resolves it. Only the human seat's
// bet touches the session balance, bot bets are table dressing.
type Round struct {
	mu sync.Mutex

	src    random.Source
	deck   *entities.Deck
	stake  float64
	seats  [seatCount]*Seat
	dealer []*entities.Card
	state  State
	active int

	outcome *games.Outcome
}

// NewRound shuffles a fresh deck, seats the player among three bots and
// deals two cards to every seat and the dealer. Bot turns before the
// human seat are played out immediately.
func NewRound(src random.Source, stake float64) *Round {
	deck := entities.NewDeck()
	deck.Shuffle(src)

	names := pickBotNames(src, seatCount-1)
	r := &Round{
		src:   src,
		deck:  deck,
		stake: stake,
		state: StateDealing,
	}

	r.seats = [seatCount]*Seat{
		{Name: names[0], Status: SeatPlaying, Bet: botBet(src)},
		{Name: "TÚ", IsUser: true, Status: SeatPlaying, Bet: stake},
		{Name: names[1], Status: SeatPlaying, Bet: botBet(src)},
		{Name: names[2], Status: SeatPlaying, Bet: botBet(src)},
	}

	for _, seat := range r.seats {
		seat.Hand = []*entities.Card{deck.Draw(), deck.Draw()}
	}
	r.dealer = []*entities.Card{deck.Draw(), deck.Draw()}

	r.state = StatePlaying
	r.advance()
	return r
}

// advance plays bot seats until the round reaches the human seat or the
// dealer. Caller holds the lock (or is the constructor).
func (r *Round) advance() {
	for r.state == StatePlaying {
		if r.active >= seatCount {
			r.playDealer()
			return
		}

		seat := r.seats[r.active]
		if seat.IsUser {
			if IsBlackjack(seat.Hand) {
				seat.Status = SeatBlackjack
				r.active++
				continue
			}
			return
		}

		r.playBot(seat)
		r.active++
	}
}

// playBot hits to the dealer's stand rule
func (r *Round) playBot(seat *Seat) {
	for seat.Score() < DealerStandScore {
		seat.Hand = append(seat.Hand, r.deck.Draw())
		if IsBust(seat.Hand) {
			seat.Status = SeatBust
			seat.Chat = randomPhrase(r.src, "BUST")
			return
		}
		seat.Chat = randomPhrase(r.src, "HIT")
	}
	seat.Status = SeatStood
	seat.Chat = randomPhrase(r.src, "STAND")
}

// Hit deals the human seat one card. Busting ends the seat's turn and
// hands play to the remaining seats.
func (r *Round) Hit() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserTurn(); err != nil {
		return err
	}

	seat := r.seats[UserSeat]
	seat.Hand = append(seat.Hand, r.deck.Draw())
	if IsBust(seat.Hand) {
		seat.Status = SeatBust
		r.active++
		r.advance()
	}
	return nil
}

// Stand ends the human seat's turn
func (r *Round) Stand() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireUserTurn(); err != nil {
		return err
	}

	r.seats[UserSeat].Status = SeatStood
	r.active++
	r.advance()
	return nil
}

func (r *Round) requireUserTurn() error {
	if r.state != StatePlaying {
		return types.NewGameError(types.ErrInvalidState, "blackjack: round is not accepting actions")
	}
	if r.active != UserSeat {
		return types.NewGameError(types.ErrNotPlayerTurn, "blackjack: not the player's turn")
	}
	return nil
}

// playDealer draws the dealer to the stand rule and settles every seat
func (r *Round) playDealer() {
	r.state = StateDealerTurn
	for GetBestScore(r.dealer) < DealerStandScore {
		r.dealer = append(r.dealer, r.deck.Draw())
	}

	dealerScore := GetBestScore(r.dealer)
	for _, seat := range r.seats {
		if seat.Status == SeatBust {
			seat.Result = ResultLose
		} else {
			seat.Result = ResolveSeat(seat.Hand, dealerScore, seat.Status == SeatBlackjack)
		}
		if !seat.IsUser {
			if seat.Result.IsWin() {
				seat.Chat = randomPhrase(r.src, "WIN")
			} else if seat.Result == ResultPush {
				seat.Chat = "Empate."
			} else {
				seat.Chat = randomPhrase(r.src, "LOSE")
			}
		}
	}

	user := r.seats[UserSeat]
	payout := SeatPayout(user.Result, user.Bet)
	outcome := &games.Outcome{
		Game:   "BLACKJACK",
		Payout: payout,
		Details: RoundDetails{
			Result:      user.Result,
			DealerScore: dealerScore,
			UserScore:   user.Score(),
		},
	}
	if payout > 0 {
		outcome.Multiplier = payout / r.stake
	}

	r.outcome = outcome
	r.state = StateEnded
}

// Outcome returns the user's settlement once the round has ended
func (r *Round) Outcome() (*games.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateEnded {
		return nil, types.NewGameError(types.ErrInvalidState, "blackjack: round has not ended")
	}
	return r.outcome, nil
}

// State returns the current round phase
func (r *Round) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Seats returns the table seats in position order
func (r *Round) Seats() []*Seat {
	r.mu.Lock()
	defer r.mu.Unlock()

	seats := make([]*Seat, seatCount)
	copy(seats, r.seats[:])
	return seats
}

// Dealer returns the dealer's hand. Until the dealer's turn only the
// upcard is visible.
func (r *Round) Dealer() []*entities.Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == StatePlaying || r.state == StateDealing {
		return r.dealer[:1]
	}
	return r.dealer
}

// UserSeatView returns the human seat
func (r *Round) UserSeatView() *Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seats[UserSeat]
}
