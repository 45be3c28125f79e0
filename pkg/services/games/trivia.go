package games

import (
	"sync"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/random"
)

// Wheel geometry shared with the spin animation
const (
	triviaSegments    = 6
	triviaBaseSpins   = 2160 // six full turns before the wheel settles
	triviaDegrees     = 360 / triviaSegments
	triviaWinMult     = 2
	triviaJackpotMult = 50
)

// TriviaCategory is one wheel segment
type TriviaCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TriviaQuestion is one entry of a category's fixed question bank
type TriviaQuestion struct {
	Prompt  string    `json:"prompt"`
	Options [4]string `json:"options"`
	Answer  int       `json:"-"`
}

// Trivia is the wheel-and-quiz game, with the one piece of session-long
// state in the game set: the badge collection. Answering a category
// correctly collects its badge; the sixth distinct badge pays the jackpot
// and resets the collection.
type Trivia struct {
	mu     sync.Mutex
	badges map[string]bool
}

// NewTrivia creates the per-session trivia state
func NewTrivia() *Trivia {
	return &Trivia{badges: make(map[string]bool)}
}

// TriviaRound is one spin: a committed category and question awaiting an
// answer
type TriviaRound struct {
	mu sync.Mutex

	stake    float64
	category TriviaCategory
	index    int
	question TriviaQuestion
	answered bool
}

// Spin picks a category uniformly and draws a question from its bank
func (t *Trivia) Spin(src random.Source, stake float64) *TriviaRound {
	index := src.Intn(triviaSegments)
	category := TriviaCategories[index]
	bank := triviaBank[category.ID]
	question := bank[src.Intn(len(bank))]

	return &TriviaRound{
		stake:    stake,
		category: category,
		index:    index,
		question: question,
	}
}

// Category returns the committed category
func (r *TriviaRound) Category() TriviaCategory { return r.category }

// Question returns the committed question
func (r *TriviaRound) Question() TriviaQuestion { return r.question }

// Rotation returns the wheel angle the animation settles at for this spin
func (r *TriviaRound) Rotation() int {
	return triviaBaseSpins + (360 - r.index*triviaDegrees)
}

// TriviaDetails reports the resolved spin
type TriviaDetails struct {
	Category TriviaCategory `json:"category"`
	Correct  bool           `json:"correct"`
	Jackpot  bool           `json:"jackpot"`
	Badges   []string       `json:"badges"`
}

// Answer resolves the round. A correct answer pays 2x and collects the
// category badge; completing all six badges adds a 50x jackpot on top and
// resets the collection.
func (t *Trivia) Answer(r *TriviaRound, option int) (*Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.answered {
		return nil, types.NewGameError(types.ErrInvalidState, "trivia: question already answered")
	}
	if option < 0 || option >= len(r.question.Options) {
		return nil, errInvalidSelection("trivia: option out of range")
	}
	r.answered = true

	details := TriviaDetails{Category: r.category}
	outcome := &Outcome{Game: "TRIVIA", Details: &details}

	if option != r.question.Answer {
		details.Badges = t.Badges()
		return outcome, nil
	}

	details.Correct = true
	outcome.Multiplier = triviaWinMult
	outcome.Payout = r.stake * triviaWinMult

	t.mu.Lock()
	t.badges[r.category.ID] = true
	if len(t.badges) == triviaSegments {
		details.Jackpot = true
		outcome.Multiplier += triviaJackpotMult
		outcome.Payout += r.stake * triviaJackpotMult
		t.badges = make(map[string]bool)
	}
	t.mu.Unlock()

	details.Badges = t.Badges()
	return outcome, nil
}

// Badges returns the currently collected badge category IDs
func (t *Trivia) Badges() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]string, 0, len(t.badges))
	for _, category := range TriviaCategories {
		if t.badges[category.ID] {
			ids = append(ids, category.ID)
		}
	}
	return ids
}
