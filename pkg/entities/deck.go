package entities

import "github.com/fintechx/casino/pkg/random"

type Deck struct {
	Cards []*Card
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck() *Deck {
	cards := make([]*Card, 0, 52)
	suits := []Suit{Hearts, Diamonds, Clubs, Spades}
	ranks := []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}

	return &Deck{Cards: cards}
}

// Shuffle reorders the deck using the supplied random source
func (d *Deck) Shuffle(src random.Source) {
	perm := src.Perm(len(d.Cards))
	shuffled := make([]*Card, len(d.Cards))
	for i, j := range perm {
		shuffled[i] = d.Cards[j]
	}
	d.Cards = shuffled
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		return nil
	}
	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.Cards)
}
