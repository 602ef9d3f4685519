package entities

import (
	"errors"
	"math/rand"
)

var ErrInvalidDeckCount = errors.New("shoe requires at least one deck")

// Shoe holds the shuffled cards of one or more standard decks and deals
// from the top. When the remaining cards drop to a quarter of the full
// size or below, the shoe is rebuilt from fresh decks and reshuffled
// before the next card is served, so Draw never runs dry.
type Shoe struct {
	cards    []*Card
	numDecks int
	fullSize int
	rng      *rand.Rand
}

// NewShoe builds a shuffled shoe from numDecks standard decks. The rng
// drives every shuffle of this shoe; a seeded source makes the full deal
// sequence reproducible.
func NewShoe(numDecks int, rng *rand.Rand) (*Shoe, error) {
	if numDecks < 1 {
		return nil, ErrInvalidDeckCount
	}

	s := &Shoe{
		numDecks: numDecks,
		fullSize: numDecks * 52,
		rng:      rng,
	}
	s.rebuild()
	s.Shuffle()
	return s, nil
}

// rebuild restores the shoe to numDecks fresh decks, unshuffled
func (s *Shoe) rebuild() {
	s.cards = make([]*Card, 0, s.fullSize)
	for i := 0; i < s.numDecks; i++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
}

// Shuffle randomizes the order of the remaining cards
func (s *Shoe) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Draw removes and returns the top card, rebuilding and reshuffling the
// shoe first if the reshuffle threshold has been reached.
func (s *Shoe) Draw() *Card {
	if len(s.cards) <= s.fullSize/4 {
		s.rebuild()
		s.Shuffle()
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card
}

// Remaining returns the number of cards left before the next reshuffle
func (s *Shoe) Remaining() int {
	return len(s.cards)
}
