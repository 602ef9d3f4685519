package blackjack

import (
	"strings"

	"github.com/cardroom/blackjack/pkg/entities"
)

// Hand represents the cards a participant holds during one round
type Hand struct {
	Cards []*entities.Card
}

// NewHand creates a new empty hand
func NewHand() *Hand {
	return &Hand{Cards: make([]*entities.Card, 0, 4)}
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *entities.Card) {
	h.Cards = append(h.Cards, card)
}

// Clear removes all cards, ready for the next round
func (h *Hand) Clear() {
	h.Cards = h.Cards[:0]
}

// Value returns the best total and whether the hand is soft
func (h *Hand) Value() (int, bool) {
	return HandValue(h.Cards)
}

// Best returns the best total
func (h *Hand) Best() int {
	return BestScore(h.Cards)
}

// IsBust checks if the hand exceeds 21
func (h *Hand) IsBust() bool {
	return IsBust(h.Cards)
}

// IsBlackjack checks for a two-card 21
func (h *Hand) IsBlackjack() bool {
	return IsBlackjack(h.Cards)
}

// Size returns the number of cards in the hand
func (h *Hand) Size() int {
	return len(h.Cards)
}

// String renders the hand as space-separated cards, e.g. "10♠ 6♥"
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, card := range h.Cards {
		parts[i] = card.String()
	}
	return strings.Join(parts, " ")
}
