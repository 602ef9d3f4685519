package blackjack

import (
	"strconv"

	"github.com/cardroom/blackjack/pkg/entities"
)

const (
	// DealerStandTotal is the total at which the dealer stops hitting.
	// The dealer stands on every 17, soft 17 included.
	DealerStandTotal = 17

	// BlackjackTotal is the target hand value
	BlackjackTotal = 21
)

// CardValue returns the base value of a card, counting an Ace as 11
func CardValue(card *entities.Card) int {
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

// IsAce reports whether a card is an Ace
func IsAce(card *entities.Card) bool {
	return card.Rank == entities.Ace
}

// HandValue returns the best total for a set of cards together with a
// soft flag. Every Ace counts as 11 first; Aces are demoted to 1 one at
// a time while the total exceeds 21. The hand is soft iff an Ace is
// still counted as 11 in the final total.
func HandValue(cards []*entities.Card) (int, bool) {
	total := 0
	aces := 0

	for _, card := range cards {
		if IsAce(card) {
			aces++
		}
		total += CardValue(card)
	}

	high := aces
	for total > BlackjackTotal && high > 0 {
		total -= 10
		high--
	}

	return total, high > 0
}

// BestScore returns the best total, discarding the soft flag
func BestScore(cards []*entities.Card) int {
	total, _ := HandValue(cards)
	return total
}

// IsBust checks if a set of cards exceeds 21
func IsBust(cards []*entities.Card) bool {
	return BestScore(cards) > BlackjackTotal
}

// IsBlackjack reports a natural: exactly two cards totalling 21. A 21
// reached with three or more cards is never classified as blackjack.
func IsBlackjack(cards []*entities.Card) bool {
	return len(cards) == 2 && BestScore(cards) == BlackjackTotal
}

// DealerShouldHit applies the house rule: hit below 17, stand on every
// 17 and above
func DealerShouldHit(cards []*entities.Card) bool {
	return BestScore(cards) < DealerStandTotal
}
