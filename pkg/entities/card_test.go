package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardString(t *testing.T) {
	assert.Equal(t, "10♠", NewCard(Spades, Ten).String())
	assert.Equal(t, "A♥", NewCard(Hearts, Ace).String())
	assert.Equal(t, "Q♦", NewCard(Diamonds, Queen).String())
	assert.Equal(t, "7♣", NewCard(Clubs, Seven).String())
}

func TestDeckEnumeration(t *testing.T) {
	assert.Len(t, Suits, 4)
	assert.Len(t, Ranks, 13)
}
