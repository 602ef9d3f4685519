package blackjack

import (
	"errors"
	"fmt"

	"github.com/cardroom/blackjack/pkg/entities"
)

var (
	ErrInvalidBet        = errors.New("bet must be positive")
	ErrInsufficientChips = errors.New("bet exceeds available chips")
)

// Status represents where a player stands within the current round
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusStanding  Status = "STANDING"
	StatusBusted    Status = "BUSTED"
	StatusBlackjack Status = "BLACKJACK"
	StatusDoubled   Status = "DOUBLED"
	StatusBankrupt  Status = "BANKRUPT"
)

// Player is a seat at the table. A bot seat carries a Strategy; the
// human seat leaves it nil and is served by the engine's DecisionSource.
// Chips persist across rounds; hand, bet and status reset every round.
type Player struct {
	Name     string
	Chips    int64
	Bet      int64
	Hand     *Hand
	Status   Status
	Strategy Strategy
}

// NewPlayer creates a human-controlled seat
func NewPlayer(name string, chips int64) *Player {
	return &Player{
		Name:   name,
		Chips:  chips,
		Hand:   NewHand(),
		Status: StatusActive,
	}
}

// NewBot creates a bot seat playing the given strategy
func NewBot(name string, strategy Strategy, chips int64) *Player {
	p := NewPlayer(name, chips)
	p.Strategy = strategy
	return p
}

// IsBot reports whether the seat decides through a strategy
func (p *Player) IsBot() bool {
	return p.Strategy != nil
}

// IsBankrupt reports whether the seat is out of the game
func (p *Player) IsBankrupt() bool {
	return p.Status == StatusBankrupt
}

// PlaceBet validates and commits a bet, deducting it from chips
func (p *Player) PlaceBet(amount int64) error {
	if amount <= 0 {
		return ErrInvalidBet
	}
	if amount > p.Chips {
		return fmt.Errorf("%w: bet %d, chips %d", ErrInsufficientChips, amount, p.Chips)
	}
	p.Bet = amount
	p.Chips -= amount
	return nil
}

// Reset prepares the seat for a new round. A seat with no chips left is
// flagged bankrupt and takes no further part in betting.
func (p *Player) Reset() {
	p.Hand.Clear()
	p.Bet = 0
	if p.Chips <= 0 {
		p.Status = StatusBankrupt
		return
	}
	p.Status = StatusActive
}

// InRound reports whether the seat has a live bet this round
func (p *Player) InRound() bool {
	return p.Bet > 0
}

// Dealer plays the house hand. It holds no chips and places no bets;
// its second card stays hidden until every player turn is resolved.
type Dealer struct {
	Hand *Hand
}

// NewDealer creates the dealer seat
func NewDealer() *Dealer {
	return &Dealer{Hand: NewHand()}
}

// UpCard returns the dealer's visible card, nil before the deal
func (d *Dealer) UpCard() *entities.Card {
	if len(d.Hand.Cards) == 0 {
		return nil
	}
	return d.Hand.Cards[0]
}

// Reset clears the dealer's hand for a new round
func (d *Dealer) Reset() {
	d.Hand.Clear()
}
