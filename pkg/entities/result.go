package entities

import "time"

// Outcome represents how a player's hand fared against the dealer
type Outcome string

const (
	OutcomeWin       Outcome = "WIN"
	OutcomeLose      Outcome = "LOSE"
	OutcomePush      Outcome = "PUSH"
	OutcomeBlackjack Outcome = "BLACKJACK"
	OutcomeBust      Outcome = "BUST"

	// OutcomeSitOut marks a seat that placed no bet this round (a
	// bankrupt player kept in the history).
	OutcomeSitOut Outcome = "SIT_OUT"
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	return string(o)
}

// IsWin returns true if this outcome paid the player
func (o Outcome) IsWin() bool {
	return o == OutcomeWin || o == OutcomeBlackjack
}

// PlayerResult is one player's line in a round result. ChipDelta is the
// net change against the chips the player held before betting; Chips is
// the balance after settlement.
type PlayerResult struct {
	PlayerName string
	Outcome    Outcome
	HandValue  int
	Bet        int64
	ChipDelta  int64
	Chips      int64
}

// RoundResult is the immutable record of one settled round
type RoundResult struct {
	ID              string
	Round           int
	DealerValue     int
	DealerBust      bool
	DealerBlackjack bool
	PlayerResults   []*PlayerResult
	CompletedAt     time.Time
}
