package blackjack

import (
	"fmt"
	"strings"

	"github.com/cardroom/blackjack/pkg/entities"
)

// Action is a play decision for the current hand
type Action string

const (
	ActionHit    Action = "HIT"
	ActionStand  Action = "STAND"
	ActionDouble Action = "DOUBLE"
)

// Strategy decides how a bot plays its hand. Implementations are
// stateless: the decision is a pure function of the hand, the dealer's
// visible card, and the player's chips and current bet. Returning
// ActionDouble when doubling is illegal is fine; the engine downgrades
// it to a hit.
type Strategy interface {
	Name() string
	Decide(hand *Hand, dealerUp *entities.Card, chips, bet int64) Action
}

// StrategyByName resolves a strategy label from configuration
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "conservative":
		return ConservativeStrategy{}, nil
	case "aggressive":
		return AggressiveStrategy{}, nil
	case "basic":
		return BasicStrategy{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q", name)
}

// ConservativeStrategy stands early and never doubles: stand on hard 15
// or better, soft 17 or better.
type ConservativeStrategy struct{}

func (ConservativeStrategy) Name() string { return "conservative" }

func (ConservativeStrategy) Decide(hand *Hand, dealerUp *entities.Card, chips, bet int64) Action {
	total, soft := hand.Value()
	if soft {
		if total >= 17 {
			return ActionStand
		}
		return ActionHit
	}
	if total >= 15 {
		return ActionStand
	}
	return ActionHit
}

// AggressiveStrategy keeps hitting until hard 18 or soft 19 and doubles
// every two-card 9, 10 or 11 no matter what the dealer shows.
type AggressiveStrategy struct{}

func (AggressiveStrategy) Name() string { return "aggressive" }

func (AggressiveStrategy) Decide(hand *Hand, dealerUp *entities.Card, chips, bet int64) Action {
	total, soft := hand.Value()
	if hand.Size() == 2 && total >= 9 && total <= 11 {
		return ActionDouble
	}
	if soft {
		if total >= 19 {
			return ActionStand
		}
		return ActionHit
	}
	if total >= 18 {
		return ActionStand
	}
	return ActionHit
}

// BasicStrategy approximates the standard basic-strategy chart keyed by
// player total, softness and the dealer's up card: stand on hard 17+,
// hit hard 11 and below, double hard 9-11 against dealer 2-9 and soft
// 13-18 against dealer 4-6, and play hard 12-16 by dealer strength
// (stand against 2-6, hit against 7-A).
type BasicStrategy struct{}

func (BasicStrategy) Name() string { return "basic" }

func (BasicStrategy) Decide(hand *Hand, dealerUp *entities.Card, chips, bet int64) Action {
	total, soft := hand.Value()
	up := CardValue(dealerUp)

	if soft {
		if hand.Size() == 2 && total >= 13 && total <= 18 && up >= 4 && up <= 6 {
			return ActionDouble
		}
		if total >= 19 {
			return ActionStand
		}
		if total == 18 && up <= 8 {
			return ActionStand
		}
		return ActionHit
	}

	if total >= 17 {
		return ActionStand
	}
	if hand.Size() == 2 && total >= 9 && total <= 11 && up >= 2 && up <= 9 {
		return ActionDouble
	}
	if total <= 11 {
		return ActionHit
	}
	// Hard 12-16: stand against a weak dealer card, keep hitting
	// against a strong one.
	if up <= 6 {
		return ActionStand
	}
	return ActionHit
}
