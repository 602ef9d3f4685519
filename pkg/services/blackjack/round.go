package blackjack

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/cardroom/blackjack/pkg/entities"
)

// RoundState names the phases a round moves through in order
type RoundState string

const (
	StateBetting     RoundState = "BETTING"
	StateDealing     RoundState = "DEALING"
	StatePlayerTurns RoundState = "PLAYER_TURNS"
	StateDealerTurn  RoundState = "DEALER_TURN"
	StateSettlement  RoundState = "SETTLEMENT"
	StateDone        RoundState = "DONE"
)

// Bot bet sizing: a tenth of the stack, held between the table minimum
// and maximum, clamped to whatever the seat can actually cover.
const (
	minBotBet = 10
	maxBotBet = 100
)

// CardSource deals cards to the engine. *entities.Shoe is the real
// implementation; tests substitute a stacked sequence.
type CardSource interface {
	Draw() *entities.Card
}

// DecisionSource supplies bets and actions for a seat without its own
// strategy. Implementations must return validated values, re-prompting
// internally on bad input; the engine still checks and asks again rather
// than accept an out-of-range bet.
type DecisionSource interface {
	Bet(name string, chips int64) int64
	Decide(hand *Hand, dealerUp *entities.Card, chips, bet int64, canDouble bool) Action
}

// Engine runs one complete round: betting, dealing, player turns, the
// dealer's turn and settlement. It owns the only reference to the card
// source while a round is in play; chip balances are touched nowhere
// else.
type Engine struct {
	shoe   CardSource
	input  DecisionSource
	logger *log.Logger
}

// NewEngine creates a round engine. input may be nil when every seat is
// a bot; logger may be nil to discard engine logs.
func NewEngine(shoe CardSource, input DecisionSource, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		shoe:   shoe,
		input:  input,
		logger: logger,
	}
}

// PlayRound drives one full round for the given seats and returns the
// settled result. Every error a collaborator can cause (bad bet, bad
// action, illegal double) is recovered inside the round; chip accounting
// always completes once a round has started.
func (e *Engine) PlayRound(round int, players []*Player, dealer *Dealer) *entities.RoundResult {
	before := make(map[string]int64, len(players))

	dealer.Reset()
	for _, p := range players {
		p.Reset()
		before[p.Name] = p.Chips
	}

	e.logger.Debug("round state", "round", round, "state", StateBetting)
	e.takeBets(players)

	e.logger.Debug("round state", "round", round, "state", StateDealing)
	e.deal(players, dealer)

	// A dealer natural short-circuits straight to settlement: player
	// blackjacks push, everything else loses.
	if !dealer.Hand.IsBlackjack() {
		e.logger.Debug("round state", "round", round, "state", StatePlayerTurns)
		for _, p := range players {
			if p.InRound() {
				e.playTurn(p, dealer)
			}
		}

		if anyStanding(players) {
			e.logger.Debug("round state", "round", round, "state", StateDealerTurn,
				"upcard", dealer.UpCard(), "hole", dealer.Hand.Cards[1])
			e.playDealer(dealer)
		}
	} else {
		e.logger.Info("dealer blackjack", "round", round, "hand", dealer.Hand)
	}

	e.logger.Debug("round state", "round", round, "state", StateSettlement)
	result := e.settle(round, players, dealer, before)

	for _, p := range players {
		if p.Chips <= 0 && p.Status != StatusBankrupt {
			p.Status = StatusBankrupt
			e.logger.Info("player bankrupt", "player", p.Name)
		}
	}

	e.logger.Debug("round state", "round", round, "state", StateDone)
	return result
}

// takeBets collects a bet from every non-bankrupt seat. Bot bets are
// clamped defensively; the human seat is re-asked until its bet is in
// range.
func (e *Engine) takeBets(players []*Player) {
	for _, p := range players {
		if p.IsBankrupt() {
			continue
		}

		if p.IsBot() || e.input == nil {
			amount := clampBet(botBetSize(p.Chips), p.Chips)
			if err := p.PlaceBet(amount); err != nil {
				e.logger.Warn("bot bet rejected", "player", p.Name, "amount", amount, "err", err)
				continue
			}
			e.logger.Debug("bet placed", "player", p.Name, "bet", amount, "chips", p.Chips)
			continue
		}

		for {
			amount := e.input.Bet(p.Name, p.Chips)
			err := p.PlaceBet(amount)
			if err == nil {
				e.logger.Debug("bet placed", "player", p.Name, "bet", amount, "chips", p.Chips)
				break
			}
			e.logger.Warn("bet rejected, asking again", "player", p.Name, "amount", amount, "err", err)
		}
	}
}

func botBetSize(chips int64) int64 {
	bet := chips / 10
	if bet < minBotBet {
		bet = minBotBet
	}
	if bet > maxBotBet {
		bet = maxBotBet
	}
	return bet
}

func clampBet(amount, chips int64) int64 {
	if amount > chips {
		return chips
	}
	if amount < 1 {
		return 1
	}
	return amount
}

// deal serves two cards to every betting seat, then two to the dealer.
// The dealer's second card is the hole card: known here, hidden from
// collaborators until the player turns are done.
func (e *Engine) deal(players []*Player, dealer *Dealer) {
	for _, p := range players {
		if !p.InRound() {
			continue
		}
		p.Hand.AddCard(e.shoe.Draw())
		p.Hand.AddCard(e.shoe.Draw())
		e.logger.Debug("dealt", "player", p.Name, "hand", p.Hand, "value", p.Hand.Best())
	}
	dealer.Hand.AddCard(e.shoe.Draw())
	dealer.Hand.AddCard(e.shoe.Draw())
	e.logger.Debug("dealt dealer", "upcard", dealer.UpCard())
}

// playTurn resolves one seat's decisions until it stands, busts or
// doubles. An unknown action defaults to a stand; an illegal double is
// downgraded to a hit.
func (e *Engine) playTurn(p *Player, dealer *Dealer) {
	if p.Hand.IsBlackjack() {
		p.Status = StatusBlackjack
		e.logger.Info("blackjack", "player", p.Name, "hand", p.Hand)
		return
	}

	for p.Status == StatusActive {
		canDouble := p.Hand.Size() == 2 && p.Chips >= p.Bet
		action := e.decide(p, dealer.UpCard(), canDouble)

		switch action {
		case ActionHit:
			e.hit(p)
		case ActionStand:
			p.Status = StatusStanding
			e.logger.Debug("stand", "player", p.Name, "value", p.Hand.Best())
		case ActionDouble:
			if !canDouble {
				e.logger.Warn("illegal double downgraded to hit",
					"player", p.Name, "cards", p.Hand.Size(), "chips", p.Chips, "bet", p.Bet)
				e.hit(p)
				continue
			}
			p.Chips -= p.Bet
			p.Bet *= 2
			card := e.shoe.Draw()
			p.Hand.AddCard(card)
			if p.Hand.IsBust() {
				p.Status = StatusBusted
			} else {
				p.Status = StatusDoubled
			}
			e.logger.Info("double", "player", p.Name, "card", card,
				"value", p.Hand.Best(), "bet", p.Bet, "status", p.Status)
		default:
			e.logger.Warn("invalid action, defaulting to stand", "player", p.Name, "action", action)
			p.Status = StatusStanding
		}
	}
}

func (e *Engine) decide(p *Player, dealerUp *entities.Card, canDouble bool) Action {
	if p.IsBot() {
		return p.Strategy.Decide(p.Hand, dealerUp, p.Chips, p.Bet)
	}
	if e.input == nil {
		e.logger.Warn("no decision source for seat, standing", "player", p.Name)
		return ActionStand
	}
	return e.input.Decide(p.Hand, dealerUp, p.Chips, p.Bet, canDouble)
}

func (e *Engine) hit(p *Player) {
	card := e.shoe.Draw()
	p.Hand.AddCard(card)
	if p.Hand.IsBust() {
		p.Status = StatusBusted
		e.logger.Info("bust", "player", p.Name, "card", card, "value", p.Hand.Best())
		return
	}
	e.logger.Debug("hit", "player", p.Name, "card", card, "value", p.Hand.Best())
}

// playDealer reveals the hole card and hits to the house rule
func (e *Engine) playDealer(dealer *Dealer) {
	for DealerShouldHit(dealer.Hand.Cards) {
		card := e.shoe.Draw()
		dealer.Hand.AddCard(card)
		e.logger.Debug("dealer hit", "card", card, "value", dealer.Hand.Best())
	}
	e.logger.Info("dealer done", "hand", dealer.Hand, "value", dealer.Hand.Best(),
		"bust", dealer.Hand.IsBust())
}

// settle compares every betting seat against the dealer and pays out.
// Bets were deducted when placed, so a win returns twice the bet, a
// blackjack the bet plus three halves, a push the bet and a loss
// nothing. Seats that sat out still get a history line.
func (e *Engine) settle(round int, players []*Player, dealer *Dealer, before map[string]int64) *entities.RoundResult {
	dealerBJ := dealer.Hand.IsBlackjack()
	dealerBust := dealer.Hand.IsBust()
	dealerValue := dealer.Hand.Best()

	result := &entities.RoundResult{
		ID:              uuid.NewString(),
		Round:           round,
		DealerValue:     dealerValue,
		DealerBust:      dealerBust,
		DealerBlackjack: dealerBJ,
		PlayerResults:   make([]*entities.PlayerResult, 0, len(players)),
		CompletedAt:     time.Now(),
	}

	for _, p := range players {
		if !p.InRound() {
			result.PlayerResults = append(result.PlayerResults, &entities.PlayerResult{
				PlayerName: p.Name,
				Outcome:    entities.OutcomeSitOut,
				Chips:      p.Chips,
			})
			continue
		}

		var outcome entities.Outcome
		var payout int64
		playerValue := p.Hand.Best()

		switch {
		case p.Hand.IsBust():
			outcome = entities.OutcomeBust
		case p.Hand.IsBlackjack() && dealerBJ:
			outcome = entities.OutcomePush
			payout = p.Bet
		case p.Hand.IsBlackjack():
			outcome = entities.OutcomeBlackjack
			payout = p.Bet + p.Bet*3/2
		case dealerBJ:
			outcome = entities.OutcomeLose
		case dealerBust:
			outcome = entities.OutcomeWin
			payout = p.Bet * 2
		case playerValue > dealerValue:
			outcome = entities.OutcomeWin
			payout = p.Bet * 2
		case playerValue < dealerValue:
			outcome = entities.OutcomeLose
		default:
			outcome = entities.OutcomePush
			payout = p.Bet
		}

		p.Chips += payout
		line := &entities.PlayerResult{
			PlayerName: p.Name,
			Outcome:    outcome,
			HandValue:  playerValue,
			Bet:        p.Bet,
			ChipDelta:  p.Chips - before[p.Name],
			Chips:      p.Chips,
		}
		p.Bet = 0
		result.PlayerResults = append(result.PlayerResults, line)

		e.logger.Info("settled", "player", line.PlayerName, "outcome", line.Outcome,
			"value", line.HandValue, "delta", line.ChipDelta, "chips", line.Chips)
	}

	return result
}

func anyStanding(players []*Player) bool {
	for _, p := range players {
		if p.InRound() && !p.Hand.IsBust() {
			return true
		}
	}
	return false
}
