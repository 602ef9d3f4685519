package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cardroom/blackjack/pkg/entities"
	"github.com/cardroom/blackjack/pkg/services/blackjack"
)

// Prompter reads bets and actions for the human seat from a terminal.
// It keeps re-prompting until the input parses and is in range, so the
// engine only ever receives validated values. Reads block with no
// timeout; a player who never answers holds the table.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter over the given streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Bet asks for a bet between 1 and chips until it gets one. On a closed
// input stream it falls back to the table minimum so the round can
// finish.
func (p *Prompter) Bet(name string, chips int64) int64 {
	for {
		fmt.Fprintf(p.out, "%s, your bet (1-%d): ", name, chips)
		line, ok := p.readLine()
		if !ok {
			return 1
		}

		amount, err := strconv.ParseInt(line, 10, 64)
		if err != nil || amount < 1 || amount > chips {
			fmt.Fprintf(p.out, "Enter a whole number between 1 and %d.\n", chips)
			continue
		}
		return amount
	}
}

// Decide asks for hit, stand or double until it gets a legal answer
func (p *Prompter) Decide(hand *blackjack.Hand, dealerUp *entities.Card, chips, bet int64, canDouble bool) blackjack.Action {
	total, soft := hand.Value()
	kind := "hard"
	if soft {
		kind = "soft"
	}

	options := "(h)it or (s)tand"
	if canDouble {
		options = "(h)it, (s)tand or (d)ouble"
	}

	for {
		fmt.Fprintf(p.out, "Your hand: %s (%s %d), dealer shows %s. %s? ",
			hand, kind, total, dealerUp, options)
		line, ok := p.readLine()
		if !ok {
			return blackjack.ActionStand
		}

		switch strings.ToLower(line) {
		case "h", "hit":
			return blackjack.ActionHit
		case "s", "stand":
			return blackjack.ActionStand
		case "d", "double":
			if canDouble {
				return blackjack.ActionDouble
			}
			fmt.Fprintln(p.out, "Doubling is not available for this hand.")
		default:
			fmt.Fprintf(p.out, "Please answer with %s.\n", options)
		}
	}
}

func (p *Prompter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

var _ blackjack.DecisionSource = (*Prompter)(nil)
