package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardroom/blackjack/pkg/entities"
)

// Styles contains styling for table output
type Styles struct {
	Header  lipgloss.Style
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Push    lipgloss.Style
	Dealer  lipgloss.Style
	Muted   lipgloss.Style
	Standee lipgloss.Style
}

// NewStyles creates the default output styles
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#006400")).
			Padding(0, 2).
			Bold(true),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Push: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Dealer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Standee: lipgloss.NewStyle().
			Bold(true),
	}
}

// Reporter renders round results and final standings. It reads engine
// snapshots only; nothing here mutates game state.
type Reporter struct {
	out    io.Writer
	styles *Styles
}

// NewReporter creates a reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		styles: NewStyles(),
	}
}

// Round prints the settlement of one round
func (r *Reporter) Round(result *entities.RoundResult) {
	fmt.Fprintln(r.out, r.styles.Header.Render(fmt.Sprintf("Round %d", result.Round)))

	dealerLine := fmt.Sprintf("Dealer: %d", result.DealerValue)
	if result.DealerBlackjack {
		dealerLine = "Dealer: blackjack"
	} else if result.DealerBust {
		dealerLine = fmt.Sprintf("Dealer: bust (%d)", result.DealerValue)
	}
	fmt.Fprintln(r.out, r.styles.Dealer.Render(dealerLine))

	for _, pr := range result.PlayerResults {
		if pr.Outcome == entities.OutcomeSitOut {
			fmt.Fprintln(r.out, r.styles.Muted.Render(
				fmt.Sprintf("  %s: sitting out (bankrupt)", pr.PlayerName)))
			continue
		}

		line := fmt.Sprintf("  %s: %s with %d, bet %d, %+d chips (now %d)",
			pr.PlayerName, pr.Outcome, pr.HandValue, pr.Bet, pr.ChipDelta, pr.Chips)
		fmt.Fprintln(r.out, r.outcomeStyle(pr.Outcome).Render(line))
	}
}

// Standings prints the final per-player aggregates
func (r *Reporter) Standings(standings []*entities.PlayerStatistics) {
	fmt.Fprintln(r.out, r.styles.Header.Render("Final standings"))

	for i, st := range standings {
		fmt.Fprintln(r.out, r.styles.Standee.Render(
			fmt.Sprintf("%d. %s: %d chips (%+d)", i+1, st.PlayerName, st.FinalChips, st.NetProfit)))
		fmt.Fprintln(r.out, r.styles.Muted.Render(
			fmt.Sprintf("   rounds %d, wins %d (%.0f%%), losses %d, pushes %d, blackjacks %d, busts %d",
				st.RoundsPlayed, st.Wins, st.WinRate(), st.Losses, st.Pushes, st.Blackjacks, st.Busts)))
	}
}

func (r *Reporter) outcomeStyle(outcome entities.Outcome) lipgloss.Style {
	switch outcome {
	case entities.OutcomeWin, entities.OutcomeBlackjack:
		return r.styles.Win
	case entities.OutcomePush:
		return r.styles.Push
	default:
		return r.styles.Lose
	}
}
