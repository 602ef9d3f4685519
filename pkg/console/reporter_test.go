package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardroom/blackjack/pkg/entities"
)

func TestReporterRound(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out)

	r.Round(&entities.RoundResult{
		Round:       3,
		DealerValue: 19,
		PlayerResults: []*entities.PlayerResult{
			{PlayerName: "Ana", Outcome: entities.OutcomeWin, HandValue: 20, Bet: 100, ChipDelta: 100, Chips: 1100},
			{PlayerName: "Bo", Outcome: entities.OutcomeSitOut, Chips: 0},
		},
	})

	got := out.String()
	assert.Contains(t, got, "Round 3")
	assert.Contains(t, got, "Dealer: 19")
	assert.Contains(t, got, "Ana: WIN with 20")
	assert.Contains(t, got, "Bo: sitting out")
}

func TestReporterRoundDealerBust(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out)

	r.Round(&entities.RoundResult{
		Round:       1,
		DealerValue: 23,
		DealerBust:  true,
	})

	assert.Contains(t, out.String(), "Dealer: bust (23)")
}

func TestReporterStandings(t *testing.T) {
	var out bytes.Buffer
	r := NewReporter(&out)

	r.Standings([]*entities.PlayerStatistics{
		{PlayerName: "Ana", FinalChips: 1150, NetProfit: 150, RoundsPlayed: 3, Wins: 2, Losses: 1, Blackjacks: 1},
		{PlayerName: "Bo", FinalChips: 950, NetProfit: -50, RoundsPlayed: 2, Losses: 1, Pushes: 1, Busts: 1},
	})

	got := out.String()
	assert.Contains(t, got, "Final standings")
	assert.Contains(t, got, "1. Ana: 1150 chips (+150)")
	assert.Contains(t, got, "2. Bo: 950 chips (-50)")
}
