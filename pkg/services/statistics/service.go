package statistics

import (
	"context"
	"sort"

	"github.com/cardroom/blackjack/pkg/entities"
	"github.com/cardroom/blackjack/pkg/repositories/history"
)

// Service aggregates round history into per-player statistics for the
// reporting layer. It only reads from the repository; nothing flows back
// into engine state.
type Service struct {
	repo history.Repository
}

// NewService creates a new statistics service
func NewService(repo history.Repository) *Service {
	return &Service{repo: repo}
}

// SessionStandings computes per-player aggregates for a session, sorted
// by net profit descending. Sit-out rounds count toward nothing but keep
// the player present in the standings.
func (s *Service) SessionStandings(ctx context.Context, sessionID string) ([]*entities.PlayerStatistics, error) {
	rounds, err := s.repo.GetRoundResults(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[string]*entities.PlayerStatistics)
	order := make([]string, 0)

	for _, round := range rounds {
		for _, pr := range round.PlayerResults {
			stats, ok := byPlayer[pr.PlayerName]
			if !ok {
				stats = &entities.PlayerStatistics{PlayerName: pr.PlayerName}
				byPlayer[pr.PlayerName] = stats
				order = append(order, pr.PlayerName)
			}

			tally(stats, pr)
		}
	}

	standings := make([]*entities.PlayerStatistics, 0, len(order))
	for _, name := range order {
		standings = append(standings, byPlayer[name])
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].NetProfit > standings[j].NetProfit
	})

	return standings, nil
}

// PlayerStatistics aggregates one player's lines across all sessions
func (s *Service) PlayerStatistics(ctx context.Context, playerName string) (*entities.PlayerStatistics, error) {
	lines, err := s.repo.GetPlayerResults(ctx, playerName)
	if err != nil {
		return nil, err
	}

	stats := &entities.PlayerStatistics{PlayerName: playerName}
	for _, pr := range lines {
		tally(stats, pr)
	}

	return stats, nil
}

// tally folds one result line into a player's aggregates
func tally(stats *entities.PlayerStatistics, pr *entities.PlayerResult) {
	stats.FinalChips = pr.Chips
	if pr.Outcome == entities.OutcomeSitOut {
		return
	}

	stats.RoundsPlayed++
	stats.TotalBet += pr.Bet
	stats.NetProfit += pr.ChipDelta

	switch pr.Outcome {
	case entities.OutcomeWin:
		stats.Wins++
	case entities.OutcomeBlackjack:
		stats.Wins++
		stats.Blackjacks++
	case entities.OutcomeLose:
		stats.Losses++
	case entities.OutcomeBust:
		stats.Losses++
		stats.Busts++
	case entities.OutcomePush:
		stats.Pushes++
	}
}
