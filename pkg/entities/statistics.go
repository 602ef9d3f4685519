package entities

// PlayerStatistics represents aggregated results for one player across
// the rounds of a session
type PlayerStatistics struct {
	PlayerName   string
	RoundsPlayed int
	Wins         int
	Losses       int
	Pushes       int
	Blackjacks   int
	Busts        int
	TotalBet     int64
	NetProfit    int64
	FinalChips   int64
}

// WinRate calculates the player's win rate as a percentage
func (s *PlayerStatistics) WinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.Wins) / float64(s.RoundsPlayed) * 100.0
}
