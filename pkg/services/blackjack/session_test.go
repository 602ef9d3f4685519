package blackjack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardroom/blackjack/pkg/entities"
	"github.com/cardroom/blackjack/pkg/repositories/history"
)

func newTestSession(t *testing.T, decks, rounds int, seed int64) *Session {
	t.Helper()
	s, err := NewSession(decks, rounds, seed, nil, history.NewMemoryRepository(), nil)
	require.NoError(t, err)
	return s
}

func TestNewSessionValidation(t *testing.T) {
	repo := history.NewMemoryRepository()

	_, err := NewSession(0, 10, 1, nil, repo, nil)
	assert.ErrorIs(t, err, entities.ErrInvalidDeckCount)

	_, err = NewSession(6, 0, 1, nil, repo, nil)
	assert.ErrorIs(t, err, ErrInvalidRoundLimit)
}

func TestSeatValidation(t *testing.T) {
	s := newTestSession(t, 6, 10, 1)

	assert.ErrorIs(t, s.AddBot("Carl", "conservative", 0), ErrInvalidChips)
	assert.Error(t, s.AddBot("Carl", "martingale", 1000))
	require.NoError(t, s.AddBot("Carl", "conservative", 1000))

	_, err := s.PlayRound(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, s.AddBot("Late Larry", "basic", 1000), ErrSessionStarted)
}

func TestPlayRoundRequiresPlayers(t *testing.T) {
	s := newTestSession(t, 6, 10, 1)
	_, err := s.PlayRound(context.Background())
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestSessionStopsAtRoundLimit(t *testing.T) {
	s := newTestSession(t, 6, 2, 1)
	require.NoError(t, s.AddBot("Carl", "conservative", 100000))

	ctx := context.Background()
	for s.Active() {
		_, err := s.PlayRound(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, 2, s.Round())
	_, err := s.PlayRound(ctx)
	assert.ErrorIs(t, err, ErrSessionComplete)

	rounds, err := s.History(ctx)
	require.NoError(t, err)
	assert.Len(t, rounds, 2)
}

func TestSessionEndsWhenEveryoneIsBankrupt(t *testing.T) {
	// A tiny stack forces bankruptcy long before the round limit on
	// most seeds; play until the session says stop and check the
	// invariants rather than the exact round count.
	s := newTestSession(t, 6, 10000, 99)
	require.NoError(t, s.AddBot("Shorty", "aggressive", 10))

	ctx := context.Background()
	for s.Active() {
		_, err := s.PlayRound(ctx)
		require.NoError(t, err)
	}

	players := s.Players()
	require.Len(t, players, 1)
	if players[0].Chips == 0 {
		assert.Equal(t, StatusBankrupt, players[0].Status)
		assert.Less(t, s.Round(), 10000)
	} else {
		assert.Equal(t, 10000, s.Round())
	}
}

// Same seed, same seats, same strategies: the whole session replays
// identically.
func TestSessionReplayIsDeterministic(t *testing.T) {
	run := func() []*entities.RoundResult {
		s := newTestSession(t, 2, 50, 1234)
		require.NoError(t, s.AddBot("Carl", "conservative", 500))
		require.NoError(t, s.AddBot("Mae", "aggressive", 500))
		require.NoError(t, s.AddBot("Bea", "basic", 500))

		ctx := context.Background()
		for s.Active() {
			_, err := s.PlayRound(ctx)
			require.NoError(t, err)
		}

		rounds, err := s.History(ctx)
		require.NoError(t, err)
		return rounds
	}

	first := run()
	second := run()

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, len(first[i].PlayerResults), len(second[i].PlayerResults), "round %d", i+1)
		assert.Equal(t, first[i].DealerValue, second[i].DealerValue, "round %d", i+1)
		for j := range first[i].PlayerResults {
			fp, sp := first[i].PlayerResults[j], second[i].PlayerResults[j]
			assert.Equal(t, fp.Outcome, sp.Outcome)
			assert.Equal(t, fp.HandValue, sp.HandValue)
			assert.Equal(t, fp.ChipDelta, sp.ChipDelta)
			assert.Equal(t, fp.Chips, sp.Chips)
		}
	}
}

// A seat that goes broke keeps appearing in history as sitting out
// while the rest of the table plays on.
func TestSessionKeepsBankruptSeatInHistory(t *testing.T) {
	s := newTestSession(t, 2, 200, 7)
	require.NoError(t, s.AddBot("Shorty", "aggressive", 10))
	require.NoError(t, s.AddBot("Rich", "conservative", 1000000))

	ctx := context.Background()
	for s.Active() {
		_, err := s.PlayRound(ctx)
		require.NoError(t, err)
	}

	rounds, err := s.History(ctx)
	require.NoError(t, err)

	sawSitOut := false
	for _, round := range rounds {
		require.Len(t, round.PlayerResults, 2, "every seat appears every round")
		for _, pr := range round.PlayerResults {
			if pr.PlayerName == "Shorty" && pr.Outcome == entities.OutcomeSitOut {
				sawSitOut = true
				assert.Equal(t, int64(0), pr.Chips)
			}
		}
	}

	// With ten starting chips Shorty cannot survive 200 rounds; once
	// broke it must sit out the rest.
	shorty := s.Players()[0]
	if shorty.Chips == 0 {
		assert.True(t, sawSitOut)
	}
}
