package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"BLACKJACK_DECKS", "BLACKJACK_ROUNDS", "BLACKJACK_CHIPS",
		"BLACKJACK_SEED", "BLACKJACK_BOTS", "BLACKJACK_HUMAN"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultDecks, cfg.Decks)
	assert.Equal(t, DefaultRounds, cfg.Rounds)
	assert.Equal(t, int64(DefaultChips), cfg.Chips)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Empty(t, cfg.Bots)
	assert.Empty(t, cfg.Human)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BLACKJACK_DECKS", "2")
	t.Setenv("BLACKJACK_ROUNDS", "5")
	t.Setenv("BLACKJACK_CHIPS", "500")
	t.Setenv("BLACKJACK_SEED", "42")
	t.Setenv("BLACKJACK_BOTS", "Tuco:conservative, Angel:basic")
	t.Setenv("BLACKJACK_HUMAN", "Ana")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Decks)
	assert.Equal(t, 5, cfg.Rounds)
	assert.Equal(t, int64(500), cfg.Chips)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "Ana", cfg.Human)
	require.Len(t, cfg.Bots, 2)
	assert.Equal(t, BotSpec{Name: "Tuco", Strategy: "conservative"}, cfg.Bots[0])
	assert.Equal(t, BotSpec{Name: "Angel", Strategy: "basic"}, cfg.Bots[1])
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("BLACKJACK_DECKS", "zero")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{Decks: 6, Rounds: 100, Chips: 1000}, true},
		{"one deck is enough", Config{Decks: 1, Rounds: 1, Chips: 1}, true},
		{"no decks", Config{Decks: 0, Rounds: 100, Chips: 1000}, false},
		{"no rounds", Config{Decks: 6, Rounds: 0, Chips: 1000}, false},
		{"no chips", Config{Decks: 6, Rounds: 100, Chips: 0}, false},
		{"negative chips", Config{Decks: 6, Rounds: 100, Chips: -5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseBots(t *testing.T) {
	specs, err := ParseBots("")
	require.NoError(t, err)
	assert.Empty(t, specs)

	specs, err = ParseBots("Carl:conservative")
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, BotSpec{Name: "Carl", Strategy: "conservative"}, specs[0])

	_, err = ParseBots("Carl")
	assert.Error(t, err)

	_, err = ParseBots(":aggressive")
	assert.Error(t, err)
}
