package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Defaults for a table nobody configured
const (
	DefaultDecks  = 6
	DefaultRounds = 100
	DefaultChips  = 1000
)

// BotSpec names one bot seat and the strategy it plays
type BotSpec struct {
	Name     string
	Strategy string
}

// Config holds all configuration for a game session
type Config struct {
	// Table rules
	Decks  int
	Rounds int
	Chips  int64

	// Seed fixes the shuffle sequence; 0 means seed from the clock
	Seed int64

	// Seats
	Bots  []BotSpec
	Human string // empty when every seat is a bot
}

// Load reads configuration from environment variables, with an optional
// .env file at the working directory
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Only a missing file is fine
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Decks:  DefaultDecks,
		Rounds: DefaultRounds,
		Chips:  DefaultChips,
		Human:  os.Getenv("BLACKJACK_HUMAN"),
	}

	var err error
	if cfg.Decks, err = intEnv("BLACKJACK_DECKS", DefaultDecks); err != nil {
		return nil, err
	}
	if cfg.Rounds, err = intEnv("BLACKJACK_ROUNDS", DefaultRounds); err != nil {
		return nil, err
	}

	chips, err := intEnv("BLACKJACK_CHIPS", DefaultChips)
	if err != nil {
		return nil, err
	}
	cfg.Chips = int64(chips)

	seed, err := intEnv("BLACKJACK_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.Seed = int64(seed)

	bots, err := ParseBots(os.Getenv("BLACKJACK_BOTS"))
	if err != nil {
		return nil, err
	}
	cfg.Bots = bots

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the table rules. Failing here is fatal: sessions are
// never constructed from an invalid config.
func (c *Config) Validate() error {
	if c.Decks < 1 {
		return fmt.Errorf("deck count must be at least 1, got %d", c.Decks)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("round limit must be at least 1, got %d", c.Rounds)
	}
	if c.Chips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", c.Chips)
	}
	return nil
}

// ParseBots parses a comma-separated list of "name:strategy" seats,
// e.g. "Tuco:conservative,Angel:basic". An empty input yields no bots.
func ParseBots(raw string) ([]BotSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	specs := make([]BotSpec, 0)
	for _, part := range strings.Split(raw, ",") {
		name, strategy, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found || name == "" || strategy == "" {
			return nil, fmt.Errorf("invalid bot spec %q, want name:strategy", part)
		}
		specs = append(specs, BotSpec{Name: name, Strategy: strategy})
	}
	return specs, nil
}

func intEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}
