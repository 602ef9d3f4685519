package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cardroom/blackjack/internal/config"
	"github.com/cardroom/blackjack/pkg/console"
	"github.com/cardroom/blackjack/pkg/repositories/history"
	"github.com/cardroom/blackjack/pkg/services/blackjack"
	"github.com/cardroom/blackjack/pkg/services/statistics"
)

var cli struct {
	Decks   int      `help:"Number of decks in the shoe." placeholder:"N"`
	Rounds  int      `help:"Maximum number of rounds to play." placeholder:"N"`
	Chips   int64    `help:"Starting chips per seat." placeholder:"N"`
	Seed    int64    `help:"RNG seed for the shoe; 0 seeds from the clock."`
	Bots    []string `help:"Bot seats as name:strategy (conservative, aggressive or basic)." placeholder:"NAME:STRATEGY"`
	Human   string   `help:"Seat an interactive player under this name." placeholder:"NAME"`
	Verbose bool     `short:"v" help:"Log every engine step."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Multi-round blackjack at one table, bots and an optional human seat."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags beat environment
	if cli.Decks > 0 {
		cfg.Decks = cli.Decks
	}
	if cli.Rounds > 0 {
		cfg.Rounds = cli.Rounds
	}
	if cli.Chips > 0 {
		cfg.Chips = cli.Chips
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}
	if cli.Human != "" {
		cfg.Human = cli.Human
	}
	if len(cli.Bots) > 0 {
		cfg.Bots = cfg.Bots[:0]
		for _, raw := range cli.Bots {
			specs, err := config.ParseBots(raw)
			if err != nil {
				return err
			}
			cfg.Bots = append(cfg.Bots, specs...)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// An empty table gets the three stock bots
	if len(cfg.Bots) == 0 && cfg.Human == "" {
		cfg.Bots = []config.BotSpec{
			{Name: "Cautious Carl", Strategy: "conservative"},
			{Name: "Maniac Mae", Strategy: "aggressive"},
			{Name: "Bookish Bea", Strategy: "basic"},
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
	})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("table opening", "decks", cfg.Decks, "rounds", cfg.Rounds,
		"chips", cfg.Chips, "seed", seed)

	var input blackjack.DecisionSource
	if cfg.Human != "" {
		input = console.NewPrompter(os.Stdin, os.Stdout)
	}

	repo := history.NewMemoryRepository()
	defer repo.Close()

	session, err := blackjack.NewSession(cfg.Decks, cfg.Rounds, seed, input, repo, logger)
	if err != nil {
		return err
	}

	for _, spec := range cfg.Bots {
		if err := session.AddBot(spec.Name, spec.Strategy, cfg.Chips); err != nil {
			return fmt.Errorf("seating bot %s: %w", spec.Name, err)
		}
	}
	if cfg.Human != "" {
		if err := session.AddPlayer(cfg.Human, cfg.Chips); err != nil {
			return fmt.Errorf("seating %s: %w", cfg.Human, err)
		}
	}

	ctx := context.Background()
	reporter := console.NewReporter(os.Stdout)

	for session.Active() {
		result, err := session.PlayRound(ctx)
		if err != nil {
			return err
		}
		reporter.Round(result)
	}

	standings, err := statistics.NewService(repo).SessionStandings(ctx, session.ID())
	if err != nil {
		return err
	}
	reporter.Standings(standings)

	return nil
}
