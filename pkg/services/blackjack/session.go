package blackjack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/cardroom/blackjack/pkg/entities"
	"github.com/cardroom/blackjack/pkg/repositories/history"
)

var (
	ErrInvalidRoundLimit = errors.New("round limit must be at least 1")
	ErrInvalidChips      = errors.New("starting chips must be positive")
	ErrNoPlayers         = errors.New("no players at the table")
	ErrSessionStarted    = errors.New("session already started")
	ErrSessionComplete   = errors.New("session is complete")
)

// Session runs rounds against one shoe until the round limit is reached
// or every seat is bankrupt. Completed rounds are appended to the
// history repository and never modified afterwards.
type Session struct {
	id        string
	players   []*Player
	dealer    *Dealer
	shoe      *entities.Shoe
	engine    *Engine
	round     int
	maxRounds int
	repo      history.Repository
	logger    *log.Logger
}

// NewSession builds a session over a fresh shoe. Configuration errors
// (bad deck count, bad round limit) are fatal here; nothing later in
// the session's life returns them. The seed fixes the shuffle sequence,
// so two sessions with the same seed, seats and strategies replay
// identically.
func NewSession(decks, maxRounds int, seed int64, input DecisionSource, repo history.Repository, logger *log.Logger) (*Session, error) {
	if maxRounds < 1 {
		return nil, ErrInvalidRoundLimit
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	shoe, err := entities.NewShoe(decks, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("building shoe: %w", err)
	}

	return &Session{
		id:        uuid.NewString(),
		dealer:    NewDealer(),
		shoe:      shoe,
		engine:    NewEngine(shoe, input, logger),
		maxRounds: maxRounds,
		repo:      repo,
		logger:    logger,
	}, nil
}

// ID returns the session identifier used to key history
func (s *Session) ID() string {
	return s.id
}

// AddBot seats a bot playing the named strategy
func (s *Session) AddBot(name, strategy string, chips int64) error {
	strat, err := StrategyByName(strategy)
	if err != nil {
		return err
	}
	return s.seat(NewBot(name, strat, chips))
}

// AddPlayer seats a human-controlled player served by the engine's
// decision source
func (s *Session) AddPlayer(name string, chips int64) error {
	return s.seat(NewPlayer(name, chips))
}

func (s *Session) seat(p *Player) error {
	if s.round > 0 {
		return ErrSessionStarted
	}
	if p.Chips <= 0 {
		return ErrInvalidChips
	}
	s.players = append(s.players, p)
	s.logger.Info("seated", "player", p.Name, "chips", p.Chips, "bot", p.IsBot())
	return nil
}

// Active reports whether another round can be played
func (s *Session) Active() bool {
	if s.round >= s.maxRounds {
		return false
	}
	for _, p := range s.players {
		if p.Chips > 0 {
			return true
		}
	}
	return false
}

// PlayRound runs the next round and records its result
func (s *Session) PlayRound(ctx context.Context) (*entities.RoundResult, error) {
	if len(s.players) == 0 {
		return nil, ErrNoPlayers
	}
	if !s.Active() {
		return nil, ErrSessionComplete
	}

	s.round++
	s.logger.Info("round start", "round", s.round, "of", s.maxRounds, "shoe", s.shoe.Remaining())

	result := s.engine.PlayRound(s.round, s.players, s.dealer)

	if err := s.repo.SaveRoundResult(ctx, s.id, result); err != nil {
		s.logger.Error("failed to save round result", "round", s.round, "err", err)
	}

	return result, nil
}

// Round returns the number of completed rounds
func (s *Session) Round() int {
	return s.round
}

// Players exposes the seats for read-only reporting
func (s *Session) Players() []*Player {
	out := make([]*Player, len(s.players))
	copy(out, s.players)
	return out
}

// History returns the recorded results of every completed round
func (s *Session) History(ctx context.Context) ([]*entities.RoundResult, error) {
	return s.repo.GetRoundResults(ctx, s.id)
}
