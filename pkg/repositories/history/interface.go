package history

import (
	"context"
	"errors"

	"github.com/cardroom/blackjack/pkg/entities"
)

var ErrSessionNotFound = errors.New("session not found")

// Repository stores round results for the lifetime of a session. Results
// are append-only: once saved, a round result is never changed.
type Repository interface {
	// SaveRoundResult appends a round result to a session's history
	SaveRoundResult(ctx context.Context, sessionID string, result *entities.RoundResult) error

	// GetRoundResults returns a session's rounds in play order
	GetRoundResults(ctx context.Context, sessionID string) ([]*entities.RoundResult, error)

	// GetPlayerResults returns every per-player line recorded for a
	// player across all sessions, in play order
	GetPlayerResults(ctx context.Context, playerName string) ([]*entities.PlayerResult, error)

	// Close releases any resources held by the repository
	Close() error
}
