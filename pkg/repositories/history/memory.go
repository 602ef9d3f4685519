package history

import (
	"context"
	"sync"

	"github.com/cardroom/blackjack/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage. This is
// the only shipped implementation: round history deliberately does not
// outlive the process.
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of sessionID to round results in play order
	rounds map[string][]*entities.RoundResult
	// Map of playerName to that player's result lines
	playerResults map[string][]*entities.PlayerResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rounds:        make(map[string][]*entities.RoundResult),
		playerResults: make(map[string][]*entities.PlayerResult),
	}
}

// SaveRoundResult appends a round result to a session's history and to
// each participating player's history
func (r *MemoryRepository) SaveRoundResult(ctx context.Context, sessionID string, result *entities.RoundResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rounds[sessionID] = append(r.rounds[sessionID], result)
	for _, pr := range result.PlayerResults {
		r.playerResults[pr.PlayerName] = append(r.playerResults[pr.PlayerName], pr)
	}
	return nil
}

// GetRoundResults retrieves a session's rounds in play order
func (r *MemoryRepository) GetRoundResults(ctx context.Context, sessionID string) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds, exists := r.rounds[sessionID]
	if !exists {
		return nil, ErrSessionNotFound
	}

	out := make([]*entities.RoundResult, len(rounds))
	copy(out, rounds)
	return out, nil
}

// GetPlayerResults retrieves the result lines recorded for a player
func (r *MemoryRepository) GetPlayerResults(ctx context.Context, playerName string) ([]*entities.PlayerResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.playerResults[playerName]
	out := make([]*entities.PlayerResult, len(results))
	copy(out, results)
	return out, nil
}

// Close is a no-op for the in-memory repository
func (r *MemoryRepository) Close() error {
	return nil
}
