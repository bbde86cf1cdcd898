package boardsession

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fogoseda/party-api/internal/errors"
)

// inMemoryRepository stores serialized games in a map, keeping the same
// merge-over-defaults behavior as the Redis implementation.
type inMemoryRepository struct {
	mu    sync.RWMutex
	games map[string][]byte
}

// NewInMemoryRepository creates an in-memory board game repository,
// suitable for tests and local play without Redis
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		games: make(map[string][]byte),
	}
}

var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}
	if input.Defaults == nil {
		return nil, errors.InvalidArgument(errDefaultsNil)
	}

	session := *input.Defaults

	r.mu.RLock()
	payload, ok := r.games[input.GameID]
	r.mu.RUnlock()
	if !ok {
		return &LoadOutput{Session: &session}, nil
	}

	if err := json.Unmarshal(payload, &session); err != nil {
		session = *input.Defaults
		return &LoadOutput{Session: &session}, nil
	}

	return &LoadOutput{Session: &session, Restored: true}, nil
}

func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	payload, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game")
	}

	r.mu.Lock()
	r.games[input.Session.ID] = payload
	r.mu.Unlock()

	return &SaveOutput{}, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	r.mu.Lock()
	delete(r.games, input.GameID)
	r.mu.Unlock()

	return &DeleteOutput{}, nil
}
