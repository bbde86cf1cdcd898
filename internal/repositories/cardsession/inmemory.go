package cardsession

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fogoseda/party-api/internal/errors"
)

// inMemoryRepository stores serialized sessions in a map. Payloads are
// kept as JSON so merge-over-defaults behaves exactly like the Redis
// implementation.
type inMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewInMemoryRepository creates an in-memory card session repository,
// suitable for tests and local play without Redis
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		sessions: make(map[string][]byte),
	}
}

var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Defaults == nil {
		return nil, errors.InvalidArgument(errDefaultsNil)
	}

	session := *input.Defaults

	r.mu.RLock()
	payload, ok := r.sessions[input.SessionID]
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
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	payload, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	r.mu.Lock()
	r.sessions[input.Session.ID] = payload
	r.mu.Unlock()

	return &SaveOutput{}, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	delete(r.sessions, input.SessionID)
	r.mu.Unlock()

	return &DeleteOutput{}, nil
}
