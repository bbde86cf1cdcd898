package collection

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fogoseda/party-api/internal/content"
	"github.com/fogoseda/party-api/internal/errors"
)

type inMemoryRepository struct {
	mu      sync.RWMutex
	bundles map[string][]byte
}

// NewInMemoryRepository creates an in-memory overlay collection repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		bundles: make(map[string][]byte),
	}
}

var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.RLock()
	payload, ok := r.bundles[input.OwnerID]
	r.mu.RUnlock()
	if !ok {
		return &LoadOutput{Bundle: &content.Bundle{}}, nil
	}

	var bundle content.Bundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return &LoadOutput{Bundle: &content.Bundle{}}, nil
	}

	return &LoadOutput{Bundle: &bundle}, nil
}

func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Bundle == nil {
		return nil, errors.InvalidArgument(errBundleNil)
	}

	payload, err := json.Marshal(input.Bundle)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal collection")
	}

	r.mu.Lock()
	r.bundles[input.OwnerID] = payload
	r.mu.Unlock()

	return &SaveOutput{}, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	r.mu.Lock()
	delete(r.bundles, input.OwnerID)
	r.mu.Unlock()

	return &DeleteOutput{}, nil
}
