package collection

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/fogoseda/party-api/internal/content"
	"github.com/fogoseda/party-api/internal/errors"
	redisclient "github.com/fogoseda/party-api/internal/redis"
)

const (
	// Key pattern: user_content:{owner_id}
	collectionKeyPrefix = "user_content:"

	errOwnerIDEmpty = "owner ID cannot be empty"
	errBundleNil    = "bundle cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for overlay collections.
// Stored bundles have no TTL: authored content outlives any session.
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Load retrieves an owner's overlay bundle. Missing or unreadable
// payloads yield an empty bundle.
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := collectionKeyPrefix + input.OwnerID

	payload, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadOutput{Bundle: &content.Bundle{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to get collection from Redis")
	}

	var bundle content.Bundle
	if err := json.Unmarshal([]byte(payload), &bundle); err != nil {
		return &LoadOutput{Bundle: &content.Bundle{}}, nil
	}

	return &LoadOutput{Bundle: &bundle}, nil
}

// Save stores an owner's overlay bundle
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
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

	key := collectionKeyPrefix + input.OwnerID
	if err := r.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store collection in Redis")
	}

	return &SaveOutput{}, nil
}

// Delete removes an owner's overlay bundle
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := collectionKeyPrefix + input.OwnerID
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete collection from Redis")
	}

	return &DeleteOutput{}, nil
}
