package boardsession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/fogoseda/party-api/internal/errors"
	"github.com/fogoseda/party-api/internal/pkg/clock"
	redisclient "github.com/fogoseda/party-api/internal/redis"
)

const (
	// Key pattern: board_session:{game_id}
	gameKeyPrefix = "board_session:"
	defaultTTL    = 30 * 24 * time.Hour

	errSessionNil  = "session cannot be nil"
	errGameIDEmpty = "game ID cannot be empty"
	errDefaultsNil = "defaults cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock

	// TTL applied on every save; zero means defaultTTL
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for board games
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Load retrieves a game, merging persisted fields over the provided
// defaults. Missing or unreadable payloads fall back to defaults.
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}
	if input.Defaults == nil {
		return nil, errors.InvalidArgument(errDefaultsNil)
	}

	session := *input.Defaults
	key := gameKeyPrefix + input.GameID

	payload, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadOutput{Session: &session}, nil
		}
		return nil, errors.Wrapf(err, "failed to get game from Redis")
	}

	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		session = *input.Defaults
		return &LoadOutput{Session: &session}, nil
	}

	return &LoadOutput{Session: &session, Restored: true}, nil
}

// Save stores the game, refreshing the TTL
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	input.Session.UpdatedAt = r.clock.Now()

	payload, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game")
	}

	key := gameKeyPrefix + input.Session.ID
	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store game in Redis")
	}

	return &SaveOutput{}, nil
}

// Delete removes a game
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	key := gameKeyPrefix + input.GameID
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete game from Redis")
	}

	return &DeleteOutput{}, nil
}
