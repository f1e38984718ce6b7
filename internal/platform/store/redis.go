package store

import (
	"context"
	"encoding/json"
	"errors"

	"contest_client/internal/common"
	"contest_client/internal/domain/model"
	"contest_client/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

const identityKey = "contest_client:identity"

// ConnectRedis dials the Redis instance configured for the identity store.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, common.Errorf("could not connect to Redis: %w", err)
	}
	return rdb, nil
}

// RedisStore persists the identity under a single global key, mirroring the
// file backend's overwrite-on-join semantics.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Load(ctx context.Context) (*model.Participant, error) {
	data, err := s.rdb.Get(ctx, identityKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoIdentity
		}
		return nil, common.Errorf("failed to read identity from redis: %w", err)
	}
	var p model.Participant
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, common.Errorf("failed to parse stored identity: %w", err)
	}
	return &p, nil
}

func (s *RedisStore) Save(ctx context.Context, p *model.Participant) error {
	data, err := json.Marshal(p)
	if err != nil {
		return common.Errorf("failed to marshal identity: %w", err)
	}
	if err := s.rdb.Set(ctx, identityKey, data, 0).Err(); err != nil {
		return common.Errorf("failed to write identity to redis: %w", err)
	}
	return nil
}
