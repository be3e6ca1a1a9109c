package session

import (
	"context"
	"encoding/json"
	"time"

	pkgredis "github.com/sewakita/rentweb/internal/pkg/redis"
)

const redisKeyPrefix = "rentweb:session:"

// redisStore persists sessions in Redis so they survive restarts and are
// shared across instances.
type redisStore struct {
	rc *pkgredis.Client
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(rc *pkgredis.Client) Store {
	return &redisStore{rc: rc}
}

func (s *redisStore) Get(ctx context.Context, id string) (*Data, error) {
	raw, err := s.rc.Get(ctx, redisKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var d Data
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *redisStore) Put(ctx context.Context, id string, d *Data, ttl time.Duration) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.rc.Set(ctx, redisKeyPrefix+id, string(payload), ttl)
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.rc.Del(ctx, redisKeyPrefix+id)
}
