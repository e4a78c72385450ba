package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/musemart/musemart-backend/pkg/domain"
	redisclient "github.com/musemart/musemart-backend/pkg/redis"
	redislib "github.com/redis/go-redis/v9"
)

type redisKV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

type redisKeyer interface {
	SessionKey(name string) string
}

// RedisStore keeps the session record under a namespaced redis key.
type RedisStore struct {
	kv    redisKV
	keyer redisKeyer
	key   string
	ttl   time.Duration
}

// NewRedisStore wires the session record onto the shared redis client.
func NewRedisStore(client *redisclient.Client, key string, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if key == "" {
		return nil, fmt.Errorf("session key is required")
	}
	return &RedisStore{kv: client, keyer: client, key: key, ttl: ttl}, nil
}

func (s *RedisStore) Save(ctx context.Context, user domain.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("serializing session record: %w", err)
	}
	return s.kv.Set(ctx, s.keyer.SessionKey(s.key), string(payload), s.ttl)
}

func (s *RedisStore) Load(ctx context.Context) (*domain.User, error) {
	raw, err := s.kv.Get(ctx, s.keyer.SessionKey(s.key))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("parsing session record: %w", err)
	}
	return &user, nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.kv.Del(ctx, s.keyer.SessionKey(s.key))
}
