package storage

import (
	"context"
	"time"

	"fixnow/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionKeyPrefix namespaces session keys in Redis.
const SessionKeyPrefix = "fixnowSession:"

// RedisStore keeps session keys in Redis. Entries carry no TTL; the session
// lives until Clear, mirroring the file store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(key string) (string, bool) {
	v, err := s.client.Get(context.Background(), SessionKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		// A missing key and an unreachable store look the same to the
		// caller; the session simply reads as absent.
		utils.GetLogger().Warn("redis store read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, true
}

func (s *RedisStore) Set(key, value string) error {
	return s.client.Set(context.Background(), SessionKeyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), SessionKeyPrefix+key).Err()
}
