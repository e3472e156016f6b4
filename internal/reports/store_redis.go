package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "reports:"

// RedisStore keeps one hash per asset, field per operation, expiring as a whole
// ttl after the most recent write.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// RedisOptions configures NewRedisClient.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient creates a client and verifies connectivity.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// NewRedisStore constructs a RedisStore.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func redisKey(assetID string) string {
	return redisKeyPrefix + assetID
}

// Put writes payload and refreshes the hash expiry.
func (s *RedisStore) Put(ctx context.Context, assetID, operation string, payload []byte) error {
	key := redisKey(assetID)
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, operation, payload)
		if s.TTL > 0 {
			pipe.Expire(ctx, key, s.TTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put %s: %w", key, err)
	}
	return nil
}

// Latest reads every stored operation for assetID.
func (s *RedisStore) Latest(ctx context.Context, assetID string) (map[string]json.RawMessage, error) {
	key := redisKey(assetID)
	fields, err := s.Client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	out := make(map[string]json.RawMessage, len(fields))
	for op, payload := range fields {
		out[op] = json.RawMessage(payload)
	}
	return out, nil
}

var _ Store = (*RedisStore)(nil)
