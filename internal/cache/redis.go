package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	retry "github.com/sethvargo/go-retry"
	log "github.com/sirupsen/logrus"

	"titleguard/internal/heuristics"
)

// RedisOptions configures the shared cache.
type RedisOptions struct {
	Address  string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// redisClient is the subset of *redis.Client the cache needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Redis shares results across processes (API servers and workers).
type Redis struct {
	client redisClient
	prefix string
	ttl    time.Duration
}

var _ ResultCache = (*Redis)(nil)

// NewRedis connects and pings the server, retrying briefly so a cache that is
// still starting up does not fail the whole process.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
	b := retry.WithMaxRetries(3, retry.NewFibonacci(200*time.Millisecond))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			log.WithError(err).WithField("address", opts.Address).Warn("redis ping failed, will retry")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis cache at %s: %w", opts.Address, err)
	}
	return newRedisWithClient(client, opts.Prefix, opts.TTL), nil
}

func newRedisWithClient(client redisClient, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = "titleguard:result:"
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, title string) (heuristics.Result, bool, error) {
	raw, err := r.client.Get(ctx, Key(r.prefix, title)).Result()
	if errors.Is(err, redis.Nil) {
		return heuristics.Result{}, false, nil
	}
	if err != nil {
		return heuristics.Result{}, false, fmt.Errorf("redis get: %w", err)
	}
	var res heuristics.Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return heuristics.Result{}, false, fmt.Errorf("decode cached result: %w", err)
	}
	return res, true, nil
}

func (r *Redis) Set(ctx context.Context, title string, res heuristics.Result) error {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := r.client.Set(ctx, Key(r.prefix, title), b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
