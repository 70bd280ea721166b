package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout     = 5 * time.Second
	pingInitialWait = 100 * time.Millisecond
)

// Redis stores records in a Redis database under a key prefix.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

var _ Store = (*Redis)(nil)

// OpenRedis connects to url and verifies the connection, retrying the ping
// with exponential backoff for up to pingTimeout.
func OpenRedis(ctx context.Context, url, namespace string) (*Redis, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("open redis: empty url")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := ping(pingCtx, rdb); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return newRedis(rdb, namespace), nil
}

func ping(ctx context.Context, rdb *redis.Client) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = pingInitialWait
	exp.MaxElapsedTime = pingTimeout
	return backoff.Retry(func() error {
		return rdb.Ping(ctx).Err()
	}, backoff.WithContext(exp, ctx))
}

func newRedis(rdb *redis.Client, namespace string) *Redis {
	prefix := strings.TrimSpace(namespace)
	if prefix != "" && !strings.HasSuffix(prefix, ":") {
		prefix += ":"
	}
	return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) key(k string) string { return r.prefix + k }

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return val, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
