package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a string-keyed record store.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options select and configure a driver.
type Options struct {
	Driver    string
	Path      string // sqlite database or TOML file
	RedisURL  string
	Namespace string // redis key prefix
}

// Open returns the Store named by opts.Driver.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite:
		return OpenSQLite(opts.Path)
	case DriverFile:
		return OpenFile(opts.Path)
	case DriverRedis:
		return OpenRedis(ctx, opts.RedisURL, opts.Namespace)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}
