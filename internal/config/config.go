package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix namespaces environment overrides, e.g. PIGCAT_AI_API_KEY.
const EnvPrefix = "PIGCAT"

const (
	defaultConfigPath        = "~/.config/pigcat/config.toml"
	defaultDBPath            = "~/.local/share/pigcat/pigcat.db"
	defaultFileStorePath     = "~/.local/share/pigcat/pigcat.toml"
	defaultLogPath           = "~/.local/state/pigcat/pigcat.log"
	defaultStorageDriver     = "sqlite"
	defaultRedisNamespace    = "pigcat"
	defaultAIProvider        = "none"
	defaultAITimeout         = 30 * time.Second
	defaultSlideshowInterval = 4 * time.Second
	defaultAdminPassword     = "1234"
	defaultLogLevel          = "info"
	defaultTheme             = "site"
)

// Config is the resolved application configuration.
type Config struct {
	Path    string
	Storage Storage
	AI      AI
	Admin   Admin
	UI      UI
	Log     Log
}

// Storage selects the kv driver.
type Storage struct {
	Driver    string
	Path      string
	RedisURL  string
	Namespace string
}

// AI configures the text generation provider.
type AI struct {
	Provider   string
	Model      string
	DreamModel string
	APIKey     string
	Endpoint   string
	Timeout    time.Duration
}

// Admin holds the dashboard password.
type Admin struct {
	Password string
}

// UI tunes the terminal client.
type UI struct {
	SlideshowInterval time.Duration
	Theme             string
}

// Log configures the log file.
type Log struct {
	Path  string
	Level string
}

// fileConfig mirrors the TOML layout. Durations stay strings so both TOML and
// environment values go through time.ParseDuration. Environment names are
// derived from field names (PIGCAT_AI_API_KEY); explicit envconfig tags are
// avoided because envconfig also falls back to the bare tag, which would let
// $PATH leak into storage.path.
type fileConfig struct {
	Storage struct {
		Driver    string `toml:"driver"`
		Path      string `toml:"path"`
		RedisURL  string `toml:"redis_url" split_words:"true"`
		Namespace string `toml:"namespace"`
	} `toml:"storage"`
	AI struct {
		Provider   string `toml:"provider"`
		Model      string `toml:"model"`
		DreamModel string `toml:"dream_model" split_words:"true"`
		APIKey     string `toml:"api_key" split_words:"true"`
		Endpoint   string `toml:"endpoint"`
		Timeout    string `toml:"timeout"`
	} `toml:"ai"`
	Admin struct {
		Password string `toml:"password"`
	} `toml:"admin"`
	UI struct {
		SlideshowInterval string `toml:"slideshow_interval" split_words:"true"`
		Theme             string `toml:"theme"`
	} `toml:"ui"`
	Log struct {
		Path  string `toml:"path"`
		Level string `toml:"level"`
	} `toml:"log"`
}

// Default returns the built-in configuration with paths expanded.
func Default() Config {
	return Config{
		Path: mustExpand(defaultConfigPath),
		Storage: Storage{
			Driver:    defaultStorageDriver,
			Path:      mustExpand(defaultDBPath),
			Namespace: defaultRedisNamespace,
		},
		AI: AI{
			Provider: defaultAIProvider,
			Timeout:  defaultAITimeout,
		},
		Admin: Admin{Password: defaultAdminPassword},
		UI: UI{
			SlideshowInterval: defaultSlideshowInterval,
			Theme:             defaultTheme,
		},
		Log: Log{
			Path:  mustExpand(defaultLogPath),
			Level: defaultLogLevel,
		},
	}
}

// Load reads the TOML file at path (or the default location), applies
// PIGCAT_* environment overrides and fills defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw fileConfig
	if err := readFile(resolved, &raw); err != nil {
		return Config{}, err
	}
	if err := envconfig.Process(EnvPrefix, &raw); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	cfg, err := raw.resolve()
	if err != nil {
		return Config{}, err
	}
	cfg.Path = resolved
	return cfg, nil
}

func readFile(path string, raw *fileConfig) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (raw fileConfig) resolve() (Config, error) {
	cfg := Default()

	cfg.Storage.Driver = orDefault(strings.ToLower(raw.Storage.Driver), defaultStorageDriver)
	switch cfg.Storage.Driver {
	case "sqlite", "file", "redis", "memory":
	default:
		return Config{}, fmt.Errorf("storage.driver %q: want sqlite, file, redis or memory", raw.Storage.Driver)
	}
	storagePath := strings.TrimSpace(raw.Storage.Path)
	if storagePath == "" && cfg.Storage.Driver == "file" {
		storagePath = defaultFileStorePath
	}
	if storagePath != "" {
		cfg.Storage.Path = mustExpand(storagePath)
	}
	cfg.Storage.RedisURL = strings.TrimSpace(raw.Storage.RedisURL)
	if cfg.Storage.Driver == "redis" && cfg.Storage.RedisURL == "" {
		return Config{}, fmt.Errorf("storage.redis_url is required for the redis driver")
	}
	cfg.Storage.Namespace = orDefault(raw.Storage.Namespace, defaultRedisNamespace)

	cfg.AI.Provider = orDefault(raw.AI.Provider, defaultAIProvider)
	cfg.AI.Model = strings.TrimSpace(raw.AI.Model)
	cfg.AI.DreamModel = strings.TrimSpace(raw.AI.DreamModel)
	cfg.AI.APIKey = strings.TrimSpace(raw.AI.APIKey)
	cfg.AI.Endpoint = strings.TrimSpace(raw.AI.Endpoint)
	timeout, err := parseDuration("ai.timeout", raw.AI.Timeout, defaultAITimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.AI.Timeout = timeout

	// The password is compared verbatim, so it is not trimmed.
	if raw.Admin.Password != "" {
		cfg.Admin.Password = raw.Admin.Password
	}

	interval, err := parseDuration("ui.slideshow_interval", raw.UI.SlideshowInterval, defaultSlideshowInterval)
	if err != nil {
		return Config{}, err
	}
	cfg.UI.SlideshowInterval = interval
	cfg.UI.Theme = orDefault(strings.ToLower(raw.UI.Theme), defaultTheme)

	if p := strings.TrimSpace(raw.Log.Path); p != "" {
		cfg.Log.Path = mustExpand(p)
	}
	cfg.Log.Level = orDefault(strings.ToLower(raw.Log.Level), defaultLogLevel)

	return cfg, nil
}

// Redacted returns a copy with secrets masked, for display.
func (c Config) Redacted() Config {
	if c.AI.APIKey != "" {
		c.AI.APIKey = "********"
	}
	if c.Admin.Password != "" {
		c.Admin.Password = "********"
	}
	return c
}

// MarshalTOML renders c in the config file layout.
func (c Config) MarshalTOML() ([]byte, error) {
	var raw fileConfig
	raw.Storage.Driver = c.Storage.Driver
	raw.Storage.Path = c.Storage.Path
	raw.Storage.RedisURL = c.Storage.RedisURL
	raw.Storage.Namespace = c.Storage.Namespace
	raw.AI.Provider = c.AI.Provider
	raw.AI.Model = c.AI.Model
	raw.AI.DreamModel = c.AI.DreamModel
	raw.AI.APIKey = c.AI.APIKey
	raw.AI.Endpoint = c.AI.Endpoint
	raw.AI.Timeout = c.AI.Timeout.String()
	raw.Admin.Password = c.Admin.Password
	raw.UI.SlideshowInterval = c.UI.SlideshowInterval.String()
	raw.UI.Theme = c.UI.Theme
	raw.Log.Path = c.Log.Path
	raw.Log.Level = c.Log.Level
	return toml.Marshal(raw)
}

func parseDuration(name, raw string, fallback time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, raw)
	}
	return d, nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
