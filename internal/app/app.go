package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/pigcat/internal/ai"
	"github.com/five82/pigcat/internal/config"
	"github.com/five82/pigcat/internal/kv"
	"github.com/five82/pigcat/internal/logging"
	"github.com/five82/pigcat/internal/site"
	"github.com/five82/pigcat/internal/slideshow"
	"github.com/five82/pigcat/internal/state"
	"github.com/five82/pigcat/internal/ui"
	"github.com/five82/pigcat/internal/visits"
)

// Options configure the pigcat application.
type Options struct {
	ConfigPath string // empty uses ~/.config/pigcat/config.toml
	Ephemeral  bool   // keep every record in memory for this run only
	Debug      bool   // log at debug level
}

// Env holds the opened dependencies shared by every command.
type Env struct {
	Config  config.Config
	Log     zerolog.Logger
	KV      kv.Store
	Store   *state.Store
	Gateway *ai.Gateway
	Gate    *state.AdminGate

	closers []io.Closer
}

// Open loads configuration and opens logging, storage, state and the AI
// gateway. Callers must Close the returned Env.
func Open(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Ephemeral {
		cfg.Storage.Driver = kv.DriverMemory
	}

	log, logCloser, err := logging.New(logging.Options{
		Path:  cfg.Log.Path,
		Level: cfg.Log.Level,
		Debug: opts.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	env := &Env{Config: cfg, Log: log, closers: []io.Closer{logCloser}}

	backing, err := kv.Open(ctx, kv.Options{
		Driver:    cfg.Storage.Driver,
		Path:      cfg.Storage.Path,
		RedisURL:  cfg.Storage.RedisURL,
		Namespace: cfg.Storage.Namespace,
	})
	if err != nil {
		_ = env.Close()
		return nil, fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}
	env.KV = backing
	env.closers = append([]io.Closer{backing}, env.closers...)

	store, err := state.Open(ctx, backing, state.WithLogger(log))
	if err != nil {
		_ = env.Close()
		return nil, fmt.Errorf("load records: %w", err)
	}
	env.Store = store

	gw, err := ai.Open(ai.Config{
		Provider:   cfg.AI.Provider,
		Model:      cfg.AI.Model,
		DreamModel: cfg.AI.DreamModel,
		APIKey:     cfg.AI.APIKey,
		Endpoint:   cfg.AI.Endpoint,
		Timeout:    cfg.AI.Timeout,
	}, log)
	if err != nil {
		// Generation is optional; every call falls back to a fixed reply.
		log.Warn().Err(err).Str("provider", cfg.AI.Provider).Msg("ai provider unavailable")
		gw = ai.NewGateway(nil, nil, cfg.AI.Timeout, log)
	}
	env.Gateway = gw
	env.Gate = state.NewAdminGate(cfg.Admin.Password)

	log.Debug().
		Str("config", cfg.Path).
		Str("storage", cfg.Storage.Driver).
		Str("provider", ai.NormalizeProvider(cfg.AI.Provider)).
		Msg("environment ready")
	return env, nil
}

// Close releases storage and the log file.
func (e *Env) Close() error {
	var errs []error
	for _, c := range e.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	e.closers = nil
	return errors.Join(errs...)
}

// Run boots the pigcat TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()
	return env.RunUI(ctx)
}

// RunUI records the visit, starts the slideshow and blocks in the UI.
func (e *Env) RunUI(ctx context.Context) error {
	count, err := visits.Counter{Store: e.KV, Log: e.Log}.Compute(ctx)
	if err != nil {
		// The counter is decoration; show zeros rather than refuse to start.
		e.Log.Warn().Err(err).Msg("visit counter unavailable")
		count = visits.Count{Date: site.FormatDate(time.Now())}
	}

	ticker := slideshow.New(e.Config.UI.SlideshowInterval)
	defer ticker.Stop()
	ticker.SetImages(len(e.Store.Settings().MainImages))

	e.Log.Info().Int("visits", count.Value).Bool("new_day", count.NewDay).Msg("pigcat started")
	defer e.Log.Info().Msg("pigcat stopped")

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     e.Store,
		Gateway:   e.Gateway,
		Gate:      e.Gate,
		Visits:    count,
		Slideshow: ticker,
		LogPath:   e.Config.Log.Path,
		ThemeName: e.Config.UI.Theme,
		Logger:    e.Log,
	})
}

// Dream reads a dream without starting the UI and writes the reading to w.
func Dream(ctx context.Context, opts Options, dream string, w io.Writer) error {
	if strings.TrimSpace(dream) == "" {
		return site.ErrDreamRequired
	}
	env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	reading := env.Gateway.AnalyzeDream(ctx, dream)
	_, err = fmt.Fprintln(w, reading)
	return err
}

// Export writes every persisted record to w as indented JSON.
func Export(ctx context.Context, opts Options, w io.Writer) error {
	env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	data, err := env.Store.Export().MarshalIndent()
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ResetSettings restores the default site settings. It requires the owner
// password, the same gate the dashboard uses.
func ResetSettings(ctx context.Context, opts Options, password string) error {
	env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.Gate.Login(password); err != nil {
		return err
	}
	defer env.Gate.Logout()
	if err := env.Store.ResetSettings(ctx); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	env.Log.Info().Msg("settings reset from command line")
	return nil
}

// ShowConfig writes the resolved configuration with secrets masked.
func ShowConfig(opts Options, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.Ephemeral {
		cfg.Storage.Driver = kv.DriverMemory
	}
	data, err := cfg.Redacted().MarshalTOML()
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}
