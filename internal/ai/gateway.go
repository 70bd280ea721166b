package ai

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/pigcat/internal/logging"
)

// DefaultTimeout bounds a single call when Config.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// Gateway runs the site's three generation calls. Its methods never fail.
type Gateway struct {
	text    Generator
	dream   Generator
	timeout time.Duration
	log     zerolog.Logger
}

// NewGateway wraps explicit generators. dream may be nil to reuse text.
func NewGateway(text, dream Generator, timeout time.Duration, log zerolog.Logger) *Gateway {
	if text == nil {
		text = Unavailable{}
	}
	if dream == nil {
		dream = text
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		text:    text,
		dream:   dream,
		timeout: timeout,
		log:     logging.Component(log, "ai"),
	}
}

// Open builds a Gateway from cfg.
func Open(cfg Config, log zerolog.Logger) (*Gateway, error) {
	text, err := NewGenerator(cfg, cfg.Model)
	if err != nil {
		return nil, err
	}
	dream := text
	if m := strings.TrimSpace(cfg.DreamModel); m != "" && m != strings.TrimSpace(cfg.Model) {
		if dream, err = NewGenerator(cfg, m); err != nil {
			return nil, err
		}
	}
	return NewGateway(text, dream, cfg.Timeout, log), nil
}

// Reflect writes a short poetic comment on a diary entry.
func (g *Gateway) Reflect(ctx context.Context, content string) string {
	return g.run(ctx, "reflect", g.text, reflectionRequest(content), ReflectionFailed, ReflectionEmpty)
}

// ClassifyMood picks a single emoji for content.
func (g *Gateway) ClassifyMood(ctx context.Context, content string) string {
	mood := g.run(ctx, "mood", g.text, moodRequest(content), MoodFailed, MoodEmpty)
	if glyph := firstGlyph(mood); glyph != "" {
		return glyph
	}
	return MoodEmpty
}

// AnalyzeDream interprets a dream in a few sentences.
func (g *Gateway) AnalyzeDream(ctx context.Context, dream string) string {
	return g.run(ctx, "dream", g.dream, dreamRequest(dream), DreamFailed, DreamEmpty)
}

func (g *Gateway) run(ctx context.Context, op string, gen Generator, req Request, failed, empty string) string {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	out, err := safeGenerate(ctx, gen, req)
	if err != nil {
		g.log.Warn().Err(err).Str("op", op).Dur("elapsed", time.Since(start)).Msg("generation failed, using fallback")
		return failed
	}
	out = strings.TrimSpace(out)
	if out == "" {
		g.log.Info().Str("op", op).Msg("empty generation, using fallback")
		return empty
	}
	g.log.Debug().Str("op", op).Dur("elapsed", time.Since(start)).Int("chars", len([]rune(out))).Msg("generated")
	return out
}

// safeGenerate converts a panicking provider into an error.
func safeGenerate(ctx context.Context, gen Generator, req Request) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = panicError{r}
		}
	}()
	return gen.Generate(ctx, req)
}

type panicError struct{ v any }

func (p panicError) Error() string {
	if e, ok := p.v.(error); ok {
		return "generator panic: " + e.Error()
	}
	if s, ok := p.v.(string); ok {
		return "generator panic: " + s
	}
	return "generator panic"
}
