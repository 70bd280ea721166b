package ai

import (
	"fmt"
	"strings"
	"time"
)

// Provider names accepted in config.
const (
	ProviderNone             = "none"
	ProviderOpenAI           = "openai"
	ProviderAnthropic        = "anthropic"
	ProviderOpenAICompatible = "openai-compatible"
)

// Config selects and configures the generators.
type Config struct {
	Provider   string
	Model      string // reflections and moods
	DreamModel string // dream readings; falls back to Model
	APIKey     string
	Endpoint   string
	Timeout    time.Duration
}

// NormalizeProvider folds spelling variants such as "OpenAI_Compatible".
func NormalizeProvider(raw string) string {
	p := strings.ToLower(strings.TrimSpace(raw))
	p = strings.ReplaceAll(p, "_", "-")
	p = strings.ReplaceAll(p, " ", "")
	switch p {
	case "", "off", "disabled":
		return ProviderNone
	case "openaicompatible", "compat", "gemini":
		return ProviderOpenAICompatible
	}
	return p
}

// NewGenerator builds the generator for cfg using model.
func NewGenerator(cfg Config, model string) (Generator, error) {
	switch NormalizeProvider(cfg.Provider) {
	case ProviderNone:
		return Unavailable{}, nil
	case ProviderOpenAI:
		return NewOpenAI(cfg.APIKey, model, cfg.Endpoint)
	case ProviderAnthropic:
		return NewAnthropic(cfg.APIKey, model, cfg.Endpoint)
	case ProviderOpenAICompatible:
		return NewCompatClient(cfg.Endpoint, cfg.APIKey, model, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}
