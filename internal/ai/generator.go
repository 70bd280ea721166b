package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by the "none" provider.
var ErrUnavailable = errors.New("ai provider not configured")

// ErrEmptyResponse is returned when a provider replies with no text.
var ErrEmptyResponse = errors.New("empty response from AI")

// Request is a single prompt.
type Request struct {
	System      string
	Prompt      string
	Temperature float64 // zero leaves the provider default
	MaxTokens   int
}

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Unavailable always fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, Request) (string, error) {
	return "", ErrUnavailable
}
