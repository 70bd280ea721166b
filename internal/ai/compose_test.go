package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/pigcat/internal/site"
)

func TestCompose(t *testing.T) {
	var calls int
	gen := GeneratorFunc(func(_ context.Context, req Request) (string, error) {
		calls++
		if req.MaxTokens == moodMaxTokens {
			return "🍂", nil
		}
		return "감상평", nil
	})
	g := NewGateway(gen, nil, time.Second, zerolog.Nop())
	now := time.Date(2024, 10, 22, 20, 0, 0, 0, time.UTC)

	e, err := g.Compose(context.Background(), site.Draft{Title: "제목", Content: "내용", ImageURL: " img "}, now)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if calls != 2 {
		t.Fatalf("generator calls = %d, want 2", calls)
	}
	if e.Mood != "🍂" || e.AIReflection != "감상평" {
		t.Fatalf("entry texts = %q / %q", e.Mood, e.AIReflection)
	}
	if e.Date != "2024. 10. 22." || e.ImageURL != "img" || e.ID == "" {
		t.Fatalf("entry = %+v", e)
	}
	if len(e.Tags) != 1 || e.Tags[0] != site.DefaultEntryTag {
		t.Fatalf("Tags = %v", e.Tags)
	}
}

func TestCompose_ValidationSkipsGeneration(t *testing.T) {
	called := false
	g := NewGateway(GeneratorFunc(func(context.Context, Request) (string, error) {
		called = true
		return "x", nil
	}), nil, time.Second, zerolog.Nop())

	_, err := g.Compose(context.Background(), site.Draft{Title: "t", Content: "  "}, time.Now())
	if !errors.Is(err, site.ErrContentRequired) {
		t.Fatalf("Compose = %v, want ErrContentRequired", err)
	}
	if called {
		t.Fatalf("generator called for an invalid draft")
	}
}

func TestCompose_FailingProviderStillBuildsEntry(t *testing.T) {
	g := NewGateway(failing(), nil, time.Second, zerolog.Nop())
	e, err := g.Compose(context.Background(), site.Draft{Title: "t", Content: "c"}, time.Now())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if e.AIReflection != ReflectionFailed || e.Mood != MoodFailed {
		t.Fatalf("entry texts = %q / %q, want fallbacks", e.AIReflection, e.Mood)
	}
}
