package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func failing() Generator {
	return GeneratorFunc(func(context.Context, Request) (string, error) {
		return "", errors.New("quota exceeded")
	})
}

func replying(text string) Generator {
	return GeneratorFunc(func(context.Context, Request) (string, error) { return text, nil })
}

func TestGateway_FailureFallbacks(t *testing.T) {
	g := NewGateway(failing(), nil, time.Second, zerolog.Nop())
	ctx := context.Background()

	if got := g.Reflect(ctx, "entry"); got != ReflectionFailed {
		t.Errorf("Reflect = %q, want %q", got, ReflectionFailed)
	}
	if got := g.ClassifyMood(ctx, "entry"); got != MoodFailed {
		t.Errorf("ClassifyMood = %q, want %q", got, MoodFailed)
	}
	if got := g.AnalyzeDream(ctx, "dream"); got != DreamFailed {
		t.Errorf("AnalyzeDream = %q, want %q", got, DreamFailed)
	}
}

func TestGateway_EmptyFallbacks(t *testing.T) {
	g := NewGateway(replying("   \n"), nil, time.Second, zerolog.Nop())
	ctx := context.Background()

	if got := g.Reflect(ctx, "entry"); got != ReflectionEmpty {
		t.Errorf("Reflect = %q, want %q", got, ReflectionEmpty)
	}
	if got := g.ClassifyMood(ctx, "entry"); got != MoodEmpty {
		t.Errorf("ClassifyMood = %q, want %q", got, MoodEmpty)
	}
	if got := g.AnalyzeDream(ctx, "dream"); got != DreamEmpty {
		t.Errorf("AnalyzeDream = %q, want %q", got, DreamEmpty)
	}
}

func TestGateway_UnavailableProviderFallsBack(t *testing.T) {
	g, err := Open(Config{Provider: "none"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := g.Reflect(context.Background(), "x"); got != ReflectionFailed {
		t.Fatalf("Reflect = %q, want failure fallback", got)
	}
}

func TestGateway_PanicBecomesFallback(t *testing.T) {
	g := NewGateway(GeneratorFunc(func(context.Context, Request) (string, error) {
		panic("boom")
	}), nil, time.Second, zerolog.Nop())
	if got := g.AnalyzeDream(context.Background(), "x"); got != DreamFailed {
		t.Fatalf("AnalyzeDream = %q, want failure fallback", got)
	}
}

func TestGateway_TimeoutFallsBack(t *testing.T) {
	slow := GeneratorFunc(func(ctx context.Context, _ Request) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	g := NewGateway(slow, nil, 10*time.Millisecond, zerolog.Nop())
	if got := g.Reflect(context.Background(), "x"); got != ReflectionFailed {
		t.Fatalf("Reflect = %q, want failure fallback", got)
	}
}

func TestGateway_TrimsAndRoutesPrompts(t *testing.T) {
	var textPrompts, dreamPrompts []Request
	text := GeneratorFunc(func(_ context.Context, req Request) (string, error) {
		textPrompts = append(textPrompts, req)
		return "  감상  ", nil
	})
	dream := GeneratorFunc(func(_ context.Context, req Request) (string, error) {
		dreamPrompts = append(dreamPrompts, req)
		return "해몽", nil
	})
	g := NewGateway(text, dream, time.Second, zerolog.Nop())
	ctx := context.Background()

	if got := g.Reflect(ctx, "비 오는 날"); got != "감상" {
		t.Fatalf("Reflect = %q, want trimmed text", got)
	}
	if got := g.AnalyzeDream(ctx, "하늘을 나는 꿈"); got != "해몽" {
		t.Fatalf("AnalyzeDream = %q", got)
	}
	if len(textPrompts) != 1 || len(dreamPrompts) != 1 {
		t.Fatalf("calls text=%d dream=%d, want 1 each", len(textPrompts), len(dreamPrompts))
	}
	if !strings.Contains(textPrompts[0].Prompt, "비 오는 날") {
		t.Fatalf("reflection prompt missing content: %q", textPrompts[0].Prompt)
	}
	if dreamPrompts[0].System == "" || !strings.Contains(dreamPrompts[0].Prompt, "하늘을 나는 꿈") {
		t.Fatalf("dream request = %+v", dreamPrompts[0])
	}
}

func TestGateway_MoodReducedToOneGlyph(t *testing.T) {
	g := NewGateway(replying("🌧️ 비 오는 날의 기분"), nil, time.Second, zerolog.Nop())
	if got := g.ClassifyMood(context.Background(), "x"); got != "🌧️" {
		t.Fatalf("ClassifyMood = %q, want 🌧️", got)
	}
}

func TestGateway_MoodWordFallsBack(t *testing.T) {
	g := NewGateway(replying("기쁨"), nil, time.Second, zerolog.Nop())
	if got := g.ClassifyMood(context.Background(), "x"); got != MoodEmpty {
		t.Fatalf("ClassifyMood = %q, want %q", got, MoodEmpty)
	}
}

func TestFirstGlyph(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"🍂", "🍂"},
		{"  ☁️ cloudy", "☁️"},
		{"👍🏽👍", "👍🏽"},
		{"👩‍💻 coding", "👩‍💻"},
		{"🇰🇷🇯🇵", "🇰🇷"},
		{"1️⃣", "1️⃣"},
		{"abc", ""},
		{"기쁨", ""},
		{"#️⃣", "#️⃣"},
	}
	for _, tt := range tests {
		if got := firstGlyph(tt.in); got != tt.want {
			t.Errorf("firstGlyph(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
