package ai

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	zwj      = '\u200d'
	keycap   = '\u20e3'
	vsText   = '\ufe0e'
	vsEmoji  = '\ufe0f'
	skinLow  = '\U0001F3FB'
	skinHigh = '\U0001F3FF'
	riLow    = '\U0001F1E6'
	riHigh   = '\U0001F1FF'
)

// firstGlyph returns the first visible symbol of s, keeping the modifier and
// joiner runes that belong to it. Models often answer "🌧️ 비 오는 날" when
// asked for a single emoji. A reply that opens with a word rather than a
// symbol yields "".
func firstGlyph(s string) string {
	glyph := leadingCluster(strings.TrimSpace(s))
	if glyph == "" {
		return ""
	}
	first, _ := utf8.DecodeRuneInString(glyph)
	if unicode.Is(unicode.So, first) || strings.ContainsRune(glyph, keycap) {
		return glyph
	}
	return ""
}

// leadingCluster returns the first rune of s with the selectors, modifiers
// and joined runes that follow it.
func leadingCluster(s string) string {
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	end := size
	rest := s[size:]

	// Flags are a pair of regional indicators.
	if isRegional(first) {
		if r, n := utf8.DecodeRuneInString(rest); isRegional(r) {
			return s[:end+n]
		}
		return s[:end]
	}

	for len(rest) > 0 {
		r, n := utf8.DecodeRuneInString(rest)
		switch {
		case r == vsText || r == vsEmoji || r == keycap || (r >= skinLow && r <= skinHigh):
			end += n
			rest = rest[n:]
		case r == zwj:
			next, m := utf8.DecodeRuneInString(rest[n:])
			if m == 0 || unicode.IsSpace(next) {
				return s[:end]
			}
			end += n + m
			rest = rest[n+m:]
		default:
			return s[:end]
		}
	}
	return s[:end]
}

func isRegional(r rune) bool { return r >= riLow && r <= riHigh }
