package visits

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/pigcat/internal/kv"
	"github.com/five82/pigcat/internal/site"
)

// Storage keys.
const (
	KeyLastVisitDate = "pigcat_last_visit_date"
	KeyTodayCount    = "pigcat_today_count"
)

// Range of the count seeded on the first visit of a day.
const (
	MinFirstVisit = 5
	MaxFirstVisit = 14
)

// DisplayDigits is the width of the counter display.
const DisplayDigits = 8

// Count is today's visit count.
type Count struct {
	Value  int
	Date   string
	NewDay bool
}

// Digits returns the count zero-padded to DisplayDigits, one string per digit.
func (c Count) Digits() []string {
	padded := fmt.Sprintf("%0*d", DisplayDigits, c.Value)
	if len(padded) > DisplayDigits {
		padded = padded[len(padded)-DisplayDigits:]
	}
	return strings.Split(padded, "")
}

// Rand yields integers in [0, n).
type Rand interface {
	IntN(n int) int
}

type defaultRand struct{}

func (defaultRand) IntN(n int) int { return rand.IntN(n) }

// Counter computes the visit count against a kv store.
type Counter struct {
	Store kv.Store
	Now   func() time.Time
	Rand  Rand
	Log   zerolog.Logger
}

// Compute records this visit and returns the resulting count.
func (c Counter) Compute(ctx context.Context) (Count, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	rng := Rand(defaultRand{})
	if c.Rand != nil {
		rng = c.Rand
	}
	return Compute(ctx, c.Store, now(), rng, c.Log)
}

// Compute records a visit at now. A new calendar day seeds the count in
// [MinFirstVisit, MaxFirstVisit]; the same day adds one to the stored count.
// An unreadable stored count is treated as zero.
func Compute(ctx context.Context, store kv.Store, now time.Time, rng Rand, log zerolog.Logger) (Count, error) {
	today := site.FormatDate(now)

	last, _, err := store.Get(ctx, KeyLastVisitDate)
	if err != nil {
		return Count{}, fmt.Errorf("read last visit: %w", err)
	}

	out := Count{Date: today}
	if last != today {
		out.NewDay = true
		out.Value = MinFirstVisit + rng.IntN(MaxFirstVisit-MinFirstVisit+1)
		if err := store.Set(ctx, KeyLastVisitDate, today); err != nil {
			return Count{}, fmt.Errorf("save last visit: %w", err)
		}
	} else {
		raw, _, err := store.Get(ctx, KeyTodayCount)
		if err != nil {
			return Count{}, fmt.Errorf("read today count: %w", err)
		}
		out.Value = parseCount(raw, log) + 1
	}

	if err := store.Set(ctx, KeyTodayCount, strconv.Itoa(out.Value)); err != nil {
		return Count{}, fmt.Errorf("save today count: %w", err)
	}
	return out, nil
}

func parseCount(raw string, log zerolog.Logger) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Warn().Str("key", KeyTodayCount).Str("value", raw).Msg("unreadable visit count, starting from zero")
		return 0
	}
	return n
}
