package ai

import (
	"context"
	"time"

	"github.com/five82/pigcat/internal/site"
)

// Compose validates d and builds a diary entry with its reflection and mood.
// The two generations run one after the other. Only validation can fail.
func (g *Gateway) Compose(ctx context.Context, d site.Draft, now time.Time) (site.DiaryEntry, error) {
	if err := d.Validate(); err != nil {
		return site.DiaryEntry{}, err
	}
	reflection := g.Reflect(ctx, d.Content)
	mood := g.ClassifyMood(ctx, d.Content)
	return site.NewEntry(d, mood, reflection, now), nil
}
