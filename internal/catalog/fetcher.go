package catalog

import (
	"context"
	"time"

	"inventory_dashboard/internal/models"
)

// DefaultLatency is the simulated network delay of a page fetch.
const DefaultLatency = 500 * time.Millisecond

// Fetcher serves pages from a freshly generated dataset after a fixed delay.
type Fetcher struct {
	gen     *Generator
	latency time.Duration
}

// NewFetcher returns a fetcher over gen. A negative latency is treated as zero.
func NewFetcher(gen *Generator, latency time.Duration) *Fetcher {
	if latency < 0 {
		latency = 0
	}
	return &Fetcher{gen: gen, latency: latency}
}

// FetchPage waits for the configured latency, then generates the dataset and
// applies p to it. It fails only when ctx ends before the delay elapses.
func (f *Fetcher) FetchPage(ctx context.Context, p models.ViewParams) (models.ProductPage, error) {
	if f.latency > 0 {
		t := time.NewTimer(f.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return models.ProductPage{}, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return models.ProductPage{}, err
	}
	return Apply(f.gen.Generate(), p), nil
}
