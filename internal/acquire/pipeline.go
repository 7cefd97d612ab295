// Package acquire fills the card cache for every name in the cube lists,
// fetching only the names that are not cached yet.
package acquire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/lepinkainen/paupercube/internal/cubelist"
	perrors "github.com/lepinkainen/paupercube/internal/errors"
)

// Fetcher looks up one card. A nil record with a nil error means the card
// does not exist.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (*carddata.CardRecord, error)
}

// Options tune a pipeline run.
type Options struct {
	// MaxFetches caps outbound fetches per run. Zero means no cap.
	MaxFetches int
}

// Stats summarizes a run.
type Stats struct {
	Hits     int
	Fetched  int
	NotFound int
	Failed   int
	Skipped  int
}

// Attempts returns the number of outbound fetches made.
func (s Stats) Attempts() int {
	return s.Fetched + s.NotFound + s.Failed
}

// Pipeline serves names from the cache and fetches the rest.
type Pipeline struct {
	fetcher Fetcher
	opts    Options
}

// New creates a pipeline using fetcher for cache misses.
func New(fetcher Fetcher, opts Options) *Pipeline {
	return &Pipeline{fetcher: fetcher, opts: opts}
}

// Run walks names in order. Cached names get their occurrence count
// refreshed, missing names are fetched and stored in cache. The updated
// cache is returned. Persisting it is up to the caller.
//
// Per-card failures are logged and skipped. A rate limit answer from the
// remote API skips every remaining fetch. A cancelled context aborts the run
// with the context error. Entries gathered until then stay in cache.
func (p *Pipeline) Run(ctx context.Context, names *cubelist.NameTable, cache *carddata.Cache) (*carddata.Cache, Stats, error) {
	var stats Stats
	rateLimited := false

	for _, name := range names.Names() {
		count := names.Count(name)

		if record, ok := cache.Get(name); ok {
			record.Count = count
			stats.Hits++
			slog.Debug("Cache hit", "card", name, "count", count)
			continue
		}

		if rateLimited || p.quotaReached(stats) {
			stats.Skipped++
			continue
		}

		if err := ctx.Err(); err != nil {
			return cache, stats, fmt.Errorf("acquisition interrupted: %w", err)
		}

		record, err := p.fetcher.Fetch(ctx, name)
		switch {
		case err != nil && ctx.Err() != nil:
			return cache, stats, fmt.Errorf("acquisition interrupted: %w", ctx.Err())
		case perrors.IsRateLimitError(err):
			stats.Failed++
			rateLimited = true
			slog.Warn("Scryfall rate limit reached; skipping further fetches for this run", "card", name, "error", err)
		case err != nil:
			stats.Failed++
			slog.Warn("Failed to fetch card", "card", name, "error", err)
		case record.Empty():
			stats.NotFound++
			slog.Warn("Card not found", "card", name)
		default:
			record.Count = count
			cache.Put(name, record)
			stats.Fetched++
			slog.Info("Fetched card", "card", name, "printings", len(record.Printings), "count", count)
		}
	}

	if stats.Skipped > 0 && !rateLimited {
		slog.Info("Fetch quota reached, remaining cards will be fetched on a later run",
			"max_fetches", p.opts.MaxFetches, "skipped", stats.Skipped)
	}

	slog.Info("Acquisition finished",
		"cards", names.Len(),
		"hits", stats.Hits,
		"fetched", stats.Fetched,
		"not_found", stats.NotFound,
		"failed", stats.Failed,
		"skipped", stats.Skipped)

	return cache, stats, nil
}

func (p *Pipeline) quotaReached(stats Stats) bool {
	return p.opts.MaxFetches > 0 && stats.Attempts() >= p.opts.MaxFetches
}
