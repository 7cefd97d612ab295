package cube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lepinkainen/paupercube/internal/acquire"
	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/lepinkainen/paupercube/internal/cubelist"
	"github.com/lepinkainen/paupercube/internal/scryfall"
)

// Fetch loads the cube lists, fetches every card missing from the cache and
// writes the cache back once. An interrupted run still saves the cards
// fetched so far before returning the interruption error.
func Fetch(ctx context.Context, p Params) (acquire.Stats, error) {
	names, err := cubelist.Load(p.ListsDir, p.ListExtensions...)
	if err != nil {
		return acquire.Stats{}, err
	}

	cache := carddata.Load(p.DataFile)
	slog.Info("Starting card acquisition",
		"cards", names.Len(),
		"cached", cache.Len(),
		"wait_time", p.WaitTime,
		"max_fetches", p.MaxFetches)

	fetcher := scryfall.NewFetcher(p.newClient())
	pipeline := acquire.New(fetcher, acquire.Options{MaxFetches: p.MaxFetches})

	cache, stats, runErr := pipeline.Run(ctx, names, cache)
	if err := cache.Persist(p.DataFile); err != nil {
		return stats, errors.Join(runErr, err)
	}
	if runErr != nil {
		return stats, fmt.Errorf("fetch stopped early: %w", runErr)
	}

	return stats, nil
}
