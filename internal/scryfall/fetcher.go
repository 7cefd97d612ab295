package scryfall

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lepinkainen/paupercube/internal/carddata"
)

// Searcher runs a prints search for a card name.
type Searcher interface {
	SearchPrints(ctx context.Context, name string) (*SearchResult, error)
}

// Fetcher turns search results into cache records.
type Fetcher struct {
	searcher Searcher
}

// NewFetcher creates a Fetcher backed by searcher.
func NewFetcher(searcher Searcher) *Fetcher {
	return &Fetcher{searcher: searcher}
}

// Fetch looks up name and returns a record holding only the printings that
// belong to it. A nil record with a nil error means the card was not found.
// The record's Count is left for the caller to fill in.
func (f *Fetcher) Fetch(ctx context.Context, name string) (*carddata.CardRecord, error) {
	result, err := f.searcher.SearchPrints(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if result.TotalCards == 0 {
		return nil, nil
	}

	if result.HasMore {
		slog.Warn("Search has more pages than were fetched, printings may be incomplete",
			"card", name,
			"total_cards", result.TotalCards,
			"received", len(result.Data))
	}

	printings := FilterPrintings(name, result.Data)
	if len(printings) == 0 {
		slog.Debug("No printing matched the card name", "card", name, "received", len(result.Data))
		return nil, nil
	}

	return &carddata.CardRecord{
		Printings:  printings,
		TotalCards: result.TotalCards,
		HasMore:    result.HasMore,
	}, nil
}
