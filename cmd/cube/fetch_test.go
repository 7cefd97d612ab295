package cube

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/stretchr/testify/require"
)

func TestFetchPopulatesCache(t *testing.T) {
	_, p := setupWorkspace(t, map[string][]string{
		"a.txt": {"Kor Skyfisher", "Unknown Card", "Island"},
		"b.txt": {"Kor Skyfisher"},
	})
	server := newFakeScryfall(t, map[string][]carddata.Printing{
		"Kor Skyfisher": {printing("Kor Skyfisher", "Zendikar", "2009-10-02", "23")},
	})
	p.ScryfallURL = server.URL

	stats, err := Fetch(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Fetched)
	assert.Equal(t, 1, stats.NotFound)
	assert.Equal(t, int32(2), server.requests.Load())

	cache := carddata.Load(p.DataFile)
	record, ok := cache.Get("Kor Skyfisher")
	require.True(t, ok)
	assert.Equal(t, 2, record.Count)
	assert.Equal(t, 1, len(record.Printings))
	assert.False(t, cache.Has("Unknown Card"))
}

func TestFetchReusesCachedCards(t *testing.T) {
	_, p := setupWorkspace(t, map[string][]string{
		"a.txt": {"Kor Skyfisher"},
		"b.txt": {"Kor Skyfisher"},
		"c.txt": {"Kor Skyfisher"},
	})
	seedCache(t, p.DataFile, map[string]*carddata.CardRecord{
		"Kor Skyfisher": {
			Printings: []carddata.Printing{printing("Kor Skyfisher", "Zendikar", "2009-10-02", "23")},
			Count:     1,
		},
	})
	server := newFakeScryfall(t, nil)
	p.ScryfallURL = server.URL

	stats, err := Fetch(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, int32(0), server.requests.Load())

	record, ok := carddata.Load(p.DataFile).Get("Kor Skyfisher")
	require.True(t, ok)
	assert.Equal(t, 3, record.Count)
}

func TestFetchHonorsMaxFetches(t *testing.T) {
	_, p := setupWorkspace(t, map[string][]string{
		"a.txt": {"Brainstorm", "Counterspell", "Ponder"},
	})
	server := newFakeScryfall(t, map[string][]carddata.Printing{
		"Brainstorm":   {printing("Brainstorm", "Ice Age", "1995-06-03", "61")},
		"Counterspell": {printing("Counterspell", "Alpha", "1993-08-05", "54")},
		"Ponder":       {printing("Ponder", "Lorwyn", "2007-10-12", "79")},
	})
	p.ScryfallURL = server.URL
	p.MaxFetches = 2

	stats, err := Fetch(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Fetched)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 2, carddata.Load(p.DataFile).Len())
}

func TestFetchInterruptedKeepsCache(t *testing.T) {
	_, p := setupWorkspace(t, map[string][]string{
		"a.txt": {"Kor Skyfisher", "Ponder"},
		"b.txt": {"Kor Skyfisher"},
	})
	seedCache(t, p.DataFile, map[string]*carddata.CardRecord{
		"Kor Skyfisher": {
			Printings: []carddata.Printing{printing("Kor Skyfisher", "Zendikar", "2009-10-02", "23")},
			Count:     1,
		},
	})
	server := newFakeScryfall(t, nil)
	p.ScryfallURL = server.URL

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, p)
	require.Error(t, err)
	assert.IsError(t, err, context.Canceled)
	assert.Equal(t, int32(0), server.requests.Load())

	record, ok := carddata.Load(p.DataFile).Get("Kor Skyfisher")
	require.True(t, ok)
	assert.Equal(t, 2, record.Count)
}

func TestFetchMissingListsDir(t *testing.T) {
	_, p := setupWorkspace(t, nil)
	p.ListsDir = p.ListsDir + "-missing"

	_, err := Fetch(context.Background(), p)
	assert.Error(t, err)
}
