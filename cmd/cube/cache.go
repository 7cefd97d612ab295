package cube

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/lepinkainen/paupercube/internal/cubelist"
	"gopkg.in/yaml.v3"
)

// ShowCard prints the cached record for name as YAML.
func ShowCard(w io.Writer, dataFile, name string) error {
	record, ok := carddata.Load(dataFile).Get(name)
	if !ok {
		return fmt.Errorf("card %q is not cached", name)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string]*carddata.CardRecord{name: record}); err != nil {
		return fmt.Errorf("failed to encode %q: %w", name, err)
	}
	return encoder.Close()
}

// ForgetCards removes names from the cache so the next fetch asks for them
// again. The cache file is only rewritten when something was removed.
func ForgetCards(dataFile string, names []string) (int, error) {
	cache := carddata.Load(dataFile)

	removed := 0
	for _, name := range names {
		if cache.Delete(name) {
			removed++
			slog.Info("Removed card from cache", "card", name)
		} else {
			slog.Warn("Card was not cached", "card", name)
		}
	}

	if removed == 0 {
		return 0, nil
	}
	if err := cache.Persist(dataFile); err != nil {
		return removed, err
	}
	return removed, nil
}

// CacheStats summarizes the cache against the current lists.
type CacheStats struct {
	Entries   int      `yaml:"entries"`
	Printings int      `yaml:"printings"`
	ListCards int      `yaml:"list_cards"`
	Missing   []string `yaml:"missing,omitempty"`
	Unused    int      `yaml:"unused"`
}

// GatherCacheStats compares the cache with the cube lists.
func GatherCacheStats(p Params) (CacheStats, error) {
	names, err := cubelist.Load(p.ListsDir, p.ListExtensions...)
	if err != nil {
		return CacheStats{}, err
	}

	cache := carddata.Load(p.DataFile)
	stats := CacheStats{
		Entries:   cache.Len(),
		Printings: cache.Printings(),
		ListCards: names.Len(),
	}

	for _, name := range names.Names() {
		if !cache.Has(name) {
			stats.Missing = append(stats.Missing, name)
		}
	}
	stats.Unused = cache.Len() - (names.Len() - len(stats.Missing))

	return stats, nil
}

// WriteCacheStats prints stats as YAML.
func WriteCacheStats(w io.Writer, stats CacheStats) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(stats); err != nil {
		return fmt.Errorf("failed to encode cache stats: %w", err)
	}
	return encoder.Close()
}
