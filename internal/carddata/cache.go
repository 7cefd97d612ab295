package carddata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/lepinkainen/paupercube/internal/fileutil"
)

// Cache maps card names to their records. The zero value is not usable, use
// NewCache or Load.
type Cache struct {
	records map[string]*CardRecord
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{records: make(map[string]*CardRecord)}
}

// Load reads the cache file at path. A missing file gives an empty cache and
// so does a file that cannot be parsed, after logging a warning.
func Load(path string) *Cache {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No card cache yet, starting empty", "path", path)
		} else {
			slog.Warn("Failed to read card cache, starting empty", "path", path, "error", err)
		}
		return NewCache()
	}

	records := make(map[string]*CardRecord)
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("Card cache is corrupt, starting empty", "path", path, "error", err)
		return NewCache()
	}

	c := NewCache()
	for name, record := range records {
		if record.Empty() {
			continue
		}
		c.records[name] = record
	}

	slog.Debug("Loaded card cache", "path", path, "count", c.Len())
	return c
}

// Has reports whether name is cached.
func (c *Cache) Has(name string) bool {
	_, ok := c.records[name]
	return ok
}

// Get returns the record for name.
func (c *Cache) Get(name string) (*CardRecord, bool) {
	record, ok := c.records[name]
	return record, ok
}

// Put stores record under name, replacing any previous record. Empty records
// are ignored and Put reports false for them.
func (c *Cache) Put(name string, record *CardRecord) bool {
	if record.Empty() {
		return false
	}
	c.records[name] = record
	return true
}

// Delete removes name and reports whether it was present.
func (c *Cache) Delete(name string) bool {
	if _, ok := c.records[name]; !ok {
		return false
	}
	delete(c.records, name)
	return true
}

// Len returns the number of cached names.
func (c *Cache) Len() int {
	return len(c.records)
}

// Names returns the cached names in sorted order.
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.records))
	for name := range c.records {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Restrict returns a new cache holding only the given names that are cached.
// Records are shared with the receiver.
func (c *Cache) Restrict(names []string) *Cache {
	out := NewCache()
	for _, name := range names {
		if record, ok := c.records[name]; ok {
			out.records[name] = record
		}
	}
	return out
}

// Printings returns the total number of printings across all records.
func (c *Cache) Printings() int {
	total := 0
	for _, record := range c.records {
		total += len(record.Printings)
	}
	return total
}

// Persist writes the whole cache to path. The previous file is replaced only
// once the new content is fully on disk.
func (c *Cache) Persist(path string) error {
	if err := fileutil.WriteJSONFile(c.records, path); err != nil {
		return fmt.Errorf("failed to persist card cache: %w", err)
	}
	slog.Info("Saved card cache", "path", path, "count", c.Len())
	return nil
}
