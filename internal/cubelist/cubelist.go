// Package cubelist reads Pauper Cube list files into a table of distinct
// card names and how many lists reference each one.
package cubelist

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const commentMarker = "#"

var basicLands = map[string]struct{}{
	"Plains":   {},
	"Island":   {},
	"Swamp":    {},
	"Mountain": {},
	"Forest":   {},
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// NameTable holds distinct card names in first-seen order together with the
// number of distinct lists that contain each name.
type NameTable struct {
	order  []string
	counts map[string]int
}

// NewNameTable creates an empty table.
func NewNameTable() *NameTable {
	return &NameTable{counts: make(map[string]int)}
}

// FromLists builds a table from already parsed lists, one slice per list.
func FromLists(lists ...[]string) *NameTable {
	table := NewNameTable()
	for _, names := range lists {
		table.add(names)
	}
	return table
}

// add records one list's worth of names. Duplicates inside the same list
// count once.
func (t *NameTable) add(names []string) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := t.counts[name]; !ok {
			t.order = append(t.order, name)
		}
		t.counts[name]++
	}
}

// Names returns the card names in insertion order.
func (t *NameTable) Names() []string {
	return slices.Clone(t.order)
}

// Count returns the occurrence count for name, 0 when it is not present.
func (t *NameTable) Count(name string) int {
	return t.counts[name]
}

// Contains reports whether name is in the table.
func (t *NameTable) Contains(name string) bool {
	_, ok := t.counts[name]
	return ok
}

// Len returns the number of distinct names.
func (t *NameTable) Len() int {
	return len(t.order)
}

// IsBasicLand reports whether name is one of the five basic lands.
func IsBasicLand(name string) bool {
	_, ok := basicLands[name]
	return ok
}

// ParseList returns the card names of a single list in file order.
// Blank lines, comment lines and basic lands are dropped. Duplicates are kept.
func ParseList(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read list: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var names []string
	for _, raw := range bytes.Split(data, []byte("\n")) {
		line := strings.TrimSpace(strings.TrimSuffix(string(raw), "\r"))
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		if IsBasicLand(line) {
			continue
		}
		names = append(names, line)
	}

	return names, nil
}

// Load reads every list file in dir whose extension is one of exts (".txt"
// when none are given) and builds the name table. Files are read in lexical
// order.
func Load(dir string, exts ...string) (*NameTable, error) {
	if len(exts) == 0 {
		exts = []string{".txt"}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read lists directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasExtension(entry.Name(), exts) {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no list files with extensions %v in %s", exts, dir)
	}
	slices.Sort(files)

	table := NewNameTable()
	for _, name := range files {
		path := filepath.Join(dir, name)
		names, err := readListFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("Read cube list", "path", path, "count", len(names))
		table.add(names)
	}

	slog.Info("Loaded cube lists", "lists", len(files), "cards", table.Len())
	return table, nil
}

func readListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open list %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close list file", "path", path, "error", closeErr)
		}
	}()

	names, err := ParseList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return names, nil
}

func hasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
