package report

import (
	"log/slog"
	"slices"
	"strings"
)

// CountChange is a card whose occurrence count moved between two reports.
type CountChange struct {
	CardName string
	Before   int
	After    int
}

// Changes compares two by-name reports.
type Changes struct {
	Added   []string
	Removed []string
	Counts  []CountChange
}

// Empty reports whether the two reports held the same cards and counts.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Counts) == 0
}

// CompareNames lists the cards that entered or left the cube and the ones
// whose count changed. Every list is sorted by card name.
func CompareNames(previous, current []NameRow) Changes {
	before := make(map[string]int, len(previous))
	for _, row := range previous {
		before[row.CardName] = row.Count
	}

	var changes Changes
	seen := make(map[string]struct{}, len(current))
	for _, row := range current {
		seen[row.CardName] = struct{}{}
		count, ok := before[row.CardName]
		switch {
		case !ok:
			changes.Added = append(changes.Added, row.CardName)
		case count != row.Count:
			changes.Counts = append(changes.Counts, CountChange{CardName: row.CardName, Before: count, After: row.Count})
		}
	}
	for _, row := range previous {
		if _, ok := seen[row.CardName]; !ok {
			changes.Removed = append(changes.Removed, row.CardName)
		}
	}

	slices.Sort(changes.Added)
	slices.Sort(changes.Removed)
	slices.SortFunc(changes.Counts, func(a, b CountChange) int {
		return strings.Compare(a.CardName, b.CardName)
	})

	return changes
}

// Log writes one line per change and a summary.
func (c Changes) Log() {
	for _, name := range c.Added {
		slog.Info("Card added to the cube", "card", name)
	}
	for _, name := range c.Removed {
		slog.Info("Card removed from the cube", "card", name)
	}
	for _, change := range c.Counts {
		slog.Info("Card occurrence count changed", "card", change.CardName, "before", change.Before, "after", change.After)
	}
	slog.Info("Compared with previous report",
		"added", len(c.Added),
		"removed", len(c.Removed),
		"count_changes", len(c.Counts))
}
