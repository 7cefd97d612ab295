package report

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/lepinkainen/paupercube/internal/cubelist"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ByName emits one row per name in names that has a cached record, sorted
// by card name in English collation order. Names missing from cache are
// logged and left out.
func ByName(names *cubelist.NameTable, cache *carddata.Cache) []NameRow {
	var rows []NameRow
	for _, name := range names.Names() {
		record, ok := cache.Get(name)
		if !ok || record.Empty() {
			slog.Warn("Card missing from cache, left out of by-name report", "card", name)
			continue
		}

		first := record.Printings[0]
		rows = append(rows, NameRow{
			CardName: name,
			Count:    names.Count(name),
			Sets:     strings.Join(setNames(record.Printings), SetSeparator),
			ManaCost: first.DisplayManaCost(),
			TypeLine: first.DisplayTypeLine(),
		})
	}

	collator := collate.New(language.English)
	slices.SortStableFunc(rows, func(a, b NameRow) int {
		return collator.CompareString(a.CardName, b.CardName)
	})

	slog.Debug("Built by-name report", "rows", len(rows))
	return rows
}

// setNames lists the distinct set names of printings in first-seen order.
func setNames(printings []carddata.Printing) []string {
	var names []string
	for _, printing := range printings {
		if !slices.Contains(names, printing.SetName) {
			names = append(names, printing.SetName)
		}
	}
	return names
}

// Record returns the row as CSV fields in ByNameHeader order.
func (r NameRow) Record() []string {
	return []string{
		r.CardName,
		strconv.Itoa(r.Count),
		r.Sets,
		r.ManaCost,
		r.TypeLine,
	}
}
