package report

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/lepinkainen/paupercube/internal/carddata"
)

// Options filter printings out of the by-set view.
type Options struct {
	// IgnoreSets are set display names that never appear.
	IgnoreSets []string
	// IgnoreSetTypes are Scryfall set types that never appear.
	IgnoreSetTypes []string
	// Languages keeps only printings in these languages. Empty keeps all.
	// Printings without a language are always kept.
	Languages []string
	// SkipDigital drops digital-only printings.
	SkipDigital bool
}

func (o Options) keep(p carddata.Printing) bool {
	if slices.Contains(o.IgnoreSets, p.SetName) {
		return false
	}
	if p.SetType != "" && slices.Contains(o.IgnoreSetTypes, p.SetType) {
		return false
	}
	if p.Lang != "" && len(o.Languages) > 0 && !slices.Contains(o.Languages, p.Lang) {
		return false
	}
	if o.SkipDigital && p.Digital {
		return false
	}
	return true
}

type setGroup struct {
	name  string
	seen  map[string]struct{}
	cards []SetRow
}

// BySet explodes every record into one row per printing, groups them by set
// and sorts the result by release date, then collector number. Within a set a
// card appears once, keeping its first printing.
func BySet(cache *carddata.Cache, opts Options) []SetRow {
	var groups []*setGroup
	index := make(map[string]*setGroup)
	dropped := 0

	for _, name := range cache.Names() {
		record, _ := cache.Get(name)
		for _, printing := range record.Printings {
			if !opts.keep(printing) {
				dropped++
				continue
			}

			group, ok := index[printing.SetName]
			if !ok {
				group = &setGroup{name: printing.SetName, seen: make(map[string]struct{})}
				index[printing.SetName] = group
				groups = append(groups, group)
			}

			if _, dup := group.seen[printing.Name]; dup {
				continue
			}
			group.seen[printing.Name] = struct{}{}
			group.cards = append(group.cards, newSetRow(printing, record.Count))
		}
	}

	var rows []SetRow
	for _, group := range groups {
		slices.SortStableFunc(group.cards, func(a, b SetRow) int {
			return compareCollector(a.CollectorNumber, b.CollectorNumber)
		})
		rows = append(rows, group.cards...)
	}

	slices.SortStableFunc(rows, func(a, b SetRow) int {
		if c := compareReleaseDate(a.ReleaseDate, b.ReleaseDate); c != 0 {
			return c
		}
		return compareCollector(a.CollectorNumber, b.CollectorNumber)
	})

	slog.Debug("Built by-set report", "sets", len(groups), "rows", len(rows), "filtered", dropped)
	return rows
}

func newSetRow(p carddata.Printing, count int) SetRow {
	return SetRow{
		Set:             p.SetName,
		ReleaseDate:     p.ReleasedAt,
		CardName:        p.Name,
		Count:           count,
		CollectorNumber: p.CollectorNumber,
		ManaCost:        p.DisplayManaCost(),
		TypeLine:        p.DisplayTypeLine(),
		Rarity:          p.Rarity,
		Price:           p.PriceUSD(),
	}
}

// Record returns the row as CSV fields in BySetHeader order.
func (r SetRow) Record() []string {
	return []string{
		r.Set,
		r.ReleaseDate,
		r.CardName,
		strconv.Itoa(r.Count),
		r.CollectorNumber,
		r.ManaCost,
		r.TypeLine,
		r.Rarity,
		r.Price,
	}
}
