package cube

import (
	"log/slog"

	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/lepinkainen/paupercube/internal/cmdutil"
	"github.com/lepinkainen/paupercube/internal/cubelist"
	"github.com/lepinkainen/paupercube/internal/fileutil"
	"github.com/lepinkainen/paupercube/internal/report"
)

// Report builds both CSV reports from the cache for the cards in the
// current lists, and writes them to Datasette when that is enabled.
func Report(p Params) error {
	names, err := cubelist.Load(p.ListsDir, p.ListExtensions...)
	if err != nil {
		return err
	}

	cache := carddata.Load(p.DataFile).Restrict(names.Names())
	for _, name := range cache.Names() {
		record, _ := cache.Get(name)
		record.Count = names.Count(name)
	}
	if missing := names.Len() - cache.Len(); missing > 0 {
		slog.Warn("Some cards are not cached yet, run fetch first", "missing", missing)
	}

	output := p.Output
	if err := cmdutil.SetupReportOutput(&output); err != nil {
		return err
	}

	bySet := report.BySet(cache, p.Report)
	if err := report.WriteSetCSV(output.BySetFile, bySet); err != nil {
		return err
	}

	byName := report.ByName(names, cache)
	previous, hadPrevious := previousNames(output.ByNameFile)
	if err := report.WriteNameCSV(output.ByNameFile, byName); err != nil {
		return err
	}
	if hadPrevious {
		report.CompareNames(previous, byName).Log()
	}

	return writeDatasette(bySet, byName)
}

// previousNames reads the by-name report left by the last run, if any.
func previousNames(filename string) ([]report.NameRow, bool) {
	if !fileutil.FileExists(filename) {
		return nil, false
	}
	rows, err := report.ReadNameCSV(filename)
	if err != nil {
		slog.Warn("Ignoring unreadable previous report", "path", filename, "error", err)
		return nil, false
	}
	return rows, true
}
