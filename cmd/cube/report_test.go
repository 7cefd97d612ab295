package cube

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/lepinkainen/paupercube/internal/carddata"
	"github.com/lepinkainen/paupercube/internal/datastore"
	"github.com/lepinkainen/paupercube/internal/testutil"
	"github.com/stretchr/testify/require"
)

func reportFixture(t *testing.T, p Params) {
	t.Helper()

	seedCache(t, p.DataFile, map[string]*carddata.CardRecord{
		"Kor Skyfisher": {
			Printings: []carddata.Printing{
				printing("Kor Skyfisher", "Zendikar", "2009-10-02", "23"),
				printing("Kor Skyfisher", "Dominaria United", "2022-09-09", "23"),
			},
			Count: 1,
		},
		"Ponder": {
			Printings: []carddata.Printing{printing("Ponder", "Lorwyn", "2007-10-12", "79")},
			Count:     1,
		},
		"Dropped Card": {
			Printings: []carddata.Printing{printing("Dropped Card", "Lorwyn", "2007-10-12", "1")},
			Count:     4,
		},
	})
}

func TestReportWritesBothViews(t *testing.T) {
	env, p := setupWorkspace(t, map[string][]string{
		"a.txt": {"Kor Skyfisher", "Ponder"},
		"b.txt": {"Kor Skyfisher"},
	})
	reportFixture(t, p)

	require.NoError(t, Report(p))

	bySet := env.ReadFileString(filepath.Join("out", "cards-by-set.csv"))
	lines := strings.Split(strings.TrimSpace(bySet), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Set,Release Date,Card Name,Occurrence Count,Collector Number,Mana Cost,Type Line,Rarity,Price", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Lorwyn,2007-10-12,Ponder,1,"))
	assert.True(t, strings.HasPrefix(lines[2], "Zendikar,2009-10-02,Kor Skyfisher,2,"))
	assert.True(t, strings.HasPrefix(lines[3], "Dominaria United,2022-09-09,Kor Skyfisher,2,"))
	assert.NotContains(t, bySet, "Dropped Card")

	byName := env.ReadFileString(filepath.Join("out", "cards-by-name.csv"))
	assert.Contains(t, byName, "Kor Skyfisher,2,Zendikar Dominaria United,{W},Creature")
	assert.Contains(t, byName, "Ponder,1,Lorwyn,{W},Creature")
}

func TestReportLeavesCacheUntouched(t *testing.T) {
	env, p := setupWorkspace(t, map[string][]string{"a.txt": {"Ponder"}})
	reportFixture(t, p)
	before := env.ReadFileString("data.json")

	require.NoError(t, Report(p))

	assert.Equal(t, before, env.ReadFileString("data.json"))
}

func TestReportExportsToDatasette(t *testing.T) {
	env, p := setupWorkspace(t, map[string][]string{
		"a.txt": {"Kor Skyfisher", "Ponder"},
	})
	reportFixture(t, p)
	dbPath := testutil.SetupDatasetteDB(t, env)

	require.NoError(t, Report(p))
	// a second run replaces the rows instead of appending
	require.NoError(t, Report(p))

	store := datastore.NewSQLiteStore(dbPath)
	require.NoError(t, store.Connect())
	defer func() { _ = store.Close() }()

	assert.Equal(t, 3, countRows(t, store, "cards_by_set"))
	assert.Equal(t, 2, countRows(t, store, "cards_by_name"))

	rows, err := store.Query("SELECT set_name, count FROM cards_by_set WHERE card_name = ? ORDER BY release_date", "Kor Skyfisher")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var sets []string
	for rows.Next() {
		var set string
		var count int
		require.NoError(t, rows.Scan(&set, &count))
		assert.Equal(t, 1, count)
		sets = append(sets, set)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Zendikar", "Dominaria United"}, sets)
}

func countRows(t *testing.T, store *datastore.SQLiteStore, table string) int {
	t.Helper()

	rows, err := store.Query("SELECT COUNT(*) FROM " + table)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	require.True(t, rows.Next())
	var count int
	require.NoError(t, rows.Scan(&count))
	return count
}

func TestReportLogsChangesSincePreviousRun(t *testing.T) {
	env, p := setupWorkspace(t, map[string][]string{
		"a.txt": {"Kor Skyfisher", "Ponder"},
	})
	reportFixture(t, p)
	require.NoError(t, Report(p))

	env.WriteLines("lists/b.txt", "Kor Skyfisher", "Dropped Card")

	var logs bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(original) })

	require.NoError(t, Report(p))

	output := logs.String()
	assert.Contains(t, output, `msg="Card added to the cube" card="Dropped Card"`)
	assert.Contains(t, output, `msg="Card occurrence count changed" card="Kor Skyfisher" before=1 after=2`)
	assert.NotContains(t, output, "Card removed from the cube")
}
