package cube

import (
	"github.com/lepinkainen/paupercube/internal/cmdutil"
	"github.com/lepinkainen/paupercube/internal/report"
)

const cardsBySetSchema = `
CREATE TABLE cards_by_set (
	set_name TEXT NOT NULL,
	release_date TEXT,
	card_name TEXT NOT NULL,
	count INTEGER,
	collector_number TEXT,
	mana_cost TEXT,
	type_line TEXT,
	rarity TEXT,
	price TEXT
);
`

const cardsByNameSchema = `
CREATE TABLE cards_by_name (
	card_name TEXT PRIMARY KEY,
	count INTEGER,
	sets TEXT,
	mana_cost TEXT,
	type_line TEXT
);
`

var setRowMapOptions = cmdutil.StructToMapOptions{
	KeyOverrides: map[string]string{"Set": "set_name"},
}

func writeDatasette(bySet []report.SetRow, byName []report.NameRow) error {
	if err := cmdutil.WriteToDatastore(bySet, cardsBySetSchema, "cards_by_set", "cards by set", func(row report.SetRow) map[string]any {
		return cmdutil.StructToMap(row, setRowMapOptions)
	}); err != nil {
		return err
	}

	return cmdutil.WriteToDatastore(byName, cardsByNameSchema, "cards_by_name", "cards by name", func(row report.NameRow) map[string]any {
		return cmdutil.StructToMap(row, cmdutil.StructToMapOptions{})
	})
}
