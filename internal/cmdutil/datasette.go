package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/paupercube/internal/datastore"
	"github.com/spf13/viper"
)

// DatasetteDatabase is the database name used for remote inserts
const DatasetteDatabase = "paupercube"

// WriteToDatastore writes records to the configured Datasette sink. It does
// nothing unless datasette.enabled is set. In local mode the table is dropped
// and recreated from schema first, so every call replaces its contents.
func WriteToDatastore[T any](records []T, schema, table, description string, toMap func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close datastore", "error", closeErr)
		}
	}()

	if err := store.ResetTable(table, schema); err != nil {
		return fmt.Errorf("failed to prepare %s table: %w", table, err)
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, toMap(record))
	}

	if err := store.BatchInsert(table, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", description, err)
	}

	slog.Info("Wrote "+description+" to Datasette", "table", table, "count", len(rows))
	return nil
}

func openStore() (datastore.Store, error) {
	var store datastore.Store

	switch mode := viper.GetString("datasette.mode"); mode {
	case "", "local":
		dbFile := viper.GetString("datasette.dbfile")
		if dbFile == "" {
			return nil, fmt.Errorf("datasette.dbfile is not set")
		}
		store = datastore.NewSQLiteStore(dbFile)
	case "remote":
		remoteURL := viper.GetString("datasette.remote_url")
		if remoteURL == "" {
			return nil, fmt.Errorf("datasette.remote_url is not set")
		}
		store = datastore.NewDatasetteClient(remoteURL, DatasetteDatabase, viper.GetString("datasette.api_token"))
	default:
		return nil, fmt.Errorf("unknown datasette mode %q", mode)
	}

	if err := store.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to datastore: %w", err)
	}
	return store, nil
}
