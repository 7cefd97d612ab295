// Package datastore writes report rows to SQLite or a remote Datasette.
package datastore

// Store is a sink for report rows.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// ResetTable drops table if it exists and recreates it from schema
	ResetTable(table string, schema string) error

	// BatchInsert inserts multiple records into the specified table
	BatchInsert(table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
