package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/lepinkainen/crux/internal/datastore"
)

// WriteToDatastore writes records to the local Datasette SQLite database
// when datasette.enabled is set. Each record is flattened with the mapper
// before insertion. A disabled config is not an error.
func WriteToDatastore[T any](records []T, schema, table, description string, mapper func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		slog.Debug("Datasette export disabled, skipping", "table", table)
		return nil
	}

	if mode := viper.GetString("datasette.mode"); mode != "" && mode != "local" {
		return fmt.Errorf("unsupported datasette mode: %s (only local is supported)", mode)
	}

	dbFile := viper.GetString("datasette.dbfile")
	if dbFile == "" {
		dbFile = "./datasette.db"
	}

	store := datastore.NewSQLiteStore(dbFile)
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(schema); err != nil {
		return fmt.Errorf("failed to create %s table: %w", table, err)
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, mapper(record))
	}

	if err := store.BatchInsert("crux", table, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", description, err)
	}

	slog.Info("Wrote records to datastore", "table", table, "count", len(rows), "database", dbFile)
	return nil
}
