package cmdutil

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type datasetteRecord struct {
	ID    string
	Title string
}

const datasetteSchema = `
CREATE TABLE IF NOT EXISTS test_books (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL
);
`

func TestWriteToDatastore_Disabled(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	viper.Set("datasette.enabled", false)
	viper.Set("datasette.dbfile", dbPath)

	records := []datasetteRecord{{ID: "a1", Title: "Dune"}}
	err := WriteToDatastore(records, datasetteSchema, "test_books", "test records", func(item datasetteRecord) map[string]any {
		return map[string]any{"id": item.ID, "title": item.Title}
	})
	require.NoError(t, err)

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteToDatastore_RejectsRemoteMode(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("datasette.enabled", true)
	viper.Set("datasette.mode", "remote")

	err := WriteToDatastore([]datasetteRecord{{ID: "a1", Title: "Dune"}}, datasetteSchema, "test_books", "test records", func(item datasetteRecord) map[string]any {
		return map[string]any{"id": item.ID, "title": item.Title}
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported datasette mode")
}

func TestWriteToDatastore_WritesRows(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	viper.Set("datasette.enabled", true)
	viper.Set("datasette.dbfile", dbPath)

	records := []datasetteRecord{{ID: "a1", Title: "Dune"}, {ID: "b2", Title: "Hyperion"}}
	err := WriteToDatastore(records, datasetteSchema, "test_books", "test records", func(item datasetteRecord) map[string]any {
		return map[string]any{"id": item.ID, "title": item.Title}
	})
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM test_books").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
