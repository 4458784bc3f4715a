package datastore

import (
	"testing"
)

func TestSQLiteStore_CreateTableAndInsert(t *testing.T) {
	dbPath := "file::memory:?cache=shared"
	store := NewSQLiteStore(dbPath)
	if err := store.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = store.Close() }()

	schema := `CREATE TABLE IF NOT EXISTS test_books (
		id TEXT PRIMARY KEY,
		title TEXT,
		page_count INTEGER
	)`
	if err := store.CreateTable(schema); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	records := []map[string]any{
		{"id": "a1", "title": "Dune", "page_count": 412},
		{"id": "b2", "title": "Hyperion", "page_count": 482},
	}
	if err := store.BatchInsert("crux", "test_books", records); err != nil {
		t.Fatalf("failed to batch insert: %v", err)
	}

	rows, err := store.db.Query("SELECT id, title, page_count FROM test_books ORDER BY id")
	if err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	defer func() { _ = rows.Close() }()

	var count int
	for rows.Next() {
		var id, title string
		var pages int
		if err := rows.Scan(&id, &title, &pages); err != nil {
			t.Fatalf("failed to scan: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
}

func TestSQLiteStore_BatchInsertReplacesOnConflict(t *testing.T) {
	store := NewSQLiteStore("file::memory:?cache=shared")
	if err := store.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = store.Close() }()

	schema := `CREATE TABLE IF NOT EXISTS replace_books (
		id TEXT PRIMARY KEY,
		title TEXT
	)`
	if err := store.CreateTable(schema); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	first := []map[string]any{{"id": "a1", "title": "Dune"}}
	if err := store.BatchInsert("crux", "replace_books", first); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}

	// Same primary key, updated title: re-running must not fail
	second := []map[string]any{{"id": "a1", "title": "Dune Messiah"}}
	if err := store.BatchInsert("crux", "replace_books", second); err != nil {
		t.Fatalf("failed to re-insert: %v", err)
	}

	var title string
	if err := store.db.QueryRow("SELECT title FROM replace_books WHERE id = ?", "a1").Scan(&title); err != nil {
		t.Fatalf("failed to query: %v", err)
	}
	if title != "Dune Messiah" {
		t.Errorf("expected replaced title, got %q", title)
	}
}

func TestSQLiteStore_BatchInsertEmpty(t *testing.T) {
	store := NewSQLiteStore("file::memory:?cache=shared")
	if err := store.Connect(); err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.BatchInsert("crux", "missing_table", nil); err != nil {
		t.Errorf("expected nil error for empty batch, got %v", err)
	}
}
