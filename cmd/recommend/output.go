package recommend

import (
	"time"

	"github.com/lepinkainen/crux/internal/cmdutil"
)

// booksTableSchema is the Datasette table for resolved recommendations.
// The catalog volume id (or the generated fallback id) is the primary
// key, so re-resolving a book updates its row instead of duplicating it.
const booksTableSchema = `
CREATE TABLE IF NOT EXISTS crux_books (
	id TEXT PRIMARY KEY,
	title TEXT,
	subtitle TEXT,
	author TEXT,
	year TEXT,
	cover TEXT,
	rating REAL,
	pages INTEGER,
	genre TEXT,
	themes TEXT,
	description TEXT,
	long_description TEXT,
	publisher TEXT,
	published_date TEXT,
	isbn TEXT,
	language TEXT,
	print_type TEXT,
	maturity_rating TEXT,
	preview_link TEXT,
	info_link TEXT,
	canonical_volume_link TEXT,
	saleability TEXT,
	is_ebook BOOLEAN,
	buy_link TEXT,
	web_reader_link TEXT,
	text_snippet TEXT,
	price_amount REAL,
	price_currency TEXT,
	resolved_at TEXT
);
`

// writeBooksToDatastore exports resolved books to the local Datasette
// database, honoring the datasette.enabled config.
func writeBooksToDatastore(books []Book) error {
	resolvedAt := time.Now().UTC().Format(time.RFC3339)

	return cmdutil.WriteToDatastore(books, booksTableSchema, "crux_books", "resolved recommendations", func(book Book) map[string]any {
		row := cmdutil.StructToMap(book, cmdutil.StructToMapOptions{
			OmitFields:       map[string]bool{"Price": true},
			JoinStringSlices: true,
		})

		// Price is flattened into two nullable columns
		if book.Price != nil {
			row["price_amount"] = book.Price.Amount
			row["price_currency"] = book.Price.CurrencyCode
		} else {
			row["price_amount"] = nil
			row["price_currency"] = nil
		}
		row["resolved_at"] = resolvedAt

		return row
	})
}
