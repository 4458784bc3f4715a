package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleBook struct {
	Title       string
	PageCount   int
	Themes      []string
	ISBN        string
	internalRef string
}

func TestStructToMap_SnakeCaseKeys(t *testing.T) {
	book := sampleBook{Title: "Dune", PageCount: 412, ISBN: "9780441172719"}

	result := StructToMap(book, StructToMapOptions{})

	assert.Equal(t, "Dune", result["title"])
	assert.Equal(t, 412, result["page_count"])
	assert.Equal(t, "9780441172719", result["isbn"])
	// Unexported fields are skipped
	_, ok := result["internal_ref"]
	assert.False(t, ok)
}

func TestStructToMap_OmitAndOverride(t *testing.T) {
	book := sampleBook{Title: "Dune", PageCount: 412}

	result := StructToMap(book, StructToMapOptions{
		OmitFields:   map[string]bool{"PageCount": true},
		KeyOverrides: map[string]string{"Title": "book_title"},
	})

	assert.Equal(t, "Dune", result["book_title"])
	_, ok := result["page_count"]
	assert.False(t, ok)
	_, ok = result["title"]
	assert.False(t, ok)
}

func TestStructToMap_JoinsStringSlices(t *testing.T) {
	book := sampleBook{Themes: []string{"War", "Survival"}}

	result := StructToMap(book, StructToMapOptions{JoinStringSlices: true})

	assert.Equal(t, "War,Survival", result["themes"])
}

func TestStructToMap_NilPointer(t *testing.T) {
	var book *sampleBook
	result := StructToMap(book, StructToMapOptions{})
	assert.Empty(t, result)
}

func TestToSnakeCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Title", "title"},
		{"PageCount", "page_count"},
		{"ISBN", "isbn"},
		{"ISBNCode", "isbn_code"},
		{"CoverURL", "cover_url"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, toSnakeCase(tc.input), "input %q", tc.input)
	}
}
