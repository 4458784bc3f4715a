package obsidian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Fiction", "Fiction"},
		{"leading hash", "#Fiction", "Fiction"},
		{"spaces to hyphens", "Science Fiction", "Science-Fiction"},
		{"ampersand", "Mystery & Thriller", "Mystery-and-Thriller"},
		{"hierarchy preserved", "genre/Science Fiction", "genre/Science-Fiction"},
		{"repeated hyphens", "Coming--of--Age", "Coming-of-Age"},
		{"whitespace only", "   ", ""},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeTag(tc.input))
		})
	}
}

func TestNormalizeTags_DedupesAndSorts(t *testing.T) {
	result := NormalizeTags([]string{"War", "#War", "Survival", ""})
	assert.Equal(t, []string{"Survival", "War"}, result)
}

func TestTagSet(t *testing.T) {
	ts := NewTagSet()
	ts.Add("crux/book")
	ts.Add("genre/Fiction")
	ts.Add("genre/Fiction") // duplicate
	ts.AddIf(false, "never")
	ts.AddIf(true, "theme/Identity")
	ts.AddFormat("rating/%d", 4)
	ts.Add("")

	assert.Equal(t, []string{"crux/book", "genre/Fiction", "rating/4", "theme/Identity"}, ts.GetSorted())
}

func TestTagsFromAny(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, TagsFromAny([]string{"a", "", "b"}))
	assert.Equal(t, []string{"a"}, TagsFromAny([]interface{}{"a", 1, ""}))
	assert.Equal(t, []string{}, TagsFromAny(nil))
	assert.Equal(t, []string{}, TagsFromAny("scalar"))
}
