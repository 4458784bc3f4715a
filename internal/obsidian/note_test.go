package obsidian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteBuild_SortedKeysAndFlowTags(t *testing.T) {
	fm := NewFrontmatterWithTitle("The Dispossessed")
	fm.Set("year", "1974")
	fm.Set("author", "Ursula K. Le Guin")
	fm.Set("tags", []string{"crux/book", "genre/Fiction"})

	note := &Note{Frontmatter: fm, Body: "An ambiguous utopia.\n"}
	out, err := note.Build()
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, "tags: [crux/book, genre/Fiction]")
	assert.Contains(t, content, "title: The Dispossessed")
	assert.Contains(t, content, "An ambiguous utopia.")

	// Keys come out alphabetically
	assert.Equal(t, []string{"author", "tags", "title", "year"}, fm.Keys())
}

func TestNoteBuild_NoFrontmatter(t *testing.T) {
	note := &Note{Frontmatter: NewFrontmatter(), Body: "just a body"}
	out, err := note.Build()
	require.NoError(t, err)
	assert.Equal(t, "just a body", string(out))
}

func TestFrontmatterSetOverwrites(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("rating", 4.2)
	fm.Set("rating", 4.7)

	val, ok := fm.Get("rating")
	require.True(t, ok)
	assert.Equal(t, 4.7, val)
	assert.Equal(t, []string{"rating"}, fm.Keys())
}

func TestFrontmatterGetString(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("publisher", "Tor Books")
	fm.Set("pages", 300)

	assert.Equal(t, "Tor Books", fm.GetString("publisher"))
	assert.Equal(t, "", fm.GetString("pages"))
	assert.Equal(t, "", fm.GetString("missing"))
}

func TestBuildNoteMarkdown_TrimsBody(t *testing.T) {
	fm := NewFrontmatterWithTitle("Kindred")
	out, err := BuildNoteMarkdown(fm, "\n\nBody text.\n\n")
	require.NoError(t, err)
	assert.Contains(t, string(out), "---\n")
	assert.Contains(t, string(out), "Body text.")
	assert.NotContains(t, string(out), "Body text.\n\n")
}
