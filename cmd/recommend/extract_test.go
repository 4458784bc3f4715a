package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/lepinkainen/crux/internal/errors"
	"github.com/lepinkainen/crux/internal/gemini"
)

func textResponse(text string) *gemini.Response {
	return &gemini.Response{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

func TestExtractTitles(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "simple pipe separated",
			text:     "A | B | C",
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "five titles",
			text:     "Dune | Hyperion | Foundation | Neuromancer | Snow Crash",
			expected: []string{"Dune", "Hyperion", "Foundation", "Neuromancer", "Snow Crash"},
		},
		{
			name:     "embedded newlines removed before splitting",
			text:     "Dune |\nHyperion\n| Foundation",
			expected: []string{"Dune", "Hyperion", "Foundation"},
		},
		{
			name:     "surrounding whitespace trimmed",
			text:     "  Dune  |  Hyperion  ",
			expected: []string{"Dune", "Hyperion"},
		},
		{
			name:     "trailing pipe drops empty segment",
			text:     "Dune | Hyperion | ",
			expected: []string{"Dune", "Hyperion"},
		},
		{
			name:     "single title no pipes",
			text:     "Dune",
			expected: []string{"Dune"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			titles, err := ExtractTitles(textResponse(tc.text))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, titles)
		})
	}
}

func TestExtractTitles_NoUsableTitles(t *testing.T) {
	testCases := []string{"", "   ", " | | ", "\n\n"}

	for _, text := range testCases {
		_, err := ExtractTitles(textResponse(text))
		require.ErrorIs(t, err, apierrors.ErrNoSuggestions, "text %q", text)
	}
}

func TestExtractTitles_MalformedResponse(t *testing.T) {
	_, err := ExtractTitles(&gemini.Response{})
	require.Error(t, err)
	assert.True(t, apierrors.IsMalformedResponseError(err))
}
