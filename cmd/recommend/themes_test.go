package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractThemes_CategoriesAndDescription(t *testing.T) {
	themes := ExtractThemes([]string{"Fiction / War"}, "A story about survival and identity")

	assert.Equal(t, []string{"War", "Survival", "Identity"}, themes)
}

func TestExtractThemes_StripsQualifierPrefix(t *testing.T) {
	assert.Equal(t, []string{"Thrillers"}, ExtractThemes([]string{"Fiction/Thrillers"}, ""))
	assert.Equal(t, []string{"Science"}, ExtractThemes([]string{"Non-Fiction / Science"}, ""))
}

func TestExtractThemes_NoInput(t *testing.T) {
	assert.Equal(t, []string{"General"}, ExtractThemes(nil, ""))
	assert.Equal(t, []string{"General"}, ExtractThemes([]string{}, ""))
}

func TestExtractThemes_TruncatesToFour(t *testing.T) {
	description := "love and romance and adventure and mystery and science and history"
	themes := ExtractThemes(nil, description)

	assert.Len(t, themes, 4)
	assert.Equal(t, []string{"Love", "Romance", "Adventure", "Mystery"}, themes)
}

func TestExtractThemes_SkipsSubstringDuplicates(t *testing.T) {
	// "Romance" category already covers the "Romance" keyword; "Love" from
	// the description still qualifies.
	themes := ExtractThemes([]string{"Romance"}, "a romance about love")

	assert.Equal(t, []string{"Romance", "Love"}, themes)
}

func TestExtractThemes_CaseInsensitiveMatching(t *testing.T) {
	themes := ExtractThemes(nil, "WAR and POLITICS in a distant future")

	assert.Contains(t, themes, "War")
	assert.Contains(t, themes, "Politics")
}

func TestExtractThemes_OrderIsCategoriesThenVocabulary(t *testing.T) {
	themes := ExtractThemes([]string{"Fantasy"}, "magic and friendship")

	// Categories first, then keywords in vocabulary order
	assert.Equal(t, []string{"Fantasy", "Friendship", "Magic"}, themes)
	assert.True(t, strings.HasPrefix(themes[0], "Fantasy"))
}
