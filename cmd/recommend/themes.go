package recommend

import (
	"regexp"
	"strings"
)

const maxThemes = 4

// themeVocabulary is the fixed set of keywords scanned for in catalog
// descriptions, in priority order.
var themeVocabulary = []string{
	"Love",
	"Romance",
	"Adventure",
	"Mystery",
	"Science",
	"History",
	"Family",
	"Friendship",
	"War",
	"Politics",
	"Religion",
	"Philosophy",
	"Coming of Age",
	"Survival",
	"Magic",
	"Technology",
	"Drama",
	"Comedy",
	"Tragedy",
	"Alienation",
	"Identity",
	"Society",
}

var categoryQualifierRe = regexp.MustCompile(`^(Fiction|Non-Fiction)\s*/\s*`)

// ExtractThemes derives up to 4 thematic tags for a book. Catalog
// categories come first (with any leading "Fiction /" qualifier
// stripped), then keywords found in the description, skipping keywords
// already covered by an existing theme. Falls back to ["General"].
func ExtractThemes(categories []string, description string) []string {
	themes := make([]string, 0, maxThemes)

	for _, category := range categories {
		clean := categoryQualifierRe.ReplaceAllString(category, "")
		clean = strings.TrimSpace(clean)
		if clean != "" {
			themes = append(themes, clean)
		}
	}

	if description != "" {
		descLower := strings.ToLower(description)
		for _, keyword := range themeVocabulary {
			if !strings.Contains(descLower, strings.ToLower(keyword)) {
				continue
			}
			if containsTheme(themes, keyword) {
				continue
			}
			themes = append(themes, keyword)
		}
	}

	if len(themes) == 0 {
		return []string{"General"}
	}
	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}
	return themes
}

// containsTheme reports whether any existing theme already contains the
// keyword as a case-insensitive substring.
func containsTheme(themes []string, keyword string) bool {
	keywordLower := strings.ToLower(keyword)
	for _, theme := range themes {
		if strings.Contains(strings.ToLower(theme), keywordLower) {
			return true
		}
	}
	return false
}
