package recommend

import (
	"fmt"
	"strings"
	"time"
)

// Request is the instruction payload for the generation service.
// The prompt is fully determined by the preferences; the timestamp is
// recorded for logging only and carries no semantics.
type Request struct {
	Prompt    string
	Timestamp time.Time
}

// BuildPrompt renders preferences into the generation instruction text.
// Deterministic: identical preferences produce identical prompts.
func BuildPrompt(prefs Preferences) Request {
	var b strings.Builder

	b.WriteString("You are a professional book recommendation system. Based on the user's preferences, suggest exactly 5 books that match their criteria.\n\n")
	b.WriteString("User Preferences:\n")
	fmt.Fprintf(&b, "- Preferred Genres: %s\n", strings.Join(prefs.Genres, ", "))
	fmt.Fprintf(&b, "- Reading Level: %s (%g/10)\n", readingLevelText(prefs.ReadingLevel), prefs.ReadingLevel)
	fmt.Fprintf(&b, "- Time Commitment: %s\n", lengthText(prefs.Length))
	fmt.Fprintf(&b, "- Favorite Books: %s\n\n", prefs.Influences)
	b.WriteString("Instructions:\n")
	b.WriteString("1. Analyze the user's favorite books to understand their taste\n")
	b.WriteString("2. Consider their preferred genres and reading level\n")
	fmt.Fprintf(&b, "3. Match the page count preference (%d pages approximately)\n", prefs.Length)
	b.WriteString("4. Provide exactly 5 book recommendations\n")
	b.WriteString("5. Return ONLY the book titles separated by pipes, no other text or explanation\n\n")
	b.WriteString("Example format: Book Title 1 | Book Title 2 | Book Title 3 | Book Title 4 | Book Title 5\n\n")
	b.WriteString("Respond with only the pipe-separated book titles.")

	return Request{
		Prompt:    b.String(),
		Timestamp: time.Now(),
	}
}

// readingLevelText maps the 0-10 comfort score onto a description.
func readingLevelText(value float64) string {
	switch {
	case value <= 3:
		return "Beginner (rare reader, light reads)"
	case value <= 7:
		return "Intermediate (comfortable with longer fiction)"
	default:
		return "Advanced (enjoys complex plots, prose, classics)"
	}
}

// lengthText maps the preferred page count onto a description.
func lengthText(pages int) string {
	switch {
	case pages <= 150:
		return fmt.Sprintf("Quick reads (~%d pages)", pages)
	case pages <= 300:
		return fmt.Sprintf("Medium reads (~%d pages)", pages)
	case pages <= 450:
		return fmt.Sprintf("Long reads (~%d pages)", pages)
	default:
		return fmt.Sprintf("Epic reads (%d+ pages)", pages)
	}
}
