package recommend

import (
	"strings"

	apierrors "github.com/lepinkainen/crux/internal/errors"
	"github.com/lepinkainen/crux/internal/gemini"
)

// ExtractTitles pulls the candidate titles out of a generation response.
// The generated text is trimmed, stripped of newlines and split on pipes;
// empty segments are dropped. Returns MalformedResponseError when the
// response shape is unexpected and ErrNoSuggestions when nothing usable
// survives filtering.
func ExtractTitles(response *gemini.Response) ([]string, error) {
	text, err := response.FirstText()
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\n", "")

	segments := strings.Split(text, "|")
	titles := make([]string, 0, len(segments))
	for _, segment := range segments {
		title := strings.TrimSpace(segment)
		if title != "" {
			titles = append(titles, title)
		}
	}

	if len(titles) == 0 {
		return nil, apierrors.ErrNoSuggestions
	}

	return titles, nil
}
