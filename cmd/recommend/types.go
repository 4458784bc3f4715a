// Package recommend implements the recommendation pipeline: reader
// preferences are turned into a generation prompt, the generated titles
// are resolved against the Google Books catalog and the results are
// written out as markdown notes, JSON and Datasette rows.
package recommend

import "strings"

// Sentinel values used when the catalog omits a field. Downstream code
// may assume every Book field is populated.
const (
	UnknownAuthor    = "Unknown Author"
	UnknownPublisher = "Unknown Publisher"
	UnknownYear      = "Unknown"
	DefaultPages     = 200
	DefaultLanguage  = "en"
)

// Preferences is the normalized representation of reader input.
type Preferences struct {
	// Genres the reader enjoys; order carries no meaning
	Genres []string
	// ReadingLevel is comfort with dense books on a 0-10 scale
	ReadingLevel float64
	// Length is the preferred page count, 50-500
	Length int
	// Influences is free text naming books, movies or shows the reader liked
	Influences string
}

// DefaultPreferences returns the middle-of-the-road defaults used when
// the reader specifies nothing.
func DefaultPreferences() Preferences {
	return Preferences{
		ReadingLevel: 5,
		Length:       DefaultPages,
	}
}

// Normalize clamps numeric fields into their documented ranges, trims
// the free-text influences and dedupes genres preserving order. The
// result is always safe to hand to BuildPrompt.
func (p Preferences) Normalize() Preferences {
	normalized := p

	if normalized.ReadingLevel < 0 {
		normalized.ReadingLevel = 0
	}
	if normalized.ReadingLevel > 10 {
		normalized.ReadingLevel = 10
	}

	if normalized.Length < 50 {
		normalized.Length = 50
	}
	if normalized.Length > 500 {
		normalized.Length = 500
	}

	normalized.Influences = strings.TrimSpace(normalized.Influences)

	seen := make(map[string]bool, len(p.Genres))
	genres := make([]string, 0, len(p.Genres))
	for _, genre := range p.Genres {
		genre = strings.TrimSpace(genre)
		if genre == "" || seen[genre] {
			continue
		}
		seen[genre] = true
		genres = append(genres, genre)
	}
	normalized.Genres = genres

	return normalized
}

// Price is the catalog list price, present only when the volume is for sale.
type Price struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}

// Book is a fully resolved recommendation. Every field is populated,
// with documented sentinels standing in for data the catalog omitted.
type Book struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Author   string  `json:"author"`
	Year     string  `json:"year"`
	Cover    string  `json:"cover"`
	Rating   float64 `json:"rating"`
	Pages    int     `json:"pages"`

	Genre  []string `json:"genre"`
	Themes []string `json:"themes"`

	Description     string `json:"description"`
	LongDescription string `json:"longDescription"`

	Publisher     string `json:"publisher"`
	PublishedDate string `json:"publishedDate"`
	ISBN          string `json:"isbn"`
	Language      string `json:"language"`

	PrintType      string `json:"printType"`
	MaturityRating string `json:"maturityRating"`

	PreviewLink         string `json:"previewLink"`
	InfoLink            string `json:"infoLink"`
	CanonicalVolumeLink string `json:"canonicalVolumeLink"`

	Saleability string `json:"saleability"`
	IsEbook     bool   `json:"isEbook"`
	BuyLink     string `json:"buyLink"`
	Price       *Price `json:"price"`

	WebReaderLink string `json:"webReaderLink"`
	TextSnippet   string `json:"textSnippet"`
}
