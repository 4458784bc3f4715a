package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lepinkainen/crux/internal/cache"
	"github.com/lepinkainen/crux/internal/config"
	"github.com/lepinkainen/crux/internal/ratelimit"
)

// coverPlaceholderURL stands in when the catalog has no usable image
// links, so Cover is never empty.
const coverPlaceholderURL = "https://via.placeholder.com/128x192/D8D2C2/4A4947?text=No+Cover"

// Package-level variables for the Google Books API client
// These can be overridden in tests for dependency injection
var (
	googleBooksHTTPClient    *http.Client
	googleBooksClientOnce    sync.Once
	googleBooksHTTPClientNew = func() *http.Client {
		return &http.Client{Timeout: 10 * time.Second}
	}
	googleBooksBaseURL = "https://www.googleapis.com/books/v1"

	googleBooksLimiter = ratelimit.New("GoogleBooks", 1)

	// ratingSource feeds the synthesized placeholder rating; swapped in tests
	ratingSource = rand.Float64
)

// getGoogleBooksHTTPClient returns a singleton HTTP client for Google Books API
func getGoogleBooksHTTPClient() *http.Client {
	googleBooksClientOnce.Do(func() {
		googleBooksHTTPClient = googleBooksHTTPClientNew()
	})
	return googleBooksHTTPClient
}

// volumesResponse mirrors the Google Books volumes search response
type volumesResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
	SaleInfo   saleInfo   `json:"saleInfo"`
	AccessInfo accessInfo `json:"accessInfo"`
	SearchInfo searchInfo `json:"searchInfo"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Subtitle            string               `json:"subtitle"`
	Authors             []string             `json:"authors"`
	Publisher           string               `json:"publisher"`
	PublishedDate       string               `json:"publishedDate"`
	Description         string               `json:"description"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
	PageCount           int                  `json:"pageCount"`
	PrintType           string               `json:"printType"`
	Categories          []string             `json:"categories"`
	AverageRating       float64              `json:"averageRating"`
	MaturityRating      string               `json:"maturityRating"`
	ImageLinks          imageLinks           `json:"imageLinks"`
	Language            string               `json:"language"`
	PreviewLink         string               `json:"previewLink"`
	InfoLink            string               `json:"infoLink"`
	CanonicalVolumeLink string               `json:"canonicalVolumeLink"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

type saleInfo struct {
	Saleability string     `json:"saleability"`
	IsEbook     bool       `json:"isEbook"`
	BuyLink     string     `json:"buyLink"`
	ListPrice   *listPrice `json:"listPrice"`
}

type listPrice struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}

type accessInfo struct {
	WebReaderLink string `json:"webReaderLink"`
}

type searchInfo struct {
	TextSnippet string `json:"textSnippet"`
}

// cachedVolume is the shape stored in the googlebooks_cache table.
// NotFound entries enable negative caching of titles the catalog has
// no match for.
type cachedVolume struct {
	Item     *volumeItem `json:"item"`
	NotFound bool        `json:"not_found"`
}

// ResolveBook turns one candidate title into a complete Book. It never
// fails outward: a missing match or a failed catalog call both degrade
// to a fallback record built from the queried title.
func ResolveBook(ctx context.Context, title string) Book {
	cached, fromCache, err := cache.GetOrFetchWithTTL(
		"googlebooks_cache",
		cacheKeyForTitle(title),
		func() (cachedVolume, error) {
			return fetchVolumeByTitle(ctx, title)
		},
		cache.SelectNegativeCacheTTL(func(v cachedVolume) bool {
			return v.NotFound
		}),
	)
	if err != nil {
		slog.Debug("Catalog lookup failed, using fallback record", "title", title, "error", err)
		return fallbackBook(title)
	}
	if cached.NotFound || cached.Item == nil {
		slog.Debug("No catalog match, using fallback record", "title", title, "from_cache", fromCache)
		return fallbackBook(title)
	}

	return mapVolumeToBook(title, cached.Item)
}

// cacheKeyForTitle normalizes a queried title into a stable cache key
func cacheKeyForTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// fetchVolumeByTitle queries the catalog by exact-title search, capped
// at one result. A zero-item response is not an error; it comes back as
// a NotFound marker so it can be negative-cached.
func fetchVolumeByTitle(ctx context.Context, title string) (cachedVolume, error) {
	if err := googleBooksLimiter.Wait(ctx); err != nil {
		return cachedVolume{}, err
	}

	requestURL := fmt.Sprintf("%s/volumes?q=intitle:%s&maxResults=1", googleBooksBaseURL, url.QueryEscape(title))
	if config.GoogleBooksAPIKey != "" {
		requestURL = fmt.Sprintf("%s&key=%s", requestURL, config.GoogleBooksAPIKey)
	}

	slog.Debug("Fetching volume from Google Books", "title", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return cachedVolume{}, err
	}

	resp, err := getGoogleBooksHTTPClient().Do(req)
	if err != nil {
		return cachedVolume{}, fmt.Errorf("google Books API request failed for title %q: %w", title, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return cachedVolume{}, fmt.Errorf("google Books API returned non-200 status code: %d for title: %q", resp.StatusCode, title)
	}

	var result volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return cachedVolume{}, fmt.Errorf("failed to decode Google Books response for title %q: %w", title, err)
	}

	if result.TotalItems == 0 || len(result.Items) == 0 {
		return cachedVolume{NotFound: true}, nil
	}

	return cachedVolume{Item: &result.Items[0]}, nil
}

// mapVolumeToBook maps a catalog match onto the Book schema, filling
// sentinels for any individually missing subfield.
func mapVolumeToBook(queriedTitle string, item *volumeItem) Book {
	info := item.VolumeInfo
	sale := item.SaleInfo

	book := Book{
		ID:       item.ID,
		Title:    stringOr(info.Title, queriedTitle),
		Subtitle: info.Subtitle,
		Author:   stringOr(strings.Join(info.Authors, ", "), UnknownAuthor),
		Year:     yearFromDate(info.PublishedDate),
		Cover:    coverURL(info.ImageLinks),
		Rating:   info.AverageRating,
		Pages:    info.PageCount,

		Genre:  info.Categories,
		Themes: ExtractThemes(info.Categories, info.Description),

		Description:     cardDescription(info.Description),
		LongDescription: stringOr(info.Description, "No detailed description available."),

		Publisher:     stringOr(info.Publisher, UnknownPublisher),
		PublishedDate: stringOr(info.PublishedDate, UnknownYear),
		ISBN:          pickISBN(info.IndustryIdentifiers),
		Language:      stringOr(info.Language, DefaultLanguage),

		PrintType:      stringOr(info.PrintType, "BOOK"),
		MaturityRating: stringOr(info.MaturityRating, "NOT_MATURE"),

		PreviewLink:         secureURL(info.PreviewLink),
		InfoLink:            secureURL(info.InfoLink),
		CanonicalVolumeLink: secureURL(info.CanonicalVolumeLink),

		Saleability: stringOr(sale.Saleability, "NOT_FOR_SALE"),
		IsEbook:     sale.IsEbook,
		BuyLink:     secureURL(sale.BuyLink),

		WebReaderLink: secureURL(item.AccessInfo.WebReaderLink),
		TextSnippet:   item.SearchInfo.TextSnippet,
	}

	if book.Rating == 0 {
		book.Rating = synthesizeRating()
	}
	if book.Pages == 0 {
		book.Pages = DefaultPages
	}
	if len(book.Genre) == 0 {
		book.Genre = []string{"Fiction"}
	}
	if sale.ListPrice != nil {
		book.Price = &Price{
			Amount:       sale.ListPrice.Amount,
			CurrencyCode: sale.ListPrice.CurrencyCode,
		}
	}

	return book
}

// fallbackBook builds the degraded record used when the catalog has no
// match or the lookup failed. Both cases produce the identical shape.
func fallbackBook(title string) Book {
	return Book{
		ID:              uuid.NewString(),
		Title:           title,
		Author:          UnknownAuthor,
		Year:            UnknownYear,
		Cover:           coverPlaceholderURL,
		Rating:          synthesizeRating(),
		Pages:           DefaultPages,
		Genre:           []string{"Fiction"},
		Themes:          []string{"General"},
		Description:     "Book information could not be retrieved.",
		LongDescription: "Book information could not be retrieved from the Google Books API.",
		Publisher:       UnknownPublisher,
		PublishedDate:   UnknownYear,
		Language:        DefaultLanguage,
		PrintType:       "BOOK",
		MaturityRating:  "NOT_MATURE",
		Saleability:     "NOT_FOR_SALE",
	}
}

// synthesizeRating produces a display placeholder uniformly distributed
// in [3.5, 5.5], rounded to one decimal.
func synthesizeRating() float64 {
	rating := ratingSource()*2 + 3.5
	return math.Round(rating*10) / 10
}

// secureURL rewrites insecure scheme links to https
func secureURL(link string) string {
	return strings.Replace(link, "http:", "https:", 1)
}

// coverURL prefers the thumbnail over the small thumbnail, secured,
// with the placeholder when neither is present
func coverURL(links imageLinks) string {
	if links.Thumbnail != "" {
		return secureURL(links.Thumbnail)
	}
	if links.SmallThumbnail != "" {
		return secureURL(links.SmallThumbnail)
	}
	return coverPlaceholderURL
}

// pickISBN selects the ISBN-13 identifier when present, else ISBN-10
func pickISBN(identifiers []industryIdentifier) string {
	var isbn10 string
	for _, id := range identifiers {
		switch id.Type {
		case "ISBN_13":
			return id.Identifier
		case "ISBN_10":
			if isbn10 == "" {
				isbn10 = id.Identifier
			}
		}
	}
	return isbn10
}

// cardDescription truncates the description to 150 characters with an
// ellipsis for card display, with a sentinel when absent.
func cardDescription(description string) string {
	if description == "" {
		return "No description available."
	}
	runes := []rune(description)
	if len(runes) > 150 {
		return string(runes[:150]) + "..."
	}
	return description
}

// yearFromDate extracts the year from a catalog published date, which
// may be "2006", "2006-04" or "2006-04-12".
func yearFromDate(publishedDate string) string {
	if len(publishedDate) >= 4 {
		year := publishedDate[:4]
		if isDigits(year) {
			return year
		}
	}
	return UnknownYear
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
