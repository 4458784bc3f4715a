package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lepinkainen/crux/internal/config"
	"github.com/lepinkainen/crux/internal/fileutil"
	"github.com/lepinkainen/crux/internal/obsidian"
)

const defaultCoverWidth = 250

func writeBookToMarkdown(ctx context.Context, book Book, directory string) error {
	filePath := fileutil.GetMarkdownFilePath(book.Title, directory)

	fm := obsidian.NewFrontmatter()

	// Basic metadata
	fm.Set("title", fileutil.SanitizeFilename(book.Title))
	fm.Set("type", "book")
	fm.Set("book_id", book.ID)
	fm.Set("author", book.Author)

	if book.Subtitle != "" {
		fm.Set("subtitle", book.Subtitle)
	}
	if book.Year != UnknownYear {
		fm.Set("year", book.Year)
	}

	fm.Set("rating", book.Rating)
	fm.Set("pages", book.Pages)

	if book.Publisher != UnknownPublisher {
		fm.Set("publisher", book.Publisher)
	}
	if book.ISBN != "" {
		fm.Set("isbn", book.ISBN)
	}
	fm.Set("language", book.Language)

	if len(book.Genre) > 0 {
		fm.Set("genre", book.Genre)
	}
	if len(book.Themes) > 0 {
		fm.Set("themes", book.Themes)
	}
	fm.Set("description", book.Description)

	// Collect all tags using TagSet for deduplication and normalization
	tc := obsidian.NewTagSet()
	tc.Add("crux/book")

	tc.AddIf(book.Rating > 0, fmt.Sprintf("rating/%.0f", book.Rating))

	for _, genre := range book.Genre {
		tc.AddFormat("genre/%s", genre)
	}
	for _, theme := range book.Themes {
		tc.AddFormat("theme/%s", theme)
	}

	// Add decade tag if the catalog gave us a year
	if year, err := strconv.Atoi(book.Year); err == nil {
		decade := (year / 10) * 10
		tc.AddFormat("year/%ds", decade)
	}

	obsidian.ApplyTagSet(fm, tc)

	// Build body content
	var body strings.Builder

	// Handle cover - download locally and use Obsidian syntax
	if book.Cover != "" {
		coverFilename := fileutil.BuildCoverFilename(book.Title)
		result, err := fileutil.DownloadCover(ctx, fileutil.CoverDownloadOptions{
			URL:          book.Cover,
			OutputDir:    directory,
			Filename:     coverFilename,
			UpdateCovers: config.UpdateCovers,
		})
		if err != nil {
			slog.Warn("Failed to download cover", "title", book.Title, "error", err)
			// Fall back to URL if download fails
			fm.Set("cover", book.Cover)
			body.WriteString(fmt.Sprintf("![](%s)\n\n", book.Cover))
		} else if result != nil {
			// Use local path in frontmatter
			fm.Set("cover", result.RelativePath)
			body.WriteString(fmt.Sprintf("![[%s|%d]]\n\n", result.Filename, defaultCoverWidth))
		}
	}

	body.WriteString(book.LongDescription)
	body.WriteString("\n\n")

	if book.TextSnippet != "" {
		body.WriteString(">[!quote]-\n")
		body.WriteString("> ")
		body.WriteString(book.TextSnippet)
		body.WriteString("\n\n")
	}

	writeLinksSection(&body, book)

	markdown, err := obsidian.BuildNoteMarkdown(fm, body.String())
	if err != nil {
		return fmt.Errorf("failed to build markdown: %w", err)
	}

	content := append(markdown, []byte("\n")...)

	written, err := fileutil.WriteFileWithOverwrite(filePath, content, 0644, config.OverwriteFiles)
	if err != nil {
		return err
	}

	fileutil.LogFileWriteResult(written, filePath)

	return nil
}

// writeLinksSection appends a callout with the external catalog links
func writeLinksSection(body *strings.Builder, book Book) {
	links := []struct {
		title string
		url   string
	}{
		{"Preview", book.PreviewLink},
		{"More info", book.InfoLink},
		{"Buy", book.BuyLink},
		{"Read online", book.WebReaderLink},
	}

	var present []struct {
		title string
		url   string
	}
	for _, link := range links {
		if link.url != "" {
			present = append(present, link)
		}
	}
	if len(present) == 0 {
		return
	}

	body.WriteString(">[!info]- Links\n")
	for _, link := range present {
		fmt.Fprintf(body, "> [%s](%s)\n", link.title, link.url)
	}
	body.WriteString("\n")
}
