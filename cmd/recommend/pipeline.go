package recommend

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lepinkainen/crux/internal/gemini"
)

const (
	defaultConcurrency = 5
	maxConcurrency     = 10
)

// Generator is the generation service dependency of the pipeline.
type Generator interface {
	Generate(ctx context.Context, request gemini.Request) (*gemini.Response, error)
}

// Pipeline orchestrates the full resolution run: preferences to prompt,
// prompt to candidate titles, titles to enriched books.
type Pipeline struct {
	generator   Generator
	concurrency int
	resolve     func(ctx context.Context, title string) Book
}

// NewPipeline creates a pipeline with bounded catalog concurrency.
// Out-of-range values are clamped to [1, 10], zero means the default of 5.
func NewPipeline(generator Generator, concurrency int) *Pipeline {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if concurrency > maxConcurrency {
		concurrency = maxConcurrency
	}

	return &Pipeline{
		generator:   generator,
		concurrency: concurrency,
		resolve:     ResolveBook,
	}
}

// Run executes the whole pipeline. Generation-stage failures abort the
// run; once titles are extracted, the result always has one Book per
// title in extraction order.
func (p *Pipeline) Run(ctx context.Context, prefs Preferences) ([]Book, error) {
	titles, err := p.BuildAndGenerate(ctx, prefs)
	if err != nil {
		return nil, err
	}

	return p.EnrichAll(ctx, titles), nil
}

// BuildAndGenerate covers the generation stage: normalize preferences,
// build the prompt, call the generation service and extract titles.
func (p *Pipeline) BuildAndGenerate(ctx context.Context, prefs Preferences) ([]string, error) {
	prefs = prefs.Normalize()
	request := BuildPrompt(prefs)

	slog.Debug("Requesting suggestions",
		"genres", prefs.Genres,
		"reading_level", prefs.ReadingLevel,
		"length", prefs.Length,
		"built_at", request.Timestamp,
	)

	response, err := p.generator.Generate(ctx, gemini.NewRequest(request.Prompt))
	if err != nil {
		return nil, err
	}

	titles, err := ExtractTitles(response)
	if err != nil {
		return nil, err
	}

	slog.Info("Extracted candidate titles", "count", len(titles))
	return titles, nil
}

// EnrichAll resolves every title concurrently against the catalog and
// joins before returning. The output preserves input order regardless
// of which lookup finishes first, and always has one entry per title;
// individual lookup failures degrade to fallback records inside the
// resolver. A cancelled context short-circuits remaining lookups to
// fallback records without issuing network calls.
func (p *Pipeline) EnrichAll(ctx context.Context, titles []string) []Book {
	books := make([]Book, len(titles))

	sem := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup

	for i, title := range titles {
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				books[i] = fallbackBook(title)
				return
			}

			books[i] = p.resolve(ctx, title)
		}(i, title)
	}

	wg.Wait()
	return books
}
