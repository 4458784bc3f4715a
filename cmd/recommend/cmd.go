package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/lepinkainen/crux/internal/cmdutil"
	"github.com/lepinkainen/crux/internal/config"
	"github.com/lepinkainen/crux/internal/fileutil"
	"github.com/lepinkainen/crux/internal/gemini"
)

// Params carries the recommend command inputs from the CLI layer.
type Params struct {
	Genres       []string
	ReadingLevel float64
	Length       int
	Influences   string
	OutputDir    string
	WriteJSON    bool
	JSONOutput   string
	Concurrency  int
}

// RunWithParams executes a full recommendation run: generate titles,
// resolve them against the catalog and write the results out as
// markdown notes, optional JSON and Datasette rows.
func RunWithParams(params Params) error {
	cfg := &cmdutil.BaseCommandConfig{
		OutputDir:  params.OutputDir,
		ConfigKey:  "recommendations",
		JSONOutput: params.JSONOutput,
		WriteJSON:  params.WriteJSON,
	}
	if err := cmdutil.SetupOutputDir(cfg); err != nil {
		return err
	}

	gemini.SetBaseURL(viper.GetString("gemini.baseurl"))
	client := gemini.NewClient(viper.GetString("gemini.model"), config.GeminiAPIKey)
	pipeline := NewPipeline(client, params.Concurrency)

	prefs := Preferences{
		Genres:       params.Genres,
		ReadingLevel: params.ReadingLevel,
		Length:       params.Length,
		Influences:   params.Influences,
	}

	ctx := context.Background()
	start := time.Now()

	books, err := pipeline.Run(ctx, prefs)
	if err != nil {
		return fmt.Errorf("could not get recommendations: %w", err)
	}

	slog.Info("Resolved recommendations", "count", len(books), "duration", time.Since(start).Round(time.Millisecond))

	written := 0
	for _, book := range books {
		if err := writeBookToMarkdown(ctx, book, cfg.OutputDir); err != nil {
			slog.Error("Failed to write markdown note", "title", book.Title, "error", err)
			continue
		}
		written++
	}
	slog.Info("Wrote recommendation notes", "directory", cfg.OutputDir, "count", written)

	if params.WriteJSON {
		if _, err := fileutil.WriteJSONFile(books, cfg.JSONOutput, config.OverwriteFiles); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
	}

	if err := writeBooksToDatastore(books); err != nil {
		slog.Error("Failed to write books to datastore", "error", err)
	}

	return nil
}
