package cmd

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/crux/cmd/recommend"
	"github.com/lepinkainen/crux/internal/cache"
	"github.com/lepinkainen/crux/internal/config"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

var runRecommend = recommend.RunWithParams

// CLI represents the complete command structure for the crux application
type CLI struct {
	// Global flags
	Overwrite    bool `help:"Overwrite existing markdown files when writing recommendations"`
	UpdateCovers bool `help:"Re-download cover images even if they already exist"`
	Verbose      bool `short:"v" help:"Enable debug logging"`

	// Datasette flags
	Datasette   bool   `help:"Enable Datasette output" default:"true"`
	DatasetteDB string `help:"Path to SQLite database file" default:"./crux.db"`

	// Cache flags
	CacheDBFile string `help:"Path to cache SQLite database file" default:"./cache.db"`
	CacheTTL    string `help:"Cache time-to-live duration (e.g., 720h for 30 days)" default:"720h"`

	Recommend RecommendCmd `cmd:"" help:"Generate book recommendations from your reading preferences"`
	Cache     CacheCmd     `cmd:"" help:"Manage the API response cache"`
}

// RecommendCmd represents the recommend command
type RecommendCmd struct {
	Genre        []string `short:"g" help:"Preferred genres (repeatable)"`
	ReadingLevel float64  `short:"l" help:"Comfort with dense books, 0-10" default:"5"`
	Length       int      `short:"p" help:"Preferred page count, 50-500" default:"200"`
	Influences   string   `short:"i" help:"Books, movies or shows you have enjoyed"`
	Output       string   `short:"o" help:"Subdirectory under markdown output directory for recommendation notes" default:"recommendations"`
	JSON         bool     `help:"Write results to JSON format"`
	JSONOutput   string   `help:"Path to JSON output file (defaults to json/recommendations.json)"`
	Concurrency  int      `help:"Maximum concurrent catalog lookups (capped at 10)" default:"5"`
}

// CacheCmd represents the cache management command
type CacheCmd struct {
	Invalidate cache.InvalidateCacheCmd `cmd:"" help:"Clear cached API responses for a source"`
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("crux"),
		kong.Description("AI-powered book recommendations resolved against the Google Books catalog."),
		kong.UsageOnError(),
	)

	initLogging(cli.Verbose)
	initConfig()
	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	// Generation service defaults
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.baseurl", "https://generativelanguage.googleapis.com/v1beta")

	// Datasette defaults
	viper.SetDefault("datasette.enabled", true)
	viper.SetDefault("datasette.mode", "local")
	viper.SetDefault("datasette.dbfile", "./crux.db")

	// Cache defaults
	viper.SetDefault("cache.dbfile", "./cache.db")
	viper.SetDefault("cache.ttl", "720h") // 30 days

	// Enable environment variable support
	viper.AutomaticEnv()
	// Bind specific environment variables to config keys
	if err := viper.BindEnv("gemini.apikey", "GEMINI_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv("googlebooks.apikey", "GOOGLE_BOOKS_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite)
	config.SetUpdateCovers(cli.UpdateCovers)

	// Update datasette config
	viper.Set("datasette.enabled", cli.Datasette)
	viper.Set("datasette.dbfile", cli.DatasetteDB)

	// Update cache config
	viper.Set("cache.dbfile", cli.CacheDBFile)
	viper.Set("cache.ttl", cli.CacheTTL)
}

// Run executes the recommend command
func (r *RecommendCmd) Run() error {
	genres := r.Genre
	if len(genres) == 0 {
		genres = viper.GetStringSlice("recommend.genres")
	}

	return runRecommend(recommend.Params{
		Genres:       genres,
		ReadingLevel: r.ReadingLevel,
		Length:       r.Length,
		Influences:   r.Influences,
		OutputDir:    r.Output,
		WriteJSON:    r.JSON,
		JSONOutput:   r.JSONOutput,
		Concurrency:  r.Concurrency,
	})
}

func initLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
