package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// OverwriteFiles controls whether existing markdown files should be overwritten
	OverwriteFiles bool
	// UpdateCovers forces re-downloading cover images even when they exist
	UpdateCovers bool
	// GeminiAPIKey is the API key for the Gemini generation service
	GeminiAPIKey string
	// GoogleBooksAPIKey is the optional API key for the Google Books catalog
	GoogleBooksAPIKey string
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	// Get values from viper
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	GeminiAPIKey = viper.GetString("gemini.apikey")
	GoogleBooksAPIKey = viper.GetString("googlebooks.apikey")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetUpdateCovers sets the UpdateCovers flag
func SetUpdateCovers(update bool) {
	UpdateCovers = update
}
