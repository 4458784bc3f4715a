package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	InitConfig()

	require.False(t, OverwriteFiles)
	require.Equal(t, "./markdown/", viper.GetString("MarkdownOutputDir"))
	require.Equal(t, "./json/", viper.GetString("JSONOutputDir"))
}

func TestInitConfigReadsValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("OverwriteFiles", true)
	viper.Set("gemini.apikey", "test-gemini-key")
	viper.Set("googlebooks.apikey", "test-books-key")

	InitConfig()

	require.True(t, OverwriteFiles)
	require.Equal(t, "test-gemini-key", GeminiAPIKey)
	require.Equal(t, "test-books-key", GoogleBooksAPIKey)
}

func TestSetOverwriteFiles(t *testing.T) {
	SetOverwriteFiles(true)
	require.True(t, OverwriteFiles)
	SetOverwriteFiles(false)
	require.False(t, OverwriteFiles)
}

func TestSetUpdateCovers(t *testing.T) {
	SetUpdateCovers(true)
	require.True(t, UpdateCovers)
	SetUpdateCovers(false)
	require.False(t, UpdateCovers)
}
