package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200.0, cfg.ReadingSpeedWPM)
	assert.Equal(t, 3, cfg.MinWordLength)
	assert.Equal(t, 20, cfg.TopWords)
	assert.Equal(t, 10, cfg.TopPhrases)
	assert.Equal(t, 2, cfg.PhraseLength)
}

func TestLoad_ValidYAML_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.yaml")
	content := `reading_speed_wpm: 250
top_words: 5
extra_stop_words:
  - lorem
  - ipsum`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 250.0, cfg.ReadingSpeedWPM)
	assert.Equal(t, 5, cfg.TopWords)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10, cfg.TopPhrases)
	assert.Equal(t, 2, cfg.PhraseLength)
	assert.Equal(t, []string{"lorem", "ipsum"}, cfg.ExtraStopWords)
}

func TestLoad_MissingFile_ReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Analysis)
		field  string
	}{
		{"non-positive speed", func(c *Analysis) { c.ReadingSpeedWPM = 0 }, "reading_speed_wpm"},
		{"negative top words", func(c *Analysis) { c.TopWords = -1 }, "top_words"},
		{"negative top phrases", func(c *Analysis) { c.TopPhrases = -3 }, "top_phrases"},
		{"phrase length below one", func(c *Analysis) { c.PhraseLength = 0 }, "phrase_length"},
		{"negative min word length", func(c *Analysis) { c.MinWordLength = -1 }, "min_word_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()

			var cfgErr *InvalidConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestStopWordSet_DefaultsAndOverrides(t *testing.T) {
	cfg := Default()
	set := cfg.StopWordSet()
	assert.Contains(t, set, "the")
	assert.Contains(t, set, "them")

	cfg.StopWords = []string{"foo", "bar"}
	set = cfg.StopWordSet()
	assert.NotContains(t, set, "the", "override replaces the built-in list")
	assert.Contains(t, set, "foo")

	cfg.ExtraStopWords = []string{"baz"}
	set = cfg.StopWordSet()
	assert.Contains(t, set, "baz")
}

func TestEffectiveStopWords_DeterministicOrder(t *testing.T) {
	cfg := Default()
	cfg.StopWords = []string{"one", "two", "one"}
	cfg.ExtraStopWords = []string{"three", "two"}

	assert.Equal(t, []string{"one", "two", "three"}, cfg.EffectiveStopWords())
}
