package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Defaults mirror the analyzer's built-in behaviour: 200 words per
// minute, bigram phrases, and the common-English stop-word list below.
const (
	DefaultReadingSpeedWPM = 200.0
	DefaultMinWordLength   = 3
	DefaultTopWords        = 20
	DefaultTopPhrases      = 10
	DefaultPhraseLength    = 2
)

// Analysis is the full configuration for one analyzer instance.
type Analysis struct {
	ReadingSpeedWPM float64 `mapstructure:"reading_speed_wpm"`
	MinWordLength   int     `mapstructure:"min_word_length"`
	TopWords        int     `mapstructure:"top_words"`
	TopPhrases      int     `mapstructure:"top_phrases"`
	PhraseLength    int     `mapstructure:"phrase_length"`
	// StopWords replaces the built-in stop-word list when non-empty.
	StopWords []string `mapstructure:"stop_words"`
	// ExtraStopWords extends whichever list is in effect.
	ExtraStopWords []string `mapstructure:"extra_stop_words"`
}

// InvalidConfigError reports a configuration value rejected at call
// time, before any analysis runs.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// Default returns the configuration used when no config file is given.
func Default() Analysis {
	return Analysis{
		ReadingSpeedWPM: DefaultReadingSpeedWPM,
		MinWordLength:   DefaultMinWordLength,
		TopWords:        DefaultTopWords,
		TopPhrases:      DefaultTopPhrases,
		PhraseLength:    DefaultPhraseLength,
	}
}

// Load reads an analysis configuration file. Keys absent from the file
// keep their defaults.
func Load(path string) (Analysis, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("reading_speed_wpm", DefaultReadingSpeedWPM)
	v.SetDefault("min_word_length", DefaultMinWordLength)
	v.SetDefault("top_words", DefaultTopWords)
	v.SetDefault("top_phrases", DefaultTopPhrases)
	v.SetDefault("phrase_length", DefaultPhraseLength)

	if err := v.ReadInConfig(); err != nil {
		return Analysis{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Analysis
	if err := v.Unmarshal(&cfg); err != nil {
		return Analysis{}, fmt.Errorf("failed to parse analysis config: %w", err)
	}
	return cfg, nil
}

// Validate rejects values that would make a later computation
// undefined. Called once when the analyzer is constructed.
func (c Analysis) Validate() error {
	if c.ReadingSpeedWPM <= 0 {
		return &InvalidConfigError{Field: "reading_speed_wpm", Reason: "must be positive"}
	}
	if c.MinWordLength < 0 {
		return &InvalidConfigError{Field: "min_word_length", Reason: "must not be negative"}
	}
	if c.TopWords < 0 {
		return &InvalidConfigError{Field: "top_words", Reason: "must not be negative"}
	}
	if c.TopPhrases < 0 {
		return &InvalidConfigError{Field: "top_phrases", Reason: "must not be negative"}
	}
	if c.PhraseLength < 1 {
		return &InvalidConfigError{Field: "phrase_length", Reason: "must be at least 1"}
	}
	return nil
}

// StopWordSet materializes the effective stop-word set: the built-in
// list unless StopWords overrides it, plus any ExtraStopWords.
func (c Analysis) StopWordSet() map[string]struct{} {
	base := defaultStopWords
	if len(c.StopWords) > 0 {
		base = c.StopWords
	}

	set := make(map[string]struct{}, len(base)+len(c.ExtraStopWords))
	for _, w := range base {
		set[w] = struct{}{}
	}
	for _, w := range c.ExtraStopWords {
		set[w] = struct{}{}
	}
	return set
}

// EffectiveStopWords returns the stop words in a deterministic order:
// base list order first, then extras, duplicates removed.
func (c Analysis) EffectiveStopWords() []string {
	base := defaultStopWords
	if len(c.StopWords) > 0 {
		base = c.StopWords
	}

	seen := make(map[string]struct{}, len(base)+len(c.ExtraStopWords))
	out := make([]string, 0, len(base)+len(c.ExtraStopWords))
	for _, w := range base {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	for _, w := range c.ExtraStopWords {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
	"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
	"will", "would", "could", "should", "may", "might", "must", "can", "this", "that", "these",
	"those", "i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them",
}
