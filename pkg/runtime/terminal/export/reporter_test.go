package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/text-tools/text-atlas/pkg/models/api"
	"github.com/text-tools/text-atlas/pkg/models/domain"
	"github.com/text-tools/text-atlas/pkg/services/analysis"
	"github.com/text-tools/text-atlas/pkg/services/config"
)

func sampleReport(t *testing.T) *domain.AnalysisReport {
	t.Helper()
	a, err := analysis.NewAnalyzer(config.Default(), analysis.WithClock(func() time.Time {
		return time.Date(2025, 8, 20, 9, 30, 0, 0, time.UTC)
	}))
	require.NoError(t, err)

	return a.Analyze(domain.Document{
		SourceID: "sample.txt",
		Text:     "Reports have sections. Sections have fields!\n\nAnd paragraphs matter too.",
	})
}

func TestReporter_SectionOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(sampleReport(t)))

	out := buf.String()
	sections := []string{
		"=== Basic Statistics ===",
		"=== Reading Time ===",
		"=== Readability ===",
		"=== Most Common Words ===",
		"=== Most Common Phrases ===",
		"=== Insights ===",
	}

	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}

	assert.Contains(t, out, "TEXT ANALYSIS REPORT: sample.txt")
}

func TestJSONReporter_StableKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(&buf).Handle(sampleReport(t)))

	for _, key := range []string{
		`"characters"`, `"characters_no_spaces"`, `"words"`, `"unique_words"`,
		`"sentences"`, `"lines"`, `"non_empty_lines"`, `"avg_words_per_sentence"`,
		`"avg_chars_per_word"`, `"reading_time_minutes"`, `"reading_time_seconds"`,
		`"flesch_reading_ease"`, `"flesch_kincaid_grade"`, `"reading_level"`,
		`"common_words"`, `"common_phrases"`, `"longest_word"`, `"shortest_word"`,
		`"longest_sentence_words"`, `"shortest_sentence_words"`,
		`"paragraph_count"`, `"avg_paragraph_words"`, `"source_id"`, `"generated_at"`,
	} {
		assert.Contains(t, buf.String(), key)
	}
}

func TestJSONReporter_Reproducible(t *testing.T) {
	var first, second bytes.Buffer
	report := sampleReport(t)

	require.NoError(t, NewJSONReporter(&first).Handle(report))
	require.NoError(t, NewJSONReporter(&second).Handle(report))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWriteFile_RoundTrip(t *testing.T) {
	report := sampleReport(t)
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteFile(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed api.Report
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, api.FromDomain(report), parsed)
}

func TestReporter_HandleComparison(t *testing.T) {
	var buf bytes.Buffer
	cmp := domain.Comparison{
		SourceA:            "a.txt",
		SourceB:            "b.txt",
		WordCountDiff:      12,
		ReadingEaseDiff:    -3.5,
		ReadingTimeDiffMin: 0.06,
	}

	require.NoError(t, NewReporter(&buf).HandleComparison(cmp))

	out := buf.String()
	assert.Contains(t, out, `"a.txt" vs "b.txt"`)
	assert.Contains(t, out, "+12 words")
	assert.Contains(t, out, "-3.5 points")
}
