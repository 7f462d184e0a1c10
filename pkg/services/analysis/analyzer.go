package analysis

import (
	"strings"
	"time"

	"github.com/text-tools/text-atlas/pkg/models/domain"
	"github.com/text-tools/text-atlas/pkg/services/config"
)

// Analyzer turns Documents into AnalysisReports. It carries only
// validated configuration and a clock: every Analyze call is a pure
// function of its input, so one Analyzer is safe to share across
// goroutines.
type Analyzer struct {
	cfg       config.Analysis
	stopWords map[string]struct{}
	now       func() time.Time
}

// Option customizes an Analyzer at construction.
type Option func(*Analyzer)

// WithClock replaces the report timestamp source. Used by tests and by
// callers that need byte-reproducible exports.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) { a.now = now }
}

// NewAnalyzer validates cfg and builds an Analyzer. Invalid
// configuration is rejected here, before any document is touched.
func NewAnalyzer(cfg config.Analysis, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &Analyzer{
		cfg:       cfg,
		stopWords: cfg.StopWordSet(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// StopWords returns the effective stop-word list in deterministic order.
func (a *Analyzer) StopWords() []string {
	return a.cfg.EffectiveStopWords()
}

// Analyze runs the full pipeline over one Document. Empty or
// whitespace-only text produces a zero-valued report, never an error.
func (a *Analyzer) Analyze(doc domain.Document) *domain.AnalysisReport {
	report := &domain.AnalysisReport{
		SourceID:      doc.SourceID,
		GeneratedAt:   a.now(),
		CommonWords:   []domain.WordCount{},
		CommonPhrases: []domain.PhraseCount{},
	}

	if strings.TrimSpace(doc.Text) == "" {
		report.Readability.Level = ReadingLevel(0)
		return report
	}

	tokens := Tokenize(doc.Text)
	sentences := SplitSentences(doc.Text)
	paragraphs := SplitParagraphs(doc.Text)

	report.Stats = ComputeStats(doc.Text, tokens, sentences)
	report.ReadingTime = EstimateReadingTime(report.Stats.Words, a.cfg.ReadingSpeedWPM)
	report.Readability = ScoreReadability(tokens, sentences)
	report.CommonWords = WordFrequency(tokens, a.stopWords, a.cfg.MinWordLength, a.cfg.TopWords)
	report.CommonPhrases = PhraseFrequency(tokens, a.cfg.PhraseLength, a.cfg.TopPhrases)
	report.Insights = ExtractInsights(tokens, sentences, paragraphs)

	return report
}

// Compare summarizes how two analyzed documents differ: word count,
// reading ease and estimated reading time, each as a minus b.
func Compare(a, b *domain.AnalysisReport) domain.Comparison {
	return domain.Comparison{
		SourceA:            a.SourceID,
		SourceB:            b.SourceID,
		WordCountDiff:      a.Stats.Words - b.Stats.Words,
		ReadingEaseDiff:    a.Readability.FleschReadingEase - b.Readability.FleschReadingEase,
		ReadingTimeDiffMin: a.ReadingTime.Minutes - b.ReadingTime.Minutes,
	}
}
