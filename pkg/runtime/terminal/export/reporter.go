package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// Reporter renders analysis reports to the console in a formatted text
// form. Section order is fixed: basic stats, reading time, readability,
// common words, common phrases, insights.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.AnalysisReport) error {
	tmpl := `
============================================================
TEXT ANALYSIS REPORT: {{.SourceID}}
Generated: {{.GeneratedAt.Format "2006-01-02T15:04:05Z07:00"}}
============================================================

=== Basic Statistics ===
Total Characters:       {{.Stats.Characters}}
Characters (no spaces): {{.Stats.CharactersNoSpaces}}
Total Words:            {{.Stats.Words}}
Unique Words:           {{.Stats.UniqueWords}}
Total Sentences:        {{.Stats.Sentences}}
Total Lines:            {{.Stats.Lines}}
Non-empty Lines:        {{.Stats.NonEmptyLines}}
Avg Words/Sentence:     {{printf "%.1f" .Stats.AvgWordsPerSentence}}
Avg Characters/Word:    {{printf "%.1f" .Stats.AvgCharsPerWord}}

=== Reading Time ===
Estimated Minutes: {{printf "%.2f" .ReadingTime.Minutes}}
Estimated Seconds: {{.ReadingTime.Seconds}}

=== Readability ===
Flesch Reading Ease: {{printf "%.2f" .Readability.FleschReadingEase}}
Reading Level:       {{.Readability.Level}}
Grade Level:         {{printf "%.2f" .Readability.FleschKincaidGrade}}

=== Most Common Words ===
{{range .CommonWords}}{{printf "%-15s : %3d" .Word .Count}}
{{end}}
=== Most Common Phrases ===
{{range .CommonPhrases}}{{printf "%q : %d" .Phrase .Count}}
{{end}}
=== Insights ===
Longest Word:        {{printf "%q" .Insights.LongestWord}}
Shortest Word:       {{printf "%q" .Insights.ShortestWord}}
Longest Sentence:    {{.Insights.LongestSentenceWords}} words
Shortest Sentence:   {{.Insights.ShortestSentenceWords}} words
Paragraphs:          {{.Insights.ParagraphCount}}
Avg Words/Paragraph: {{printf "%.1f" .Insights.AvgParagraphWords}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

// HandleComparison renders the difference between two documents.
func (c *Reporter) HandleComparison(cmp domain.Comparison) error {
	tmpl := `
Comparing {{printf "%q" .SourceA}} vs {{printf "%q" .SourceB}}:
Word count difference:   {{printf "%+d" .WordCountDiff}} words
Readability difference:  {{printf "%+.1f" .ReadingEaseDiff}} points
Reading time difference: {{printf "%+.1f" .ReadingTimeDiffMin}} minutes
`
	t, err := template.New("comparison").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, cmp)
}
