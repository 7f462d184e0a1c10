package api

import (
	"time"

	"github.com/text-tools/text-atlas/pkg/models/domain"
)

// AnalyzeRequest is the payload accepted by POST /api/v1/analyze.
// Either Text or Path must be set; Path wins when both are present.
type AnalyzeRequest struct {
	Text     string `json:"text,omitempty"`
	SourceID string `json:"source_id,omitempty"`
	Path     string `json:"path,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// Report is the structured export of a domain.AnalysisReport. Field
// names are a stable contract; serialization order follows declaration
// order, so identical input plus an identical timestamp produces
// byte-identical JSON.
type Report struct {
	Characters            int           `json:"characters"`
	CharactersNoSpaces    int           `json:"characters_no_spaces"`
	Words                 int           `json:"words"`
	UniqueWords           int           `json:"unique_words"`
	Sentences             int           `json:"sentences"`
	Lines                 int           `json:"lines"`
	NonEmptyLines         int           `json:"non_empty_lines"`
	AvgWordsPerSentence   float64       `json:"avg_words_per_sentence"`
	AvgCharsPerWord       float64       `json:"avg_chars_per_word"`
	ReadingTimeMinutes    float64       `json:"reading_time_minutes"`
	ReadingTimeSeconds    int           `json:"reading_time_seconds"`
	FleschReadingEase     float64       `json:"flesch_reading_ease"`
	FleschKincaidGrade    float64       `json:"flesch_kincaid_grade"`
	ReadingLevel          string        `json:"reading_level"`
	CommonWords           []WordCount   `json:"common_words"`
	CommonPhrases         []PhraseCount `json:"common_phrases"`
	LongestWord           string        `json:"longest_word"`
	ShortestWord          string        `json:"shortest_word"`
	LongestSentenceWords  int           `json:"longest_sentence_words"`
	ShortestSentenceWords int           `json:"shortest_sentence_words"`
	ParagraphCount        int           `json:"paragraph_count"`
	AvgParagraphWords     float64       `json:"avg_paragraph_words"`
	SourceID              string        `json:"source_id"`
	GeneratedAt           time.Time     `json:"generated_at"`
}

type Comparison struct {
	SourceA            string  `json:"source_a"`
	SourceB            string  `json:"source_b"`
	WordCountDiff      int     `json:"word_count_diff"`
	ReadingEaseDiff    float64 `json:"reading_ease_diff"`
	ReadingTimeDiffMin float64 `json:"reading_time_diff_minutes"`
}

// FromDomain maps a domain report onto the export contract.
func FromDomain(r *domain.AnalysisReport) Report {
	words := make([]WordCount, 0, len(r.CommonWords))
	for _, wc := range r.CommonWords {
		words = append(words, WordCount{Word: wc.Word, Count: wc.Count})
	}
	phrases := make([]PhraseCount, 0, len(r.CommonPhrases))
	for _, pc := range r.CommonPhrases {
		phrases = append(phrases, PhraseCount{Phrase: pc.Phrase, Count: pc.Count})
	}

	return Report{
		Characters:            r.Stats.Characters,
		CharactersNoSpaces:    r.Stats.CharactersNoSpaces,
		Words:                 r.Stats.Words,
		UniqueWords:           r.Stats.UniqueWords,
		Sentences:             r.Stats.Sentences,
		Lines:                 r.Stats.Lines,
		NonEmptyLines:         r.Stats.NonEmptyLines,
		AvgWordsPerSentence:   r.Stats.AvgWordsPerSentence,
		AvgCharsPerWord:       r.Stats.AvgCharsPerWord,
		ReadingTimeMinutes:    r.ReadingTime.Minutes,
		ReadingTimeSeconds:    r.ReadingTime.Seconds,
		FleschReadingEase:     r.Readability.FleschReadingEase,
		FleschKincaidGrade:    r.Readability.FleschKincaidGrade,
		ReadingLevel:          r.Readability.Level,
		CommonWords:           words,
		CommonPhrases:         phrases,
		LongestWord:           r.Insights.LongestWord,
		ShortestWord:          r.Insights.ShortestWord,
		LongestSentenceWords:  r.Insights.LongestSentenceWords,
		ShortestSentenceWords: r.Insights.ShortestSentenceWords,
		ParagraphCount:        r.Insights.ParagraphCount,
		AvgParagraphWords:     r.Insights.AvgParagraphWords,
		SourceID:              r.SourceID,
		GeneratedAt:           r.GeneratedAt,
	}
}

// ComparisonFromDomain maps a domain comparison onto the API model.
func ComparisonFromDomain(c domain.Comparison) Comparison {
	return Comparison{
		SourceA:            c.SourceA,
		SourceB:            c.SourceB,
		WordCountDiff:      c.WordCountDiff,
		ReadingEaseDiff:    c.ReadingEaseDiff,
		ReadingTimeDiffMin: c.ReadingTimeDiffMin,
	}
}
