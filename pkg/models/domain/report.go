package domain

import "time"

// AnalysisReport represents a complete analysis of one Document
type AnalysisReport struct {
	SourceID      string
	GeneratedAt   time.Time
	Stats         BasicStats
	ReadingTime   ReadingTime
	Readability   Readability
	CommonWords   []WordCount
	CommonPhrases []PhraseCount
	Insights      Insights
}

// BasicStats holds the raw counts and derived averages for a Document
type BasicStats struct {
	Characters          int
	CharactersNoSpaces  int
	Words               int
	UniqueWords         int
	Sentences           int
	Lines               int
	NonEmptyLines       int
	AvgWordsPerSentence float64
	AvgCharsPerWord     float64
}

// ReadingTime is the estimated time to read a Document at a fixed
// words-per-minute speed
type ReadingTime struct {
	Minutes float64
	Seconds int
}

// Readability carries the Flesch Reading Ease and Flesch-Kincaid Grade
// Level scores plus the bucketed reading level label. Both scores are 0
// when the Document has no words or no sentences.
type Readability struct {
	FleschReadingEase   float64
	FleschKincaidGrade  float64
	Level               string
	AvgSentenceLength   float64
	AvgSyllablesPerWord float64
}

// WordCount is one entry of a word frequency table
type WordCount struct {
	Word  string
	Count int
}

// PhraseCount is one entry of a phrase frequency table
type PhraseCount struct {
	Phrase string
	Count  int
}

// Insights are structural observations derived from the token,
// sentence and paragraph lists
type Insights struct {
	LongestWord           string
	ShortestWord          string
	LongestSentenceWords  int
	ShortestSentenceWords int
	ParagraphCount        int
	AvgParagraphWords     float64
}

// Comparison is the difference between two analyzed Documents
type Comparison struct {
	SourceA            string
	SourceB            string
	WordCountDiff      int
	ReadingEaseDiff    float64
	ReadingTimeDiffMin float64
}
