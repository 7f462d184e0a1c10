package domain

import "time"

// Document is one unit of input text together with the identifier it
// was loaded from. Immutable once loaded.
type Document struct {
	SourceID string
	Text     string
	LoadedAt time.Time
}

// Token is a maximal alphanumeric run extracted from a Document.
// Surface preserves the original spelling; Folded is the lowercased
// form used for counting.
type Token struct {
	Surface string
	Folded  string
}

// Sentence is a trimmed run of text between sentence terminators,
// with its word count derived by tokenizing within it.
type Sentence struct {
	Text      string
	WordCount int
}

// Paragraph is a run of non-empty lines separated from its neighbours
// by one or more blank lines.
type Paragraph struct {
	Text      string
	WordCount int
}
