package models

import (
	"errors"
	"fmt"
)

// Review is one row of the precomputed sentiment dataset. Every text
// variant and label was produced by the offline pipeline; the dashboard
// only reads them.
type Review struct {
	Content           string
	CleanReview       string
	NormalizedContent string
	Tokens            string
	StemmedText       string
	Score             int
	ReviewLength      int
	Label             string
	LabelLexicon      string
	SentimentIndoBERT string
}

// Column names of the dataset file.
const (
	COLUMN_CONTENT            = "content"
	COLUMN_SCORE              = "score"
	COLUMN_REVIEW_LENGTH      = "review_length"
	COLUMN_CLEAN_REVIEW       = "clean_review"
	COLUMN_NORMALIZED_CONTENT = "normalized_content"
	COLUMN_TOKENS             = "tokens"
	COLUMN_STEMMED_TEXT       = "stemmed_text"
	COLUMN_LABEL              = "label"
	COLUMN_LABEL_LEXICON      = "label_lexicon"
	COLUMN_SENTIMENT_INDOBERT = "sentiment_indobert"
)

// RequiredColumns lists every column the dataset file must carry.
var RequiredColumns = []string{
	COLUMN_CONTENT,
	COLUMN_SCORE,
	COLUMN_REVIEW_LENGTH,
	COLUMN_CLEAN_REVIEW,
	COLUMN_NORMALIZED_CONTENT,
	COLUMN_TOKENS,
	COLUMN_STEMMED_TEXT,
	COLUMN_LABEL,
	COLUMN_LABEL_LEXICON,
	COLUMN_SENTIMENT_INDOBERT,
}

// TextColumn is a named string field of a Review, used for table previews.
type TextColumn struct {
	Name  string
	Value func(Review) string
}

var (
	ContentColumn           = TextColumn{COLUMN_CONTENT, func(r Review) string { return r.Content }}
	CleanReviewColumn       = TextColumn{COLUMN_CLEAN_REVIEW, func(r Review) string { return r.CleanReview }}
	NormalizedContentColumn = TextColumn{COLUMN_NORMALIZED_CONTENT, func(r Review) string { return r.NormalizedContent }}
	TokensColumn            = TextColumn{COLUMN_TOKENS, func(r Review) string { return r.Tokens }}
	StemmedTextColumn       = TextColumn{COLUMN_STEMMED_TEXT, func(r Review) string { return r.StemmedText }}
)

// PreprocessingColumns are the stages shown in the Data Preparation view.
var PreprocessingColumns = []TextColumn{
	ContentColumn,
	CleanReviewColumn,
	NormalizedContentColumn,
	TokensColumn,
	StemmedTextColumn,
}

var ErrUnknownLabelColumn = errors.New("unknown label column")

// LabelColumn identifies one of the three independently produced sentiment labels.
type LabelColumn string

const (
	LabelColumnLabel    LabelColumn = COLUMN_LABEL
	LabelColumnLexicon  LabelColumn = COLUMN_LABEL_LEXICON
	LabelColumnIndoBERT LabelColumn = COLUMN_SENTIMENT_INDOBERT
)

// LabelColumns is the closed set offered by the label selector, in display order.
var LabelColumns = []LabelColumn{
	LabelColumnLabel,
	LabelColumnLexicon,
	LabelColumnIndoBERT,
}

// ParseLabelColumn validates a selector value. The empty string selects
// the first option.
func ParseLabelColumn(s string) (LabelColumn, error) {
	if s == "" {
		return LabelColumns[0], nil
	}
	for _, c := range LabelColumns {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLabelColumn, s)
}

func (c LabelColumn) Valid() bool {
	_, err := ParseLabelColumn(string(c))
	return err == nil && c != ""
}

func (c LabelColumn) String() string { return string(c) }

// Value returns the record's label for this column. Columns are validated
// before rendering, so an unknown column here is a programming error.
func (c LabelColumn) Value(r Review) string {
	switch c {
	case LabelColumnLabel:
		return r.Label
	case LabelColumnLexicon:
		return r.LabelLexicon
	case LabelColumnIndoBERT:
		return r.SentimentIndoBERT
	default:
		panic(fmt.Sprintf("models: %v: %q", ErrUnknownLabelColumn, string(c)))
	}
}

// TextColumn exposes the label as a preview column.
func (c LabelColumn) TextColumn() TextColumn {
	return TextColumn{Name: string(c), Value: c.Value}
}
