package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/sentiboard/internal/models"
)

type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "dataset is missing required columns: " + strings.Join(e.Missing, ", ")
}

type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %q: invalid value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errEmptyContent = errors.New("review text is empty")

// Load reads the dataset file at path.
func Load(path string) (*Dataset, error) {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(path, f)
	if err != nil {
		return nil, err
	}

	slog.Info("[Dataset] Loaded dataset",
		slog.String("path", path),
		slog.Int("rows", ds.Len()),
		slog.Duration("elapsed", time.Since(start)))

	return ds, nil
}

// Read parses CSV with a header row. Columns beyond models.RequiredColumns
// are ignored.
func Read(source string, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Missing: append([]string(nil), models.RequiredColumns...)}
		}
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	for _, name := range models.RequiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	var records []models.Review
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", row, err)
		}

		review, err := parseRow(row, fields, index)
		if err != nil {
			return nil, err
		}
		records = append(records, review)
	}

	return New(source, records), nil
}

func parseRow(row int, fields []string, index map[string]int) (models.Review, error) {
	get := func(name string) string { return fields[index[name]] }

	content := get(models.COLUMN_CONTENT)
	if strings.TrimSpace(content) == "" {
		return models.Review{}, &ParseError{Row: row, Column: models.COLUMN_CONTENT, Value: content, Err: errEmptyContent}
	}

	score, err := parseInt(get(models.COLUMN_SCORE))
	if err != nil {
		return models.Review{}, &ParseError{Row: row, Column: models.COLUMN_SCORE, Value: get(models.COLUMN_SCORE), Err: err}
	}

	length, err := parseInt(get(models.COLUMN_REVIEW_LENGTH))
	if err != nil {
		return models.Review{}, &ParseError{Row: row, Column: models.COLUMN_REVIEW_LENGTH, Value: get(models.COLUMN_REVIEW_LENGTH), Err: err}
	}

	return models.Review{
		Content:           content,
		CleanReview:       get(models.COLUMN_CLEAN_REVIEW),
		NormalizedContent: get(models.COLUMN_NORMALIZED_CONTENT),
		Tokens:            get(models.COLUMN_TOKENS),
		StemmedText:       get(models.COLUMN_STEMMED_TEXT),
		Score:             score,
		ReviewLength:      length,
		Label:             get(models.COLUMN_LABEL),
		LabelLexicon:      get(models.COLUMN_LABEL_LEXICON),
		SentimentIndoBERT: get(models.COLUMN_SENTIMENT_INDOBERT),
	}, nil
}

// parseInt accepts integral floats such as "5.0", which pandas writes for
// integer columns that once held a missing value.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int(f), nil
}
