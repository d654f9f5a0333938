package analysis

import (
	"fmt"

	"github.com/spacesedan/sentiboard/internal/dataset"
	"github.com/spacesedan/sentiboard/internal/models"
)

type Category struct {
	Label string
	Count int
}

// Summary is the categorical distribution of one label column.
type Summary struct {
	Column     models.LabelColumn
	Categories []Category
	Total      int
}

// Distribution counts the values of col. Categories appear in the order
// their label is first met in the dataset; malformed labels are counted
// as their own category.
func Distribution(ds *dataset.Dataset, col models.LabelColumn) (Summary, error) {
	if !col.Valid() {
		return Summary{}, fmt.Errorf("%w: %q", models.ErrUnknownLabelColumn, string(col))
	}

	summary := Summary{Column: col}
	index := make(map[string]int)
	for _, label := range ds.Column(col.Value) {
		summary.Total++
		if i, ok := index[label]; ok {
			summary.Categories[i].Count++
			continue
		}
		index[label] = len(summary.Categories)
		summary.Categories = append(summary.Categories, Category{Label: label, Count: 1})
	}
	return summary, nil
}

// Mode returns the most frequent label. Ties go to the lexicographically
// smallest label, the same value a sorted mode reports first. Blank labels
// are missing values and only win when no row has a label.
func (s Summary) Mode() (string, bool) {
	if len(s.Categories) == 0 {
		return "", false
	}
	var best *Category
	for i := range s.Categories {
		c := &s.Categories[i]
		if c.Label == "" {
			continue
		}
		if best == nil || c.Count > best.Count || (c.Count == best.Count && c.Label < best.Label) {
			best = c
		}
	}
	if best == nil {
		return "", true
	}
	return best.Label, true
}

// ModalSubset is the distribution of col together with the records whose
// label equals its mode.
type ModalSubset struct {
	Summary Summary
	Mode    string
	Records []models.Review
}

func Modal(ds *dataset.Dataset, col models.LabelColumn) (ModalSubset, error) {
	summary, err := Distribution(ds, col)
	if err != nil {
		return ModalSubset{}, err
	}

	out := ModalSubset{Summary: summary}
	mode, ok := summary.Mode()
	if !ok {
		return out, nil
	}
	out.Mode = mode
	out.Records = ds.Filter(func(r models.Review) bool { return col.Value(r) == mode })
	return out, nil
}

// StemmedTexts returns the stemmed text of every record in the subset.
func (m ModalSubset) StemmedTexts() []string {
	out := make([]string, len(m.Records))
	for i, r := range m.Records {
		out[i] = r.StemmedText
	}
	return out
}
