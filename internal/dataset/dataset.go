package dataset

import "github.com/spacesedan/sentiboard/internal/models"

// Dataset is the read-only review table for one dashboard process. It is
// loaded once and handed to the renderer; every accessor returns copies so
// callers cannot mutate the shared rows.
type Dataset struct {
	source  string
	records []models.Review
}

func New(source string, records []models.Review) *Dataset {
	return &Dataset{
		source:  source,
		records: append([]models.Review(nil), records...),
	}
}

func (d *Dataset) Source() string { return d.source }

func (d *Dataset) Len() int { return len(d.records) }

// Head returns the first k rows, or all of them when fewer exist.
func (d *Dataset) Head(k int) []models.Review {
	if k < 0 {
		k = 0
	}
	if k > len(d.records) {
		k = len(d.records)
	}
	return append([]models.Review(nil), d.records[:k]...)
}

func (d *Dataset) Records() []models.Review {
	return append([]models.Review(nil), d.records...)
}

func (d *Dataset) Column(value func(models.Review) string) []string {
	out := make([]string, len(d.records))
	for i, r := range d.records {
		out[i] = value(r)
	}
	return out
}

func (d *Dataset) Ints(value func(models.Review) int) []int {
	out := make([]int, len(d.records))
	for i, r := range d.records {
		out[i] = value(r)
	}
	return out
}

func (d *Dataset) Filter(keep func(models.Review) bool) []models.Review {
	var out []models.Review
	for _, r := range d.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
