package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/sentiboard/internal/models"
)

func sample() *Dataset {
	return New("test", []models.Review{
		{Content: "bagus sekali", Score: 5, Label: "positive"},
		{Content: "buruk sekali", Score: 1, Label: "negative"},
		{Content: "biasa", Score: 3, Label: "neutral"},
	})
}

func TestHead(t *testing.T) {
	ds := sample()

	assert.Len(t, ds.Head(2), 2)
	assert.Len(t, ds.Head(10), 3)
	assert.Empty(t, ds.Head(0))
	assert.Empty(t, ds.Head(-1))
}

func TestAccessorsReturnCopies(t *testing.T) {
	input := []models.Review{{Content: "bagus"}}
	ds := New("test", input)
	input[0].Content = "changed"
	assert.Equal(t, "bagus", ds.Records()[0].Content)

	rows := ds.Records()
	rows[0].Content = "mutated"
	head := ds.Head(1)
	head[0].Content = "mutated"
	filtered := ds.Filter(func(models.Review) bool { return true })
	filtered[0].Content = "mutated"

	assert.Equal(t, "bagus", ds.Records()[0].Content)
}

func TestColumnAndInts(t *testing.T) {
	ds := sample()

	assert.Equal(t, []string{"bagus sekali", "buruk sekali", "biasa"}, ds.Column(models.ContentColumn.Value))
	assert.Equal(t, []int{5, 1, 3}, ds.Ints(func(r models.Review) int { return r.Score }))
}

func TestFilter(t *testing.T) {
	ds := sample()

	got := ds.Filter(func(r models.Review) bool { return r.Score >= 3 })
	assert.Len(t, got, 2)
	assert.Empty(t, ds.Filter(func(models.Review) bool { return false }))
}
