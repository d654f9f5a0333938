package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramRatingScenario(t *testing.T) {
	got := Histogram([]int{5, 1}, 5)

	require.Len(t, got, 5)
	var nonEmpty []string
	for _, b := range got {
		if b.Count > 0 {
			nonEmpty = append(nonEmpty, b.Label())
		}
	}
	assert.Equal(t, []string{"1", "5"}, nonEmpty)
}

func TestHistogramWideRange(t *testing.T) {
	values := make([]int, 0, 200)
	for v := 1; v <= 200; v++ {
		values = append(values, v)
	}
	got := Histogram(values, 30)

	assert.LessOrEqual(t, len(got), 30)
	assert.Equal(t, 1, got[0].Lo)
	assert.Equal(t, "1-7", got[0].Label())

	total := 0
	for _, b := range got {
		total += b.Count
	}
	assert.Equal(t, len(values), total)
	assert.GreaterOrEqual(t, got[len(got)-1].Hi, 200)
}

func TestHistogramSingleValue(t *testing.T) {
	got := Histogram([]int{4, 4, 4}, 5)
	assert.Equal(t, []Bucket{{Lo: 4, Hi: 4, Count: 3}}, got)
}

func TestHistogramEmpty(t *testing.T) {
	assert.Nil(t, Histogram(nil, 5))
	assert.Nil(t, Histogram([]int{1}, 0))
}
