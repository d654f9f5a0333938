package charts

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiboard/internal/analysis"
)

func TestBarChart(t *testing.T) {
	out, err := BarChart([]Bar{{"sekali", 2}, {"bagus", 1}, {"buruk", 1}}, BarOptions{
		Title:  "Top 15 Kata Terbanyak",
		Width:  800,
		Height: 300,
	})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestBarChartSingleAndManyBars(t *testing.T) {
	_, err := BarChart([]Bar{{"5", 3}}, BarOptions{Colorful: true})
	require.NoError(t, err, "a single bar must not collapse the value range")

	many := make([]Bar, 30)
	for i := range many {
		many[i] = Bar{Label: "x", Value: float64(i)}
	}
	_, err = BarChart(many, BarOptions{})
	require.NoError(t, err)
}

func TestBarChartNoData(t *testing.T) {
	_, err := BarChart(nil, BarOptions{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestWordCloudDeterministic(t *testing.T) {
	words := analysis.WordWeights([]string{
		"aplikasi bagus sekali", "aplikasi buruk sekali", "pelayanan sangat memuaskan aplikasi",
	})
	opts := DefaultWordCloudOptions(900, 400)

	first, err := WordCloud(words, opts)
	require.NoError(t, err)
	second, err := WordCloud(words, opts)
	require.NoError(t, err)

	assert.False(t, first.Blank)
	assert.Equal(t, len(words), first.Placed)
	assert.Equal(t, first.PNG, second.PNG)

	img, err := png.Decode(bytes.NewReader(first.PNG))
	require.NoError(t, err)
	assert.Equal(t, 900, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())
}

func TestWordCloudEmptyCorpus(t *testing.T) {
	for _, words := range [][]analysis.WordCount{nil, {{Word: "", Count: 3}, {Word: "x", Count: 0}}} {
		out, err := WordCloud(words, DefaultWordCloudOptions(1000, 400))
		require.NoError(t, err)
		assert.True(t, out.Blank)
		assert.Zero(t, out.Placed)

		img, err := png.Decode(bytes.NewReader(out.PNG))
		require.NoError(t, err)
		r, g, b, _ := img.At(500, 200).RGBA()
		wr, wg, wb, _ := color.White.RGBA()
		assert.Equal(t, []uint32{wr, wg, wb}, []uint32{r, g, b})
	}
}

func TestWordCloudInvalidCanvas(t *testing.T) {
	_, err := WordCloud(nil, WordCloudOptions{Width: 0, Height: 400})
	assert.Error(t, err)
}

func TestRankTruncatesAndOrders(t *testing.T) {
	got := rank([]analysis.WordCount{
		{Word: "a", Count: 1}, {Word: "b", Count: 3}, {Word: "c", Count: 1}, {Word: "d", Count: 2},
	}, 3)
	assert.Equal(t, []analysis.WordCount{
		{Word: "b", Count: 3}, {Word: "d", Count: 2}, {Word: "a", Count: 1},
	}, got)
}
