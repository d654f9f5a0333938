package charts

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoData = errors.New("no data to chart")

// Palette mirrors the qualitative colours the dashboard uses for
// categorical bars.
var Palette = []drawing.Color{
	drawing.ColorFromHex("636efa"),
	drawing.ColorFromHex("ef553b"),
	drawing.ColorFromHex("00cc96"),
	drawing.ColorFromHex("ab63fa"),
	drawing.ColorFromHex("ffa15a"),
	drawing.ColorFromHex("19d3f3"),
	drawing.ColorFromHex("ff6692"),
	drawing.ColorFromHex("b6e880"),
}

type Bar struct {
	Label string
	Value float64
}

type BarOptions struct {
	Title  string
	Width  int
	Height int

	// Colorful gives every bar its own palette colour, for categorical axes.
	Colorful bool
}

const (
	DEFAULT_CHART_WIDTH  = 1000
	DEFAULT_CHART_HEIGHT = 400
)

// BarChart renders bars as a PNG.
func BarChart(bars []Bar, opts BarOptions) ([]byte, error) {
	if len(bars) == 0 {
		return nil, ErrNoData
	}
	if opts.Width <= 0 {
		opts.Width = DEFAULT_CHART_WIDTH
	}
	if opts.Height <= 0 {
		opts.Height = DEFAULT_CHART_HEIGHT
	}

	maxValue := 0.0
	values := make([]chart.Value, len(bars))
	for i, b := range bars {
		maxValue = max(maxValue, b.Value)

		color := Palette[0]
		if opts.Colorful {
			color = Palette[i%len(Palette)]
		}
		values[i] = chart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	slot := (opts.Width - 120) / len(bars)
	barWidth := max(1, slot*3/5)
	spacing := max(1, slot-barWidth)

	graph := chart.BarChart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontSize: 14},
		Width:      opts.Width,
		Height:     opts.Height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.Style{FontSize: 9},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
			Style: chart.Style{FontSize: 9},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render bar chart %q: %w", opts.Title, err)
	}
	return buf.Bytes(), nil
}
