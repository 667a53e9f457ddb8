package render

import (
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/theoremus-urban-solutions/trackviz/track"
)

var (
	barFill   = drawing.Color{R: 31, G: 119, B: 180, A: 178}
	barStroke = drawing.Color{R: 0, G: 0, B: 0, A: 255}
)

// HistogramChart builds the heading distribution panel. Only every third
// bucket is labelled to keep the axis readable.
func HistogramChart(bins []track.Bin, width, height int) chart.BarChart {
	maxCount := 0
	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		label := ""
		if i%3 == 0 {
			label = strconv.FormatFloat(b.Lo, 'f', 0, 64)
		}
		bars[i] = chart.Value{
			Value: float64(b.Count),
			Label: label,
			Style: chart.Style{FillColor: barFill, StrokeColor: barStroke, StrokeWidth: 1},
		}
		maxCount = max(maxCount, b.Count)
	}

	const padLeft, padRight, spacing = 20, 100, 2
	barWidth := 1
	if len(bins) > 0 {
		barWidth = max(1, (width-padLeft-padRight)/len(bins)-spacing)
	}

	return chart.BarChart{
		Title:      "Heading Distribution",
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: padLeft, Right: padRight, Bottom: 20}},
		YAxis: chart.YAxis{
			Name:  "Frequency",
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max(1, maxCount)) * 1.1},
		},
		Bars: bars,
	}
}
