package render

import (
	"io"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Style holds the cosmetic settings of a figure.
type Style struct {
	Title      string
	Width      int
	Height     int
	PointSize  float64 // marker area in square points, as in matplotlib
	PointColor drawing.Color
	LineColor  drawing.Color
	ShowPath   bool
}

// DefaultStyle matches the defaults of the custom plotting mode.
func DefaultStyle() Style {
	return Style{
		Title:      "GPS Track with Headings",
		Width:      900,
		Height:     900,
		PointSize:  20,
		PointColor: MustParseColor("red"),
		LineColor:  MustParseColor("blue"),
		ShowPath:   true,
	}
}

// TrackData is what the track panel draws. All slices have the same length;
// EndLats/EndLons are the far ends of the heading segments.
type TrackData struct {
	Lats    []float64
	Lons    []float64
	EndLats []float64
	EndLons []float64
}

// boundsPad is the margin around the data, as a fraction of its larger span.
const boundsPad = 0.05

var pathColor = drawing.Color{R: 128, G: 128, B: 128, A: 128}

func degreeFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 6, 64)
	}
	return ""
}

// dotRadius converts a matplotlib marker area to a go-chart dot radius.
func dotRadius(area float64) float64 {
	return math.Max(0.5, math.Sqrt(math.Max(area, 0))/2)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// TrackChart builds the track panel. Samples with a non-finite coordinate
// are left out of every series.
func TrackChart(d TrackData, s Style) chart.Chart {
	allX := append(append([]float64(nil), d.Lons...), d.EndLons...)
	allY := append(append([]float64(nil), d.Lats...), d.EndLats...)
	xr, yr := EqualAspectBounds(allX, allY, s.Width, s.Height, boundsPad)

	var xs, ys []float64
	for i := range d.Lats {
		if finite(d.Lats[i], d.Lons[i]) {
			xs = append(xs, d.Lons[i])
			ys = append(ys, d.Lats[i])
		}
	}

	var series []chart.Series
	if s.ShowPath && len(xs) > 1 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Track",
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: pathColor, StrokeWidth: 0.5},
		})
	}

	segStyle := chart.Style{StrokeColor: s.LineColor.WithAlpha(153), StrokeWidth: 1}
	for i := range d.Lats {
		if !finite(d.Lats[i], d.Lons[i], d.EndLats[i], d.EndLons[i]) {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{d.Lons[i], d.EndLons[i]},
			YValues: []float64{d.Lats[i], d.EndLats[i]},
			Style:   segStyle,
		})
	}

	if len(xs) > 0 {
		// go-chart needs at least two values per series
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "GPS Points",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    dotRadius(s.PointSize),
				DotColor:    s.PointColor.WithAlpha(178),
			},
		})
	}

	c := chart.Chart{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "Longitude",
			Range:          &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
			ValueFormatter: degreeFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Latitude",
			Range:          &chart.ContinuousRange{Min: yr.Min, Max: yr.Max},
			ValueFormatter: degreeFormatter,
		},
		Series: series,
	}

	// padding and tick labels shrink the plot area below Width x Height;
	// refit until the area stops moving
	for i := 0; i < 4; i++ {
		box, err := plotArea(c)
		if err != nil || box.Width() <= 0 || box.Height() <= 0 {
			break
		}
		nx, ny := EqualAspectBounds(allX, allY, box.Width(), box.Height(), boundsPad)
		if nx == xr && ny == yr {
			break
		}
		xr, yr = nx, ny
		c.XAxis.Range = &chart.ContinuousRange{Min: xr.Min, Max: xr.Max}
		c.YAxis.Range = &chart.ContinuousRange{Min: yr.Min, Max: yr.Max}
	}
	return c
}

// plotArea renders c once and returns the canvas box its series are drawn in.
func plotArea(c chart.Chart) (chart.Box, error) {
	var box chart.Box
	c.Elements = append(append([]chart.Renderable(nil), c.Elements...),
		func(_ chart.Renderer, canvas chart.Box, _ chart.Style) { box = canvas })
	err := c.Render(chart.PNG, io.Discard)
	return box, err
}
