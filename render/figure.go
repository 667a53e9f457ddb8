package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

var (
	ErrNoPanels      = errors.New("render: figure has no panels")
	ErrMultiPanelSVG = errors.New("render: svg output supports a single panel")
)

// FormatFromPath picks the encoding from a file extension, defaulting to PNG.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return SVG
	}
	return PNG
}

// Panel is anything go-chart can render; chart.Chart and chart.BarChart both are.
type Panel interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Figure lays its panels out left to right.
type Figure struct {
	Panels []Panel
}

// Render encodes the figure. Several panels are only supported as PNG.
func (f Figure) Render(w io.Writer, format Format) error {
	switch {
	case len(f.Panels) == 0:
		return ErrNoPanels
	case format == SVG && len(f.Panels) > 1:
		return ErrMultiPanelSVG
	case format == SVG:
		return f.Panels[0].Render(chart.SVG, w)
	case len(f.Panels) == 1:
		return f.Panels[0].Render(chart.PNG, w)
	}

	imgs := make([]image.Image, 0, len(f.Panels))
	width, height := 0, 0
	for i, p := range f.Panels {
		var buf bytes.Buffer
		if err := p.Render(chart.PNG, &buf); err != nil {
			return fmt.Errorf("panel %d: %w", i, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("panel %d: decode: %w", i, err)
		}
		imgs = append(imgs, img)
		width += img.Bounds().Dx()
		height = max(height, img.Bounds().Dy())
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	x := 0
	for _, img := range imgs {
		b := img.Bounds()
		draw.Draw(canvas, image.Rect(x, 0, x+b.Dx(), b.Dy()), img, b.Min, draw.Over)
		x += b.Dx()
	}
	return png.Encode(w, canvas)
}
