package render

import "math"

// minSpan keeps a single-point track from collapsing the axes.
const minSpan = 1e-6

// Range is a closed axis interval.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max-Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

func (r Range) center() float64 {
	return (r.Min + r.Max) / 2
}

func (r Range) widen(span float64) Range {
	c := r.center()
	return Range{Min: c - span/2, Max: c + span/2}
}

func extent(vs ...[]float64) (Range, bool) {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, s := range vs {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			r.Min = math.Min(r.Min, v)
			r.Max = math.Max(r.Max, v)
		}
	}
	return r, r.Min <= r.Max
}

// EqualAspectBounds returns x and y ranges covering every finite value,
// padded by pad (a fraction of the larger span) and widened so that
// xSpan/width == ySpan/height. NaN and infinite values are ignored.
func EqualAspectBounds(xs, ys []float64, width, height int, pad float64) (Range, Range) {
	x, okX := extent(xs)
	y, okY := extent(ys)
	if !okX {
		x = Range{Min: -1, Max: 1}
	}
	if !okY {
		y = Range{Min: -1, Max: 1}
	}

	span := math.Max(math.Max(x.Span(), y.Span()), minSpan)
	margin := span * pad
	x = Range{Min: x.Min - margin, Max: x.Max + margin}
	y = Range{Min: y.Min - margin, Max: y.Max + margin}
	if x.Span() < minSpan {
		x = x.widen(minSpan)
	}
	if y.Span() < minSpan {
		y = y.widen(minSpan)
	}

	if width <= 0 || height <= 0 {
		return x, y
	}
	ratio := float64(width) / float64(height)
	if x.Span() < y.Span()*ratio {
		x = x.widen(y.Span() * ratio)
	} else {
		y = y.widen(x.Span() / ratio)
	}
	return x, y
}
