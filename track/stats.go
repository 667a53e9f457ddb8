package track

import "math"

// HeadingBins is the number of 10° buckets used for heading histograms.
const HeadingBins = 36

// Summary describes the extent of a track. NaN samples are ignored; a
// column with no numeric samples reports NaN for its range.
type Summary struct {
	Count        int
	MinLat       float64
	MaxLat       float64
	MinLon       float64
	MaxLon       float64
	MinHeading   float64
	MaxHeading   float64
	PathLengthKM float64
}

// Summarize computes the ranges of every column and the path length.
func Summarize(t Track) Summary {
	s := Summary{Count: t.Len()}
	s.MinLat, s.MaxLat = minMax(t.Lats)
	s.MinLon, s.MaxLon = minMax(t.Lons)
	s.MinHeading, s.MaxHeading = minMax(t.Headings)
	s.PathLengthKM = PathLengthKM(t.Lats, t.Lons)
	return s
}

func minMax(vs []float64) (float64, float64) {
	lo, hi := math.NaN(), math.NaN()
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(lo) || v < lo {
			lo = v
		}
		if math.IsNaN(hi) || v > hi {
			hi = v
		}
	}
	return lo, hi
}

// PathLengthKM sums haversine distances between consecutive samples in
// table order. Pairs with a NaN coordinate contribute nothing.
func PathLengthKM(lats, lons []float64) float64 {
	n := min(len(lats), len(lons))
	km := 0.0
	for i := 1; i < n; i++ {
		d := HaversineKM(lats[i-1], lons[i-1], lats[i], lons[i])
		if math.IsNaN(d) {
			continue
		}
		km += d
	}
	return km
}

// HaversineKM is the great-circle distance between two points in kilometres.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// Bin is one histogram bucket covering [Lo, Hi).
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram counts values into equal-width buckets over [lo, hi). Values
// outside the interval are wrapped into it modulo its width, which suits
// angles. NaN and infinite values are skipped.
func Histogram(values []float64, bins int, lo, hi float64) []Bin {
	if bins <= 0 || !(hi > lo) {
		return nil
	}
	span := hi - lo
	width := span / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lo = lo + float64(i)*width
		out[i].Hi = lo + float64(i+1)*width
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		off := math.Mod(v-lo, span)
		if off < 0 {
			off += span
		}
		idx := int(off / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}

// HeadingHistogram bins raw headings into 36 buckets of 10° over [0, 360).
func HeadingHistogram(headings []float64) []Bin {
	return Histogram(headings, HeadingBins, 0, 360)
}
