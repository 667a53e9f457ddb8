package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyTrack     = errors.New("geometry: empty track")
	ErrLengthMismatch = errors.New("geometry: input lengths differ")
)

// ShiftHeadings returns the headings used for drawing: each row takes the
// heading recorded at the next row and the last row keeps its own. The input
// slice is not modified.
func ShiftHeadings(headings []float64) []float64 {
	n := len(headings)
	shifted := make([]float64, n)
	if n == 0 {
		return shifted
	}
	copy(shifted, headings[1:])
	shifted[n-1] = headings[n-1]
	return shifted
}

// CompassToPlanar converts a compass bearing in degrees (0 = North,
// clockwise) to a planar angle in radians (0 = +x, counter-clockwise).
// Any real input is accepted; values outside [0, 360) wrap naturally.
func CompassToPlanar(heading float64) float64 {
	return toRadians(90 - heading)
}

// Project moves a point lineLength degrees along a compass heading.
func Project(p LatLon, heading, lineLength float64) LatLon {
	a := CompassToPlanar(heading)
	return LatLon{
		Lat: p.Lat + lineLength*math.Sin(a),
		Lon: p.Lon + lineLength*math.Cos(a),
	}
}

// ComputeSegments returns the end point of the heading segment anchored at
// every row. Headings are shifted with ShiftHeadings before projecting.
func ComputeSegments(lats, lons, headings []float64, lineLength float64) ([]float64, []float64, error) {
	n := len(lats)
	if len(lons) != n || len(headings) != n {
		return nil, nil, fmt.Errorf("%w: lat=%d lon=%d heading=%d", ErrLengthMismatch, len(lats), len(lons), len(headings))
	}
	if n == 0 {
		return nil, nil, ErrEmptyTrack
	}

	shifted := ShiftHeadings(headings)

	endLats := make([]float64, n)
	endLons := make([]float64, n)
	for i := range lats {
		end := Project(LatLon{Lat: lats[i], Lon: lons[i]}, shifted[i], lineLength)
		endLats[i] = end.Lat
		endLons[i] = end.Lon
	}
	return endLats, endLons, nil
}
