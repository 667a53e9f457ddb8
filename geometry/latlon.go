package geometry

import "math"

const π = math.Pi

// LatLon is a point in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}

// Wrap360 normalises an angle in degrees to [0, 360).
func Wrap360(d float64) float64 {
	if 0.0 <= d && d < 360.0 {
		return d
	}
	w := math.Mod(d, 360.0)
	if w < 0 {
		w += 360.0
	}
	// math.Mod(-0.0000001, 360) + 360 rounds to 360
	if w >= 360.0 {
		w = 0
	}
	return w
}
