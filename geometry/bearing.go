package geometry

import "math"

// BearingTo returns the compass bearing in [0, 360) from one point to
// another on the flat lat/lon plane. The longitude difference is taken the
// short way round the antimeridian. Coincident points have no bearing and
// yield NaN.
func BearingTo(from, to LatLon) float64 {
	x := to.Lon - from.Lon
	y := to.Lat - from.Lat

	if x > 180 {
		x -= 360
	} else if x < -180 {
		x += 360
	}

	d := math.Sqrt(x*x + y*y)
	if d == 0 {
		return math.NaN()
	}

	α := math.Acos(y / d)
	if x < 0 {
		α *= -1
	}

	return Wrap360(toDegrees(α))
}
