package formatter

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/trackviz/track"
)

// Feature kinds written to the "kind" property.
const (
	KindTrack   = "track"
	KindHeading = "heading"
)

// BuildGeoJSON returns a FeatureCollection holding the track as one
// LineString plus one LineString per heading segment. Samples with a NaN
// coordinate are dropped; a NaN heading is written as null.
func BuildGeoJSON(t track.Track, shifted, endLats, endLons []float64) ([]byte, error) {
	n := t.Len()
	if len(t.Lons) != n || len(t.Headings) != n || len(shifted) != n || len(endLats) != n || len(endLons) != n {
		return nil, fmt.Errorf("geojson: input lengths differ")
	}

	fc := geojson.NewFeatureCollection()

	var path orb.LineString
	for i := 0; i < n; i++ {
		if finite(t.Lats[i], t.Lons[i]) {
			path = append(path, orb.Point{t.Lons[i], t.Lats[i]})
		}
	}
	if len(path) > 0 {
		f := geojson.NewFeature(path)
		f.Properties["kind"] = KindTrack
		f.Properties["points"] = len(path)
		fc.Append(f)
	}

	for i := 0; i < n; i++ {
		if !finite(t.Lats[i], t.Lons[i], endLats[i], endLons[i]) {
			continue
		}
		f := geojson.NewFeature(orb.LineString{
			{t.Lons[i], t.Lats[i]},
			{endLons[i], endLats[i]},
		})
		f.Properties["kind"] = KindHeading
		f.Properties["index"] = i
		f.Properties["heading"] = nullable(shifted[i])
		f.Properties["recordedHeading"] = nullable(t.Headings[i])
		fc.Append(f)
	}

	return fc.MarshalJSON()
}

func nullable(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
