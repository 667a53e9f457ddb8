package track

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/theoremus-urban-solutions/trackviz/geometry"
)

// Columns of a table built from GPX track points.
var gpxColumns = []string{"latitude", "longitude", "elevation", "time", "course_heading"}

// LoadGPX reads every track point of a GPX file, in file order.
func LoadGPX(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gpx: %w", err)
	}
	defer f.Close()

	t, err := ReadGPX(f)
	if err != nil {
		return nil, fmt.Errorf("read gpx %s: %w", path, err)
	}
	return t, nil
}

// ReadGPX parses GPX and flattens all tracks and segments into one table.
// GPX has no course field, so the course_heading column holds the bearing
// from the previous point, i.e. the heading on arrival. Its name satisfies
// both the strict and the permissive resolver. The first point takes the
// bearing towards the second; a point that did not move repeats the
// previous course.
func ReadGPX(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	var pts []gpx.GPXPoint
	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			pts = append(pts, seg.Points...)
		}
	}

	courses := arrivalCourses(pts)
	rows := make([][]string, 0, len(pts))
	for i, p := range pts {
		elevation := ""
		if p.Elevation.NotNull() {
			elevation = ftoa(p.Elevation.Value(), 2)
		}
		ts := ""
		if !p.Timestamp.IsZero() {
			ts = p.Timestamp.UTC().Format(time.RFC3339)
		}
		rows = append(rows, []string{
			ftoa(p.Latitude, 9),
			ftoa(p.Longitude, 9),
			elevation,
			ts,
			ftoa(courses[i], 2),
		})
	}
	return &Table{Columns: append([]string(nil), gpxColumns...), Rows: rows}, nil
}

func arrivalCourses(pts []gpx.GPXPoint) []float64 {
	courses := make([]float64, len(pts))
	if len(pts) < 2 {
		return courses
	}
	at := func(i int) geometry.LatLon {
		return geometry.LatLon{Lat: pts[i].Latitude, Lon: pts[i].Longitude}
	}
	for i := 1; i < len(pts); i++ {
		b := geometry.BearingTo(at(i-1), at(i))
		if math.IsNaN(b) {
			b = courses[i-1]
		}
		courses[i] = b
	}
	courses[0] = courses[1]
	if b := geometry.BearingTo(at(0), at(1)); !math.IsNaN(b) {
		courses[0] = b
	}
	return courses
}

func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}
