package trackviz

import (
	"bytes"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/theoremus-urban-solutions/trackviz/formatter"
	"github.com/theoremus-urban-solutions/trackviz/geometry"
	"github.com/theoremus-urban-solutions/trackviz/render"
	"github.com/theoremus-urban-solutions/trackviz/track"
)

// Defaults of the plotting functions.
const (
	DefaultLineLength = 0.001
	DefaultPointSize  = 20
	DefaultLineColor  = "blue"
	DefaultPointColor = "red"
)

// basicPointSize is the marker area of the basic track plot.
const basicPointSize = 0.1

// Options controls where a figure goes. The zero value writes a PNG to a
// temp file and does nothing else.
type Options struct {
	Output   string // figure path; .svg selects SVG, empty means a temp file
	GeoJSON  string // optional GeoJSON export path
	Show     bool   // open the figure in the system viewer
	Width    int    // panel width in pixels; 0 picks the mode default
	Height   int    // panel height in pixels; 0 picks the mode default
	HidePath bool   // skip the gray polyline joining the samples
}

func (o Options) size(w, h int) (int, int) {
	if o.Width > 0 {
		w = o.Width
	}
	if o.Height > 0 {
		h = o.Height
	}
	return w, h
}

// LoadAndPlotGPSTrack loads csvFile, resolves its columns strictly
// (latitude/longitude/course) and draws the track with a heading segment of
// lineLength degrees at every point. On failure the cause is logged and a
// nil table is returned.
func LoadAndPlotGPSTrack(csvFile string, lineLength float64, opts Options) (*track.Table, error) {
	tbl, err := loadTable(csvFile)
	if err != nil {
		return nil, err
	}

	m, err := track.StrictResolver.Resolve(tbl.Columns)
	if err != nil {
		log.WithError(err).Error("Column resolution failed")
		return nil, err
	}
	log.Infof("Using columns lat=%q lon=%q heading=%q", m.Latitude, m.Longitude, m.Heading)

	tr, err := track.Extract(tbl, m)
	if err != nil {
		log.WithError(err).Error("Failed to extract track")
		return nil, err
	}

	style := render.DefaultStyle()
	style.PointSize = basicPointSize
	style.ShowPath = !opts.HidePath
	style.Width, style.Height = opts.size(900, 900)

	if err := plot(tr, lineLength, style, false, opts); err != nil {
		log.WithError(err).Error("Failed to plot track")
		return nil, err
	}
	return tbl, nil
}

// PlotWithCustomSettings is the configurable variant: permissive column
// matching (lat/lon/head), custom marker size and colours, and a heading
// histogram panel next to the track. Columns that cannot be matched surface
// as a lookup error wrapping track.ErrColumnNotFound.
//
// Segments use the same next-sample heading convention as
// LoadAndPlotGPSTrack rather than each row's own heading; only the histogram
// counts the raw headings.
func PlotWithCustomSettings(csvFile string, lineLength, pointSize float64, lineColor, pointColor string, opts Options) (*track.Table, error) {
	lc, err := render.ParseColor(lineColor)
	if err != nil {
		return nil, fmt.Errorf("line color: %w", err)
	}
	pc, err := render.ParseColor(pointColor)
	if err != nil {
		return nil, fmt.Errorf("point color: %w", err)
	}

	tbl, err := loadTable(csvFile)
	if err != nil {
		return nil, err
	}

	m := track.PermissiveResolver.Match(tbl.Columns)
	log.Debugf("Matched columns lat=%q lon=%q heading=%q", m.Latitude, m.Longitude, m.Heading)

	tr, err := track.Extract(tbl, m)
	if err != nil {
		log.WithError(err).Error("Failed to extract track")
		return nil, err
	}

	style := render.DefaultStyle()
	style.Title = "Full GPS Track"
	style.PointSize = pointSize
	style.PointColor = pc
	style.LineColor = lc
	style.ShowPath = !opts.HidePath
	style.Width, style.Height = opts.size(800, 600)

	if err := plot(tr, lineLength, style, true, opts); err != nil {
		log.WithError(err).Error("Failed to plot track")
		return nil, err
	}
	return tbl, nil
}

func loadTable(path string) (*track.Table, error) {
	tbl, err := track.Load(path)
	if err != nil {
		log.WithError(err).Errorf("Error loading %s", path)
		return nil, err
	}
	log.Infof("Loaded %d GPS points", tbl.Len())
	log.Infof("Columns: %q", tbl.Columns)
	log.Infof("Data preview:\n%s", Preview(tbl, 5))
	return tbl, nil
}

// plot runs the heading transform, renders the figure and handles the
// optional outputs.
func plot(tr track.Track, lineLength float64, style render.Style, withHistogram bool, opts Options) error {
	endLats, endLons, err := geometry.ComputeSegments(tr.Lats, tr.Lons, tr.Headings, lineLength)
	if err != nil {
		return err
	}

	fig := render.Figure{Panels: []render.Panel{
		render.TrackChart(render.TrackData{
			Lats:    tr.Lats,
			Lons:    tr.Lons,
			EndLats: endLats,
			EndLons: endLons,
		}, style),
	}}
	if withHistogram {
		fig.Panels = append(fig.Panels,
			render.HistogramChart(track.HeadingHistogram(tr.Headings), style.Width, style.Height))
	}

	logSummary(track.Summarize(tr))

	path, err := writeFigure(fig, opts.Output)
	if err != nil {
		return err
	}
	log.Infof("Figure written to %s", path)

	if opts.GeoJSON != "" {
		data, err := formatter.BuildGeoJSON(tr, geometry.ShiftHeadings(tr.Headings), endLats, endLons)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.GeoJSON, data, 0644); err != nil {
			return fmt.Errorf("write geojson: %w", err)
		}
		log.Infof("GeoJSON written to %s", opts.GeoJSON)
	}

	if opts.Show {
		if err := Show(path); err != nil {
			// the figure is on disk; not being able to open it is not fatal
			log.WithError(err).Warnf("Could not open %s", path)
		}
	}
	return nil
}

// writeFigure renders fig before touching the filesystem, so a failed render
// leaves no file behind.
func writeFigure(fig render.Figure, path string) (string, error) {
	format := render.PNG
	if path != "" {
		format = render.FormatFromPath(path)
	}
	var buf bytes.Buffer
	if err := fig.Render(&buf, format); err != nil {
		return "", fmt.Errorf("render figure: %w", err)
	}

	var f *os.File
	var err error
	if path == "" {
		f, err = os.CreateTemp("", "trackviz-*.png")
	} else {
		f, err = os.Create(path)
	}
	if err != nil {
		return "", fmt.Errorf("create figure: %w", err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write figure: %w", err)
	}
	return f.Name(), f.Close()
}

func logSummary(s track.Summary) {
	log.Info("Track statistics:")
	log.Infof("Latitude range: %.6f to %.6f", s.MinLat, s.MaxLat)
	log.Infof("Longitude range: %.6f to %.6f", s.MinLon, s.MaxLon)
	log.Infof("Heading range: %.1f° to %.1f°", s.MinHeading, s.MaxHeading)
	log.Infof("Path length: %.3f km", s.PathLengthKM)
}
