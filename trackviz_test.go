package trackviz

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"

	"github.com/theoremus-urban-solutions/trackviz/render"
	"github.com/theoremus-urban-solutions/trackviz/track"
)

func decodePNG(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open figure: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Failed to decode figure: %v", err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

// TestLoadAndPlotGPSTrack tests the strict single-panel plot
func TestLoadAndPlotGPSTrack(t *testing.T) {
	out := filepath.Join(t.TempDir(), "track.png")

	tbl, err := LoadAndPlotGPSTrack("testdata/track.csv", DefaultLineLength, Options{
		Output: out,
		Width:  400,
		Height: 400,
	})
	if err != nil {
		t.Fatalf("Failed to plot track: %v", err)
	}
	if tbl == nil || tbl.Len() != 6 {
		t.Fatalf("expected 6-row table, got %+v", tbl)
	}

	w, h := decodePNG(t, out)
	if w != 400 || h != 400 {
		t.Errorf("figure is %dx%d, want 400x400", w, h)
	}
	t.Logf("✓ Plotted %d points", tbl.Len())
}

// TestLoadAndPlotGPSTrack_Failures tests that failures yield a nil table
func TestLoadAndPlotGPSTrack_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{
			name:  "missing file",
			input: "testdata/does-not-exist.csv",
			check: func(err error) bool { return errors.Is(err, os.ErrNotExist) },
		},
		{
			name:  "unresolved columns",
			input: "testdata/xyz.csv",
			check: func(err error) bool {
				var re *track.ResolutionError
				return errors.As(err, &re) && len(re.Missing) == 3
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "track.png")
			tbl, err := LoadAndPlotGPSTrack(tt.input, DefaultLineLength, Options{Output: out})
			if tbl != nil {
				t.Error("Expected nil table on failure")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
			if _, statErr := os.Stat(out); statErr == nil {
				t.Error("No figure should be written on failure")
			}
		})
	}
}

// TestPlotWithCustomSettings tests the two-panel plot and GeoJSON export
func TestPlotWithCustomSettings(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "custom.png")
	gj := filepath.Join(dir, "custom.geojson")

	tbl, err := PlotWithCustomSettings("testdata/custom.csv", 0.0005, 30, "green", "#ff8800", Options{
		Output:  out,
		GeoJSON: gj,
		Width:   300,
		Height:  200,
	})
	if err != nil {
		t.Fatalf("Failed to plot track: %v", err)
	}
	if tbl.Len() != 4 {
		t.Errorf("rows = %d, want 4", tbl.Len())
	}

	w, h := decodePNG(t, out)
	if w != 600 || h != 200 {
		t.Errorf("figure is %dx%d, want 600x200 (two panels)", w, h)
	}

	data, err := os.ReadFile(gj)
	if err != nil {
		t.Fatalf("Failed to read GeoJSON: %v", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatalf("Failed to parse GeoJSON: %v", err)
	}
	// one track plus one segment per row
	if len(fc.Features) != 5 {
		t.Errorf("features = %d, want 5", len(fc.Features))
	}
}

// TestPlotWithCustomSettings_Errors tests the unguarded lookup and bad options
func TestPlotWithCustomSettings_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing heading column", func(t *testing.T) {
		tbl, err := PlotWithCustomSettings("testdata/track.csv", DefaultLineLength, DefaultPointSize,
			DefaultLineColor, DefaultPointColor, Options{Output: filepath.Join(dir, "a.png")})
		if tbl != nil || !errors.Is(err, track.ErrColumnNotFound) {
			t.Errorf("expected lookup error, got %v", err)
		}
	})

	t.Run("bad colour", func(t *testing.T) {
		_, err := PlotWithCustomSettings("testdata/custom.csv", DefaultLineLength, DefaultPointSize,
			"not-a-colour", DefaultPointColor, Options{Output: filepath.Join(dir, "b.png")})
		if err == nil {
			t.Error("Expected error for invalid colour")
		}
	})

	t.Run("two panels as svg", func(t *testing.T) {
		out := filepath.Join(dir, "c.svg")
		_, err := PlotWithCustomSettings("testdata/custom.csv", DefaultLineLength, DefaultPointSize,
			DefaultLineColor, DefaultPointColor, Options{Output: out})
		if !errors.Is(err, render.ErrMultiPanelSVG) {
			t.Errorf("expected ErrMultiPanelSVG, got %v", err)
		}
		if _, statErr := os.Stat(out); statErr == nil {
			t.Error("No figure should be written when rendering fails")
		}
	})
}

// TestGPXInput tests that GPX tracks plot in both modes
func TestGPXInput(t *testing.T) {
	gpxFile := filepath.Join("track", "testdata", "square.gpx")
	dir := t.TempDir()

	tbl, err := LoadAndPlotGPSTrack(gpxFile, DefaultLineLength, Options{Output: filepath.Join(dir, "basic.png")})
	if err != nil {
		t.Fatalf("Failed to plot gpx in basic mode: %v", err)
	}
	if tbl.Len() != 5 {
		t.Errorf("rows = %d, want 5", tbl.Len())
	}

	tbl, err = PlotWithCustomSettings(gpxFile, DefaultLineLength, DefaultPointSize,
		DefaultLineColor, DefaultPointColor, Options{Output: filepath.Join(dir, "custom.png")})
	if err != nil {
		t.Fatalf("Failed to plot gpx in custom mode: %v", err)
	}
	if tbl.Len() != 5 {
		t.Errorf("rows = %d, want 5", tbl.Len())
	}
	t.Logf("✓ Plotted gpx with %d points in both modes", tbl.Len())
}

// TestLoadAndPlotGPSTrack_SVG tests SVG output for the single panel plot
func TestLoadAndPlotGPSTrack_SVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "track.svg")
	if _, err := LoadAndPlotGPSTrack("testdata/track.csv", DefaultLineLength, Options{Output: out}); err != nil {
		t.Fatalf("Failed to plot track: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read figure: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("Output is not SVG")
	}
}

// TestPreview tests the data preview table
func TestPreview(t *testing.T) {
	tbl := &track.Table{
		Columns: []string{"lat", "lon"},
		Rows:    [][]string{{"1", "2"}, {"3", "4"}, {"5", "6"}},
	}
	got := Preview(tbl, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("preview has %d lines, want 3:\n%s", len(lines), got)
	}
	if !strings.Contains(lines[0], "lat") || !strings.Contains(lines[2], "3") {
		t.Errorf("unexpected preview:\n%s", got)
	}
	if strings.Contains(got, "5") {
		t.Errorf("preview should stop after 2 rows:\n%s", got)
	}
}
