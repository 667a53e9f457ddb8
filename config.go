package trackviz

import (
	"fmt"

	"github.com/theoremus-urban-solutions/trackviz/config"
	"github.com/theoremus-urban-solutions/trackviz/track"
)

// Config is the loaded application configuration
var Config = config.Default()

// LoadAppConfig loads and validates the configuration at path (or one of
// config.DefaultPaths when empty) into Config.
func LoadAppConfig(path string) error {
	cfg, err := config.LoadAppConfig(path)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Run plots Config.Input.Path according to Config.
func Run() (*track.Table, error) {
	opts := Options{
		Output:   Config.Output.Path,
		GeoJSON:  Config.Output.GeoJSON,
		Show:     Config.Output.Show,
		Width:    Config.Output.Width,
		Height:   Config.Output.Height,
		HidePath: !Config.Render.ShowPath,
	}
	r := Config.Render
	switch Config.Mode {
	case config.ModeCustom:
		return PlotWithCustomSettings(Config.Input.Path, r.LineLength, r.PointSize, r.LineColor, r.PointColor, opts)
	case config.ModeBasic, "":
		return LoadAndPlotGPSTrack(Config.Input.Path, r.LineLength, opts)
	}
	return nil, fmt.Errorf("unknown mode %q", Config.Mode)
}
