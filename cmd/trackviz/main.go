package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff"
	log "github.com/sirupsen/logrus"

	lib "github.com/theoremus-urban-solutions/trackviz"
	"github.com/theoremus-urban-solutions/trackviz/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	def := config.Default()

	fs := flag.NewFlagSet("trackviz", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: trackviz [flags] <file.csv|file.gpx>\n")
		fs.PrintDefaults()
	}
	var (
		configPath = fs.String("config", "", "YAML config file (default trackviz.yml if present)")
		input      = fs.String("input", "", "track file; may also be given as the first argument")
		mode       = fs.String("mode", def.Mode, "basic|custom")
		lineLength = fs.Float64("line-length", def.Render.LineLength, "heading segment length in degrees")
		pointSize  = fs.Float64("point-size", def.Render.PointSize, "marker area (custom mode)")
		lineColor  = fs.String("line-color", def.Render.LineColor, "heading segment colour (custom mode)")
		pointColor = fs.String("point-color", def.Render.PointColor, "marker colour (custom mode)")
		hidePath   = fs.Bool("hide-path", !def.Render.ShowPath, "do not draw the line joining the points")
		output     = fs.String("output", def.Output.Path, "figure path (.png or .svg); temp file if empty")
		geoJSON    = fs.String("geojson", def.Output.GeoJSON, "also write the track as GeoJSON")
		show       = fs.Bool("show", def.Output.Show, "open the figure when done")
		width      = fs.Int("width", def.Output.Width, "panel width in pixels; 0 picks the mode default")
		height     = fs.Int("height", def.Output.Height, "panel height in pixels; 0 picks the mode default")
		logLevel   = fs.String("log-level", def.Log.Level, "debug|info|warn|error")
		logFile    = fs.String("log-file", def.Log.File, "also log to this rotating file")
	)
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("TRACKVIZ")); err != nil {
		return err
	}

	if err := lib.LoadAppConfig(*configPath); err != nil {
		return err
	}

	// explicitly set flags and env vars win over the file
	cfg := &lib.Config
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input.Path = *input
		case "mode":
			cfg.Mode = *mode
		case "line-length":
			cfg.Render.LineLength = *lineLength
		case "point-size":
			cfg.Render.PointSize = *pointSize
		case "line-color":
			cfg.Render.LineColor = *lineColor
		case "point-color":
			cfg.Render.PointColor = *pointColor
		case "hide-path":
			cfg.Render.ShowPath = !*hidePath
		case "output":
			cfg.Output.Path = *output
		case "geojson":
			cfg.Output.GeoJSON = *geoJSON
		case "show":
			cfg.Output.Show = *show
		case "width":
			cfg.Output.Width = *width
		case "height":
			cfg.Output.Height = *height
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-file":
			cfg.Log.File = *logFile
		}
	})
	if fs.NArg() > 0 {
		cfg.Input.Path = fs.Arg(0)
	}
	if cfg.Input.Path == "" {
		fs.Usage()
		return fmt.Errorf("no input file")
	}
	if err := config.Validate(*cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := lib.InitLogging(cfg.Log.Level, cfg.Log.File); err != nil {
		return err
	}

	_, err := lib.Run()
	return err
}
