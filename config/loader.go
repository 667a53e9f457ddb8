package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/trackviz/render"
)

// DefaultPaths are tried in order when LoadAppConfig gets no explicit path.
var DefaultPaths = []string{"trackviz.yml", "trackviz.yaml"}

// Default returns the configuration used when nothing overrides it.
func Default() AppConfig {
	return AppConfig{
		Mode: ModeBasic,
		Render: RenderConfig{
			LineLength: 0.001,
			PointSize:  20,
			LineColor:  "blue",
			PointColor: "red",
			ShowPath:   true,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadAppConfig reads path over Default() and validates the result. With an
// empty path the DefaultPaths are tried and a missing file is not an error.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := Default()

	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	} else {
		for _, p := range DefaultPaths {
			data, err = os.ReadFile(p)
			if err == nil {
				path = p
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("read config %s: %w", p, err)
			}
		}
		if data == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.RegisterValidation("plotcolor", validatePlotColor); err != nil {
		return err
	}
	return v.Struct(cfg)
}

func validatePlotColor(fl validator.FieldLevel) bool {
	_, err := render.ParseColor(fl.Field().String())
	return err == nil
}
