package config

// Plotting modes.
const (
	ModeBasic  = "basic"
	ModeCustom = "custom"
)

// InputConfig names the track file to read
type InputConfig struct {
	Path string `yaml:"path"`
}

// RenderConfig contains the plotting parameters
type RenderConfig struct {
	LineLength float64 `yaml:"lineLength" validate:"gte=0"`
	PointSize  float64 `yaml:"pointSize" validate:"gt=0"`
	LineColor  string  `yaml:"lineColor" validate:"required,plotcolor"`
	PointColor string  `yaml:"pointColor" validate:"required,plotcolor"`
	ShowPath   bool    `yaml:"showPath"`
}

// OutputConfig controls where the figure goes
type OutputConfig struct {
	Path    string `yaml:"path"`    // empty means a temp file
	GeoJSON string `yaml:"geojson"` // empty disables the export
	Width   int    `yaml:"width" validate:"omitempty,gt=0"`  // 0 means the mode default
	Height  int    `yaml:"height" validate:"omitempty,gt=0"` // 0 means the mode default
	Show    bool   `yaml:"show"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Mode   string       `yaml:"mode" validate:"oneof=basic custom"`
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}
