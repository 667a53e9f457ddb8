// Package config handles application configuration loading and validation.
//
// Configuration is loaded from a YAML file (trackviz.yml by default) on top of
// Default() and validated using struct tags. Plot colours are checked with the
// custom "plotcolor" rule, which accepts the same names and hex forms as the
// renderer.
//
// # Precedence
//
// defaults < YAML file < TRACKVIZ_* environment < command-line flags. The
// last two are applied by cmd/trackviz.
package config
