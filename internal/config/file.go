package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML config file schema. Every field is optional; the
// zero value means "not set in the file".
type FileConfig struct {
	Output  string `toml:"output"`
	Format  string `toml:"format"`
	Workers int    `toml:"workers"`
	FFprobe string `toml:"ffprobe"`
	Color   string `toml:"color"`
	LogFile string `toml:"log_file"`
}

// DefaultFilePath returns the default config file location,
// <user config dir>/bmf/config.toml (e.g. ~/.config/bmf/config.toml).
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bmf", "config.toml")
}

// LoadFile reads and parses a TOML config file. A missing file at the
// default location is not an error (nil, nil); a file the user named
// explicitly must exist and parse.
func LoadFile(path string, explicit bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return &fc, nil
}

// Apply overlays set file values onto cfg, skipping any setting the
// caller reports as already bound (a CLI flag the user passed).
func (f *FileConfig) Apply(cfg *Config, flagSet func(name string) bool) {
	if f == nil {
		return
	}
	if f.Output != "" && !flagSet("out") {
		cfg.OutputPath = f.Output
	}
	if f.Format != "" && !flagSet("format") {
		cfg.Format = ExportFormat(f.Format)
	}
	if f.Workers != 0 && !flagSet("workers") {
		cfg.Workers = f.Workers
	}
	if f.FFprobe != "" && !flagSet("ffprobe") {
		cfg.FFprobePath = f.FFprobe
	}
	if f.Color != "" && !flagSet("color") {
		cfg.ColorMode = ColorMode(f.Color)
	}
	if f.LogFile != "" && !flagSet("log") {
		cfg.LogFile = f.LogFile
	}
}
