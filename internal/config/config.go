// Package config holds runtime configuration: defaults, optional TOML
// config file, and validation. CLI flags are bound in the cli package;
// flag values beat file values beat defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// ExportFormat selects the export artifact written at the end of a scan.
type ExportFormat string

const (
	FormatCSV    ExportFormat = "csv"    // One row per record, fixed column order (default).
	FormatSQLite ExportFormat = "sqlite" // Same columns in a media_files table.
)

// ColorMode controls styled console output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Default export filenames, chosen by the active format when the user
// does not pass --out.
const (
	DefaultCSVOutput    = "problem_media.csv"
	DefaultSQLiteOutput = "problem_media.db"
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid with a config file, then mutated by flag binding
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Root is the media folder to scan (positional arg).
	Root string

	// Export settings.
	OutputPath string       // Default: "problem_media.csv".
	Format     ExportFormat // Default: "csv".

	// Scan settings.
	Workers     int    // Probe concurrency. Default: 1 (sequential).
	FFprobePath string // Explicit ffprobe binary; empty means auto-resolve.

	// Display and logging.
	ColorMode ColorMode // Default: "auto".
	Verbose   bool
	LogFile   string // Optional log file path (append).
	CheckOnly bool   // Run diagnostics and exit.
}

// DefaultConfig returns a Config matching the original bmf defaults:
// sequential scan, CSV export to problem_media.csv in the working
// directory.
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultCSVOutput,
		Format:     FormatCSV,
		Workers:    1,
		ColorMode:  ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path. The
// filesystem root "/" is returned unchanged so we don't produce an empty
// string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and scan settings. When not in CheckOnly
// mode it also requires a root folder.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatCSV, FormatSQLite:
		// valid
	default:
		return errors.New("invalid format (use 'csv' or 'sqlite')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.OutputPath == "" {
		return errors.New("output path must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.Root == "" {
		return errors.New("need a media folder to scan")
	}
	return nil
}
