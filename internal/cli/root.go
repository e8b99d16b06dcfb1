// Package cli wires flags, config file, logging, and the scan pipeline
// behind the bmf root command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dbcalo/bad-movie-finder/internal/check"
	"github.com/dbcalo/bad-movie-finder/internal/config"
	"github.com/dbcalo/bad-movie-finder/internal/logging"
	"github.com/dbcalo/bad-movie-finder/internal/pipeline"
	"github.com/dbcalo/bad-movie-finder/internal/probe"
)

var (
	cfg        = config.DefaultConfig()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "bmf [flags] <media-folder>",
	Short: "Find media files likely to show bad colors on some TVs",
	Long: `Bad Movie Finder scans a media library for video files that are likely
to show bad colors (purple/green tint, neon skin tones) on some TVs and
players: HEVC streams carrying Dolby Vision profile 8 metadata.

Detection is based only on file metadata via ffprobe; no video frames are
decoded, and no assumption is made about any specific TV. Relevant files
are printed as they are found and written to a CSV (or SQLite) export for
filtering in a spreadsheet.`,
	Args:          cobra.RangeArgs(0, 1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&cfg.OutputPath, "out", "o", cfg.OutputPath, "export file path")
	f.StringVar((*string)(&cfg.Format), "format", string(cfg.Format), "export format: csv | sqlite")
	f.IntVarP(&cfg.Workers, "workers", "w", cfg.Workers, "parallel probe workers")
	f.StringVar(&cfg.FFprobePath, "ffprobe", "", "path to the ffprobe binary")
	f.StringVar(&configPath, "config", "", "config file (default ~/.config/bmf/config.toml)")
	f.StringVar((*string)(&cfg.ColorMode), "color", string(cfg.ColorMode), "colored output: auto | always | never")
	f.StringVarP(&cfg.LogFile, "log", "l", "", "append logs to file")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
	f.BoolVar(&cfg.CheckOnly, "check", false, "check ffprobe availability and exit")
}

// Execute runs the root command and returns the process exit code.
func Execute(version, commit string) int {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bmf: %v\n", err)
		return 1
	}
	return 0
}

func run(cmd *cobra.Command, args []string) error {
	// Overlay the config file onto defaults; flags the user passed win.
	path, explicit := configPath, configPath != ""
	if !explicit {
		path = config.DefaultFilePath()
	}
	if path != "" {
		fc, err := config.LoadFile(path, explicit)
		if err != nil {
			return err
		}
		fc.Apply(&cfg, cmd.Flags().Changed)
	}

	// The default export filename follows the chosen format unless the
	// user named one explicitly.
	if cfg.Format == config.FormatSQLite &&
		!cmd.Flags().Changed("out") && cfg.OutputPath == config.DefaultCSVOutput {
		cfg.OutputPath = config.DefaultSQLiteOutput
	}

	if len(args) == 1 {
		cfg.Root = config.NormalizeDirArg(args[0])
	} else if !cfg.CheckOnly {
		_ = cmd.Usage()
		return errors.New("need a media folder to scan")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.CheckOnly {
		if !check.RunCheck(cfg.FFprobePath, log) {
			return errors.New("system check failed")
		}
		return nil
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return fmt.Errorf("resolve folder %q: %w", cfg.Root, err)
	}
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return fmt.Errorf("folder not found: %s", root)
	}
	cfg.Root = root

	// Fail fast when ffprobe is unavailable, before touching any file.
	ffprobePath, err := check.ResolveFFprobe(cfg.FFprobePath)
	if err != nil {
		return err
	}
	log.Debug("Using ffprobe: %s", ffprobePath)

	// Cancel on SIGINT/SIGTERM so the scan can stop between files.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	runner := pipeline.New(&cfg, log, probe.NewProber(ffprobePath))
	_, err = runner.Run(ctx)
	return err
}
