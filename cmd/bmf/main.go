// Command bmf is the Bad Movie Finder CLI. It scans a media library for
// video files likely to show bad colors (purple/green tint, neon skin
// tones) on some TVs and players, based on ffprobe metadata only.
package main

import (
	"os"

	"github.com/dbcalo/bad-movie-finder/internal/cli"
)

// version and commit are injected at build time via -ldflags. When built
// with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(cli.Execute(version, commit))
}
