// Package check resolves the ffprobe binary before any scanning starts and
// implements the --check diagnostics mode. An unresolvable ffprobe is a
// fatal configuration error, surfaced before the first file is touched.
package check

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrFFprobeNotFound is returned when no usable ffprobe binary can be
// located by [ResolveFFprobe].
var ErrFFprobeNotFound = errors.New("ffprobe not found (install FFmpeg, place ffprobe next to bmf, or pass --ffprobe)")

// Logger is the minimal logging interface needed by RunCheck. Defined here
// rather than importing the logging package so that check stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...any)
	Success(string, ...any)
	Warn(string, ...any)
	Error(string, ...any)
}

// ResolveFFprobe locates the ffprobe binary. Precedence: an explicit path
// (from --ffprobe or the config file), then an ffprobe binary sitting next
// to the bmf executable, then $PATH.
func ResolveFFprobe(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", ErrFFprobeNotFound
		}
		return explicit, nil
	}

	if local := localFFprobe(); local != "" {
		return local, nil
	}

	if path, err := exec.LookPath("ffprobe"); err == nil {
		return path, nil
	}
	return "", ErrFFprobeNotFound
}

// localFFprobe returns an ffprobe binary in the directory of the running
// executable, or empty string if none exists.
func localFFprobe() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	dir := filepath.Dir(exe)

	names := []string{"ffprobe"}
	if runtime.GOOS == "windows" {
		names = []string{"ffprobe.exe", "ffprobe"}
	}
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if fi, err := os.Stat(candidate); err == nil && !fi.IsDir() {
			return candidate
		}
	}
	return ""
}

// RunCheck runs the --check flow: resolve ffprobe and print its location
// and version. Returns false when ffprobe is unusable.
func RunCheck(explicit string, log Logger) bool {
	log.Info("=== System Check ===")

	path, err := ResolveFFprobe(explicit)
	if err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("ffprobe: %s", path)

	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		log.Warn("ffprobe found but -version failed: %v", err)
		return false
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("version: %s", firstLine)
	return true
}
