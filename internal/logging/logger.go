// Package logging provides the leveled console logger used across the
// scanner, with optional mirroring to a log file. Level labels are styled
// with lipgloss when stdout is a terminal (or colors are forced).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/dbcalo/bad-movie-finder/internal/config"
)

var levelStyles = map[string]lipgloss.Style{
	"INFO":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // blue
	"SUCCESS": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")), // green
	"WARN":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")), // yellow
	"ERROR":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),  // red
	"DEBUG":   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")), // cyan
}

// Logger provides leveled, optionally colored logging with an optional
// file sink. The file always receives plain (unstyled) lines.
type Logger struct {
	mu      sync.Mutex
	color   bool
	verbose bool
	file    *os.File
}

// NewLogger resolves the color mode from cfg and optionally opens
// cfg.LogFile for appending. Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	l := &Logger{
		color:   colorEnabled(cfg.ColorMode),
		verbose: cfg.Verbose,
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// colorEnabled resolves the configured mode against TTY detection, the
// NO_COLOR env var (https://no-color.org), and TERM=dumb.
func colorEnabled(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return term.IsTerminal(int(os.Stdout.Fd())) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// ColorEnabled reports whether styled output is active.
func (l *Logger) ColorEnabled() bool { return l.color }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	out := io.Writer(os.Stdout)
	if level == "ERROR" {
		out = os.Stderr
	}

	label := "[" + level + "]"
	if l.color {
		label = levelStyles[level].Render(label)
	}
	_, _ = io.WriteString(out, ts+" "+label+" "+text+"\n")

	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...any) {
	l.line("SUCCESS", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level, to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose mode is on.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", fmt.Sprintf(format, args...))
}
