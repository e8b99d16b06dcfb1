package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbcalo/bad-movie-finder/internal/classify"
)

var (
	problemStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // red
	dvStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")) // yellow
	hevcStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // cyan
)

// Console streams one classification line per matched file. Lines are
// emitted as files are classified, not buffered until the end of the scan.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole returns a Console writing to w, styling tags when color is on.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

// Line prints the classification line for one record:
//
//	[PROBLEM-DV-P8-HEVC] /media/x.mkv (codec=hevc, bit_depth=10, is_dolby_vision=true, dv_profile=8)
func (c *Console) Line(rec classify.Record) {
	sd := rec.Stream
	tag := "[" + rec.Tag() + "]"
	if c.color {
		switch {
		case rec.Problematic:
			tag = problemStyle.Render(tag)
		case sd.DolbyVision.Present:
			tag = dvStyle.Render(tag)
		case sd.IsHEVC && sd.Is10BitOrMore:
			tag = hevcStyle.Render(tag)
		}
	}

	fmt.Fprintf(c.w, "%s %s (codec=%s, bit_depth=%s, is_dolby_vision=%t, dv_profile=%s)\n",
		tag,
		rec.Path,
		sd.Codec,
		sd.BitDepth.Or("unknown"),
		sd.DolbyVision.Present,
		sd.DolbyVision.Profile.Or("-"),
	)
}
