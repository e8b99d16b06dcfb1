// Package classify applies the risk heuristic to probed streams.
//
// The single documented heuristic: HEVC + Dolby Vision + profile 8 is
// high risk for color-rendering defects (purple/green tint, neon skin)
// on many devices. Detection is metadata-only; nothing here makes a
// claim about actual playback behavior on a specific TV. Changing the
// profile/codec condition is a behavior change that requires explicit
// versioning, not a silent edit.
package classify

import (
	"fmt"

	"github.com/dbcalo/bad-movie-finder/internal/probe"
)

// Record is the classification outcome for one scanned file. It is created
// once and never mutated afterwards.
type Record struct {
	Path        string
	Stream      probe.StreamDescriptor
	Problematic bool
}

// Classify decides relevance and risk for one file's stream descriptor.
//
// The relevance gate admits a file when it is HEVC, 10-bit or more, or
// carries Dolby Vision metadata; everything else is silently dropped
// (relevant=false) as out of scope for HDR/DV troubleshooting. The risk
// flag is set iff the stream is HEVC with Dolby Vision profile 8.
func Classify(path string, sd *probe.StreamDescriptor) (Record, bool) {
	dv := sd.DolbyVision
	if !sd.IsHEVC && !sd.Is10BitOrMore && !dv.Present {
		return Record{}, false
	}

	return Record{
		Path:        path,
		Stream:      *sd,
		Problematic: sd.IsHEVC && dv.Present && dv.Profile.Set && dv.Profile.Value == 8,
	}, true
}

// Tag returns the console display tag, evaluated in strict priority order:
// problematic, then Dolby Vision, then HEVC 10-bit, then OTHER. An unknown
// DV profile renders as "?".
func (r Record) Tag() string {
	dv := r.Stream.DolbyVision
	switch {
	case r.Problematic:
		return fmt.Sprintf("PROBLEM-DV-P%s-HEVC", dv.Profile.Or("?"))
	case dv.Present:
		return fmt.Sprintf("DV-P%s", dv.Profile.Or("?"))
	case r.Stream.IsHEVC && r.Stream.Is10BitOrMore:
		return "HEVC-10bit"
	default:
		return "OTHER"
	}
}
