package probe

import "strings"

// Pixel-format substrings that imply a bit depth when ffprobe reports no
// explicit per-sample field (e.g. yuv420p10le, p010le, yuv444p12be).
var (
	tenBitTags    = []string{"p10", "10le", "10be"}
	twelveBitTags = []string{"p12", "12le", "12be"}
)

// bitDepth infers the bit depth of a stream. Precedence:
//
//  1. bits_per_raw_sample, when present and numeric
//  2. bits_per_sample, when present and numeric
//  3. bit-depth hints in the pixel-format string (10le, p12, ...)
//
// A field that is present but non-numeric falls through to the next tier.
// When nothing matches the depth is absent.
func bitDepth(s *ffprobeStream) OptInt {
	if s.BitsPerRawSample.Set {
		return s.BitsPerRawSample
	}
	if s.BitsPerSample.Set {
		return s.BitsPerSample
	}

	pf := strings.ToLower(s.PixFmt)
	for _, tag := range tenBitTags {
		if strings.Contains(pf, tag) {
			return Int(10)
		}
	}
	for _, tag := range twelveBitTags {
		if strings.Contains(pf, tag) {
			return Int(12)
		}
	}
	return OptInt{}
}
