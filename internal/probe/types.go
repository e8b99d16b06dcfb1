package probe

import "strconv"

// OptInt is an optional integer as it appears in ffprobe output, where a
// numeric field may be absent, a JSON number, or a string-encoded number.
// The zero value is "absent".
type OptInt struct {
	Value int
	Set   bool
}

// Int returns a set OptInt holding v.
func Int(v int) OptInt {
	return OptInt{Value: v, Set: true}
}

// UnmarshalJSON accepts numbers, numeric strings, and null. Anything that
// does not parse as an integer resolves to absent rather than an error, so
// malformed metadata never aborts file processing.
func (o *OptInt) UnmarshalJSON(data []byte) error {
	*o = OptInt{}
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	*o = OptInt{Value: n, Set: true}
	return nil
}

// Or returns the decimal value, or fallback when absent.
func (o OptInt) Or(fallback string) string {
	if !o.Set {
		return fallback
	}
	return strconv.Itoa(o.Value)
}

// DolbyVisionInfo holds the Dolby Vision side-data fields of one video
// stream. When Present is false every other field is absent (unset, not
// zero).
type DolbyVisionInfo struct {
	Present                 bool
	Profile                 OptInt
	ELPresent               OptInt
	BLPresent               OptInt
	BLSignalCompatibilityID OptInt
}

// StreamDescriptor is the canonical per-file view of the primary video
// stream. Color fields may be empty; absent metadata is never an error.
type StreamDescriptor struct {
	Codec          string // lowercased, "unknown" when ffprobe omits it
	PixFmt         string
	ColorPrimaries string
	ColorTransfer  string
	ColorSpace     string
	BitDepth       OptInt
	IsHEVC         bool
	Is10BitOrMore  bool // BitDepth set and >= 10
	DolbyVision    DolbyVisionInfo
}
