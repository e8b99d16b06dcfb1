package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// Prober runs ffprobe against media files. The binary location is resolved
// once at startup and injected here, so this package has no dependency on
// host filesystem layout.
type Prober struct {
	ffprobePath string
}

// NewProber returns a Prober that invokes the given ffprobe binary.
func NewProber(ffprobePath string) *Prober {
	return &Prober{ffprobePath: ffprobePath}
}

// Probe runs a single ffprobe JSON call against path and returns the
// descriptor of the primary video stream. The second return value is false
// when the file has no video stream — a legitimate skip, not an error.
func (p *Prober) Probe(ctx context.Context, path string) (*StreamDescriptor, bool, error) {
	cmd := exec.CommandContext(ctx, p.ffprobePath,
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, false, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseJSON(out)
}

// ParseJSON converts raw ffprobe JSON output into a StreamDescriptor.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*StreamDescriptor, bool, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	v := primaryVideo(raw.Streams)
	if v == nil {
		return nil, false, nil
	}
	return buildDescriptor(v), true, nil
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename   string `json:"filename"`
	NbStreams  int    `json:"nb_streams"`
	FormatName string `json:"format_name"`
}

type ffprobeStream struct {
	Index            int               `json:"index"`
	CodecName        string            `json:"codec_name"`
	CodecType        string            `json:"codec_type"`
	PixFmt           string            `json:"pix_fmt"`
	BitsPerRawSample OptInt            `json:"bits_per_raw_sample"`
	BitsPerSample    OptInt            `json:"bits_per_sample"`
	ColorTransfer    string            `json:"color_transfer"`
	ColorPrimaries   string            `json:"color_primaries"`
	ColorSpace       string            `json:"color_space"`
	Disposition      map[string]int    `json:"disposition"`
	SideDataList     []ffprobeSideData `json:"side_data_list"`
}

type ffprobeSideData struct {
	Type                    string `json:"side_data_type"`
	DVProfile               OptInt `json:"dv_profile"`
	ELPresentFlag           OptInt `json:"el_present_flag"`
	BLPresentFlag           OptInt `json:"bl_present_flag"`
	BLSignalCompatibilityID OptInt `json:"dv_bl_signal_compatibility_id"`
}

// --- Conversion from wire types to the descriptor ---

// primaryVideo returns the first video stream that is not an attached
// picture (embedded cover art), or nil if none exists.
func primaryVideo(streams []ffprobeStream) *ffprobeStream {
	for i := range streams {
		s := &streams[i]
		if s.CodecType != "video" {
			continue
		}
		if s.Disposition["attached_pic"] == 1 {
			continue
		}
		return s
	}
	return nil
}

func buildDescriptor(s *ffprobeStream) *StreamDescriptor {
	codec := strings.ToLower(strings.TrimSpace(s.CodecName))
	if codec == "" {
		codec = "unknown"
	}

	depth := bitDepth(s)

	return &StreamDescriptor{
		Codec:          codec,
		PixFmt:         s.PixFmt,
		ColorPrimaries: s.ColorPrimaries,
		ColorTransfer:  s.ColorTransfer,
		ColorSpace:     s.ColorSpace,
		BitDepth:       depth,
		IsHEVC:         codec == "hevc" || codec == "h265",
		Is10BitOrMore:  depth.Set && depth.Value >= 10,
		DolbyVision:    dolbyVision(s.SideDataList),
	}
}
