package classify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbcalo/bad-movie-finder/internal/probe"
)

func hevcDV(profile int) *probe.StreamDescriptor {
	return &probe.StreamDescriptor{
		Codec:         "hevc",
		PixFmt:        "yuv420p10le",
		BitDepth:      probe.Int(10),
		IsHEVC:        true,
		Is10BitOrMore: true,
		DolbyVision: probe.DolbyVisionInfo{
			Present: true,
			Profile: probe.Int(profile),
		},
	}
}

func TestClassify_Profile8IsProblematic(t *testing.T) {
	rec, relevant := Classify("/media/a.mkv", hevcDV(8))
	require.True(t, relevant)
	assert.True(t, rec.Problematic)
	assert.Equal(t, "/media/a.mkv", rec.Path)
	assert.Equal(t, "PROBLEM-DV-P8-HEVC", rec.Tag())
}

func TestClassify_OtherDVProfilesAreNotProblematic(t *testing.T) {
	for _, p := range []int{4, 5, 7} {
		rec, relevant := Classify("/media/a.mkv", hevcDV(p))
		require.True(t, relevant, "profile %d", p)
		assert.False(t, rec.Problematic, "profile %d", p)
		assert.Equal(t, fmt.Sprintf("DV-P%d", p), rec.Tag())
	}
}

func TestClassify_DVWithoutHEVCIsNotProblematic(t *testing.T) {
	sd := hevcDV(8)
	sd.Codec = "av1"
	sd.IsHEVC = false

	rec, relevant := Classify("/media/a.mkv", sd)
	require.True(t, relevant)
	assert.False(t, rec.Problematic)
	assert.Equal(t, "DV-P8", rec.Tag())
}

func TestClassify_DVWithUnknownProfile(t *testing.T) {
	sd := hevcDV(8)
	sd.DolbyVision.Profile = probe.OptInt{}

	rec, relevant := Classify("/media/a.mkv", sd)
	require.True(t, relevant)
	assert.False(t, rec.Problematic, "unset profile must not count as 8")
	assert.Equal(t, "DV-P?", rec.Tag())
}

func TestClassify_HEVC10BitWithoutDV(t *testing.T) {
	sd := hevcDV(8)
	sd.DolbyVision = probe.DolbyVisionInfo{}

	rec, relevant := Classify("/media/a.mkv", sd)
	require.True(t, relevant)
	assert.False(t, rec.Problematic)
	assert.Equal(t, "HEVC-10bit", rec.Tag())
}

func TestClassify_TenBitNonHEVC(t *testing.T) {
	sd := &probe.StreamDescriptor{
		Codec:         "vp9",
		PixFmt:        "yuv420p10le",
		BitDepth:      probe.Int(10),
		Is10BitOrMore: true,
	}

	rec, relevant := Classify("/media/a.webm", sd)
	require.True(t, relevant)
	assert.False(t, rec.Problematic)
	assert.Equal(t, "OTHER", rec.Tag())
}

func TestClassify_EightBitHEVCIsRelevant(t *testing.T) {
	sd := &probe.StreamDescriptor{
		Codec:    "hevc",
		PixFmt:   "yuv420p",
		BitDepth: probe.Int(8),
		IsHEVC:   true,
	}

	rec, relevant := Classify("/media/a.mkv", sd)
	require.True(t, relevant)
	assert.False(t, rec.Problematic)
	assert.Equal(t, "OTHER", rec.Tag())
}

func TestClassify_IrrelevantFileIsDropped(t *testing.T) {
	sd := &probe.StreamDescriptor{
		Codec:  "h264",
		PixFmt: "yuv420p",
	}

	_, relevant := Classify("/media/old.mp4", sd)
	assert.False(t, relevant)
}
