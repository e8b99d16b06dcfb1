package report

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbcalo/bad-movie-finder/internal/classify"
	"github.com/dbcalo/bad-movie-finder/internal/probe"
)

func problemRecord() classify.Record {
	return classify.Record{
		Path: "/media/Movie.2160p.DV.mkv",
		Stream: probe.StreamDescriptor{
			Codec:          "hevc",
			PixFmt:         "yuv420p10le",
			ColorPrimaries: "bt2020",
			ColorTransfer:  "smpte2084",
			ColorSpace:     "bt2020nc",
			BitDepth:       probe.Int(10),
			IsHEVC:         true,
			Is10BitOrMore:  true,
			DolbyVision: probe.DolbyVisionInfo{
				Present:                 true,
				Profile:                 probe.Int(8),
				ELPresent:               probe.Int(0),
				BLPresent:               probe.Int(1),
				BLSignalCompatibilityID: probe.Int(1),
			},
		},
		Problematic: true,
	}
}

func sparseRecord() classify.Record {
	return classify.Record{
		Path: "/media/mystery.ts",
		Stream: probe.StreamDescriptor{
			Codec:  "hevc",
			IsHEVC: true,
		},
	}
}

// --- Console ---

func TestConsole_ProblemLine(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, false).Line(problemRecord())

	assert.Equal(t,
		"[PROBLEM-DV-P8-HEVC] /media/Movie.2160p.DV.mkv (codec=hevc, bit_depth=10, is_dolby_vision=true, dv_profile=8)\n",
		buf.String())
}

func TestConsole_SparseLineUsesSentinels(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf, false).Line(sparseRecord())

	assert.Equal(t,
		"[OTHER] /media/mystery.ts (codec=hevc, bit_depth=unknown, is_dolby_vision=false, dv_profile=-)\n",
		buf.String())
}

func TestConsole_ColorOnlyStylesTag(t *testing.T) {
	var plain, colored bytes.Buffer
	NewConsole(&plain, false).Line(problemRecord())
	NewConsole(&colored, true).Line(problemRecord())

	// Styling may be a no-op without a TTY, but the payload after the tag
	// must be identical either way.
	assert.Contains(t, colored.String(), "/media/Movie.2160p.DV.mkv (codec=hevc")
	assert.Contains(t, plain.String(), "[PROBLEM-DV-P8-HEVC]")
}

// --- CSV ---

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, []classify.Record{problemRecord(), sparseRecord()}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Columns, rows[0])

	full := rows[1]
	assert.Equal(t, "/media/Movie.2160p.DV.mkv", full[0])
	assert.Equal(t, "hevc", full[1])
	assert.Equal(t, "yuv420p10le", full[2])
	assert.Equal(t, "10", full[3])
	assert.Equal(t, "bt2020", full[4])
	assert.Equal(t, "True", full[7])  // is_hevc
	assert.Equal(t, "True", full[9])  // is_dolby_vision
	assert.Equal(t, "8", full[10])    // dv_profile
	assert.Equal(t, "0", full[11])    // el_present_flag
	assert.Equal(t, "1", full[12])    // bl_present_flag
	assert.Equal(t, "True", full[14]) // is_problematic

	sparse := rows[2]
	assert.Equal(t, "unknown", sparse[2], "pix_fmt sentinel")
	assert.Equal(t, "unknown", sparse[3], "bit_depth sentinel")
	assert.Equal(t, "", sparse[4], "absent color stays empty")
	assert.Equal(t, "False", sparse[9])
	assert.Equal(t, "", sparse[10], "absent dv_profile stays empty")
	assert.Equal(t, "False", sparse[14])
}

func TestWriteCSV_OverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))
	require.NoError(t, WriteCSV(path, []classify.Record{sparseRecord()}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "stale")
}

// --- SQLite ---

func TestWriteSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, WriteSQLite(path, []classify.Record{problemRecord(), sparseRecord()}))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM media_files`).Scan(&n))
	assert.Equal(t, 2, n)

	var problematic int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM media_files WHERE is_problematic = 1`).Scan(&problematic))
	assert.Equal(t, 1, problematic)

	var depth sql.NullInt64
	require.NoError(t, db.QueryRow(
		`SELECT bit_depth FROM media_files WHERE path = ?`, "/media/mystery.ts").Scan(&depth))
	assert.False(t, depth.Valid, "absent bit depth should be NULL")
}
