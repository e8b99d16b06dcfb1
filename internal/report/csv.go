package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/dbcalo/bad-movie-finder/internal/classify"
)

// Columns is the fixed export column order, shared by the CSV and SQLite
// writers. Reordering or renaming breaks downstream spreadsheet filters.
var Columns = []string{
	"path",
	"codec",
	"pix_fmt",
	"bit_depth",
	"color_primaries",
	"color_transfer",
	"color_space",
	"is_hevc",
	"is_10bit_or_more",
	"is_dolby_vision",
	"dv_profile",
	"el_present_flag",
	"bl_present_flag",
	"dv_bl_signal_compatibility_id",
	"is_problematic",
}

// WriteCSV writes one row per record plus a header row to path,
// overwriting any previous artifact.
func WriteCSV(path string, records []classify.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(csvRow(rec)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

// csvRow renders a record with spreadsheet-friendly sentinels: booleans as
// True/False, unknown bit depth as "unknown", and absent DV fields as
// empty cells.
func csvRow(rec classify.Record) []string {
	sd := rec.Stream
	return []string{
		rec.Path,
		sd.Codec,
		displayPixFmt(sd.PixFmt),
		sd.BitDepth.Or("unknown"),
		sd.ColorPrimaries,
		sd.ColorTransfer,
		sd.ColorSpace,
		displayBool(sd.IsHEVC),
		displayBool(sd.Is10BitOrMore),
		displayBool(sd.DolbyVision.Present),
		sd.DolbyVision.Profile.Or(""),
		sd.DolbyVision.ELPresent.Or(""),
		sd.DolbyVision.BLPresent.Or(""),
		sd.DolbyVision.BLSignalCompatibilityID.Or(""),
		displayBool(rec.Problematic),
	}
}

func displayPixFmt(pf string) string {
	if pf == "" {
		return "unknown"
	}
	return pf
}

func displayBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
