package report

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/dbcalo/bad-movie-finder/internal/classify"
	"github.com/dbcalo/bad-movie-finder/internal/probe"
)

const createMediaFiles = `
CREATE TABLE media_files (
	path                          TEXT NOT NULL,
	codec                         TEXT NOT NULL,
	pix_fmt                       TEXT NOT NULL,
	bit_depth                     INTEGER,
	color_primaries               TEXT NOT NULL,
	color_transfer                TEXT NOT NULL,
	color_space                   TEXT NOT NULL,
	is_hevc                       INTEGER NOT NULL,
	is_10bit_or_more              INTEGER NOT NULL,
	is_dolby_vision               INTEGER NOT NULL,
	dv_profile                    INTEGER,
	el_present_flag               INTEGER,
	bl_present_flag               INTEGER,
	dv_bl_signal_compatibility_id INTEGER,
	is_problematic                INTEGER NOT NULL
)`

// WriteSQLite writes the records to a fresh SQLite database at path, one
// row per record in a media_files table with the same columns as the CSV
// export. Any previous artifact at path is replaced.
func WriteSQLite(path string, records []classify.Record) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace sqlite export: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite export: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createMediaFiles); err != nil {
		return fmt.Errorf("create media_files: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO media_files VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		sd := rec.Stream
		dv := sd.DolbyVision
		_, err := stmt.Exec(
			rec.Path,
			sd.Codec,
			displayPixFmt(sd.PixFmt),
			nullableInt(sd.BitDepth),
			sd.ColorPrimaries,
			sd.ColorTransfer,
			sd.ColorSpace,
			sd.IsHEVC,
			sd.Is10BitOrMore,
			dv.Present,
			nullableInt(dv.Profile),
			nullableInt(dv.ELPresent),
			nullableInt(dv.BLPresent),
			nullableInt(dv.BLSignalCompatibilityID),
			rec.Problematic,
		)
		if err != nil {
			return fmt.Errorf("insert %q: %w", rec.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	return db.Close()
}

func nullableInt(o probe.OptInt) any {
	if !o.Set {
		return nil
	}
	return o.Value
}
