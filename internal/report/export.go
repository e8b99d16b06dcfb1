package report

import (
	"github.com/dbcalo/bad-movie-finder/internal/classify"
	"github.com/dbcalo/bad-movie-finder/internal/config"
)

// Export writes the scan's single export artifact in the configured
// format. Callers skip the call entirely when no records matched.
func Export(format config.ExportFormat, path string, records []classify.Record) error {
	if format == config.FormatSQLite {
		return WriteSQLite(path, records)
	}
	return WriteCSV(path, records)
}
