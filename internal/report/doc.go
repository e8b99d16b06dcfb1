// Package report renders classified records at the output boundary: the
// streaming console line per matched file and the end-of-scan export
// artifact (CSV or SQLite). Absent optional values are converted to
// display sentinels here and nowhere else; the classifier and probe layers
// only ever see explicit optionals.
package report
