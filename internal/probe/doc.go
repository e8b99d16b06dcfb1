// Package probe provides ffprobe-based media inspection and the canonical
// StreamDescriptor for the primary video stream of a file. A single JSON
// call per file extracts the codec, pixel format, color metadata, inferred
// bit depth, and Dolby Vision side-data fields.
//
// Optional metadata is pervasive in ffprobe output: numeric fields arrive
// as numbers or as string-encoded numbers, and may be missing entirely.
// OptInt models these explicitly, and every extraction step degrades to an
// absent value instead of failing, so a sparse or partially malformed
// stream never aborts a scan.
package probe
