package pipeline

// ScanStats tracks aggregate counters across one scan run.
type ScanStats struct {
	Candidates    int // files with a recognized extension
	Scanned       int // files that reached classification
	Matched       int // relevant files (reported and exported)
	Problematic   int // matched files flagged high risk
	NoVideo       int // probed fine but had no video stream
	Irrelevant    int // video stream cleared no relevance bar
	ProbeFailures int // probe process or JSON failures (skipped)
}
