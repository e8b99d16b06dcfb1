// Package pipeline orchestrates file discovery, per-file probing and
// classification, streaming console output, and the end-of-scan export.
package pipeline

import (
	"context"
	"os"
	"sync"

	"github.com/dbcalo/bad-movie-finder/internal/classify"
	"github.com/dbcalo/bad-movie-finder/internal/config"
	"github.com/dbcalo/bad-movie-finder/internal/logging"
	"github.com/dbcalo/bad-movie-finder/internal/probe"
	"github.com/dbcalo/bad-movie-finder/internal/report"
)

// Files smaller than this are treated as corrupt stubs and skipped before
// probing.
const minFileSize = 1000

// Prober is the probe collaborator: one call per file, returning the
// primary video stream descriptor, whether a video stream exists, and any
// process or parse failure.
type Prober interface {
	Probe(ctx context.Context, path string) (*probe.StreamDescriptor, bool, error)
}

// Runner drives the scan. The prober, console sink, and export function
// are injected so the orchestrator is pure composition over collaborators.
type Runner struct {
	cfg     *config.Config
	log     *logging.Logger
	prober  Prober
	console *report.Console
	export  func(config.ExportFormat, string, []classify.Record) error
}

// New returns a Runner wired to the real export writers and a console on
// stdout.
func New(cfg *config.Config, log *logging.Logger, prober Prober) *Runner {
	return &Runner{
		cfg:     cfg,
		log:     log,
		prober:  prober,
		console: report.NewConsole(os.Stdout, log.ColorEnabled()),
		export:  report.Export,
	}
}

// probeOutcome carries one file's journey through the pipeline back to the
// ordered emitter.
type probeOutcome struct {
	path     string
	rec      classify.Record
	relevant bool
	noVideo  bool
	skipMsg  string // non-empty: skipped before probing
	err      error
}

// Run scans every candidate under cfg.Root. Individual probe failures are
// warnings, never fatal; the returned error covers discovery and export
// failures only.
func (r *Runner) Run(ctx context.Context) (ScanStats, error) {
	var stats ScanStats

	files, err := Discover(r.cfg.Root)
	if err != nil {
		return stats, err
	}
	stats.Candidates = len(files)

	r.log.Info("Scanning: %s", r.cfg.Root)
	r.log.Info("Found %d candidate files", stats.Candidates)
	if r.cfg.Workers > 1 {
		r.log.Debug("Probing with %d workers", r.cfg.Workers)
	}

	var records []classify.Record
	interrupted := false
	for outcome := range r.outcomes(ctx, files) {
		// On cancellation keep draining so the workers can finish, but
		// stop processing results.
		if ctx.Err() != nil {
			if !interrupted {
				r.log.Warn("Interrupted")
				interrupted = true
			}
			continue
		}

		switch {
		case outcome.skipMsg != "":
			r.log.Warn("%s: %s", outcome.skipMsg, outcome.path)
			stats.ProbeFailures++
		case outcome.err != nil:
			r.log.Warn("Cannot probe file, skipping: %v", outcome.err)
			stats.ProbeFailures++
		case outcome.noVideo:
			r.log.Debug("No video stream, skipping: %s", outcome.path)
			stats.NoVideo++
			stats.Scanned++
		case !outcome.relevant:
			r.log.Debug("Not HDR/DV/HEVC related, skipping: %s", outcome.path)
			stats.Irrelevant++
			stats.Scanned++
		default:
			stats.Scanned++
			stats.Matched++
			if outcome.rec.Problematic {
				stats.Problematic++
			}
			r.console.Line(outcome.rec)
			records = append(records, outcome.rec)
		}
	}

	if len(records) == 0 {
		r.log.Info("Done. No HEVC, 10-bit+, or DV-tagged files detected.")
		return stats, nil
	}

	if err := r.export(r.cfg.Format, r.cfg.OutputPath, records); err != nil {
		return stats, err
	}

	r.log.Success("Done. Found %d HEVC/10-bit/DV-related files (%d high risk).",
		stats.Matched, stats.Problematic)
	r.log.Success("Details written to: %s", r.cfg.OutputPath)
	r.log.Info("Filter is_problematic = True to see high-risk titles.")
	logSkips(r.log, &stats)
	return stats, nil
}

// outcomes probes files with a bounded worker pool and yields outcomes in
// discovery order, so console output stays deterministic regardless of
// worker count. Each file is independent: one failure never cancels the
// rest.
func (r *Runner) outcomes(ctx context.Context, files []string) <-chan probeOutcome {
	slots := make([]chan probeOutcome, len(files))
	for i := range slots {
		slots[i] = make(chan probeOutcome, 1)
	}

	sem := make(chan struct{}, r.cfg.Workers)
	var wg sync.WaitGroup
	for i, path := range files {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			slots[i] <- r.probeOne(ctx, path)
		}(i, path)
	}

	out := make(chan probeOutcome)
	go func() {
		defer close(out)
		for i := range slots {
			out <- <-slots[i]
		}
		wg.Wait()
	}()
	return out
}

// probeOne handles one file: validate, probe, classify.
func (r *Runner) probeOne(ctx context.Context, path string) probeOutcome {
	o := probeOutcome{path: path}

	if ctx.Err() != nil {
		o.err = ctx.Err()
		return o
	}

	fi, err := os.Stat(path)
	if err != nil {
		o.skipMsg = "File not readable"
		return o
	}
	if fi.Size() < minFileSize {
		o.skipMsg = "File too small (possibly corrupt)"
		return o
	}

	sd, hasVideo, err := r.prober.Probe(ctx, path)
	if err != nil {
		o.err = err
		return o
	}
	if !hasVideo {
		o.noVideo = true
		return o
	}

	o.rec, o.relevant = classify.Classify(path, sd)
	return o
}

func logSkips(log *logging.Logger, stats *ScanStats) {
	if stats.ProbeFailures > 0 {
		log.Warn("%d files could not be probed", stats.ProbeFailures)
	}
	if stats.NoVideo > 0 {
		log.Debug("%d files had no video stream", stats.NoVideo)
	}
	if stats.Irrelevant > 0 {
		log.Debug("%d files were not HDR/DV/HEVC related", stats.Irrelevant)
	}
}
