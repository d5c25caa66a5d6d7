// Package observability provides structured logging, metrics, and tracing
// for the conversion engine.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import "log/slog"

// LogEventStart logs the start of one event conversion pass.
func LogEventStart(logger *slog.Logger, runID string, event uint64) {
	if logger == nil {
		return
	}
	logger.Debug("event conversion starting",
		slog.String("run_id", runID),
		slog.Uint64("event", event),
	)
}

// LogEventComplete logs successful completion of an event conversion pass.
func LogEventComplete(logger *slog.Logger, runID string, event uint64, durationMs float64, records int) {
	if logger == nil {
		return
	}
	logger.Debug("event conversion completed",
		slog.String("run_id", runID),
		slog.Uint64("event", event),
		slog.Float64("duration_ms", durationMs),
		slog.Int("records_emitted", records),
	)
}

// LogEventError logs a failed event conversion pass.
func LogEventError(logger *slog.Logger, runID string, event uint64, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("event conversion failed",
		slog.String("run_id", runID),
		slog.Uint64("event", event),
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogUnknownClass logs a configuration triple naming an unknown schema class.
// The triple is dropped; processing of the remaining triples continues.
func LogUnknownClass(logger *slog.Logger, branch, class string) {
	if logger == nil {
		return
	}
	logger.Warn("unknown output class, branch dropped",
		slog.String("branch", branch),
		slog.String("class", class),
	)
}

// LogDuplicateBranch logs a configuration triple re-targeting an existing
// branch name. The later binding wins.
func LogDuplicateBranch(logger *slog.Logger, branch string) {
	if logger == nil {
		return
	}
	logger.Warn("duplicate branch name, later binding overwrites earlier",
		slog.String("branch", branch),
	)
}

// LogMissingCollection logs an input collection that could not be resolved
// on the current event. The branch is skipped for this event.
func LogMissingCollection(logger *slog.Logger, branch, collection string) {
	if logger == nil {
		return
	}
	logger.Warn("input collection not found, branch skipped",
		slog.String("branch", branch),
		slog.String("collection", collection),
	)
}
