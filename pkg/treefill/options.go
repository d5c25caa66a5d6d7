package treefill

import (
	"log/slog"

	"github.com/collidersim/treefill/pkg/treefill/observability"
)

// writerConfig holds configuration for a Writer.
type writerConfig struct {
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
	tracing     bool
	parallel    int
	inPlaceSort bool
	strict      bool
	runID       string
}

// defaultWriterConfig returns the default writer configuration.
func defaultWriterConfig() writerConfig {
	return writerConfig{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
		strict:  true,
	}
}

// Option configures a Writer.
type Option func(*writerConfig)

// WithLogger sets the structured logger for diagnostics.
// Default: nil (silent).
func WithLogger(logger *slog.Logger) Option {
	return func(c *writerConfig) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
// Default: no-op.
//
// Example:
//
//	writer, err := treefill.NewWriter(store, specs,
//	    treefill.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(c *writerConfig) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracing enables per-event and per-branch trace spans using the given
// span manager.
// Default: disabled.
func WithTracing(s observability.SpanManager) Option {
	return func(c *writerConfig) {
		if s != nil {
			c.spans = s
			c.tracing = true
		}
	}
}

// WithParallel converts branch groups concurrently, at most limit groups at
// a time (0 means no limit beyond one goroutine per group). Branches sharing
// an input collection always stay in one group and run sequentially in
// registration order, so a sorting converter never overlaps another reader
// of its collection.
// Default: sequential.
func WithParallel(limit int) Option {
	return func(c *writerConfig) {
		c.parallel = limit
		if limit <= 0 {
			c.parallel = -1
		}
	}
}

// WithInPlaceSort controls how the Photon, Electron, Muon, and Jet
// converters order their input. When enabled, the shared input collection is
// sorted in place, which permanently reorders it for every other branch (and
// any other consumer) reading the same collection; this reproduces the
// legacy behavior bit for bit. When disabled (the default), the converter
// sorts a private view and the collection is left untouched.
func WithInPlaceSort(enabled bool) Option {
	return func(c *writerConfig) {
		c.inPlaceSort = enabled
	}
}

// WithStrictValidation controls whether a track consistency discrepancy
// fails the event conversion. Enabled by default; production runs that must
// not abort on producer bugs may disable it, in which case discrepancies
// are still detectable via CheckTrack but records are emitted regardless.
func WithStrictValidation(enabled bool) Option {
	return func(c *writerConfig) {
		c.strict = enabled
	}
}

// WithRunID sets the run identifier used in logs, metrics, and spans.
// Default: a generated UUID.
func WithRunID(id string) Option {
	return func(c *writerConfig) {
		c.runID = id
	}
}
