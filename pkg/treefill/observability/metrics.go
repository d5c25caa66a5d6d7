package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records conversion engine metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEvent records one event conversion pass with its duration and
	// error status.
	RecordEvent(ctx context.Context, success bool, duration time.Duration)

	// RecordBranch records one branch conversion with its duration and
	// error status.
	RecordBranch(ctx context.Context, branch, class string, duration time.Duration, err error)

	// RecordRecords records the number of records a branch emitted.
	RecordRecords(ctx context.Context, class string, count int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	events         metric.Int64Counter
	eventLatency   metric.Float64Histogram
	branchRuns     metric.Int64Counter
	branchLatency  metric.Float64Histogram
	branchErrors   metric.Int64Counter
	recordsEmitted metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("treefill")

	events, err := meter.Int64Counter("treefill.events",
		metric.WithDescription("Number of event conversion passes"),
	)
	if err != nil {
		return nil, err
	}

	eventLatency, err := meter.Float64Histogram("treefill.event.latency_ms",
		metric.WithDescription("Event conversion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	branchRuns, err := meter.Int64Counter("treefill.branch.conversions",
		metric.WithDescription("Number of branch conversions"),
	)
	if err != nil {
		return nil, err
	}

	branchLatency, err := meter.Float64Histogram("treefill.branch.latency_ms",
		metric.WithDescription("Branch conversion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	branchErrors, err := meter.Int64Counter("treefill.branch.errors",
		metric.WithDescription("Number of branch conversion errors"),
	)
	if err != nil {
		return nil, err
	}

	recordsEmitted, err := meter.Int64Counter("treefill.records",
		metric.WithDescription("Number of records emitted"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		events:         events,
		eventLatency:   eventLatency,
		branchRuns:     branchRuns,
		branchLatency:  branchLatency,
		branchErrors:   branchErrors,
		recordsEmitted: recordsEmitted,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEvent records one event conversion pass.
func (m *otelMetrics) RecordEvent(ctx context.Context, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", success),
	}
	m.events.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.eventLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}

// RecordBranch records one branch conversion.
func (m *otelMetrics) RecordBranch(ctx context.Context, branch, class string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("branch", branch),
		attribute.String("class", class),
	}
	m.branchRuns.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.branchLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if err != nil {
		m.branchErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordRecords records emitted record counts.
func (m *otelMetrics) RecordRecords(ctx context.Context, class string, count int64) {
	attrs := []attribute.KeyValue{
		attribute.String("class", class),
	}
	m.recordsEmitted.Add(ctx, count, metric.WithAttributes(attrs...))
}
