package observability

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the treefill tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("treefill")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartEventSpan starts a span for one event conversion pass.
	// Returns the context with span and the span itself.
	StartEventSpan(ctx context.Context, runID string, event uint64) (context.Context, trace.Span)

	// StartBranchSpan starts a span for one branch conversion.
	// The branch span should be a child of the event span.
	StartBranchSpan(ctx context.Context, branch, class string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartEventSpan starts a span for one event conversion pass.
func (m *otelSpanManager) StartEventSpan(ctx context.Context, runID string, event uint64) (context.Context, trace.Span) {
	return tracer.Start(ctx, "treefill.event",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("event", strconv.FormatUint(event, 10)),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartBranchSpan starts a span for one branch conversion.
func (m *otelSpanManager) StartBranchSpan(ctx context.Context, branch, class string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "treefill.branch."+branch,
		trace.WithAttributes(
			attribute.String("branch", branch),
			attribute.String("class", class),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
