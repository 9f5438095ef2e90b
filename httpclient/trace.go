package httpclient

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// scope is the instrumentation scope name for OpenTelemetry.
const scope = "github.com/isokit/isokit/httpclient"

// startSpan opens a client span for one dispatch. The span is recorded
// against the globally registered tracer provider; with none registered this
// is a no-op.
func startSpan(ctx context.Context, method, url string, env Environment) (context.Context, trace.Span) {
	return otel.Tracer(scope).Start(ctx, "HTTP "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", url),
			attribute.String("client.environment", string(env)),
		),
	)
}

// endSpan records the dispatch outcome and closes the span.
func endSpan(span trace.Span, status int, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return
	}
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= 400 {
		span.SetStatus(codes.Error, "")
	}
	span.End()
}
