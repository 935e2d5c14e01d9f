package tracer

import (
	"context"
)

// Tracer creates spans around Azure REST operations and moves W3C trace
// context in and out of request headers.
//
// This interface is implemented by the concrete *TracerClient type.
type Tracer interface {
	// StartSpan creates a new span with the given name, child of any span in
	// ctx. Always call span.End() when the operation completes.
	StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// GetCarrier returns the trace context of ctx as header name/value pairs
	// ("traceparent", "tracestate", "baggage").
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext continues a trace from header name/value pairs.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span is a single traced operation.
type Span interface {
	// End completes the span.
	//
	//   ctx, span := tracer.StartSpan(ctx, "appconfiguration.get_key_value")
	//   defer span.End()
	End()

	// SetAttributes adds attributes. Strings, ints, int64, float64 and bool
	// keep their type; anything else is stored with fmt.Sprint.
	//
	//   span.SetAttributes(map[string]interface{}{
	//     "http.response.status_code": 200,
	//     "azure.key": "app:color",
	//   })
	SetAttributes(attrs map[string]interface{})

	// RecordError records err and marks the span as failed.
	RecordError(err error)
}
