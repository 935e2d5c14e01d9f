package tracer

import (
	traceSpan "go.opentelemetry.io/otel/trace"
)

// SpanOption customizes a span created by StartSpan.
type SpanOption func(*spanOptions)

type spanOptions struct {
	kind  traceSpan.SpanKind
	attrs map[string]interface{}
}

// WithClientKind marks the span as an outbound client call. Operation spans
// started by the Azure clients use it.
func WithClientKind() SpanOption {
	return func(o *spanOptions) { o.kind = traceSpan.SpanKindClient }
}

// WithAttributes sets attributes at span start so samplers can see them.
func WithAttributes(attrs map[string]interface{}) SpanOption {
	return func(o *spanOptions) {
		if o.attrs == nil {
			o.attrs = make(map[string]interface{}, len(attrs))
		}
		for k, v := range attrs {
			o.attrs[k] = v
		}
	}
}
