package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

type spanImpl struct {
	span traceSpan.Span
}

func (s *spanImpl) End() {
	s.span.End()
}

func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}
	s.span.SetAttributes(toAttributes(attrs)...)
}

func (s *spanImpl) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func toAttributes(attrs map[string]interface{}) []attribute.KeyValue {
	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		case []string:
			attributes = append(attributes, attribute.StringSlice(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}
	return attributes
}

// StartSpan creates a new span named name. The span is a child of any span
// already carried by ctx.
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "locks.management_locks.get_at_subscription_level",
//	    tracer.WithClientKind(),
//	    tracer.WithAttributes(map[string]interface{}{"azure.lock.name": name}),
//	)
//	defer span.End()
func (t *TracerClient) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span) {
	var o spanOptions
	for _, opt := range opts {
		opt(&o)
	}

	startOpts := []traceSpan.SpanStartOption{traceSpan.WithSpanKind(o.kind)}
	if len(o.attrs) > 0 {
		startOpts = append(startOpts, traceSpan.WithAttributes(toAttributes(o.attrs)...))
	}

	ctx, otSpan := t.tracer.Tracer(instrumentationName).Start(ctx, name, startOpts...)
	return ctx, &spanImpl{span: otSpan}
}

// GetCarrier returns the W3C trace context headers for ctx. The pipeline's
// trace policy copies them onto every outgoing Azure request.
func (t *TracerClient) GetCarrier(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	t.textMap().Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext returns a copy of ctx continuing the trace described by
// carrier.
func (t *TracerClient) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	return t.textMap().Extract(ctx, propagation.MapCarrier(carrier))
}

func (t *TracerClient) textMap() propagation.TextMapPropagator {
	if t.propagator == nil {
		return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	}
	return t.propagator
}
