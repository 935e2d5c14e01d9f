package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/aalemi-dev/azure-rest-lab/observability"
	"github.com/aalemi-dev/azure-rest-lab/tracer"
)

// observeOperation notifies the observer about an operation if one is configured.
//
// Notes:
//   - resource: store host for data-plane calls, lock scope for ARM calls
//   - subResource: key or lock name
func (c *Client) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   c.component,
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}

func (c *Client) startSpan(ctx context.Context, r *Request) (context.Context, tracer.Span) {
	if c.tracer == nil {
		return ctx, noopSpan{}
	}
	attrs := map[string]interface{}{
		"az.namespace":        c.component,
		"http.request.method": r.method,
		"server.address":      c.endpoint.Host,
	}
	if r.subResource != "" {
		attrs["azure.resource"] = r.subResource
	}
	return c.tracer.StartSpan(ctx, c.component+"."+r.operation,
		tracer.WithClientKind(),
		tracer.WithAttributes(attrs),
	)
}

func (c *Client) logError(ctx context.Context, r *Request, err error, status int) {
	if c.logger == nil {
		return
	}
	// Callers routinely probe for absence; a 404 is not worth an error entry.
	if errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) {
		c.logger.DebugWithContext(ctx, "azure operation failed", err, c.logFields(r, status))
		return
	}
	c.logger.ErrorWithContext(ctx, "azure operation failed", err, c.logFields(r, status))
}

func (c *Client) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger == nil {
		return
	}
	c.logger.DebugWithContext(ctx, msg, nil, fields)
}

func (c *Client) logFields(r *Request, status int) map[string]interface{} {
	fields := map[string]interface{}{
		"component": c.component,
		"operation": r.operation,
		"resource":  r.resource,
	}
	if r.subResource != "" {
		fields["sub_resource"] = r.subResource
	}
	if status != 0 {
		fields["status_code"] = status
	}
	return fields
}

type noopSpan struct{}

func (noopSpan) End()                                 {}
func (noopSpan) SetAttributes(map[string]interface{}) {}
func (noopSpan) RecordError(error)                    {}
