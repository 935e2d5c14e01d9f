package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Do sends the request and accepts only the given status codes; any other
// status yields a *ResponseError. Every call is reported to the observer,
// wrapped in a client span and, on failure, logged at error level.
func (r *Request) Do(ctx context.Context, statuses ...int) (*Response, error) {
	start := time.Now()

	ctx, span := r.client.startSpan(ctx, r)
	defer span.End()

	resp, err := r.send(ctx, statuses)

	metadata := map[string]interface{}{"method": r.method}
	if r.page > 0 {
		metadata["page"] = r.page
	}
	var size int64
	status := 0
	if resp != nil {
		status = resp.StatusCode()
		size = resp.Size()
	} else if code := StatusCode(err); code != 0 {
		status = code
	}
	if status != 0 {
		metadata["status_code"] = status
		span.SetAttributes(map[string]interface{}{"http.response.status_code": status})
	}

	if err != nil {
		span.RecordError(err)
		r.client.logError(ctx, r, err, status)
	}

	r.client.observeOperation(r.operation, r.resource, r.subResource, time.Since(start), err, size, metadata)
	return resp, err
}

func (r *Request) send(ctx context.Context, statuses []int) (*Response, error) {
	if r.err != nil {
		return nil, r.err
	}

	req, err := r.build(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := r.client.pl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: sending request: %w", r.operation, err)
	}

	if !runtime.HasStatusCode(raw, statuses...) {
		return nil, newResponseError(r.operation, raw)
	}
	return &Response{operation: r.operation, Raw: raw}, nil
}
