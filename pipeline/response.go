package pipeline

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// Response is a response whose status the operation accepted.
type Response struct {
	operation string

	// Raw is the underlying response. Its body has already been read and
	// can be retrieved again with runtime.Payload.
	Raw *http.Response
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.Raw.StatusCode
}

// Header returns the first value of the named response header.
func (r *Response) Header(name string) string {
	return r.Raw.Header.Get(name)
}

// HeaderTime parses an HTTP date header. A missing or malformed header
// yields nil.
func (r *Response) HeaderTime(name string) *time.Time {
	v := r.Raw.Header.Get(name)
	if v == "" {
		return nil
	}
	t, err := http.ParseTime(v)
	if err != nil {
		return nil
	}
	return &t
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := runtime.UnmarshalAsJSON(r.Raw, v); err != nil {
		return fmt.Errorf("%s: decoding response: %w", r.operation, err)
	}
	return nil
}

// Size returns the number of body bytes received.
func (r *Response) Size() int64 {
	body, err := runtime.Payload(r.Raw)
	if err != nil {
		return 0
	}
	return int64(len(body))
}
