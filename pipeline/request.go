package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/gorilla/schema"
)

// CSV is a list query parameter sent comma-joined ("$Select=key,label").
type CSV []string

var queryEncoder = func() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.RegisterEncoder(CSV{}, func(v reflect.Value) string {
		return strings.Join(v.Interface().(CSV), ",")
	})
	return enc
}()

// Request is one operation being built. Setters are chainable and ignore
// empty values, so optional parameters can be passed through unconditionally.
// The first setter error is kept and returned by Do.
type Request struct {
	client    *Client
	operation string
	method    string

	path     string
	absolute *url.URL

	resource    string
	subResource string

	query  url.Values
	header http.Header

	body        any
	contentType string

	// page is the 1-based page number for list operations.
	page int

	err error
}

// NewRequest starts a request for operation. path is appended to the
// endpoint as given; callers escape path parameters with PathEscape.
func (c *Client) NewRequest(operation, method, path string) *Request {
	return &Request{
		client:    c,
		operation: operation,
		method:    method,
		path:      path,
		resource:  c.Host(),
		query:     url.Values{},
		header:    http.Header{},
	}
}

// PathEscape escapes a single path segment.
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}

// Operation returns the operation name.
func (r *Request) Operation() string { return r.operation }

// Resource sets the resource and sub-resource reported to observers.
func (r *Request) Resource(resource, subResource string) *Request {
	if resource != "" {
		r.resource = resource
	}
	r.subResource = subResource
	return r
}

// Query sets a query parameter unless value is empty.
func (r *Request) Query(key, value string) *Request {
	if value != "" {
		r.query.Set(key, value)
	}
	return r
}

// QueryStruct encodes v with its `schema` struct tags.
func (r *Request) QueryStruct(v any) *Request {
	if r.err != nil || v == nil {
		return r
	}
	if err := queryEncoder.Encode(v, r.query); err != nil {
		r.err = fmt.Errorf("%s: encoding query: %w", r.operation, err)
	}
	return r
}

// Header sets a header unless value is empty.
func (r *Request) Header(key, value string) *Request {
	if value != "" {
		r.header.Set(key, value)
	}
	return r
}

// HeaderTime sets a header to t in HTTP date format unless t is zero.
func (r *Request) HeaderTime(key string, t time.Time) *Request {
	if !t.IsZero() {
		r.header.Set(key, t.UTC().Format(http.TimeFormat))
	}
	return r
}

// JSONBody sets v as JSON request body. contentType overrides
// "application/json" when not empty.
func (r *Request) JSONBody(v any, contentType string) *Request {
	r.body = v
	r.contentType = contentType
	return r
}

// Fail records err; Do will return it without sending anything.
func (r *Request) Fail(err error) *Request {
	if r.err == nil && err != nil {
		r.err = err
	}
	return r
}

// ContinueAt derives the request for the page behind nextLink.
//
// The link is resolved against the endpoint root: a relative link keeps the
// endpoint scheme and host, an absolute one is used as-is. api-version is
// added only when the link lacks it. Query parameters of r are not carried
// over since the link already encodes them; headers are.
func (r *Request) ContinueAt(nextLink string) (*Request, error) {
	ref, err := url.Parse(nextLink)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid continuation link %q: %w", r.operation, nextLink, err)
	}

	root := *r.client.endpoint
	root.Path, root.RawPath, root.RawQuery = "/", "", ""
	next := root.ResolveReference(ref)

	return &Request{
		client:      r.client,
		operation:   r.operation,
		method:      http.MethodGet,
		absolute:    next,
		resource:    r.resource,
		subResource: r.subResource,
		query:       url.Values{},
		header:      r.header.Clone(),
	}, nil
}

// URL returns the URL the request will be sent to.
func (r *Request) URL() string {
	if r.absolute != nil {
		u := *r.absolute
		if u.Query().Get(apiVersionParam) == "" && r.client.apiVersion != "" {
			// The link is opaque; append rather than re-encode it.
			pair := apiVersionParam + "=" + url.QueryEscape(r.client.apiVersion)
			if u.RawQuery == "" {
				u.RawQuery = pair
			} else {
				u.RawQuery += "&" + pair
			}
		}
		return u.String()
	}

	q := url.Values{}
	for k, v := range r.query {
		q[k] = v
	}
	if r.client.apiVersion != "" {
		q.Set(apiVersionParam, r.client.apiVersion)
	}

	full := runtime.JoinPaths(r.client.endpoint.String(), r.path)
	if len(q) == 0 {
		return full
	}
	return full + "?" + q.Encode()
}

const apiVersionParam = "api-version"

func (r *Request) build(ctx context.Context) (*policy.Request, error) {
	req, err := runtime.NewRequest(ctx, r.method, r.URL())
	if err != nil {
		return nil, fmt.Errorf("%s: building request: %w", r.operation, err)
	}

	raw := req.Raw()
	for k, v := range r.header {
		raw.Header[k] = append([]string(nil), v...)
	}

	if r.body != nil {
		if err := runtime.MarshalAsJSON(req, r.body); err != nil {
			return nil, fmt.Errorf("%s: encoding body: %w", r.operation, err)
		}
		if r.contentType != "" {
			raw.Header.Set("Content-Type", r.contentType)
		}
	}
	return req, nil
}
