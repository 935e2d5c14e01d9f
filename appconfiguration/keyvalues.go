package appconfiguration

import (
	"context"
	"net/http"
	"time"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// GetKeyValuesRequest lists key-values. Create it with Client.GetKeyValues.
type GetKeyValuesRequest struct {
	c              *Client
	key            string
	label          string
	after          string
	selectFields   []KeyValueFields
	syncToken      string
	acceptDatetime time.Time
}

// GetKeyValues starts a GET /kv request.
func (c *Client) GetKeyValues() *GetKeyValuesRequest {
	return &GetKeyValuesRequest{c: c}
}

// Key filters keys; "*" is a wildcard and "," separates alternatives.
func (r *GetKeyValuesRequest) Key(key string) *GetKeyValuesRequest {
	r.key = key
	return r
}

// Label filters labels. "\0" matches the null label.
func (r *GetKeyValuesRequest) Label(label string) *GetKeyValuesRequest {
	r.label = label
	return r
}

func (r *GetKeyValuesRequest) After(after string) *GetKeyValuesRequest {
	r.after = after
	return r
}

// Select limits the returned fields.
func (r *GetKeyValuesRequest) Select(fields ...KeyValueFields) *GetKeyValuesRequest {
	r.selectFields = fields
	return r
}

func (r *GetKeyValuesRequest) SyncToken(token string) *GetKeyValuesRequest {
	r.syncToken = token
	return r
}

func (r *GetKeyValuesRequest) AcceptDatetime(t time.Time) *GetKeyValuesRequest {
	r.acceptDatetime = t
	return r
}

func (r *GetKeyValuesRequest) request() *pipeline.Request {
	return r.c.newRequest("get_key_values", http.MethodGet, "/kv").
		QueryStruct(listQuery{Key: r.key, Label: r.label, After: r.after, Select: selectCSV(r.selectFields)}).
		Header(headerAccept, acceptKeyValueSet).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime)
}

// Pager returns a lazy pager over the matching key-values.
func (r *GetKeyValuesRequest) Pager() *pipeline.Pager[KeyValueListResult, KeyValue] {
	return pipeline.NewPager(r.request(), keyValuePages)
}

var keyValuePages = pipeline.PageHandler[KeyValueListResult, KeyValue]{
	NextLink: KeyValueListResult.GetNextLink,
	Items:    func(p KeyValueListResult) []KeyValue { return p.Items },
	Decode:   decodePage(func(p *KeyValueListResult, token string) { p.SyncToken = token }),
}

// CheckKeyValuesRequest is the HEAD variant of GetKeyValues.
type CheckKeyValuesRequest struct {
	c              *Client
	key            string
	label          string
	after          string
	selectFields   []KeyValueFields
	syncToken      string
	acceptDatetime time.Time
}

// CheckKeyValues starts a HEAD /kv request.
func (c *Client) CheckKeyValues() *CheckKeyValuesRequest {
	return &CheckKeyValuesRequest{c: c}
}

func (r *CheckKeyValuesRequest) Key(key string) *CheckKeyValuesRequest {
	r.key = key
	return r
}

func (r *CheckKeyValuesRequest) Label(label string) *CheckKeyValuesRequest {
	r.label = label
	return r
}

func (r *CheckKeyValuesRequest) After(after string) *CheckKeyValuesRequest {
	r.after = after
	return r
}

func (r *CheckKeyValuesRequest) Select(fields ...KeyValueFields) *CheckKeyValuesRequest {
	r.selectFields = fields
	return r
}

func (r *CheckKeyValuesRequest) SyncToken(token string) *CheckKeyValuesRequest {
	r.syncToken = token
	return r
}

func (r *CheckKeyValuesRequest) AcceptDatetime(t time.Time) *CheckKeyValuesRequest {
	r.acceptDatetime = t
	return r
}

// Send issues the request.
func (r *CheckKeyValuesRequest) Send(ctx context.Context) (*CheckResponse, error) {
	req := r.c.newRequest("check_key_values", http.MethodHead, "/kv").
		QueryStruct(listQuery{Key: r.key, Label: r.label, After: r.after, Select: selectCSV(r.selectFields)}).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime)
	return sendCheck(ctx, req)
}

// GetKeyValueRequest reads a single key-value.
type GetKeyValueRequest struct {
	c              *Client
	key            string
	label          string
	selectFields   []KeyValueFields
	syncToken      string
	acceptDatetime time.Time
	ifMatch        string
	ifNoneMatch    string
}

// GetKeyValueResponse is the result of GetKeyValue. KeyValue is nil when
// NotModified is set.
type GetKeyValueResponse struct {
	ResponseHeaders
	KeyValue    *KeyValue
	NotModified bool
}

// GetKeyValue starts a GET /kv/{key} request.
func (c *Client) GetKeyValue(key string) *GetKeyValueRequest {
	return &GetKeyValueRequest{c: c, key: key}
}

func (r *GetKeyValueRequest) Label(label string) *GetKeyValueRequest {
	r.label = label
	return r
}

func (r *GetKeyValueRequest) Select(fields ...KeyValueFields) *GetKeyValueRequest {
	r.selectFields = fields
	return r
}

func (r *GetKeyValueRequest) SyncToken(token string) *GetKeyValueRequest {
	r.syncToken = token
	return r
}

func (r *GetKeyValueRequest) AcceptDatetime(t time.Time) *GetKeyValueRequest {
	r.acceptDatetime = t
	return r
}

// IfMatch makes the read conditional on the entity having etag.
func (r *GetKeyValueRequest) IfMatch(etag string) *GetKeyValueRequest {
	r.ifMatch = etag
	return r
}

// IfNoneMatch answers NotModified while the entity still has etag.
func (r *GetKeyValueRequest) IfNoneMatch(etag string) *GetKeyValueRequest {
	r.ifNoneMatch = etag
	return r
}

// Send issues the request.
func (r *GetKeyValueRequest) Send(ctx context.Context) (*GetKeyValueResponse, error) {
	req := r.c.newRequest("get_key_value", http.MethodGet, keyPath("/kv", r.key)).
		Resource("", r.key).
		QueryStruct(listQuery{Label: r.label, Select: selectCSV(r.selectFields)}).
		Header(headerAccept, acceptKeyValue).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime).
		Header(headerIfMatch, r.ifMatch).
		Header(headerIfNoneMatch, r.ifNoneMatch)

	resp, err := requireKey(req, r.key).Do(ctx, http.StatusOK, http.StatusNotModified)
	if err != nil {
		return nil, err
	}

	out := &GetKeyValueResponse{ResponseHeaders: headersOf(resp)}
	if resp.StatusCode() == http.StatusNotModified {
		out.NotModified = true
		return out, nil
	}
	var kv KeyValue
	if err := resp.Decode(&kv); err != nil {
		return nil, err
	}
	out.KeyValue = &kv
	return out, nil
}

// PutKeyValueRequest creates or replaces a key-value.
type PutKeyValueRequest struct {
	c           *Client
	key         string
	label       string
	entity      *KeyValue
	syncToken   string
	ifMatch     string
	ifNoneMatch string
}

// KeyValueResponse is the result of the operations answering with the
// stored key-value.
type KeyValueResponse struct {
	ResponseHeaders
	KeyValue *KeyValue
}

// PutKeyValue starts a PUT /kv/{key} request.
func (c *Client) PutKeyValue(key string) *PutKeyValueRequest {
	return &PutKeyValueRequest{c: c, key: key}
}

func (r *PutKeyValueRequest) Label(label string) *PutKeyValueRequest {
	r.label = label
	return r
}

// Entity sets the value, content type and tags to store. Key, label and
// server-managed fields of kv are ignored by the service.
func (r *PutKeyValueRequest) Entity(kv *KeyValue) *PutKeyValueRequest {
	r.entity = kv
	return r
}

func (r *PutKeyValueRequest) SyncToken(token string) *PutKeyValueRequest {
	r.syncToken = token
	return r
}

// IfMatch replaces only an entity with etag. "*" requires the entity to exist.
func (r *PutKeyValueRequest) IfMatch(etag string) *PutKeyValueRequest {
	r.ifMatch = etag
	return r
}

// IfNoneMatch "*" creates only when the entity does not exist yet.
func (r *PutKeyValueRequest) IfNoneMatch(etag string) *PutKeyValueRequest {
	r.ifNoneMatch = etag
	return r
}

// Send issues the request.
func (r *PutKeyValueRequest) Send(ctx context.Context) (*KeyValueResponse, error) {
	req := r.c.newRequest("put_key_value", http.MethodPut, keyPath("/kv", r.key)).
		Resource("", r.key).
		QueryStruct(listQuery{Label: r.label}).
		Header(headerAccept, acceptKeyValue).
		Header(headerSyncToken, r.syncToken).
		Header(headerIfMatch, r.ifMatch).
		Header(headerIfNoneMatch, r.ifNoneMatch)
	if r.entity != nil {
		req.JSONBody(r.entity, mediaKeyValue)
	}
	return sendKeyValue(ctx, requireKey(req, r.key), http.StatusOK)
}

// DeleteKeyValueRequest deletes a key-value.
type DeleteKeyValueRequest struct {
	c         *Client
	key       string
	label     string
	syncToken string
	ifMatch   string
}

// DeleteKeyValue starts a DELETE /kv/{key} request. The response KeyValue
// is nil when the key-value did not exist.
func (c *Client) DeleteKeyValue(key string) *DeleteKeyValueRequest {
	return &DeleteKeyValueRequest{c: c, key: key}
}

func (r *DeleteKeyValueRequest) Label(label string) *DeleteKeyValueRequest {
	r.label = label
	return r
}

func (r *DeleteKeyValueRequest) SyncToken(token string) *DeleteKeyValueRequest {
	r.syncToken = token
	return r
}

func (r *DeleteKeyValueRequest) IfMatch(etag string) *DeleteKeyValueRequest {
	r.ifMatch = etag
	return r
}

// Send issues the request.
func (r *DeleteKeyValueRequest) Send(ctx context.Context) (*KeyValueResponse, error) {
	req := r.c.newRequest("delete_key_value", http.MethodDelete, keyPath("/kv", r.key)).
		Resource("", r.key).
		QueryStruct(listQuery{Label: r.label}).
		Header(headerAccept, acceptKeyValue).
		Header(headerSyncToken, r.syncToken).
		Header(headerIfMatch, r.ifMatch)
	return sendKeyValue(ctx, requireKey(req, r.key), http.StatusOK, http.StatusNoContent)
}

// CheckKeyValueRequest is the HEAD variant of GetKeyValue.
type CheckKeyValueRequest struct {
	c              *Client
	key            string
	label          string
	selectFields   []KeyValueFields
	syncToken      string
	acceptDatetime time.Time
	ifMatch        string
	ifNoneMatch    string
}

// CheckKeyValue starts a HEAD /kv/{key} request.
func (c *Client) CheckKeyValue(key string) *CheckKeyValueRequest {
	return &CheckKeyValueRequest{c: c, key: key}
}

func (r *CheckKeyValueRequest) Label(label string) *CheckKeyValueRequest {
	r.label = label
	return r
}

func (r *CheckKeyValueRequest) Select(fields ...KeyValueFields) *CheckKeyValueRequest {
	r.selectFields = fields
	return r
}

func (r *CheckKeyValueRequest) SyncToken(token string) *CheckKeyValueRequest {
	r.syncToken = token
	return r
}

func (r *CheckKeyValueRequest) AcceptDatetime(t time.Time) *CheckKeyValueRequest {
	r.acceptDatetime = t
	return r
}

func (r *CheckKeyValueRequest) IfMatch(etag string) *CheckKeyValueRequest {
	r.ifMatch = etag
	return r
}

func (r *CheckKeyValueRequest) IfNoneMatch(etag string) *CheckKeyValueRequest {
	r.ifNoneMatch = etag
	return r
}

// Send issues the request.
func (r *CheckKeyValueRequest) Send(ctx context.Context) (*CheckResponse, error) {
	req := r.c.newRequest("check_key_value", http.MethodHead, keyPath("/kv", r.key)).
		Resource("", r.key).
		QueryStruct(listQuery{Label: r.label, Select: selectCSV(r.selectFields)}).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime).
		Header(headerIfMatch, r.ifMatch).
		Header(headerIfNoneMatch, r.ifNoneMatch)
	return sendCheck(ctx, requireKey(req, r.key))
}

// sendKeyValue sends r and decodes the key-value body of every accepted
// status except 204.
func sendKeyValue(ctx context.Context, r *pipeline.Request, statuses ...int) (*KeyValueResponse, error) {
	resp, err := r.Do(ctx, statuses...)
	if err != nil {
		return nil, err
	}

	out := &KeyValueResponse{ResponseHeaders: headersOf(resp)}
	if resp.StatusCode() == http.StatusNoContent {
		return out, nil
	}
	var kv KeyValue
	if err := resp.Decode(&kv); err != nil {
		return nil, err
	}
	out.KeyValue = &kv
	return out, nil
}
