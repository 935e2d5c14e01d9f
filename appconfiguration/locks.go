package appconfiguration

import (
	"context"
	"net/http"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// PutLockRequest makes a key-value read-only.
type PutLockRequest struct {
	c           *Client
	key         string
	label       string
	syncToken   string
	ifMatch     string
	ifNoneMatch string
}

// PutLock starts a PUT /locks/{key} request.
func (c *Client) PutLock(key string) *PutLockRequest {
	return &PutLockRequest{c: c, key: key}
}

func (r *PutLockRequest) Label(label string) *PutLockRequest {
	r.label = label
	return r
}

func (r *PutLockRequest) SyncToken(token string) *PutLockRequest {
	r.syncToken = token
	return r
}

func (r *PutLockRequest) IfMatch(etag string) *PutLockRequest {
	r.ifMatch = etag
	return r
}

func (r *PutLockRequest) IfNoneMatch(etag string) *PutLockRequest {
	r.ifNoneMatch = etag
	return r
}

// Send issues the request.
func (r *PutLockRequest) Send(ctx context.Context) (*KeyValueResponse, error) {
	return sendKeyValue(ctx, lockRequest(r.c, "put_lock", http.MethodPut, r.key, r.label, r.syncToken, r.ifMatch, r.ifNoneMatch), http.StatusOK)
}

// DeleteLockRequest makes a key-value writable again.
type DeleteLockRequest struct {
	c           *Client
	key         string
	label       string
	syncToken   string
	ifMatch     string
	ifNoneMatch string
}

// DeleteLock starts a DELETE /locks/{key} request.
func (c *Client) DeleteLock(key string) *DeleteLockRequest {
	return &DeleteLockRequest{c: c, key: key}
}

func (r *DeleteLockRequest) Label(label string) *DeleteLockRequest {
	r.label = label
	return r
}

func (r *DeleteLockRequest) SyncToken(token string) *DeleteLockRequest {
	r.syncToken = token
	return r
}

func (r *DeleteLockRequest) IfMatch(etag string) *DeleteLockRequest {
	r.ifMatch = etag
	return r
}

func (r *DeleteLockRequest) IfNoneMatch(etag string) *DeleteLockRequest {
	r.ifNoneMatch = etag
	return r
}

// Send issues the request.
func (r *DeleteLockRequest) Send(ctx context.Context) (*KeyValueResponse, error) {
	return sendKeyValue(ctx, lockRequest(r.c, "delete_lock", http.MethodDelete, r.key, r.label, r.syncToken, r.ifMatch, r.ifNoneMatch), http.StatusOK)
}

func lockRequest(c *Client, operation, method, key, label, syncToken, ifMatch, ifNoneMatch string) *pipeline.Request {
	req := c.newRequest(operation, method, keyPath("/locks", key)).
		Resource("", key).
		QueryStruct(listQuery{Label: label}).
		Header(headerAccept, acceptKeyValue).
		Header(headerSyncToken, syncToken).
		Header(headerIfMatch, ifMatch).
		Header(headerIfNoneMatch, ifNoneMatch)
	return requireKey(req, key)
}
