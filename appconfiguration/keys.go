package appconfiguration

import (
	"context"
	"net/http"
	"time"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// GetKeysRequest lists key names. Create it with Client.GetKeys.
type GetKeysRequest struct {
	c              *Client
	name           string
	after          string
	syncToken      string
	acceptDatetime time.Time
}

// GetKeys starts a GET /keys request.
func (c *Client) GetKeys() *GetKeysRequest {
	return &GetKeysRequest{c: c}
}

// Name filters key names; "*" is a wildcard.
func (r *GetKeysRequest) Name(name string) *GetKeysRequest {
	r.name = name
	return r
}

// After starts the listing after the given item.
func (r *GetKeysRequest) After(after string) *GetKeysRequest {
	r.after = after
	return r
}

// SyncToken sets the Sync-Token header.
func (r *GetKeysRequest) SyncToken(token string) *GetKeysRequest {
	r.syncToken = token
	return r
}

// AcceptDatetime requests the keys as they were at t.
func (r *GetKeysRequest) AcceptDatetime(t time.Time) *GetKeysRequest {
	r.acceptDatetime = t
	return r
}

func (r *GetKeysRequest) request() *pipeline.Request {
	return r.c.newRequest("get_keys", http.MethodGet, "/keys").
		QueryStruct(listQuery{Name: r.name, After: r.after}).
		Header(headerAccept, acceptKeySet).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime)
}

// Pager returns a lazy pager over the matching keys.
func (r *GetKeysRequest) Pager() *pipeline.Pager[KeyListResult, Key] {
	return pipeline.NewPager(r.request(), pipeline.PageHandler[KeyListResult, Key]{
		NextLink: KeyListResult.GetNextLink,
		Items:    func(p KeyListResult) []Key { return p.Items },
		Decode:   decodePage(func(p *KeyListResult, token string) { p.SyncToken = token }),
	})
}

// CheckKeysRequest is the HEAD variant of GetKeys.
type CheckKeysRequest struct {
	c              *Client
	name           string
	after          string
	syncToken      string
	acceptDatetime time.Time
}

// CheckKeys starts a HEAD /keys request.
func (c *Client) CheckKeys() *CheckKeysRequest {
	return &CheckKeysRequest{c: c}
}

func (r *CheckKeysRequest) Name(name string) *CheckKeysRequest {
	r.name = name
	return r
}

func (r *CheckKeysRequest) After(after string) *CheckKeysRequest {
	r.after = after
	return r
}

func (r *CheckKeysRequest) SyncToken(token string) *CheckKeysRequest {
	r.syncToken = token
	return r
}

func (r *CheckKeysRequest) AcceptDatetime(t time.Time) *CheckKeysRequest {
	r.acceptDatetime = t
	return r
}

// Send issues the request.
func (r *CheckKeysRequest) Send(ctx context.Context) (*CheckResponse, error) {
	req := r.c.newRequest("check_keys", http.MethodHead, "/keys").
		QueryStruct(listQuery{Name: r.name, After: r.after}).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime)
	return sendCheck(ctx, req)
}
