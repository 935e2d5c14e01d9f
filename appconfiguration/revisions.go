package appconfiguration

import (
	"context"
	"net/http"
	"time"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// GetRevisionsRequest lists the change history of key-values.
type GetRevisionsRequest struct {
	c              *Client
	key            string
	label          string
	after          string
	selectFields   []KeyValueFields
	syncToken      string
	acceptDatetime time.Time
}

// GetRevisions starts a GET /revisions request.
func (c *Client) GetRevisions() *GetRevisionsRequest {
	return &GetRevisionsRequest{c: c}
}

func (r *GetRevisionsRequest) Key(key string) *GetRevisionsRequest {
	r.key = key
	return r
}

func (r *GetRevisionsRequest) Label(label string) *GetRevisionsRequest {
	r.label = label
	return r
}

func (r *GetRevisionsRequest) After(after string) *GetRevisionsRequest {
	r.after = after
	return r
}

func (r *GetRevisionsRequest) Select(fields ...KeyValueFields) *GetRevisionsRequest {
	r.selectFields = fields
	return r
}

func (r *GetRevisionsRequest) SyncToken(token string) *GetRevisionsRequest {
	r.syncToken = token
	return r
}

func (r *GetRevisionsRequest) AcceptDatetime(t time.Time) *GetRevisionsRequest {
	r.acceptDatetime = t
	return r
}

// Pager returns a lazy pager over the revisions, newest first.
func (r *GetRevisionsRequest) Pager() *pipeline.Pager[KeyValueListResult, KeyValue] {
	req := r.c.newRequest("get_revisions", http.MethodGet, "/revisions").
		QueryStruct(listQuery{Key: r.key, Label: r.label, After: r.after, Select: selectCSV(r.selectFields)}).
		Header(headerAccept, acceptKeyValueSet).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime)
	return pipeline.NewPager(req, keyValuePages)
}

// CheckRevisionsRequest is the HEAD variant of GetRevisions.
type CheckRevisionsRequest struct {
	c              *Client
	key            string
	label          string
	after          string
	selectFields   []KeyValueFields
	syncToken      string
	acceptDatetime time.Time
}

// CheckRevisions starts a HEAD /revisions request.
func (c *Client) CheckRevisions() *CheckRevisionsRequest {
	return &CheckRevisionsRequest{c: c}
}

func (r *CheckRevisionsRequest) Key(key string) *CheckRevisionsRequest {
	r.key = key
	return r
}

func (r *CheckRevisionsRequest) Label(label string) *CheckRevisionsRequest {
	r.label = label
	return r
}

func (r *CheckRevisionsRequest) After(after string) *CheckRevisionsRequest {
	r.after = after
	return r
}

func (r *CheckRevisionsRequest) Select(fields ...KeyValueFields) *CheckRevisionsRequest {
	r.selectFields = fields
	return r
}

func (r *CheckRevisionsRequest) SyncToken(token string) *CheckRevisionsRequest {
	r.syncToken = token
	return r
}

func (r *CheckRevisionsRequest) AcceptDatetime(t time.Time) *CheckRevisionsRequest {
	r.acceptDatetime = t
	return r
}

// Send issues the request.
func (r *CheckRevisionsRequest) Send(ctx context.Context) (*CheckResponse, error) {
	req := r.c.newRequest("check_revisions", http.MethodHead, "/revisions").
		QueryStruct(listQuery{Key: r.key, Label: r.label, After: r.after, Select: selectCSV(r.selectFields)}).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime)
	return sendCheck(ctx, req)
}
