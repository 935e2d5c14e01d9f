package appconfiguration

import (
	"context"
	"net/http"
	"time"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// GetLabelsRequest lists labels. Create it with Client.GetLabels.
type GetLabelsRequest struct {
	c              *Client
	name           string
	after          string
	selectFields   []LabelFields
	syncToken      string
	acceptDatetime time.Time
}

// GetLabels starts a GET /labels request.
func (c *Client) GetLabels() *GetLabelsRequest {
	return &GetLabelsRequest{c: c}
}

// Name filters label names; "*" is a wildcard.
func (r *GetLabelsRequest) Name(name string) *GetLabelsRequest {
	r.name = name
	return r
}

func (r *GetLabelsRequest) After(after string) *GetLabelsRequest {
	r.after = after
	return r
}

func (r *GetLabelsRequest) Select(fields ...LabelFields) *GetLabelsRequest {
	r.selectFields = fields
	return r
}

func (r *GetLabelsRequest) SyncToken(token string) *GetLabelsRequest {
	r.syncToken = token
	return r
}

func (r *GetLabelsRequest) AcceptDatetime(t time.Time) *GetLabelsRequest {
	r.acceptDatetime = t
	return r
}

// Pager returns a lazy pager over the matching labels.
func (r *GetLabelsRequest) Pager() *pipeline.Pager[LabelListResult, Label] {
	req := r.c.newRequest("get_labels", http.MethodGet, "/labels").
		QueryStruct(listQuery{Name: r.name, After: r.after, Select: selectCSV(r.selectFields)}).
		Header(headerAccept, acceptLabelSet).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime)

	return pipeline.NewPager(req, pipeline.PageHandler[LabelListResult, Label]{
		NextLink: LabelListResult.GetNextLink,
		Items:    func(p LabelListResult) []Label { return p.Items },
		Decode:   decodePage(func(p *LabelListResult, token string) { p.SyncToken = token }),
	})
}

// CheckLabelsRequest is the HEAD variant of GetLabels.
type CheckLabelsRequest struct {
	c              *Client
	name           string
	after          string
	selectFields   []LabelFields
	syncToken      string
	acceptDatetime time.Time
}

// CheckLabels starts a HEAD /labels request.
func (c *Client) CheckLabels() *CheckLabelsRequest {
	return &CheckLabelsRequest{c: c}
}

func (r *CheckLabelsRequest) Name(name string) *CheckLabelsRequest {
	r.name = name
	return r
}

func (r *CheckLabelsRequest) After(after string) *CheckLabelsRequest {
	r.after = after
	return r
}

func (r *CheckLabelsRequest) Select(fields ...LabelFields) *CheckLabelsRequest {
	r.selectFields = fields
	return r
}

func (r *CheckLabelsRequest) SyncToken(token string) *CheckLabelsRequest {
	r.syncToken = token
	return r
}

func (r *CheckLabelsRequest) AcceptDatetime(t time.Time) *CheckLabelsRequest {
	r.acceptDatetime = t
	return r
}

// Send issues the request.
func (r *CheckLabelsRequest) Send(ctx context.Context) (*CheckResponse, error) {
	req := r.c.newRequest("check_labels", http.MethodHead, "/labels").
		QueryStruct(listQuery{Name: r.name, After: r.after, Select: selectCSV(r.selectFields)}).
		Header(headerSyncToken, r.syncToken).
		HeaderTime(headerAcceptDatetime, r.acceptDatetime)
	return sendCheck(ctx, req)
}
