// Package pipeline is the request-builder layer shared by the Azure service
// clients in this module.
//
// A service client owns one *Client, created with New, which wraps an azcore
// runtime.Pipeline. azcore supplies retries, telemetry, request IDs, body
// download and HTTP logging; this package adds the bearer token policy with
// the configured scopes, W3C trace propagation and per-attempt debug logs.
//
// # Building an operation
//
//	resp, err := c.pl.NewRequest("get_key_value", http.MethodGet, "/kv/"+pipeline.PathEscape(key)).
//	    Resource(c.pl.Host(), key).
//	    Query("label", label).
//	    QueryStruct(selectQuery{Select: pipeline.CSV{"key", "value"}}).
//	    Header("If-None-Match", etag).
//	    Do(ctx, http.StatusOK, http.StatusNotModified)
//
// Every request gets api-version. Empty optional values are skipped.
// Statuses not passed to Do yield a *ResponseError, which matches the
// sentinel errors (ErrNotFound, ErrConflict, ...) with errors.Is and the
// underlying *azcore.ResponseError with errors.As.
//
// # Paging
//
// NewPager walks "@nextLink" / "nextLink" continuation links. Links are
// resolved against the endpoint root, api-version is added when missing and
// request headers are sent again with every page.
//
//	pager := pipeline.NewPager(req, pipeline.PageHandler[KeyValueListResult, KeyValue]{
//	    NextLink: KeyValueListResult.GetNextLink,
//	    Items:    func(p KeyValueListResult) []KeyValue { return p.Items },
//	})
//	all, err := pager.Collect(ctx)
package pipeline
