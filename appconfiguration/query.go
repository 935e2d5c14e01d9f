package appconfiguration

import (
	"context"
	"net/http"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// listQuery holds the query parameters of the collection operations.
type listQuery struct {
	Name   string       `schema:"name,omitempty"`
	Key    string       `schema:"key,omitempty"`
	Label  string       `schema:"label,omitempty"`
	After  string       `schema:"After,omitempty"`
	Select pipeline.CSV `schema:"$Select,omitempty"`
}

func selectCSV[F ~string](fields []F) pipeline.CSV {
	if len(fields) == 0 {
		return nil
	}
	out := make(pipeline.CSV, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

// requireKey fails r when key is empty, which would otherwise address the
// collection instead of the entity.
func requireKey(r *pipeline.Request, key string) *pipeline.Request {
	if key == "" {
		return r.Fail(ErrKeyRequired)
	}
	return r
}

func keyPath(prefix, key string) string {
	return prefix + "/" + pipeline.PathEscape(key)
}

// decodePage copies the Sync-Token header into the page after decoding.
func decodePage[P any](setSyncToken func(*P, string)) pipeline.PageDecoder[P] {
	return func(resp *pipeline.Response) (P, error) {
		page, err := pipeline.DecodeJSON[P](resp)
		if err != nil {
			return page, err
		}
		setSyncToken(&page, resp.Header(headerSyncToken))
		return page, nil
	}
}

// sendCheck sends a HEAD request and returns its headers.
func sendCheck(ctx context.Context, r *pipeline.Request) (*CheckResponse, error) {
	resp, err := r.Do(ctx, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &CheckResponse{ResponseHeaders: headersOf(resp)}, nil
}
