package pipeline

import (
	"context"
	"iter"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// PageDecoder turns an accepted page response into a page value.
type PageDecoder[P any] func(*Response) (P, error)

// DecodeJSON is the default PageDecoder.
func DecodeJSON[P any](resp *Response) (P, error) {
	var page P
	err := resp.Decode(&page)
	return page, err
}

// PageHandler describes how to walk a list operation.
type PageHandler[P, I any] struct {
	// NextLink returns the continuation link of a page, "" on the last page.
	NextLink func(P) string

	// Items returns the items of a page.
	Items func(P) []I

	// Decode overrides DecodeJSON, e.g. to copy response headers into the page.
	Decode PageDecoder[P]

	// Statuses accepted for every page. Defaults to 200.
	Statuses []int
}

// Pager lazily fetches the pages of a list operation. Nothing is sent until
// the first NextPage, Items or Collect call. A Pager is not safe for
// concurrent use.
type Pager[P, I any] struct {
	pager *runtime.Pager[P]
	items func(P) []I
}

// NewPager returns a pager whose first page is first and whose following
// pages are fetched from the continuation link of the previous page.
func NewPager[P, I any](first *Request, h PageHandler[P, I]) *Pager[P, I] {
	decode := h.Decode
	if decode == nil {
		decode = DecodeJSON[P]
	}
	statuses := h.Statuses
	if len(statuses) == 0 {
		statuses = []int{http.StatusOK}
	}

	page := 0
	return &Pager[P, I]{
		items: h.Items,
		pager: runtime.NewPager(runtime.PagingHandler[P]{
			More: func(current P) bool {
				return h.NextLink(current) != ""
			},
			Fetcher: func(ctx context.Context, current *P) (P, error) {
				var zero P

				req := first
				if current != nil {
					next, err := first.ContinueAt(h.NextLink(*current))
					if err != nil {
						return zero, err
					}
					req = next
				}
				req.page = page + 1

				req.client.logDebug(ctx, "fetching page", map[string]interface{}{
					"component": req.client.component,
					"operation": req.operation,
					"page":      req.page,
				})

				resp, err := req.Do(ctx, statuses...)
				if err != nil {
					return zero, err
				}
				decoded, err := decode(resp)
				if err != nil {
					return zero, err
				}
				page++
				return decoded, nil
			},
		}),
	}
}

// More reports whether another page is available.
func (p *Pager[P, I]) More() bool {
	return p.pager.More()
}

// NextPage fetches the next page. After the last page it returns
// ErrNoMorePages. A failed fetch can be retried by calling NextPage again.
func (p *Pager[P, I]) NextPage(ctx context.Context) (P, error) {
	if !p.pager.More() {
		var zero P
		return zero, ErrNoMorePages
	}
	return p.pager.NextPage(ctx)
}

// Items iterates over the items of every remaining page. A failed page
// fetch yields the error once and ends the iteration.
//
//	for kv, err := range pager.Items(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(kv.Key)
//	}
func (p *Pager[P, I]) Items(ctx context.Context) iter.Seq2[I, error] {
	return func(yield func(I, error) bool) {
		for p.More() {
			page, err := p.NextPage(ctx)
			if err != nil {
				var zero I
				yield(zero, err)
				return
			}
			for _, item := range p.items(page) {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// Collect gathers the items of every remaining page. On error the items
// fetched so far are returned with it.
func (p *Pager[P, I]) Collect(ctx context.Context) ([]I, error) {
	var out []I
	for item, err := range p.Items(ctx) {
		if err != nil {
			return out, err
		}
		out = append(out, item)
	}
	return out, nil
}
