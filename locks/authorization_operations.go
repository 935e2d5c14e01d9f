package locks

import (
	"net/http"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// AuthorizationOperationsClient lists the Microsoft.Authorization REST operations.
type AuthorizationOperationsClient struct {
	pl *pipeline.Client
}

// ListOperationsRequest is created by AuthorizationOperationsClient.List.
type ListOperationsRequest struct {
	pl *pipeline.Client
}

// List starts a GET /providers/Microsoft.Authorization/operations request.
func (c *AuthorizationOperationsClient) List() *ListOperationsRequest {
	return &ListOperationsRequest{pl: c.pl}
}

// Pager returns a lazy pager over the operations.
func (r *ListOperationsRequest) Pager() *pipeline.Pager[OperationListResult, Operation] {
	req := r.pl.NewRequest("authorization_operations.list", http.MethodGet, "/providers/Microsoft.Authorization/operations").
		Resource("Microsoft.Authorization", "")
	return pipeline.NewPager(req, pipeline.PageHandler[OperationListResult, Operation]{
		NextLink: OperationListResult.GetNextLink,
		Items:    func(p OperationListResult) []Operation { return p.Value },
	})
}
