package locks

import (
	"context"
	"net/http"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// ManagementLocksClient manages locks at subscription, resource group,
// resource and arbitrary scope level.
type ManagementLocksClient struct {
	pl *pipeline.Client
}

// GetLockRequest reads one lock. Create it with one of the Get* methods.
type GetLockRequest struct {
	pl    *pipeline.Client
	level level
	name  string
}

// CreateOrUpdateLockRequest writes one lock.
type CreateOrUpdateLockRequest struct {
	pl     *pipeline.Client
	level  level
	name   string
	params ManagementLockObject
}

// DeleteLockRequest removes one lock.
type DeleteLockRequest struct {
	pl    *pipeline.Client
	level level
	name  string
}

// ListLocksRequest lists the locks at and below a level.
type ListLocksRequest struct {
	pl     *pipeline.Client
	level  level
	filter string
}

// LockResponse is the result of Get and CreateOrUpdate. Created is set
// when CreateOrUpdate made a new lock (201).
type LockResponse struct {
	ManagementLockObject
	Created bool
}

// DeleteResponse is the result of Delete. NoContent is set when the service
// answered 204, which it does when there was no such lock.
type DeleteResponse struct {
	NoContent bool
}

func (c *ManagementLocksClient) get(l level, name string) *GetLockRequest {
	return &GetLockRequest{pl: c.pl, level: l, name: name}
}

func (c *ManagementLocksClient) createOrUpdate(l level, name string, params ManagementLockObject) *CreateOrUpdateLockRequest {
	return &CreateOrUpdateLockRequest{pl: c.pl, level: l, name: name, params: params}
}

func (c *ManagementLocksClient) delete(l level, name string) *DeleteLockRequest {
	return &DeleteLockRequest{pl: c.pl, level: l, name: name}
}

func (c *ManagementLocksClient) list(l level) *ListLocksRequest {
	return &ListLocksRequest{pl: c.pl, level: l}
}

// GetAtResourceGroupLevel reads a lock of a resource group.
func (c *ManagementLocksClient) GetAtResourceGroupLevel(subscriptionID, resourceGroupName, lockName string) *GetLockRequest {
	return c.get(resourceGroupLevel(subscriptionID, resourceGroupName), lockName)
}

// CreateOrUpdateAtResourceGroupLevel locks a resource group. Child
// resources inherit the lock.
func (c *ManagementLocksClient) CreateOrUpdateAtResourceGroupLevel(subscriptionID, resourceGroupName, lockName string, params ManagementLockObject) *CreateOrUpdateLockRequest {
	return c.createOrUpdate(resourceGroupLevel(subscriptionID, resourceGroupName), lockName, params)
}

// DeleteAtResourceGroupLevel removes a lock of a resource group.
func (c *ManagementLocksClient) DeleteAtResourceGroupLevel(subscriptionID, resourceGroupName, lockName string) *DeleteLockRequest {
	return c.delete(resourceGroupLevel(subscriptionID, resourceGroupName), lockName)
}

// ListAtResourceGroupLevel lists the locks of a resource group and its resources.
func (c *ManagementLocksClient) ListAtResourceGroupLevel(subscriptionID, resourceGroupName string) *ListLocksRequest {
	return c.list(resourceGroupLevel(subscriptionID, resourceGroupName))
}

// GetAtResourceLevel reads a lock of a resource.
func (c *ManagementLocksClient) GetAtResourceLevel(id ResourceID, lockName string) *GetLockRequest {
	return c.get(resourceLevel(id), lockName)
}

// CreateOrUpdateAtResourceLevel locks a resource.
func (c *ManagementLocksClient) CreateOrUpdateAtResourceLevel(id ResourceID, lockName string, params ManagementLockObject) *CreateOrUpdateLockRequest {
	return c.createOrUpdate(resourceLevel(id), lockName, params)
}

// DeleteAtResourceLevel removes a lock of a resource.
func (c *ManagementLocksClient) DeleteAtResourceLevel(id ResourceID, lockName string) *DeleteLockRequest {
	return c.delete(resourceLevel(id), lockName)
}

// ListAtResourceLevel lists the locks of a resource and its children.
func (c *ManagementLocksClient) ListAtResourceLevel(id ResourceID) *ListLocksRequest {
	return c.list(resourceLevel(id))
}

// GetAtSubscriptionLevel reads a lock of a subscription.
func (c *ManagementLocksClient) GetAtSubscriptionLevel(subscriptionID, lockName string) *GetLockRequest {
	return c.get(subscriptionLevel(subscriptionID), lockName)
}

// CreateOrUpdateAtSubscriptionLevel locks a subscription.
func (c *ManagementLocksClient) CreateOrUpdateAtSubscriptionLevel(subscriptionID, lockName string, params ManagementLockObject) *CreateOrUpdateLockRequest {
	return c.createOrUpdate(subscriptionLevel(subscriptionID), lockName, params)
}

// DeleteAtSubscriptionLevel removes a lock of a subscription.
func (c *ManagementLocksClient) DeleteAtSubscriptionLevel(subscriptionID, lockName string) *DeleteLockRequest {
	return c.delete(subscriptionLevel(subscriptionID), lockName)
}

// ListAtSubscriptionLevel lists every lock in a subscription.
func (c *ManagementLocksClient) ListAtSubscriptionLevel(subscriptionID string) *ListLocksRequest {
	return c.list(subscriptionLevel(subscriptionID))
}

// GetByScope reads a lock of scope, e.g.
// "/subscriptions/{id}/resourceGroups/{rg}".
func (c *ManagementLocksClient) GetByScope(scope, lockName string) *GetLockRequest {
	return c.get(scopeLevel(scope), lockName)
}

// CreateOrUpdateByScope locks scope.
func (c *ManagementLocksClient) CreateOrUpdateByScope(scope, lockName string, params ManagementLockObject) *CreateOrUpdateLockRequest {
	return c.createOrUpdate(scopeLevel(scope), lockName, params)
}

// DeleteByScope removes a lock of scope.
func (c *ManagementLocksClient) DeleteByScope(scope, lockName string) *DeleteLockRequest {
	return c.delete(scopeLevel(scope), lockName)
}

// ListByScope lists the locks of scope and below.
func (c *ManagementLocksClient) ListByScope(scope string) *ListLocksRequest {
	return c.list(scopeLevel(scope))
}

func newLockRequest(pl *pipeline.Client, verb string, l level, method, name string) *pipeline.Request {
	req := pl.NewRequest("management_locks."+verb+"_"+l.suffix, method, l.lockPath(name)).
		Resource(l.resourceName(), name).
		Fail(l.err)
	if l.err == nil {
		req.Fail(ValidateLockName(name))
	}
	return req
}

// Send issues the request.
func (r *GetLockRequest) Send(ctx context.Context) (*LockResponse, error) {
	resp, err := newLockRequest(r.pl, "get", r.level, http.MethodGet, r.name).Do(ctx, http.StatusOK)
	if err != nil {
		return nil, err
	}

	out := &LockResponse{}
	if err := resp.Decode(&out.ManagementLockObject); err != nil {
		return nil, err
	}
	return out, nil
}

// Send validates the lock body and issues the request.
func (r *CreateOrUpdateLockRequest) Send(ctx context.Context) (*LockResponse, error) {
	req := newLockRequest(r.pl, "create_or_update", r.level, http.MethodPut, r.name).
		Fail(ValidateLock(r.params)).
		JSONBody(r.params, "")

	resp, err := req.Do(ctx, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	out := &LockResponse{Created: resp.StatusCode() == http.StatusCreated}
	if err := resp.Decode(&out.ManagementLockObject); err != nil {
		return nil, err
	}
	return out, nil
}

// Send issues the request.
func (r *DeleteLockRequest) Send(ctx context.Context) (*DeleteResponse, error) {
	resp, err := newLockRequest(r.pl, "delete", r.level, http.MethodDelete, r.name).Do(ctx, http.StatusOK, http.StatusNoContent)
	if err != nil {
		return nil, err
	}
	return &DeleteResponse{NoContent: resp.StatusCode() == http.StatusNoContent}, nil
}

// Filter sets the OData $filter, e.g. "atScope()".
func (r *ListLocksRequest) Filter(filter string) *ListLocksRequest {
	r.filter = filter
	return r
}

// Pager returns a lazy pager over the matching locks.
func (r *ListLocksRequest) Pager() *pipeline.Pager[ManagementLockListResult, ManagementLockObject] {
	req := r.pl.NewRequest("management_locks.list_"+r.level.suffix, http.MethodGet, r.level.collectionPath()).
		Resource(r.level.resourceName(), "").
		Query("$filter", r.filter).
		Fail(r.level.err)

	return pipeline.NewPager(req, pipeline.PageHandler[ManagementLockListResult, ManagementLockObject]{
		NextLink: ManagementLockListResult.GetNextLink,
		Items:    func(p ManagementLockListResult) []ManagementLockObject { return p.Value },
	})
}
