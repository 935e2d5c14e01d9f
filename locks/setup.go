package locks

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// Component is the name the client reports to observers, spans and logs.
const Component = "locks"

// Client is the Microsoft.Authorization locks client. Operations are
// grouped in sub-clients returned by ManagementLocks and
// AuthorizationOperations.
type Client struct {
	pl *pipeline.Client
}

// NewClient returns a locks client.
//
//	cred, _ := azidentity.NewAzureCLICredential(nil)
//	client, err := locks.NewClient(locks.Config{}, cred, locks.Options{})
//	pager := client.ManagementLocks().ListAtSubscriptionLevel(subID).Pager()
func NewClient(cfg Config, cred azcore.TokenCredential, opts Options) (*Client, error) {
	pl, err := pipeline.New(Component, DefaultEndpoint, APIVersion, cfg.Config, cred, opts)
	if err != nil {
		return nil, err
	}
	return &Client{pl: pl}, nil
}

// Endpoint returns the resource manager endpoint.
func (c *Client) Endpoint() string {
	return c.pl.Endpoint()
}

// Scopes returns the token scopes the client requests.
func (c *Client) Scopes() []string {
	return c.pl.Scopes()
}

// ManagementLocks returns the management_locks operation group.
func (c *Client) ManagementLocks() *ManagementLocksClient {
	return &ManagementLocksClient{pl: c.pl}
}

// AuthorizationOperations returns the authorization_operations operation group.
func (c *Client) AuthorizationOperations() *AuthorizationOperationsClient {
	return &AuthorizationOperationsClient{pl: c.pl}
}
