package appconfiguration

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/aalemi-dev/azure-rest-lab/pipeline"
)

// Component is the name the client reports to observers, spans and logs.
const Component = "appconfiguration"

// Client is an App Configuration store client. The zero value is not
// usable; create one with NewClient.
type Client struct {
	pl *pipeline.Client
}

// NewClient returns a client for the store at cfg.Endpoint, authenticating
// with cred for scope "<endpoint>/.default" unless cfg.Scopes says otherwise.
//
// Example:
//
//	cred, _ := azidentity.NewDefaultAzureCredential(nil)
//	client, err := appconfiguration.NewClient(appconfiguration.Config{
//	    Config: pipeline.Config{Endpoint: "https://mystore.azconfig.io"},
//	}, cred, appconfiguration.Options{})
func NewClient(cfg Config, cred azcore.TokenCredential, opts Options) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, ErrEndpointRequired
	}

	pl, err := pipeline.New(Component, "", APIVersion, cfg.Config, cred, opts)
	if err != nil {
		return nil, err
	}
	return &Client{pl: pl}, nil
}

// Endpoint returns the store endpoint.
func (c *Client) Endpoint() string {
	return c.pl.Endpoint()
}

// Scopes returns the token scopes the client requests.
func (c *Client) Scopes() []string {
	return c.pl.Scopes()
}

func (c *Client) newRequest(operation, method, path string) *pipeline.Request {
	return c.pl.NewRequest(operation, method, path)
}
