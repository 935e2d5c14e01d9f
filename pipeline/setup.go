package pipeline

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/aalemi-dev/azure-rest-lab/logger"
	"github.com/aalemi-dev/azure-rest-lab/observability"
	"github.com/aalemi-dev/azure-rest-lab/tracer"
)

// moduleVersion is reported in the azsdk-go User-Agent segment.
const moduleVersion = "v0.4.0"

// Options carries the optional collaborators of a Client.
type Options struct {
	// Transport replaces the HTTP client. Tests pass an httptest server's
	// client here.
	Transport policy.Transporter

	Observer observability.Observer
	Logger   logger.Logger
	Tracer   tracer.Tracer

	// PerCallPolicies run once per operation, PerRetryPolicies once per
	// attempt, both after the built-in ones.
	PerCallPolicies  []policy.Policy
	PerRetryPolicies []policy.Policy
}

// Client sends requests for one service through an azcore pipeline. Service
// packages hold one and build their operations on top of NewRequest.
type Client struct {
	component  string
	endpoint   *url.URL
	apiVersion string
	scopes     []string
	pl         runtime.Pipeline

	observer observability.Observer
	logger   logger.Logger
	tracer   tracer.Tracer
}

// New builds the pipeline for component. defaultEndpoint and
// defaultAPIVersion apply when cfg leaves them empty.
//
//	pl, err := pipeline.New("locks", "https://management.azure.com", "2020-05-01", cfg, cred, pipeline.Options{})
func New(component, defaultEndpoint, defaultAPIVersion string, cfg Config, cred azcore.TokenCredential, opts Options) (*Client, error) {
	if cred == nil {
		return nil, ErrNoCredential
	}

	raw := cfg.Endpoint
	if raw == "" {
		raw = defaultEndpoint
	}
	endpoint, err := parseEndpoint(raw)
	if err != nil {
		return nil, err
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{DefaultScope(endpoint)}
	}

	c := &Client{
		component:  component,
		endpoint:   endpoint,
		apiVersion: apiVersion,
		scopes:     scopes,
		observer:   opts.Observer,
		logger:     opts.Logger,
		tracer:     opts.Tracer,
	}

	perRetry := []policy.Policy{
		runtime.NewBearerTokenPolicy(cred, scopes, &policy.BearerTokenOptions{
			InsecureAllowCredentialWithHTTP: cfg.AllowInsecureHTTP,
		}),
	}
	if opts.Tracer != nil {
		perRetry = append(perRetry, &tracePropagationPolicy{tracer: opts.Tracer})
	}
	if opts.Logger != nil {
		perRetry = append(perRetry, &attemptLogPolicy{component: component, logger: opts.Logger})
	}
	perRetry = append(perRetry, opts.PerRetryPolicies...)

	clientOpts := &policy.ClientOptions{
		Retry: policy.RetryOptions{
			MaxRetries:    cfg.Retry.MaxRetries,
			TryTimeout:    cfg.Retry.TryTimeout,
			RetryDelay:    cfg.Retry.RetryDelay,
			MaxRetryDelay: cfg.Retry.MaxRetryDelay,
			StatusCodes:   cfg.Retry.StatusCodes,
		},
		Telemetry: policy.TelemetryOptions{ApplicationID: cfg.ApplicationID},
		Logging:   policy.LogOptions{IncludeBody: cfg.LogBodies},
		Transport: opts.Transport,
	}

	c.pl = runtime.NewPipeline("azrest/"+component, moduleVersion, runtime.PipelineOptions{
		PerCall:  opts.PerCallPolicies,
		PerRetry: perRetry,
	}, clientOpts)

	return c, nil
}

// Endpoint returns the service root the client sends requests to.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// APIVersion returns the api-version added to every request.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// Scopes returns the token scopes requested from the credential.
func (c *Client) Scopes() []string {
	return append([]string(nil), c.scopes...)
}

// Component returns the name reported to observers and spans.
func (c *Client) Component() string {
	return c.component
}

// Host returns the endpoint host, used as the observed resource of
// data-plane operations.
func (c *Client) Host() string {
	return c.endpoint.Host
}

// DefaultScope is "<scheme>://<host>/.default" for endpoint.
func DefaultScope(endpoint *url.URL) string {
	return endpoint.Scheme + "://" + endpoint.Host + "/.default"
}

func parseEndpoint(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q must be an absolute http(s) URL", ErrInvalidEndpoint, raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
