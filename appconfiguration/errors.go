package appconfiguration

import "errors"

var (
	// ErrEndpointRequired is returned by NewClient without Config.Endpoint.
	// App Configuration has no global endpoint to fall back to.
	ErrEndpointRequired = errors.New("appconfiguration: endpoint is required")

	// ErrKeyRequired is returned by operations addressing a single key
	// when the key is empty.
	ErrKeyRequired = errors.New("appconfiguration: key is required")
)
