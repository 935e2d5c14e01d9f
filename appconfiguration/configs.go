package appconfiguration

import "github.com/aalemi-dev/azure-rest-lab/pipeline"

// APIVersion is the data-plane API version these operations map.
const APIVersion = "1.0"

// Config configures a store client. Endpoint is required, e.g.
// "https://mystore.azconfig.io".
//
// Configured via YAML under "appconfiguration" or AZREST_APPCONFIG_* variables
// (AZREST_APPCONFIG_ENDPOINT, AZREST_APPCONFIG_RETRY_MAX_RETRIES, ...).
type Config struct {
	pipeline.Config `yaml:",inline"`
}

// Options carries the optional collaborators of a Client.
type Options = pipeline.Options
