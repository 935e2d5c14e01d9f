package pipeline

import "time"

// Config holds the transport settings shared by every Azure client.
type Config struct {
	// Endpoint is the service root, e.g. "https://management.azure.com" or
	// "https://mystore.azconfig.io". Services fill in their own default.
	Endpoint string `yaml:"endpoint" split_words:"true" validate:"omitempty,url"`

	// Scopes requested from the credential. Defaults to "<endpoint>/.default".
	Scopes []string `yaml:"scopes" split_words:"true"`

	// APIVersion overrides the api-version the service client was written
	// against. Leave empty unless a newer version is known to be compatible.
	APIVersion string `yaml:"api_version" split_words:"true"`

	// ApplicationID is prepended to the User-Agent header. azcore limits it
	// to 24 characters without spaces.
	ApplicationID string `yaml:"application_id" split_words:"true" validate:"omitempty,max=24"`

	// AllowInsecureHTTP permits sending bearer tokens over plain HTTP.
	// Only for emulators and local fakes.
	AllowInsecureHTTP bool `yaml:"allow_insecure_http" split_words:"true"`

	// LogBodies makes azcore's logging policy include request and response
	// bodies in its Request/Response events.
	LogBodies bool `yaml:"log_bodies" split_words:"true"`

	Retry RetryConfig `yaml:"retry" split_words:"true"`
}

// RetryConfig maps onto azcore's policy.RetryOptions. Zero values keep the
// azcore defaults (3 retries, 800ms initial delay, 60s max delay, no
// per-try timeout).
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	// -1 disables retries.
	MaxRetries int32 `yaml:"max_retries" split_words:"true" validate:"gte=-1"`

	// TryTimeout bounds a single attempt.
	TryTimeout time.Duration `yaml:"try_timeout" split_words:"true" validate:"gte=0"`

	// RetryDelay is the initial backoff. -1 retries immediately.
	RetryDelay time.Duration `yaml:"retry_delay" split_words:"true"`

	// MaxRetryDelay caps the backoff.
	MaxRetryDelay time.Duration `yaml:"max_retry_delay" split_words:"true"`

	// StatusCodes replaces the set of retried HTTP statuses.
	StatusCodes []int `yaml:"status_codes" split_words:"true"`
}
