package tracer

// Config defines the configuration for the OpenTelemetry tracer.
type Config struct {
	// ServiceName appears as service.name on every span.
	//
	// Example values: "azrest", "config-sync"
	ServiceName string `yaml:"service_name" split_words:"true"`

	// AppEnv sets the "deployment.environment" and "environment" resource
	// attributes ("development", "staging", "production").
	AppEnv string `yaml:"app_env" split_words:"true"`

	// EnableExport configures an OTLP HTTP exporter. When false, spans are
	// still created so trace context propagates to Azure in the
	// traceparent header, they are just never shipped anywhere.
	EnableExport bool `yaml:"enable_export" split_words:"true"`

	// Endpoint overrides the OTLP collector address ("collector:4318").
	// When empty the exporter reads OTEL_EXPORTER_OTLP_* variables.
	Endpoint string `yaml:"endpoint" split_words:"true"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" split_words:"true"`

	// SampleRatio is the fraction of root spans kept, in [0, 1].
	// Zero means "always sample".
	SampleRatio float64 `yaml:"sample_ratio" split_words:"true" validate:"gte=0,lte=1"`
}
