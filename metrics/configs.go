package metrics

// Default addresses for metrics servers if none is specified.
const (
	DefaultSystemMetricsAddress      = ":9090"
	DefaultApplicationMetricsAddress = ":9091"
)

// Config defines the configuration for the two Prometheus endpoints.
//
//  1. System endpoint (default :9090): Go runtime, process and build info.
//  2. Application endpoint (default :9091): Azure client operation metrics
//     and anything created through CreateCounter, CreateGauge, ...
type Config struct {
	// SystemMetricsAddress is the listen address of the system endpoint.
	// nil uses ":9090"; a pointer to "" disables the endpoint.
	//
	// Configured via YAML "system_metrics_address" or AZREST_METRICS_SYSTEM_METRICS_ADDRESS.
	SystemMetricsAddress *string `yaml:"system_metrics_address" split_words:"true"`

	// ApplicationMetricsAddress is the listen address of the application
	// endpoint. nil uses ":9091"; a pointer to "" disables the endpoint.
	// Metrics can still be created while it is disabled, they are just
	// not served.
	//
	// Configured via YAML "application_metrics_address" or AZREST_METRICS_APPLICATION_METRICS_ADDRESS.
	ApplicationMetricsAddress *string `yaml:"application_metrics_address" split_words:"true"`

	// ServiceName becomes the constant "service" label on every metric.
	ServiceName string `yaml:"service_name" split_words:"true"`

	// Namespace prefixes the operation metrics recorded by
	// OperationObserver. Defaults to "azure_client".
	Namespace string `yaml:"namespace" split_words:"true"`
}

// Ptr returns a pointer to the given string value.
//
//	cfg := metrics.Config{
//	    SystemMetricsAddress: metrics.Ptr(""), // disabled
//	    ServiceName:          "azrest",
//	}
func Ptr(s string) *string {
	return &s
}

func addressOrDefault(addr *string, def string) string {
	if addr == nil {
		return def
	}
	return *addr
}
