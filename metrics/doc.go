// Package metrics exposes Prometheus metrics for the Azure REST clients.
//
// Two registries are kept apart so they can be scraped with different
// intervals and access rules:
//
//   - system (default :9090): Go runtime, process and build info
//   - application (default :9091): client operation metrics and custom metrics
//
// # Operation metrics
//
// OperationObserver implements observability.Observer. Hand it to a client
// (or let FXModule do it) and every REST operation is counted and timed:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "azrest"})
//	client, err := appconfiguration.NewClient(cfg, cred, appconfiguration.Options{
//	    Observer: metrics.NewOperationObserver(m),
//	})
//
// Example queries:
//
//	# error ratio per operation
//	sum by (operation) (rate(azure_client_operations_total{outcome="error"}[5m]))
//	  / sum by (operation) (rate(azure_client_operations_total[5m]))
//
//	# p99 latency of key-value reads
//	histogram_quantile(0.99, sum by (le) (rate(azure_client_operation_duration_seconds_bucket{operation="get_key_value"}[5m])))
//
// # Custom metrics
//
// MetricsCollector creates counters, gauges, histograms and summaries on the
// application registry without leaking Prometheus types. Creating a metric
// twice returns the existing one.
package metrics
