package metrics

// MetricsCollector creates application metrics without exposing Prometheus
// types. All metrics are registered on the application registry.
//
// This interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// CreateCounter creates (or returns the already registered) counter.
	//
	//   counter := m.CreateCounter("kv_writes_total", "Key-values written", []string{"store"})
	//   counter.WithLabelValues("mystore").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram creates (or returns the already registered) histogram.
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram

	// CreateGauge creates (or returns the already registered) gauge.
	//
	//   gauge := m.CreateGauge("watched_keys", "Keys under watch", []string{"store"})
	//   gauge.WithLabelValues("mystore").Set(3)
	CreateGauge(name, help string, labels []string) Gauge

	// CreateSummary creates (or returns the already registered) summary.
	CreateSummary(name, help string, labels []string, objectives map[float64]float64) Summary
}
