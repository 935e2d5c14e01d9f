package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds two Prometheus registries, one for process-level metrics and
// one for application metrics, each with its own HTTP server.
type Metrics struct {
	// SystemServer serves SystemRegistry on /metrics. nil when disabled.
	SystemServer *http.Server

	// ApplicationServer serves ApplicationRegistry on /metrics. nil when disabled.
	ApplicationServer *http.Server

	// SystemRegistry holds the Go runtime, process and build info collectors.
	SystemRegistry *prometheus.Registry

	// ApplicationRegistry holds every metric created through this package.
	ApplicationRegistry *prometheus.Registry

	namespace  string
	registerer prometheus.Registerer
}

// NewMetrics builds both registries and servers from cfg. Servers are only
// built, not started; RegisterMetricsLifecycle starts them.
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "azrest"})
//	obs := metrics.NewOperationObserver(m)
func NewMetrics(cfg Config) *Metrics {
	labels := prometheus.Labels{"service": cfg.ServiceName}

	m := &Metrics{
		namespace: cfg.Namespace,
	}
	if m.namespace == "" {
		m.namespace = "azure_client"
	}

	if systemAddr := addressOrDefault(cfg.SystemMetricsAddress, DefaultSystemMetricsAddress); systemAddr != "" {
		systemRegistry := prometheus.NewRegistry()
		prometheus.WrapRegistererWith(labels, systemRegistry).MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)

		m.SystemRegistry = systemRegistry
		m.SystemServer = newMetricsServer(systemAddr, systemRegistry)
	}

	// The application registry always exists so clients can record
	// operations even when nothing scrapes them.
	m.ApplicationRegistry = prometheus.NewRegistry()
	m.registerer = prometheus.WrapRegistererWith(labels, m.ApplicationRegistry)

	if appAddr := addressOrDefault(cfg.ApplicationMetricsAddress, DefaultApplicationMetricsAddress); appAddr != "" {
		m.ApplicationServer = newMetricsServer(appAddr, m.ApplicationRegistry)
	}

	return m
}

func newMetricsServer(addr string, registry *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return &http.Server{
		Addr:    addr,
		Handler: mux,
	}
}
